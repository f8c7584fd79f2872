package ioc

import (
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/job"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/service"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/logger"

	rlock "github.com/gotomicro/redis-lock"
	"github.com/robfig/cron/v3"
)

func InitPaymentSyncJob(svc service.PaymentService,
	rlockClient *rlock.Client, l logger.LoggerV1) *job.PaymentSyncJob {
	return job.NewPaymentSyncJob(svc, rlockClient, l, time.Second*30)
}

func InitJobs(l logger.LoggerV1, paymentSyncJob *job.PaymentSyncJob) *cron.Cron {
	res := cron.New(cron.WithSeconds())
	cbd := job.NewCronJobBuilder(l)
	// 十分钟扫一次卡在 READY 的支付
	_, err := res.AddJob("0 */10 * * * ?", cbd.Build(paymentSyncJob))
	if err != nil {
		panic(err)
	}
	return res
}
