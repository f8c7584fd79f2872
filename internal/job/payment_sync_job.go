package job

import (
	"context"
	"sync"
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/service"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/logger"

	rlock "github.com/gotomicro/redis-lock"
)

// PaymentSyncJob 定时清理卡在 READY 的支付
// 多实例部署，靠分布式锁保证全局只有一个实例在扫
type PaymentSyncJob struct {
	svc       service.PaymentService
	timeout   time.Duration
	client    *rlock.Client
	key       string
	l         logger.LoggerV1
	lock      *rlock.Lock
	localLock *sync.Mutex
}

func NewPaymentSyncJob(svc service.PaymentService,
	client *rlock.Client,
	l logger.LoggerV1,
	timeout time.Duration) *PaymentSyncJob {
	return &PaymentSyncJob{
		svc:       svc,
		timeout:   timeout,
		client:    client,
		key:       "rlock:cron_job:payment_sync",
		l:         l,
		localLock: &sync.Mutex{},
	}
}

func (j *PaymentSyncJob) Name() string { return "payment_sync" }

// Run localLock 保证本实例内串行，分布式锁保证跨实例只有一个在跑
func (j *PaymentSyncJob) Run() error {
	j.localLock.Lock()
	defer j.localLock.Unlock()
	if j.lock == nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		lock, err := j.client.Lock(ctx, j.key, j.timeout, &rlock.FixIntervalRetry{
			Interval: time.Millisecond * 100,
			Max:      0,
		}, time.Second)
		if err != nil {
			// 没抢到锁，别的实例在跑，这一轮歇着
			return nil
		}
		j.lock = lock
		go func() {
			// 自动续约，续约失败就放掉，下一轮重新抢
			er := lock.AutoRefresh(j.timeout/2, time.Second)
			if er != nil {
				j.l.Error("支付同步任务续约分布式锁失败", logger.Error(er))
			}
			j.localLock.Lock()
			j.lock = nil
			j.localLock.Unlock()
		}()
	}

	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	return j.svc.SyncPaymentStatus(ctx)
}

func (j *PaymentSyncJob) Close() error {
	j.localLock.Lock()
	lock := j.lock
	j.lock = nil
	j.localLock.Unlock()
	if lock == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return lock.Unlock(ctx)
}
