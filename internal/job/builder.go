package job

import (
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

// CronJobBuilder 把我们自己的 Job 包装成 cron.Job
// 顺手把耗时和错误打到日志和 prometheus 里
type CronJobBuilder struct {
	l      logger.LoggerV1
	vector *prometheus.SummaryVec
}

func NewCronJobBuilder(l logger.LoggerV1) *CronJobBuilder {
	vector := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: "chaekmate",
		Subsystem: "cron_job",
		Name:      "duration_seconds",
		Help:      "定时任务执行耗时",
		Objectives: map[float64]float64{
			0.5:   0.01,
			0.9:   0.01,
			0.99:  0.001,
			0.999: 0.0001,
		},
	}, []string{"name", "success"})
	prometheus.MustRegister(vector)
	return &CronJobBuilder{
		l:      l,
		vector: vector,
	}
}

func (b *CronJobBuilder) Build(j Job) cron.Job {
	name := j.Name()
	return cronJobAdapterFunc(func() {
		start := time.Now()
		b.l.Debug("定时任务开始", logger.String("name", name))
		err := j.Run()
		if err != nil {
			b.l.Error("定时任务执行失败",
				logger.String("name", name), logger.Error(err))
		}
		duration := time.Since(start)
		b.vector.WithLabelValues(name,
			strconvBool(err == nil)).Observe(duration.Seconds())
	})
}

func strconvBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

type cronJobAdapterFunc func()

func (f cronJobAdapterFunc) Run() {
	f()
}
