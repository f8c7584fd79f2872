//go:build wireinject

package main

import (
	evtbook "github.com/nhnacademy-be11-1/chaekmate-core/internal/events/book"
	evtpmt "github.com/nhnacademy-be11-1/chaekmate-core/internal/events/payment"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/repository"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/repository/cache"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/repository/dao"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/search"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/service"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/web"
	"github.com/nhnacademy-be11-1/chaekmate-core/ioc"

	"github.com/google/wire"
	rlock "github.com/gotomicro/redis-lock"
)

var paymentSvcProvider = wire.NewSet(
	service.NewPaymentService,
	repository.NewPaymentRepository,
	dao.NewPaymentGORMDAO,
	dao.NewGORMTxManager,
	evtpmt.NewSaramaProducer,
)

var orderSvcProvider = wire.NewSet(
	service.NewOrderService,
	repository.NewOrderRepository,
	dao.NewOrderGORMDAO,
)

var bookSvcProvider = wire.NewSet(
	service.NewBookService,
	repository.NewCachedBookRepository,
	dao.NewBookGORMDAO,
	cache.NewRedisBookCache,
	search.NewESBookIndexDAO,
	evtbook.NewSaramaProducer,
)

func InitApp() *App {
	wire.Build(
		// 最基础的第三方依赖
		ioc.InitDB, ioc.InitRedis,
		ioc.InitLogger,
		ioc.InitKafka,
		ioc.InitSyncProducer,
		ioc.InitESClient,
		rlock.NewClient,

		paymentSvcProvider,
		orderSvcProvider,
		bookSvcProvider,

		repository.NewMemberRepository,
		dao.NewMemberGORMDAO,
		service.NewMemberService,

		repository.NewCachedDeliveryPolicyRepository,
		dao.NewDeliveryPolicyGORMDAO,
		cache.NewRedisDeliveryPolicyCache,
		service.NewDeliveryPolicyService,

		// 第三方支付
		ioc.InitWechatConfig,
		ioc.InitWechatClient,
		ioc.InitWechatNativeService,
		ioc.InitWechatRefundService,
		ioc.InitGatewayRegistry,

		// consumer
		evtbook.NewBookUpdatedConsumer,
		ioc.NewConsumers,

		// 定时任务
		ioc.InitPaymentSyncJob,
		ioc.InitJobs,

		web.NewPaymentHandler,
		web.NewOrderHandler,
		web.NewBookHandler,
		web.NewMemberHandler,
		web.NewDeliveryPolicyHandler,

		ioc.InitMiddlewares,
		ioc.InitWebServer,

		wire.Struct(new(App), "*"),
	)
	return new(App)
}
