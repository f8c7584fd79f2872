package ioc

import (
	"strings"
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/web"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/ginx/middlewares/metric"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitWebServer(mdls []gin.HandlerFunc,
	paymentHdl *web.PaymentHandler,
	orderHdl *web.OrderHandler,
	bookHdl *web.BookHandler,
	memberHdl *web.MemberHandler,
	policyHdl *web.DeliveryPolicyHandler) *gin.Engine {
	server := gin.Default()
	server.Use(mdls...)
	paymentHdl.RegisterRoutes(server)
	orderHdl.RegisterRoutes(server)
	bookHdl.RegisterRoutes(server)
	memberHdl.RegisterRoutes(server)
	policyHdl.RegisterRoutes(server)
	return server
}

func InitMiddlewares() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		corsHdl(),
		metric.NewBuilder(
			"chaekmate",
			"core",
			"gin_http",
			"统计 GIN 的 HTTP 接口",
			"my-instance-1").Build(),
	}
}

func corsHdl() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"content-type", "Authorization"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "chaekmate.com")
		},
		MaxAge: 12 * time.Hour,
	})
}
