package ioc

import (
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/logger"

	"go.uber.org/zap"
)

// InitLogger 这里可以换不同实现，现在统一用 zap
func InitLogger() logger.LoggerV1 {
	l, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logger.NewZapLogger(l)
}
