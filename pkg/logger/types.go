package logger

type Field struct {
	Key   string
	Value any
}

// LoggerV1 是整个项目统一的日志抽象
// 业务代码只依赖这个接口，具体用 zap 还是别的，在 ioc 里面决定
type LoggerV1 interface {
	Debug(msg string, args ...Field)
	Info(msg string, args ...Field)
	Warn(msg string, args ...Field)
	Error(msg string, args ...Field)
}
