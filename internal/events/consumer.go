package events

// Consumer 所有后台消费者统一的启动入口
type Consumer interface {
	Start() error
}
