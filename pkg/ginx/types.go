package ginx

type Result struct {
	// Code 0 成功，4 开头用户侧问题，5 开头系统问题
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}
