package domain

import "time"

type Member struct {
	ID       int64
	Email    string
	Nickname string
	Phone    string
	// Point 会员持有的积分余额
	Point int64
	Ctime  time.Time
}
