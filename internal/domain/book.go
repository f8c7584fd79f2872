package domain

import "time"

type Book struct {
	ID        int64
	Title     string
	Author    string
	Publisher string
	ISBN      string
	// Price 现金价，单位分
	Price int64
	Stock int
	Ctime time.Time
	Utime time.Time
}
