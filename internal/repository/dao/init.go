package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Payment{},
		&PaymentHistory{},
		&Order{},
		&OrderedBook{},
		&Book{},
		&Member{},
		&DeliveryPolicy{},
	)
}
