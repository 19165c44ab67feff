package db

import (
	"restaurant/internal/config"
	"restaurant/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{}
	if cfg.GoEnv == "prod" {
		// SQLログは出さない
		gcfg.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}
	return gorm.Open(postgres.Open(cfg.DSN()), gcfg)
}

// Migrate はアプリが使うテーブルを作る。
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.MenuItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Booking{},
		&model.Inquiry{},
	)
}
