package database

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the store handle every executor derives its per-call
// sessions from. TranslateError is required: the persistence layer keys
// its duplicate-key taxonomy off gorm.ErrDuplicatedKey.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // avoid prepared-statement cache behind poolers
	}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := TunePool(db); err != nil {
		return nil, err
	}
	log.Info().Msg("database connected")
	return db, nil
}

// TunePool keeps the pool small and fresh; every logical operation uses
// one connection for its own duration only.
func TunePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	return nil
}
