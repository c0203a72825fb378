package db

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"library-backend/internal/domain/activity"
	"library-backend/internal/domain/catalog"
	"library-backend/internal/domain/loan"
	"library-backend/internal/domain/reader"
	"library-backend/internal/domain/settings"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate creates/updates the schema, including the partial-unique borrow
// index that enforces at most one open loan per book.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalog.Book{},
		&reader.Reader{},
		&loan.Loan{},
		&settings.Setting{},
		&activity.Entry{},
	)
}
