package db

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"savings-ledger/internal/config"
	"savings-ledger/internal/domain/contribution"
	"savings-ledger/internal/domain/cycle"
	"savings-ledger/internal/domain/loan"
	"savings-ledger/internal/domain/member"
	"savings-ledger/internal/logger"
)

// OpenGorm opens the store selected by DB_DRIVER.
func OpenGorm(cfg *config.Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverMySQL:
		dial = mysql.Open(cfg.MySQLDSN())
	case config.DriverSQLite:
		dial = sqlite.Open(cfg.SQLitePath + "?_busy_timeout=5000")
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return OpenGormWithDialector(dial, GormLogLevel(cfg.LogLevel))
}

func OpenGormWithDialector(dial gorm.Dialector, level gormlogger.LogLevel) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger: gormlogger.New(zerologWriter{}, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	}
	db, err := gorm.Open(dial, gcfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if dial.Name() == "sqlite" {
		// a single writer connection; transactions queue instead of failing with SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(30)
		sqlDB.SetMaxIdleConns(10)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	logger.Info().Str("dialect", dial.Name()).Msg("gorm: connected")
	return db, nil
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&member.Member{},
		&cycle.SavingsCycle{},
		&contribution.Contribution{},
		&loan.Loan{},
		&loan.Repayment{},
	)
}

// GormLogLevel keeps SQL logging silent unless LOG_LEVEL is debug.
func GormLogLevel(level string) gormlogger.LogLevel {
	if logger.ParseLevel(level) == zerolog.DebugLevel {
		return gormlogger.Info
	}
	return gormlogger.Silent
}

type zerologWriter struct{}

func (zerologWriter) Printf(format string, args ...interface{}) {
	// gorm already filtered by its own level
	logger.Get().Log().Str("component", "gorm").Msgf(format, args...)
}
