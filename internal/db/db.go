package db

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/profutur/profutur-api/internal/config"
)

var ErrUnknownDriver = errors.New("unknown database driver")

// Open connects to the database described by conf.
func Open(conf *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch conf.Driver {
	case "postgres":
		dialector = postgres.Open(PostgresDSN(conf))
	case "mysql":
		dialector = mysql.Open(MySQLDSN(conf))
	case "sqlite":
		dialector = sqlite.Open(conf.DB)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, conf.Driver)
	}

	db, err := gorm.Open(dialector, gormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	if err = configurePool(db, conf); err != nil {
		return nil, err
	}

	return db, nil
}

// OpenPostgresWithURL connects using a full connection URL, as exported by
// most hosting platforms in DATABASE_URL. Only the pool settings of conf are
// used.
func OpenPostgresWithURL(url string, conf *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(url), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	if err = configurePool(db, conf); err != nil {
		return nil, err
	}

	return db, nil
}

// OpenSQLiteInMemory returns a private in-memory database. Each call gets its
// own database.
func OpenSQLiteInMemory() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	// The in-memory database lives as long as its single connection.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB -> %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func PostgresDSN(conf *config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		conf.Host, conf.User, conf.Password, conf.DB, conf.Port, conf.SSLMode,
	)
}

func MySQLDSN(conf *config.DatabaseConfig) string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true",
		conf.User, conf.Password, conf.Host, conf.Port, conf.DB,
	)
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		// Records are correlated by string keys; the schema carries no foreign keys.
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func configurePool(db *gorm.DB, conf *config.DatabaseConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("db.DB -> %w", err)
	}

	if conf.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
	}
	if conf.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(conf.ConnMaxLifetime)

	zap.L().Debug("database pool configured",
		zap.String("driver", conf.Driver),
		zap.Int("max_open_conns", conf.MaxOpenConns),
		zap.Int("max_idle_conns", conf.MaxIdleConns),
	)

	return nil
}
