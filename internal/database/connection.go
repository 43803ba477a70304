package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel changes the level of the database logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// sleep is replaced in tests
var sleep = time.Sleep

const baseRetryDelay = time.Second

// InitDatabase opens the catalog database described by cfg.
// It supports both PostgreSQL and SQLite drivers, retries with exponential
// backoff and configures the connection pool.
func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	driver := strings.ToLower(cfg.Driver)
	if !supportedDriver(driver) {
		return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	log.WithFields(logrus.Fields{
		"db_driver":   driver,
		"db_host":     cfg.Host,
		"db_name":     cfg.Name,
		"db_path":     cfg.Path,
		"max_retries": maxRetries,
	}).Info("Initializing database connection")

	var err error
	delay := baseRetryDelay
	for attempt := 1; attempt <= maxRetries; attempt++ {
		// a fresh dialector per attempt, drivers keep state after Initialize
		var db *gorm.DB
		db, err = open(dialectorFor(driver, cfg))
		if err == nil {
			log.WithFields(logrus.Fields{
				"db_driver": driver,
				"attempt":   attempt,
			}).Info("Database initialized successfully")
			return db, nil
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		// Don't wait after the last attempt
		if attempt < maxRetries {
			log.WithField("delay", delay).Info("Retrying database connection")
			sleep(delay)
			delay *= 2
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

func supportedDriver(driver string) bool {
	switch driver {
	case "postgres", "postgresql", "sqlite", "":
		return true
	}
	return false
}

// dialectorFor expects a driver accepted by supportedDriver
func dialectorFor(driver string, cfg DatabaseConfig) gorm.Dialector {
	if driver == "postgres" || driver == "postgresql" {
		log.WithField("dsn_host", cfg.Host).Debug("Using PostgreSQL")
		return postgres.Open(cfg.DSN())
	}
	log.WithField("db_path", cfg.Path).Debug("Using SQLite")
	return sqlite.Open(cfg.DSN())
}

// open connects once and verifies the connection with a ping
func open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	configureConnectionPool(sqlDB)
	return db, nil
}

// configureConnectionPool sets up connection pool parameters. The catalog is
// read once at startup, so the pool stays small.
func configureConnectionPool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.WithFields(logrus.Fields{
		"max_open_conns":    10,
		"max_idle_conns":    2,
		"conn_max_lifetime": "5m",
	}).Debug("Connection pool configured")
}
