package db

import (
	"fmt"
	"time"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

type ConnConfig struct {
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	DebugMode       bool
	Migrate         bool
}

func (c ConnConfig) dsn() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s password=%s",
		c.Host, c.Port, c.User, c.Name, sslMode, c.Password)
}

func Connect(cfg ConnConfig) error {
	if DB != nil {
		return nil
	}
	gormLogger := logger.Interface(gorm_logrus.New())
	if cfg.DebugMode {
		gormLogger = logger.Default.LogMode(logger.Info)
	}
	conn, err := gorm.Open(postgres.Open(cfg.dsn()), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return errors.Wrap(err, "Ошибка подключения к БД")
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return errors.Wrap(err, "Ошибка получения пула соединений")
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.DebugMode {
		conn = conn.Debug()
	}
	DB = conn
	log.WithFields(log.Fields{
		"host": cfg.Host,
		"db":   cfg.Name,
	}).Info("Сервис успешно подключен к БД")
	if cfg.Migrate {
		return AutoMigrateDB()
	}
	return nil
}

func PingDB() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
