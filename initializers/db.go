package initializers

import (
	"time"

	"rh-hub-backend/config"
	"rh-hub-backend/db"
)

func InitDBConnection() {
	dbConf := config.Conf.Database
	err := db.Connect(db.ConnConfig{
		Host:            dbConf.Host,
		Port:            dbConf.Port,
		Name:            dbConf.Name,
		User:            dbConf.User,
		Password:        dbConf.Password,
		SSLMode:         dbConf.SSLMode,
		MaxOpenConns:    dbConf.MaxOpenConns,
		MaxIdleConns:    dbConf.MaxIdleConns,
		ConnMaxLifetime: time.Duration(dbConf.ConnMaxLifetimeSec) * time.Second,
		DebugMode:       dbConf.DebugMode != nil && *dbConf.DebugMode,
		Migrate:         dbConf.MigrateOnStart == nil || *dbConf.MigrateOnStart,
	})
	if err != nil {
		panic(err.Error())
	}
	if err = db.PingDB(); err != nil {
		panic(err.Error())
	}

	db.InitPreload()
}
