package config

import (
	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		BodyLimit  int    `default:"10485760" env:"APP_BODY_LIMIT"`
		LogLevel   string `default:"info" env:"APP_LOG_LEVEL"`
		// адрес для уведомлений об ошибках 5xx, пусто - не отправлять
		ErrNotifyURL string `default:"" env:"APP_ERR_NOTIFY_URL"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"rh-hub" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
		SSLMode        string `default:"disable" env:"DB_SSL_MODE"`
		MaxOpenConns   int    `default:"20" env:"DB_MAX_OPEN_CONNS"`
		MaxIdleConns   int    `default:"5" env:"DB_MAX_IDLE_CONNS"`
		// время жизни соединения в пуле, 0 - без ограничения
		ConnMaxLifetimeSec int `default:"1800" env:"DB_CONN_MAX_LIFETIME_SEC"`
	}
	Auth struct {
		JWTSecret             string `default:"secret" env:"JWT_SECRET"`
		JWTExpireInSec        int64  `default:"3600" env:"JWT_EXPIRE_IN_SEC"`
		JWTRefreshExpireInSec int64  `default:"604800" env:"JWT_REFRESH_EXPIRE_IN_SEC"`
	}
	Admin struct {
		Email       string `default:"" env:"ADMIN_EMAIL"`
		Password    string `default:"" env:"ADMIN_PASSWORD"`
		Name        string `default:"Administrador" env:"ADMIN_NAME"`
		CompanyName string `default:"" env:"ADMIN_COMPANY_NAME"`
	}
	Pipeline struct {
		LockWaitSec   int      `default:"5" env:"PIPELINE_LOCK_WAIT_SEC"`
		DefaultStages []string `env:"PIPELINE_DEFAULT_STAGES"`
	}
	Export struct {
		// каталог с ttf шрифтом для pdf, пусто - встроенный Helvetica (cp1252)
		PdfFontDir  string `default:"" env:"EXPORT_PDF_FONT_DIR"`
		PdfFontFile string `default:"DejaVuSans.ttf" env:"EXPORT_PDF_FONT_FILE"`
	}
	Workers struct {
		InterviewStatusIntervalSec int `default:"300" env:"WORKER_INTERVIEW_STATUS_INTERVAL_SEC"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	// .env не обязателен, переменные окружения могут быть заданы снаружи
	if err := godotenv.Load(); err != nil {
		log.Debug("файл .env не загружен, используются переменные окружения")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
