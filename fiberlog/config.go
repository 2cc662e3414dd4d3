package fiberlog

import "github.com/sirupsen/logrus"

// Config is config for middleware
type Config struct {
	Logger *logrus.Logger
	Tags   []string
	// поля json тела, значения которых не попадают в лог
	MaskFields []string
	// тело ответа длиннее логируется усеченным
	MaxBodyLen int
}

// ConfigDefault is the default config
var ConfigDefault = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
	MaskFields: []string{"password", "token", "refresh_token"},
	MaxBodyLen: 4096,
}
