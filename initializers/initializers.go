package initializers

import (
	"context"
	"time"

	"rh-hub-backend/config"
	"rh-hub-backend/fiberlog"
	authhandler "rh-hub-backend/lib/auth"
	candidatehandler "rh-hub-backend/lib/candidate"
	candidatehistoryhandler "rh-hub-backend/lib/candidate-history"
	companyhandler "rh-hub-backend/lib/company"
	departmenthandler "rh-hub-backend/lib/department"
	xlsexport "rh-hub-backend/lib/export/xls"
	interviewhandler "rh-hub-backend/lib/interview"
	interviewstatusworker "rh-hub-backend/lib/interview/status-worker"
	jobhandler "rh-hub-backend/lib/job"
	pipelinehandler "rh-hub-backend/lib/pipeline/handler"
	usershandler "rh-hub-backend/lib/users"
	connectionhub "rh-hub-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	SetLogLevel(config.Conf.App.LogLevel)
	InitDBConnection()
	connectionhub.Init()
	xlsexport.NewHandler()
	companyhandler.NewHandler()
	usershandler.NewHandler()
	authhandler.NewHandler()
	departmenthandler.NewHandler()
	candidatehistoryhandler.NewHandler()
	pipelinehandler.NewHandler()
	jobhandler.NewHandler()
	candidatehandler.NewHandler()
	interviewhandler.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	if makeTimeGap(ctx) {
		// Задача перевода просроченных интервью в статус "не состоялось"
		interviewstatusworker.StartWorker(ctx)
	}
}

func makeTimeGap(ctx context.Context) (canRun bool) {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(time.Second * 10):
		return true
	}
}
