package initializers

import (
	"context"
	"time"

	"mock-interview-backend/config"
	"mock-interview-backend/fiberlog"
	pdfexport "mock-interview-backend/lib/export/pdf"
	xlsexport "mock-interview-backend/lib/export/xls"
	gpthandler "mock-interview-backend/lib/gpt"
	interviewhandler "mock-interview-backend/lib/interview"
	sessioncleanupworker "mock-interview-backend/lib/interview/session-cleanup-worker"
	resumeparser "mock-interview-backend/lib/resume"
	ttshandler "mock-interview-backend/lib/tts"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	resumeparser.NewHandler()
	gpthandler.NewHandler()
	ttshandler.NewHandler()
	pdfexport.NewHandler()
	xlsexport.NewHandler()
	interviewhandler.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача удаления брошенных сессий интервью
	sessioncleanupworker.StartWorker(ctx, time.Duration(config.Conf.Interview.SessionTTLHours)*time.Hour)
}

// InitMigration подключается к БД и выполняет миграции без запуска сервисов
func InitMigration() {
	InitLogger()
	config.InitConfig()
	migrate := true
	config.Conf.Database.MigrateOnStart = &migrate
	InitDBConnection()
}
