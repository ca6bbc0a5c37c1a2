package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "mock-interview-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.InterviewSession{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры InterviewSession")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
