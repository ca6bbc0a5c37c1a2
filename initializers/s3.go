package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"mock-interview-backend/config"
	filestorage "mock-interview-backend/lib/file-storage"
	s3client "mock-interview-backend/s3"
)

func InitS3(ctx context.Context) {
	err := s3client.Connect(ctx, config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, *config.Conf.S3.UseSSL)
	if err != nil {
		log.WithError(err).Error("S3 соединение не удалось, аудио ответы интервьюера будут недоступны")
	}
	filestorage.NewHandler(s3client.Client, config.Conf.S3.BucketName)
}
