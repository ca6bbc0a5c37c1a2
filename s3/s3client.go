package s3client

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

var Client *minio.Client

// Connect создает клиент и проверяет соединение, при ошибке соединения клиент не сохраняется
func Connect(ctx context.Context, endpoint, accessKeyID, secretAccessKey string, useSSL bool) error {
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return err
	}
	if _, err = minioClient.ListBuckets(ctx); err != nil {
		return err
	}
	Client = minioClient
	log.Info("S3 клиент успешно инициализирован")
	return nil
}
