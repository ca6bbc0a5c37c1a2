package filestorage

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrFileNotFound = errors.New("файл не найден")

type Provider interface {
	UploadFile(ctx context.Context, fileName string, file []byte, contentType string) error
	GetFile(ctx context.Context, fileName string) ([]byte, error)
	MakeBucket(ctx context.Context) error
}

var Instance Provider

type impl struct {
	s3client   *minio.Client
	bucketName string
}

func NewInstance(s3client *minio.Client, bucketName string) Provider {
	return &impl{
		s3client:   s3client,
		bucketName: bucketName,
	}
}

func NewHandler(s3client *minio.Client, bucketName string) {
	if s3client == nil {
		log.Warn("S3 клиент не инициализирован, хранилище аудио недоступно")
		Instance = nil
		return
	}
	Instance = NewInstance(s3client, bucketName)
	if err := Instance.MakeBucket(context.Background()); err != nil {
		log.WithError(err).Error("ошибка создания бакета S3")
	}
}

func (i impl) UploadFile(ctx context.Context, fileName string, file []byte, contentType string) error {
	_, err := i.s3client.PutObject(ctx, i.bucketName, fileName, bytes.NewReader(file), int64(len(file)), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "ошибка загрузки файла в S3")
	}
	return nil
}

func (i impl) GetFile(ctx context.Context, fileName string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, i.bucketName, fileName, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения файла из S3")
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrFileNotFound
		}
		return nil, errors.Wrap(err, "ошибка чтения файла из S3")
	}
	return body, nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, i.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = i.s3client.MakeBucket(ctx, i.bucketName, minio.MakeBucketOptions{Region: location})
	if err != nil {
		return err
	}
	return nil
}
