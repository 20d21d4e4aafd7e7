package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioStorage) PutBase64Object(ctx context.Context, objectKey string, encoded []byte, contentType string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}

	_, err = m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectKey,
		bytes.NewReader(decoded),
		int64(len(decoded)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", exceptions.ErrStoragePutObject(err, m.BucketName)
	}

	return objectKey, nil
}

func (m *minioStorage) RemoveObject(ctx context.Context, objectKey string) error {
	err := m.MinioClient.RemoveObject(ctx, m.BucketName, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return exceptions.ErrStorageRemoveObject(err, m.BucketName)
	}
	return nil
}
