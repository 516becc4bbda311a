package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"campus-backend/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

type Provider interface {
	UploadStudentDoc(ctx context.Context, studentID, fileName string, file []byte) (fileKey string, err error)
	GetFile(ctx context.Context, fileKey string) ([]byte, error)
	EnsureBucket(ctx context.Context) error
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadStudentDoc(ctx context.Context, studentID, fileName string, file []byte) (string, error) {
	fileKey := fmt.Sprintf("students/%s/%s-%s", studentID, uuid.NewString(), fileName)
	reader := bytes.NewReader(file)
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, fileKey, reader, int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return "", errors.Wrap(err, "file upload failed")
	}
	return fileKey, nil
}

func (i impl) GetFile(ctx context.Context, fileKey string) ([]byte, error) {
	obj, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, fileKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "file download failed")
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrap(err, "file read failed")
	}
	return data, nil
}

func (i impl) EnsureBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return errors.Wrap(err, "bucket check failed")
	}
	if exists {
		return nil
	}
	err = i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
	if err != nil {
		return errors.Wrap(err, "bucket creation failed")
	}
	return nil
}
