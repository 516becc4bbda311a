package initializers

import (
	"context"

	"campus-backend/config"
	filestorage "campus-backend/lib/file-storage"
	s3client "campus-backend/s3"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

func InitS3() {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV2(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("failed to initialize the S3 client")
		return
	}

	// Connectivity check
	_, err = minioClient.ListBuckets(context.Background())
	if err != nil {
		log.WithError(err).Error("S3 connection check failed, ListBuckets returned an error")
	}

	s3client.Client = minioClient
	filestorage.NewInstance(minioClient)
	if err = filestorage.Instance.EnsureBucket(context.Background()); err != nil {
		log.WithError(err).Error("failed to ensure the document bucket exists")
	}
	log.Info("S3 client initialized")
}
