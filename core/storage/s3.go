package storage

import (
	"bytes"
	"context"
	"fmt"

	appConfig "focusflow-api/core/config"
	"focusflow-api/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Archiver uploads JSON documents to an S3-compatible bucket. Used by the
// session archive task; a nil Archiver means archival is disabled.
type Archiver struct {
	client *s3.Client
	bucket string
}

// NewArchiver builds an Archiver from config, or nil when no bucket is
// configured.
func NewArchiver(cfg appConfig.StorageConfig) *Archiver {
	if cfg.Bucket == "" {
		logger.Info("Storage archiver disabled, no bucket configured")
		return nil
	}

	opts := s3.Options{
		Region: cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKey, cfg.SecretKey, ""),
	}
	if cfg.Endpoint != "" {
		// Set for MinIO and other S3-compatible stores.
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	logger.Info("Storage archiver initialized", "bucket", cfg.Bucket, "region", cfg.Region)
	return &Archiver{
		client: s3.New(opts),
		bucket: cfg.Bucket,
	}
}

// PutJSON uploads body under key with an application/json content type.
func (a *Archiver) PutJSON(ctx context.Context, key string, body []byte) error {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", a.bucket, key, err)
	}
	return nil
}
