package storage

import (
	"context"
	"fmt"
	"io"
	"lms-show/biz/infrastructure/config"
	"net/http"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type S3Storage struct {
	uploader *s3manager.Uploader
	bucket   string
}

func NewS3Storage(c *config.StorageConfig) (*S3Storage, error) {
	cfg := &aws.Config{
		Region:      aws.String(c.Region),
		Credentials: credentials.NewStaticCredentials(c.KeyID, c.AppKey, ""),
		// 上传请求纳入链路追踪
		HTTPClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
	// 自建兼容 S3 的存储需要 path style
	if c.Endpoint != "" {
		cfg.Endpoint = aws.String(c.Endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}
	return &S3Storage{
		uploader: s3manager.NewUploader(sess),
		bucket:   c.Bucket,
	}, nil
}

func (s *S3Storage) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	out, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	return out.Location, nil
}
