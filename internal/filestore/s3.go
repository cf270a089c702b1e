// Package filestore is the object-storage adapter for article images.
// The hosted bucket is treated as an opaque collaborator: this service
// only puts blobs and derives public URLs.
package filestore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/orangeot/backoffice-api/internal/config"
)

// Store wraps an S3-compatible bucket
type Store struct {
	client        *s3.Client
	bucket        string
	region        string
	publicBaseURL string
	logger        *slog.Logger
}

// New creates the store. A non-empty Endpoint switches to
// path-style addressing with static credentials, which is how the
// local stack is wired in development.
func New(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*Store, error) {
	var awsCfg aws.Config
	var err error

	if cfg.Endpoint != "" {
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(cfg.Region),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("test", "test", "")),
		)
	} else {
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Info("Object store initialized",
		slog.String("bucket", cfg.Bucket),
		slog.String("region", cfg.Region),
	)

	return &Store{
		client:        client,
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// Put uploads a blob under key and returns its public URL
func (s *Store) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.logger.Error("Failed to upload object",
			slog.String("bucket", s.bucket),
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	url := s.PublicURL(key)
	s.logger.Info("Object uploaded",
		slog.String("key", key),
		slog.String("url", url),
	)
	return url, nil
}

// PublicURL derives the public address of a stored object
func (s *Store) PublicURL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
