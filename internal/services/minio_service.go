package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/models"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// ImageStore resolves stored movie image keys to URLs and removes
// images that are no longer referenced.
type ImageStore interface {
	ResolveURL(ctx context.Context, key string) string
	Delete(ctx context.Context, key string) error
}

type MinIOService struct {
	client        *minio.Client
	bucket        string
	publicURL     string
	presignExpiry time.Duration
	logger        *logrus.Logger
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &MinIOService{
		client:        minioClient,
		bucket:        cfg.BucketName,
		publicURL:     strings.TrimSuffix(cfg.PublicURL, "/"),
		presignExpiry: cfg.PresignExpiry,
		logger:        logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := service.ensureBucket(ctx); err != nil {
		logger.WithError(err).Warn("Failed to verify image bucket, but continuing...")
	}

	return service, nil
}

func (s *MinIOService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}
	return nil
}

// ResolveURL returns a public URL when one is configured and a presigned
// GET URL otherwise. Absolute URLs pass through unchanged.
func (s *MinIOService) ResolveURL(ctx context.Context, key string) string {
	if key == "" || isAbsoluteURL(key) {
		return key
	}

	if s.publicURL != "" {
		return s.publicURL + "/" + strings.TrimPrefix(key, "/")
	}

	presignedURL, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.presignExpiry, url.Values{})
	if err != nil {
		s.logger.WithError(err).WithField("objectPath", key).Warn("Failed to presign image URL")
		return key
	}
	return presignedURL.String()
}

func (s *MinIOService) Delete(ctx context.Context, key string) error {
	objectPath, ok := s.objectPath(key)
	if !ok {
		return nil
	}

	err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.logger.WithField("objectPath", objectPath).Info("File deleted successfully from MinIO")
	return nil
}

// objectPath maps a stored image value back to its key in the bucket.
// Absolute URLs outside the bucket are not ours to delete.
func (s *MinIOService) objectPath(value string) (string, bool) {
	if value == "" {
		return "", false
	}
	if !isAbsoluteURL(value) {
		return strings.TrimPrefix(strings.TrimPrefix(value, "/"), s.bucket+"/"), true
	}
	if s.publicURL != "" && strings.HasPrefix(value, s.publicURL+"/") {
		return strings.TrimPrefix(value, s.publicURL+"/"), true
	}
	return "", false
}

func isAbsoluteURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}

// resolveImages rewrites the image keys of movie to URLs in place.
func resolveImages(ctx context.Context, store ImageStore, movie *models.Movie) {
	if store == nil || movie == nil {
		return
	}
	movie.Logo = store.ResolveURL(ctx, movie.Logo)
	movie.HeaderImage = store.ResolveURL(ctx, movie.HeaderImage)
}

// deleteReplacedImage removes old when it is no longer the stored value.
func deleteReplacedImage(ctx context.Context, store ImageStore, logger *logrus.Logger, old, current string) {
	if store == nil || old == "" || old == current {
		return
	}
	if err := store.Delete(ctx, old); err != nil {
		logger.WithError(err).WithField("image", old).Warn("Failed to delete image from MinIO")
	}
}
