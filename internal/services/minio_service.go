package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"anime-quotes-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// Image kinds accepted for upload; each maps to an object prefix in the bucket.
const (
	ImageKindQuote     = "quote"
	ImageKindCharacter = "character"
	ImageKindAnime     = "anime"
)

var imagePrefixes = map[string]string{
	ImageKindQuote:     "quotes",
	ImageKindCharacter: "characters",
	ImageKindAnime:     "covers",
}

const presignExpiry = 15 * time.Minute

// ImageUploader hands out presigned PUT URLs for catalog images.
type ImageUploader interface {
	GeneratePresignedURL(ctx context.Context, kind, filename string) (presignedURL, publicURL string, err error)
}

type MinIOService struct {
	client    *minio.Client
	bucket    string
	region    string
	publicURL string
	logger    *logrus.Logger
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
		client:    minioClient,
		bucket:    cfg.BucketName,
		region:    cfg.Region,
		publicURL: cfg.PublicURL,
		logger:    logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := service.ensureBucket(ctx); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return service, nil
}

func (s *MinIOService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Bucket policy set to public read")
	return nil
}

func (s *MinIOService) GeneratePresignedURL(ctx context.Context, kind, filename string) (string, string, error) {
	objectPath, err := ObjectPath(kind, filename)
	if err != nil {
		return "", "", err
	}

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectPath, presignExpiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	publicURL := PublicObjectURL(s.publicURL, s.bucket, objectPath)

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectPath": objectPath,
		"expiry":     presignExpiry,
	}).Info("Generated presigned URL")

	return presignedURL.String(), publicURL, nil
}

// ObjectPath builds a collision-free object key such as "quotes/itachi_1a2b3c4d.jpg".
func ObjectPath(kind, filename string) (string, error) {
	prefix, ok := imagePrefixes[kind]
	if !ok {
		return "", fmt.Errorf("unsupported image kind %q", kind)
	}

	base := filepath.Base(filename)
	if base == "." || base == "/" || base == "" {
		return "", fmt.Errorf("invalid filename %q", filename)
	}

	ext := filepath.Ext(base)
	nameWithoutExt := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s/%s_%s%s", prefix, nameWithoutExt, uuid.New().String()[:8], ext), nil
}

// PublicObjectURL keeps the scheme and host of publicBase and appends bucket and key.
func PublicObjectURL(publicBase, bucket, objectPath string) string {
	protocol := "http://"
	if strings.HasPrefix(publicBase, "https://") {
		protocol = "https://"
	}

	host := strings.TrimPrefix(publicBase, "https://")
	host = strings.TrimPrefix(host, "http://")
	if idx := strings.Index(host, "/"); idx != -1 {
		host = host[:idx]
	}

	return fmt.Sprintf("%s%s/%s/%s", protocol, host, bucket, objectPath)
}
