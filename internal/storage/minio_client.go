package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"estatehub/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Storage is the upload gateway consumed by the property and profile
// workflows. Every upload returns a durable, publicly resolvable URL.
type Storage interface {
	UploadPropertyImage(ctx context.Context, ownerID, fileName string, file io.Reader, size int64) (string, error)
	UploadDocument(ctx context.Context, ownerID, kind, fileName string, file io.Reader, size int64) (string, error)
	UploadAvatar(ctx context.Context, profileID, fileName string, file io.Reader, size int64) (string, error)
	Remove(ctx context.Context, bucket, objectName string) error
}

type MinIOClient struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	m := &MinIOClient{client: client, cfg: cfg}

	buckets := []string{
		cfg.MinIO.ImagesBucket,
		cfg.MinIO.DocumentsBucket,
		cfg.MinIO.AvatarsBucket,
	}
	for _, bucket := range buckets {
		if err := m.ensureBucket(context.Background(), bucket); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *MinIOClient) ensureBucket(ctx context.Context, bucket string) error {
	exists, err := m.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}

	err = m.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: m.cfg.MinIO.Region})
	if err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}

	return nil
}

func contentTypeFor(fileName string) (string, string) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".jpg"
	}

	contentType := mime.TypeByExtension(fileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return fileExt, contentType
}

func (m *MinIOClient) publicURL(bucket, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(m.cfg.MinIO.PublicBaseURL, "/"), bucket, objectName)
}

// UploadPropertyImage always writes to a fresh key so re-uploads never
// clobber media referenced by an existing listing.
func (m *MinIOClient) UploadPropertyImage(ctx context.Context, ownerID, fileName string, file io.Reader, size int64) (string, error) {
	fileExt, contentType := contentTypeFor(fileName)

	now := time.Now()
	objectName := fmt.Sprintf("properties/%s/%d/%02d/%s%s",
		ownerID,
		now.Year(),
		now.Month(),
		uuid.New().String(),
		fileExt)

	_, err := m.client.PutObject(ctx, m.cfg.MinIO.ImagesBucket, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"owner-id":          ownerID,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return m.publicURL(m.cfg.MinIO.ImagesBucket, objectName), nil
}

func (m *MinIOClient) UploadDocument(ctx context.Context, ownerID, kind, fileName string, file io.Reader, size int64) (string, error) {
	fileExt, contentType := contentTypeFor(fileName)

	objectName := fmt.Sprintf("%s/%s/%s%s", ownerID, kind, uuid.New().String(), fileExt)

	_, err := m.client.PutObject(ctx, m.cfg.MinIO.DocumentsBucket, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"document-kind":     kind,
			},
		})
	if err != nil {
		return "", fmt.Errorf("failed to upload document: %w", err)
	}

	return m.publicURL(m.cfg.MinIO.DocumentsBucket, objectName), nil
}

// UploadAvatar keys the object by profile id, so replacing an avatar
// overwrites the previous one instead of accumulating orphans.
func (m *MinIOClient) UploadAvatar(ctx context.Context, profileID, fileName string, file io.Reader, size int64) (string, error) {
	fileExt, contentType := contentTypeFor(fileName)

	objectName := fmt.Sprintf("%s/avatar%s", profileID, fileExt)

	_, err := m.client.PutObject(ctx, m.cfg.MinIO.AvatarsBucket, objectName, file, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return m.publicURL(m.cfg.MinIO.AvatarsBucket, objectName), nil
}

func (m *MinIOClient) Remove(ctx context.Context, bucket, objectName string) error {
	err := m.client.RemoveObject(ctx, bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove object: %w", err)
	}
	return nil
}
