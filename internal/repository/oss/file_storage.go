package oss

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

// Config содержит настройки подключения к Aliyun OSS
type Config struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	// Prefix — общий префикс ключей объектов (например, "uploads")
	Prefix string
}

// FileStorage реализует repository.FileStorage поверх Aliyun OSS
type FileStorage struct {
	bucket     *oss.Bucket
	endpoint   string
	bucketName string
	prefix     string
}

// NewFileStorage создает новое хранилище файлов и проверяет доступность бакета
func NewFileStorage(cfg Config) (*FileStorage, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.BucketName == "" {
		return nil, fmt.Errorf("OSS config (endpoint, access key, secret key, bucket) is incomplete")
	}

	client, err := oss.New(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bucket, err := client.Bucket(cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	return &FileStorage{
		bucket:     bucket,
		endpoint:   cfg.Endpoint,
		bucketName: cfg.BucketName,
		prefix:     strings.Trim(cfg.Prefix, "/"),
	}, nil
}

// Upload загружает объект и возвращает ключ объекта и публичный URL.
// Ключ строится из uuid, чтобы имена файлов пользователей не пересекались.
func (s *FileStorage) Upload(ctx context.Context, dir, filename, contentType string, r io.Reader) (string, string, error) {
	key := s.buildObjectKey(dir, filename)

	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.bucket.PutObject(key, r, opts...); err != nil {
		return "", "", fmt.Errorf("oss put object %s: %w", key, err)
	}
	return key, s.PublicURL(key), nil
}

// Delete удаляет объект по ключу
func (s *FileStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.DeleteObject(key, oss.WithContext(ctx)); err != nil {
		return fmt.Errorf("oss delete object %s: %w", key, err)
	}
	return nil
}

// PublicURL возвращает публичный URL объекта
func (s *FileStorage) PublicURL(key string) string {
	endpoint := strings.TrimPrefix(strings.TrimPrefix(s.endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.bucketName, endpoint, key)
}

// buildObjectKey строит ключ вида prefix/dir/<uuid><ext>
func (s *FileStorage) buildObjectKey(dir, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.New().String() + ext

	parts := make([]string, 0, 3)
	if s.prefix != "" {
		parts = append(parts, s.prefix)
	}
	if dir = strings.Trim(dir, "/"); dir != "" {
		parts = append(parts, dir)
	}
	parts = append(parts, name)
	return strings.Join(parts, "/")
}
