package repository

import (
	"context"
	"io"
)

// FileStorage определяет методы для работы с объектным хранилищем
// (документы преподавателей, демо-видео, аватары)
type FileStorage interface {
	// Upload загружает объект и возвращает ключ объекта и публичный URL
	Upload(ctx context.Context, dir, filename, contentType string, r io.Reader) (key string, url string, err error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}
