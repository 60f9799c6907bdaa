package repository

import (
	"time"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	Delete(key string) error
	SetJSON(key string, value interface{}, expiration time.Duration) error
	GetJSON(key string, dest interface{}) error
	// ListPush добавляет элемент в конец списка и обрезает список до maxLen
	// последних элементов. Используется для истории чата курса.
	ListPush(key string, value interface{}, maxLen int64) error
	// ListRange возвращает элементы списка в порядке добавления
	ListRange(key string, start, stop int64) ([]string, error)
}
