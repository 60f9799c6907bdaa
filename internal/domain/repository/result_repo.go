package repository

import (
	"gorm.io/gorm"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
)

// ResultRepository определяет методы для работы с результатами тестов
type ResultRepository interface {
	// Save всегда вставляет новую запись (ровно одна запись на вызов,
	// без upsert). tx может быть nil.
	Save(tx *gorm.DB, result *entity.Result) error
	GetByID(id uint) (*entity.Result, error)
	// ListByUser возвращает результаты пользователя по времени завершения
	// (новые первыми)
	ListByUser(userID uint) ([]entity.Result, error)
	// ListByTest возвращает все результаты теста (для админского экспорта)
	ListByTest(testID uint) ([]entity.Result, error)
}
