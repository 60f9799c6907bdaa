package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
	apperrors "github.com/yourusername/peerlearn-api/internal/pkg/errors"
)

// ResultRepo реализует repository.ResultRepository
type ResultRepo struct {
	db *gorm.DB
}

// NewResultRepo создает новый репозиторий результатов
func NewResultRepo(db *gorm.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// Save вставляет новую запись результата. Никогда не обновляет существующие:
// каждая отправка ответов даёт отдельную запись.
func (r *ResultRepo) Save(tx *gorm.DB, result *entity.Result) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(result).Error
}

// GetByID возвращает результат по ID
func (r *ResultRepo) GetByID(id uint) (*entity.Result, error) {
	var result entity.Result
	err := r.db.First(&result, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

// ListByUser возвращает результаты пользователя по времени завершения, новые первыми
func (r *ResultRepo) ListByUser(userID uint) ([]entity.Result, error) {
	var results []entity.Result
	err := r.db.Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&results).Error
	return results, err
}

// ListByTest возвращает все результаты теста, новые первыми
func (r *ResultRepo) ListByTest(testID uint) ([]entity.Result, error) {
	var results []entity.Result
	err := r.db.Where("test_id = ?", testID).
		Order("completed_at DESC").
		Find(&results).Error
	return results, err
}
