package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
	apperrors "github.com/yourusername/peerlearn-api/internal/pkg/errors"
)

// TestRepo реализует repository.TestRepository
type TestRepo struct {
	db *gorm.DB
}

// NewTestRepo создает новый репозиторий тестов
func NewTestRepo(db *gorm.DB) *TestRepo {
	return &TestRepo{db: db}
}

// List возвращает все тесты без вопросов
func (r *TestRepo) List() ([]entity.Test, error) {
	var tests []entity.Test
	err := r.db.Order("subject ASC").Find(&tests).Error
	return tests, err
}

// GetWithQuestions возвращает тест с вопросами, упорядоченными по позиции
func (r *TestRepo) GetWithQuestions(id uint) (*entity.Test, error) {
	var test entity.Test
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&test, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &test, nil
}

// GetBySubjectID возвращает тест предмета с вопросами
func (r *TestRepo) GetBySubjectID(subjectID uint) (*entity.Test, error) {
	var test entity.Test
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("subject_id = ?", subjectID).
		First(&test).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &test, nil
}
