package repository

import (
	"github.com/yourusername/peerlearn-api/internal/domain/entity"
)

// TestRepository определяет методы для работы с тестами
type TestRepository interface {
	// List возвращает все тесты без вопросов (для списков)
	List() ([]entity.Test, error)
	// GetWithQuestions возвращает тест с вопросами, упорядоченными по позиции
	GetWithQuestions(id uint) (*entity.Test, error)
	// GetBySubjectID возвращает тест предмета с вопросами
	GetBySubjectID(subjectID uint) (*entity.Test, error)
}
