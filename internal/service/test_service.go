package service

import (
	"fmt"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
	"github.com/yourusername/peerlearn-api/internal/domain/repository"
)

// TestService предоставляет доступ к сертификационным тестам
type TestService struct {
	testRepo repository.TestRepository
}

// NewTestService создает новый сервис тестов
func NewTestService(testRepo repository.TestRepository) *TestService {
	return &TestService{testRepo: testRepo}
}

// ListTests возвращает все тесты без вопросов
func (s *TestService) ListTests() ([]entity.Test, error) {
	return s.testRepo.List()
}

// GetTest возвращает тест с вопросами
func (s *TestService) GetTest(id uint) (*entity.Test, error) {
	test, err := s.testRepo.GetWithQuestions(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get test: %w", err)
	}
	return test, nil
}

// GetSubjectTest возвращает тест предмета с вопросами
func (s *TestService) GetSubjectTest(subjectID uint) (*entity.Test, error) {
	test, err := s.testRepo.GetBySubjectID(subjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get test for subject: %w", err)
	}
	return test, nil
}
