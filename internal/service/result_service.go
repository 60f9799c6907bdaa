package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
	"github.com/yourusername/peerlearn-api/internal/domain/repository"
	apperrors "github.com/yourusername/peerlearn-api/internal/pkg/errors"
)

// ResultService принимает сдачи тестов и управляет доступом к результатам
type ResultService struct {
	testRepo     repository.TestRepository
	resultRepo   repository.ResultRepository
	certService  *CertificationService
	emailService EmailService
	db           *gorm.DB

	// txRunner выполняет функцию в транзакции БД; в тестах подменяется
	// прогоном без транзакции
	txRunner func(fn func(tx *gorm.DB) error) error
}

// NewResultService создает новый сервис результатов
func NewResultService(
	testRepo repository.TestRepository,
	resultRepo repository.ResultRepository,
	certService *CertificationService,
	emailService EmailService,
	db *gorm.DB,
) *ResultService {
	return &ResultService{
		testRepo:     testRepo,
		resultRepo:   resultRepo,
		certService:  certService,
		emailService: emailService,
		db:           db,
		txRunner: func(fn func(tx *gorm.DB) error) error {
			return db.Transaction(fn)
		},
	}
}

// SubmitTest принимает ответы пользователя, подсчитывает результат и
// сохраняет его. Каждый вызов создаёт новую запись результата — дедупликации
// по (user, test) нет, повторная сдача даёт вторую запись.
//
// Результат, сертификация и флаг преподавателя сохраняются в одной
// транзакции: частичных записей не бывает, при сбое после подсчёта ничего
// не остаётся в базе.
func (s *ResultService) SubmitTest(caller *entity.User, testID uint, answers []int) (*entity.Result, *entity.Certification, error) {
	test, err := s.testRepo.GetWithQuestions(testID)
	if err != nil {
		return nil, nil, err
	}

	score, passed, err := ScoreSubmission(test, answers)
	if err != nil {
		return nil, nil, err
	}

	result := &entity.Result{
		UserID:      caller.ID,
		TestID:      test.ID,
		Subject:     test.Subject,
		Score:       score,
		Passed:      passed,
		CompletedAt: time.Now(),
	}

	var cert *entity.Certification
	err = s.txRunner(func(tx *gorm.DB) error {
		if err := s.resultRepo.Save(tx, result); err != nil {
			return fmt.Errorf("save result: %w", err)
		}
		cert, err = s.certService.IssueIfPassed(tx, caller.ID, result)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	log.Printf("[ResultService.SubmitTest] Пользователь ID=%d сдал тест ID=%d: score=%d passed=%t",
		caller.ID, test.ID, score, passed)

	// Уведомление по почте не влияет на успех запроса
	if cert != nil && s.emailService != nil {
		go func(email, subject string, score int) {
			if err := s.emailService.SendCertificationIssued(context.Background(), email, subject, score); err != nil {
				log.Printf("[ResultService.SubmitTest] Не удалось отправить письмо о сертификации: %v", err)
			}
		}(caller.Email, test.Subject, score)
	}

	return result, cert, nil
}

// GetUserResults возвращает результаты пользователя, новые первыми.
// Доступ: владелец или админ.
func (s *ResultService) GetUserResults(caller *entity.User, userID uint) ([]entity.Result, error) {
	if caller.ID != userID && !caller.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	return s.resultRepo.ListByUser(userID)
}

// GetResult возвращает один результат. Доступ: владелец или админ.
func (s *ResultService) GetResult(caller *entity.User, resultID uint) (*entity.Result, error) {
	result, err := s.resultRepo.GetByID(resultID)
	if err != nil {
		return nil, err
	}
	if result.UserID != caller.ID && !caller.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	return result, nil
}

// GetTestResults возвращает все результаты теста (админский экспорт)
func (s *ResultService) GetTestResults(testID uint) ([]entity.Result, error) {
	if _, err := s.testRepo.GetWithQuestions(testID); err != nil {
		return nil, err
	}
	return s.resultRepo.ListByTest(testID)
}
