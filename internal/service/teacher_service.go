package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
	"github.com/yourusername/peerlearn-api/internal/domain/repository"
	apperrors "github.com/yourusername/peerlearn-api/internal/pkg/errors"
)

// CredentialsInput — данные подачи документов преподавателя
type CredentialsInput struct {
	Institution     string
	Degree          string
	GraduationYear  string
	Specialization  string
	ExperienceYears int
	DocumentURLs    []string
}

// TeacherService управляет документами преподавателей и их проверкой админом
type TeacherService struct {
	userRepo     repository.UserRepository
	credsRepo    repository.TeacherCredentialsRepository
	emailService EmailService
	db           *gorm.DB

	// txRunner выполняет функцию в транзакции БД; в тестах подменяется
	// прогоном без транзакции
	txRunner func(fn func(tx *gorm.DB) error) error
}

// NewTeacherService создает новый сервис преподавателей
func NewTeacherService(
	userRepo repository.UserRepository,
	credsRepo repository.TeacherCredentialsRepository,
	emailService EmailService,
	db *gorm.DB,
) *TeacherService {
	return &TeacherService{
		userRepo:     userRepo,
		credsRepo:    credsRepo,
		emailService: emailService,
		db:           db,
		txRunner: func(fn func(tx *gorm.DB) error) error {
			return db.Transaction(fn)
		},
	}
}

// SubmitCredentials принимает документы преподавателя. Подать документы может
// только сам пользователь. Прежняя запись заменяется целиком, статус всегда
// сбрасывается в pending, дата решения очищается.
//
// Флаг is_validated_teacher при этом НЕ меняется: уже валидированный
// преподаватель остаётся валидированным, пока админ не решит иначе.
func (s *TeacherService) SubmitCredentials(caller *entity.User, userID uint, input CredentialsInput) (*entity.User, error) {
	if caller.ID != userID {
		return nil, apperrors.ErrForbidden
	}
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, err
	}

	prev, err := s.credsRepo.GetByUser(userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if prev != nil && !prev.ValidationStatus.CanTransition(entity.ValidationPending, false) {
		// Сюда попасть нельзя: переход в pending разрешён из любого статуса.
		// Проверка оставлена, чтобы изменение правил переходов не прошло молча.
		return nil, fmt.Errorf("%w: credentials status %s cannot be resubmitted", apperrors.ErrConflict, prev.ValidationStatus)
	}

	creds := &entity.TeacherCredentials{
		UserID:           userID,
		Institution:      input.Institution,
		Degree:           input.Degree,
		GraduationYear:   input.GraduationYear,
		Specialization:   input.Specialization,
		ExperienceYears:  input.ExperienceYears,
		DocumentURLs:     input.DocumentURLs,
		ValidationStatus: entity.ValidationPending,
		SubmittedAt:      time.Now(),
		ValidationDate:   nil,
	}
	if err := s.credsRepo.Replace(creds); err != nil {
		return nil, fmt.Errorf("replace credentials: %w", err)
	}

	log.Printf("[TeacherService.SubmitCredentials] Пользователь ID=%d подал документы преподавателя", userID)
	return s.userRepo.GetWithTeacherData(userID)
}

// AdminValidate — решение админа по заявке преподавателя. Выставляет флаг
// is_validated_teacher напрямую и, если документы поданы, переводит их статус
// в approved/rejected со штампом даты решения. Терминальные статусы админ
// может пересматривать.
//
// Флаг и статус документов пишутся в одной транзакции; флаг — тем же
// атомарным UPDATE, что и путь выдачи сертификации.
func (s *TeacherService) AdminValidate(userID uint, isApproved bool) (*entity.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	target := entity.ValidationRejected
	if isApproved {
		target = entity.ValidationApproved
	}

	creds, err := s.credsRepo.GetByUser(userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if creds != nil && !creds.ValidationStatus.CanTransition(target, true) {
		return nil, fmt.Errorf("%w: credentials status %s cannot transition to %s",
			apperrors.ErrConflict, creds.ValidationStatus, target)
	}

	now := time.Now()
	err = s.txRunner(func(tx *gorm.DB) error {
		if err := s.userRepo.SetValidatedTeacher(tx, userID, isApproved); err != nil {
			return err
		}
		if creds != nil {
			if err := s.credsRepo.SetStatus(tx, userID, target, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[TeacherService.AdminValidate] Пользователь ID=%d: is_validated_teacher=%t, статус документов=%s",
		userID, isApproved, target)

	if s.emailService != nil {
		go func(email string, approved bool) {
			if err := s.emailService.SendCredentialsReviewed(context.Background(), email, approved); err != nil {
				log.Printf("[TeacherService.AdminValidate] Не удалось отправить письмо о решении: %v", err)
			}
		}(user.Email, isApproved)
	}

	return s.userRepo.GetWithTeacherData(userID)
}
