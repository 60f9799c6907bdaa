package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
	"github.com/yourusername/peerlearn-api/internal/domain/repository"
	apperrors "github.com/yourusername/peerlearn-api/internal/pkg/errors"
)

// CertificationService выдаёт сертификации по результатам тестов
type CertificationService struct {
	certRepo repository.CertificationRepository
	userRepo repository.UserRepository
}

// NewCertificationService создает новый сервис сертификаций
func NewCertificationService(
	certRepo repository.CertificationRepository,
	userRepo repository.UserRepository,
) *CertificationService {
	return &CertificationService{
		certRepo: certRepo,
		userRepo: userRepo,
	}
}

// IssueIfPassed выдаёт сертификацию по проходному результату и помечает
// пользователя валидированным преподавателем. Для непроходного результата
// ничего не делает и возвращает nil.
//
// Вызывается внутри транзакции записи результата: результат, сертификация
// и флаг либо сохраняются вместе, либо не сохраняются вовсе. Сертификация
// добавляется отдельной вставкой, флаг — условным UPDATE одной колонки,
// агрегат пользователя целиком не перезаписывается.
func (s *CertificationService) IssueIfPassed(tx *gorm.DB, userID uint, result *entity.Result) (*entity.Certification, error) {
	if !result.Passed {
		return nil, nil
	}

	cert := entity.NewCertification(userID, result.Subject, result.Score, result.CompletedAt)

	// Дедупликации по предмету нет: повторная сдача добавляет ещё одну
	// сертификацию с новым сроком действия
	if err := s.certRepo.Append(tx, cert); err != nil {
		return nil, fmt.Errorf("append certification: %w", err)
	}

	if err := s.userRepo.SetValidatedTeacher(tx, userID, true); err != nil {
		return nil, fmt.Errorf("set validated teacher: %w", err)
	}

	log.Printf("[CertificationService.IssueIfPassed] Выдана сертификация по предмету %q пользователю ID=%d (score=%d)",
		result.Subject, userID, result.Score)
	return cert, nil
}

// ListUserCertifications возвращает сертификации пользователя.
// Доступ: владелец или админ. Статус вычисляется лениво по сроку действия
// на момент чтения; фонового процесса истечения нет.
func (s *CertificationService) ListUserCertifications(caller *entity.User, userID uint) ([]entity.Certification, error) {
	if caller.ID != userID && !caller.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	certs, err := s.certRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range certs {
		certs[i].Status = certs[i].EffectiveStatus(now)
	}
	return certs, nil
}
