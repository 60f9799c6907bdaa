package repository

import (
	"gorm.io/gorm"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
)

// CertificationRepository определяет методы для работы с сертификациями
type CertificationRepository interface {
	// Append добавляет сертификацию отдельной вставкой, без перечитывания
	// и перезаписи агрегата пользователя. tx может быть nil.
	Append(tx *gorm.DB, cert *entity.Certification) error
	// ListByUser возвращает сертификации пользователя по дате выдачи (новые первыми)
	ListByUser(userID uint) ([]entity.Certification, error)
}
