package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
)

// TeacherCredentialsRepository определяет методы для работы с документами преподавателей
type TeacherCredentialsRepository interface {
	GetByUser(userID uint) (*entity.TeacherCredentials, error)
	// Replace заменяет документы пользователя целиком (повторная подача)
	Replace(creds *entity.TeacherCredentials) error
	// SetStatus обновляет статус проверки и дату решения. tx может быть nil.
	SetStatus(tx *gorm.DB, userID uint, status entity.ValidationStatus, validatedAt time.Time) error
}
