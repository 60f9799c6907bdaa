package repository

import (
	"gorm.io/gorm"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id uint) (*entity.User, error)
	// GetWithTeacherData возвращает пользователя вместе с сертификациями
	// и поданными документами преподавателя
	GetWithTeacherData(id uint) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// SetValidatedTeacher атомарно обновляет флаг is_validated_teacher одной
	// колонкой. Это единственный путь записи флага: через него проходят и
	// выдача сертификации, и решение админа, поэтому потерянные обновления
	// при конкурентной записи исключены. tx может быть nil.
	SetValidatedTeacher(tx *gorm.DB, userID uint, validated bool) error
}
