package repository

import (
	"github.com/yourusername/peerlearn-api/internal/domain/entity"
)

// CourseRepository определяет методы для работы с курсами
type CourseRepository interface {
	Create(course *entity.Course) error
	GetByID(id uint) (*entity.Course, error)
	List() ([]entity.Course, error)
	Update(course *entity.Course) error
	// Enroll записывает студента на курс. Повторная запись возвращает
	// ErrConflict (уникальность пары course_id/user_id обеспечивает БД).
	Enroll(courseID, userID uint) error
	CountEnrollments(courseID uint) (int64, error)
}
