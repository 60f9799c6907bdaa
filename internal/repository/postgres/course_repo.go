package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
	apperrors "github.com/yourusername/peerlearn-api/internal/pkg/errors"
)

// CourseRepo реализует repository.CourseRepository
type CourseRepo struct {
	db *gorm.DB
}

// NewCourseRepo создает новый репозиторий курсов
func NewCourseRepo(db *gorm.DB) *CourseRepo {
	return &CourseRepo{db: db}
}

// Create создает новый курс
func (r *CourseRepo) Create(course *entity.Course) error {
	return r.db.Create(course).Error
}

// GetByID возвращает курс по ID
func (r *CourseRepo) GetByID(id uint) (*entity.Course, error) {
	var course entity.Course
	err := r.db.First(&course, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

// List возвращает все курсы, новые первыми
func (r *CourseRepo) List() ([]entity.Course, error) {
	var courses []entity.Course
	err := r.db.Order("created_at DESC").Find(&courses).Error
	return courses, err
}

// Update обновляет курс
func (r *CourseRepo) Update(course *entity.Course) error {
	return r.db.Save(course).Error
}

// Enroll записывает студента на курс. Повторная запись упирается в
// уникальный индекс (course_id, user_id) и возвращает ErrConflict.
func (r *CourseRepo) Enroll(courseID, userID uint) error {
	err := r.db.Create(&entity.Enrollment{CourseID: courseID, UserID: userID}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}

// CountEnrollments возвращает количество записанных на курс студентов
func (r *CourseRepo) CountEnrollments(courseID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Enrollment{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}
