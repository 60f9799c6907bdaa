package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
	"github.com/yourusername/peerlearn-api/internal/domain/repository"
	apperrors "github.com/yourusername/peerlearn-api/internal/pkg/errors"
)

// CourseInput — данные создания/обновления курса
type CourseInput struct {
	Title        string
	Subject      string
	Description  string
	DemoVideoURL string
	ThumbnailURL string
	Semester     string
	Year         int
}

// CourseService управляет курсами и записью на них
type CourseService struct {
	courseRepo repository.CourseRepository
}

// NewCourseService создает новый сервис курсов
func NewCourseService(courseRepo repository.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// ListCourses возвращает все курсы
func (s *CourseService) ListCourses() ([]entity.Course, error) {
	return s.courseRepo.List()
}

// GetCourse возвращает курс по ID
func (s *CourseService) GetCourse(id uint) (*entity.Course, error) {
	return s.courseRepo.GetByID(id)
}

// CreateCourse создает курс. Создавать курсы могут только валидированные
// преподаватели.
func (s *CourseService) CreateCourse(caller *entity.User, input CourseInput) (*entity.Course, error) {
	if !caller.IsValidatedTeacher {
		return nil, fmt.Errorf("%w: only validated teachers can create courses", apperrors.ErrForbidden)
	}

	course := &entity.Course{
		Title:          input.Title,
		Subject:        input.Subject,
		Description:    input.Description,
		InstructorID:   caller.ID,
		InstructorName: caller.Name,
		DemoVideoURL:   input.DemoVideoURL,
		ThumbnailURL:   input.ThumbnailURL,
		Semester:       input.Semester,
		Year:           input.Year,
	}
	if err := s.courseRepo.Create(course); err != nil {
		return nil, err
	}

	log.Printf("[CourseService.CreateCourse] Преподаватель ID=%d создал курс ID=%d (%q)",
		caller.ID, course.ID, course.Title)
	return course, nil
}

// UpdateCourse обновляет курс. Обновлять курс может только его преподаватель.
func (s *CourseService) UpdateCourse(caller *entity.User, courseID uint, input CourseInput) (*entity.Course, error) {
	course, err := s.courseRepo.GetByID(courseID)
	if err != nil {
		return nil, err
	}
	if course.InstructorID != caller.ID {
		return nil, fmt.Errorf("%w: only the course instructor can update this course", apperrors.ErrForbidden)
	}

	course.Title = input.Title
	course.Subject = input.Subject
	course.Description = input.Description
	course.DemoVideoURL = input.DemoVideoURL
	course.ThumbnailURL = input.ThumbnailURL
	course.Semester = input.Semester
	course.Year = input.Year

	if err := s.courseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

// Enroll записывает пользователя на курс. Повторная запись — конфликт.
func (s *CourseService) Enroll(caller *entity.User, courseID uint) (*entity.Course, error) {
	course, err := s.courseRepo.GetByID(courseID)
	if err != nil {
		return nil, err
	}

	if err := s.courseRepo.Enroll(courseID, caller.ID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: already enrolled in this course", apperrors.ErrConflict)
		}
		return nil, err
	}
	return course, nil
}

// CountEnrollments возвращает количество студентов курса
func (s *CourseService) CountEnrollments(courseID uint) (int64, error) {
	return s.courseRepo.CountEnrollments(courseID)
}
