package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
	apperrors "github.com/yourusername/peerlearn-api/internal/pkg/errors"
)

// SubjectRepo реализует repository.SubjectRepository
type SubjectRepo struct {
	db *gorm.DB
}

// NewSubjectRepo создает новый репозиторий предметов
func NewSubjectRepo(db *gorm.DB) *SubjectRepo {
	return &SubjectRepo{db: db}
}

// List возвращает все предметы в порядке учебного плана
func (r *SubjectRepo) List() ([]entity.Subject, error) {
	var subjects []entity.Subject
	err := r.db.Order("year ASC, semester ASC, code ASC").Find(&subjects).Error
	return subjects, err
}

// GetByID возвращает предмет вместе с демо-видео
func (r *SubjectRepo) GetByID(id uint) (*entity.Subject, error) {
	var subject entity.Subject
	err := r.db.
		Preload("DemoVideos", func(db *gorm.DB) *gorm.DB {
			return db.Order("upload_date DESC")
		}).
		First(&subject, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &subject, nil
}

// AddDemoVideo добавляет демо-видео к предмету
func (r *SubjectRepo) AddDemoVideo(video *entity.DemoVideo) error {
	return r.db.Create(video).Error
}
