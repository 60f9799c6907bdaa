package repository

import (
	"github.com/yourusername/peerlearn-api/internal/domain/entity"
)

// SubjectRepository определяет методы для работы с предметами
type SubjectRepository interface {
	List() ([]entity.Subject, error)
	// GetByID возвращает предмет вместе с демо-видео
	GetByID(id uint) (*entity.Subject, error)
	AddDemoVideo(video *entity.DemoVideo) error
}
