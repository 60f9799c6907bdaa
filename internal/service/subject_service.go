package service

import (
	"fmt"
	"log"
	"time"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
	"github.com/yourusername/peerlearn-api/internal/domain/repository"
	apperrors "github.com/yourusername/peerlearn-api/internal/pkg/errors"
)

// DemoVideoInput — данные добавления демо-видео
type DemoVideoInput struct {
	Title        string
	URL          string
	ThumbnailURL string
	Duration     string
}

const (
	// subjectCacheTTL — срок жизни кеша предметов. Список предметов меняется
	// редко, читается на каждой главной странице.
	subjectCacheTTL     = 10 * time.Minute
	subjectListCacheKey = "subjects:all"
)

func subjectCacheKey(id uint) string {
	return fmt.Sprintf("subject:%d", id)
}

// SubjectService управляет предметами и демо-видео.
// Чтения идут через Redis-кеш, запись демо-видео сбрасывает его.
type SubjectService struct {
	subjectRepo repository.SubjectRepository
	cacheRepo   repository.CacheRepository
}

// NewSubjectService создает новый сервис предметов
func NewSubjectService(subjectRepo repository.SubjectRepository, cacheRepo repository.CacheRepository) *SubjectService {
	return &SubjectService{subjectRepo: subjectRepo, cacheRepo: cacheRepo}
}

// ListSubjects возвращает все предметы
func (s *SubjectService) ListSubjects() ([]entity.Subject, error) {
	var cached []entity.Subject
	if err := s.cacheRepo.GetJSON(subjectListCacheKey, &cached); err == nil {
		return cached, nil
	}

	subjects, err := s.subjectRepo.List()
	if err != nil {
		return nil, err
	}
	if err := s.cacheRepo.SetJSON(subjectListCacheKey, subjects, subjectCacheTTL); err != nil {
		log.Printf("[SubjectService.ListSubjects] Не удалось записать кеш: %v", err)
	}
	return subjects, nil
}

// GetSubject возвращает предмет с демо-видео
func (s *SubjectService) GetSubject(id uint) (*entity.Subject, error) {
	var cached entity.Subject
	if err := s.cacheRepo.GetJSON(subjectCacheKey(id), &cached); err == nil {
		return &cached, nil
	}

	subject, err := s.subjectRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.cacheRepo.SetJSON(subjectCacheKey(id), subject, subjectCacheTTL); err != nil {
		log.Printf("[SubjectService.GetSubject] Не удалось записать кеш: %v", err)
	}
	return subject, nil
}

// invalidateCache сбрасывает кеш предмета и общего списка.
// Ошибки не фатальны: протухшая запись доживёт до TTL.
func (s *SubjectService) invalidateCache(subjectID uint) {
	for _, key := range []string{subjectListCacheKey, subjectCacheKey(subjectID)} {
		if err := s.cacheRepo.Delete(key); err != nil {
			log.Printf("[SubjectService.invalidateCache] Не удалось сбросить кеш %s: %v", key, err)
		}
	}
}

// AddDemoVideo добавляет демо-видео к предмету. Загружать видео могут
// только валидированные преподаватели.
func (s *SubjectService) AddDemoVideo(caller *entity.User, subjectID uint, input DemoVideoInput) (*entity.Subject, error) {
	if !caller.IsValidatedTeacher {
		return nil, fmt.Errorf("%w: only validated teachers can add demo videos", apperrors.ErrForbidden)
	}

	if _, err := s.subjectRepo.GetByID(subjectID); err != nil {
		return nil, err
	}

	video := &entity.DemoVideo{
		SubjectID:      subjectID,
		Title:          input.Title,
		URL:            input.URL,
		ThumbnailURL:   input.ThumbnailURL,
		InstructorID:   caller.ID,
		InstructorName: caller.Name,
		Duration:       input.Duration,
		UploadDate:     time.Now(),
	}
	if err := s.subjectRepo.AddDemoVideo(video); err != nil {
		return nil, err
	}
	s.invalidateCache(subjectID)

	log.Printf("[SubjectService.AddDemoVideo] Преподаватель ID=%d добавил видео к предмету ID=%d",
		caller.ID, subjectID)
	return s.subjectRepo.GetByID(subjectID)
}
