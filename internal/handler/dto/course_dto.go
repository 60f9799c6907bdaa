package dto

import (
	"time"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
)

// CourseResponse представляет курс в формате для ответа клиенту
type CourseResponse struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Subject        string    `json:"subject"`
	Description    string    `json:"description,omitempty"`
	InstructorID   uint      `json:"instructor_id"`
	InstructorName string    `json:"instructor_name"`
	DemoVideoURL   string    `json:"demo_video_url,omitempty"`
	ThumbnailURL   string    `json:"thumbnail_url,omitempty"`
	Rating         float64   `json:"rating"`
	ReviewCount    int       `json:"review_count"`
	Semester       string    `json:"semester,omitempty"`
	Year           int       `json:"year,omitempty"`
	StudentCount   int64     `json:"student_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// SubjectResponse представляет предмет с демо-видео
type SubjectResponse struct {
	ID           uint                `json:"id"`
	Name         string              `json:"name"`
	Code         string              `json:"code"`
	Year         int                 `json:"year"`
	Semester     int                 `json:"semester"`
	Description  string              `json:"description,omitempty"`
	ThumbnailURL string              `json:"thumbnail_url,omitempty"`
	DemoVideos   []DemoVideoResponse `json:"demo_videos"`
}

// DemoVideoResponse представляет демо-видео преподавателя
type DemoVideoResponse struct {
	ID             uint      `json:"id"`
	SubjectID      uint      `json:"subject_id"`
	Title          string    `json:"title"`
	URL            string    `json:"url"`
	ThumbnailURL   string    `json:"thumbnail_url,omitempty"`
	InstructorID   uint      `json:"instructor_id"`
	InstructorName string    `json:"instructor_name"`
	Duration       string    `json:"duration,omitempty"`
	UploadDate     time.Time `json:"upload_date"`
	Views          int       `json:"views"`
}

// UploadResponse возвращается после загрузки файла в хранилище
type UploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// NewCourseResponse создает DTO для курса
func NewCourseResponse(course *entity.Course, studentCount int64) *CourseResponse {
	return &CourseResponse{
		ID:             course.ID,
		Title:          course.Title,
		Subject:        course.Subject,
		Description:    course.Description,
		InstructorID:   course.InstructorID,
		InstructorName: course.InstructorName,
		DemoVideoURL:   course.DemoVideoURL,
		ThumbnailURL:   course.ThumbnailURL,
		Rating:         course.Rating,
		ReviewCount:    course.ReviewCount,
		Semester:       course.Semester,
		Year:           course.Year,
		StudentCount:   studentCount,
		CreatedAt:      course.CreatedAt,
	}
}

// NewDemoVideoResponse создает DTO для демо-видео
func NewDemoVideoResponse(v *entity.DemoVideo) DemoVideoResponse {
	return DemoVideoResponse{
		ID:             v.ID,
		SubjectID:      v.SubjectID,
		Title:          v.Title,
		URL:            v.URL,
		ThumbnailURL:   v.ThumbnailURL,
		InstructorID:   v.InstructorID,
		InstructorName: v.InstructorName,
		Duration:       v.Duration,
		UploadDate:     v.UploadDate,
		Views:          v.Views,
	}
}

// NewSubjectResponse создает DTO для предмета
func NewSubjectResponse(subject *entity.Subject) *SubjectResponse {
	videos := make([]DemoVideoResponse, 0, len(subject.DemoVideos))
	for i := range subject.DemoVideos {
		videos = append(videos, NewDemoVideoResponse(&subject.DemoVideos[i]))
	}
	return &SubjectResponse{
		ID:           subject.ID,
		Name:         subject.Name,
		Code:         subject.Code,
		Year:         subject.Year,
		Semester:     subject.Semester,
		Description:  subject.Description,
		ThumbnailURL: subject.ThumbnailURL,
		DemoVideos:   videos,
	}
}

// NewSubjectListResponse создает список DTO предметов
func NewSubjectListResponse(subjects []entity.Subject) []*SubjectResponse {
	out := make([]*SubjectResponse, 0, len(subjects))
	for i := range subjects {
		out = append(out, NewSubjectResponse(&subjects[i]))
	}
	return out
}
