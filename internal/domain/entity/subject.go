package entity

import (
	"time"
)

// Subject представляет предмет учебной программы
type Subject struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Name         string      `gorm:"size:100;not null" json:"name"`
	Code         string      `gorm:"size:20;not null;uniqueIndex" json:"code"`
	Year         int         `gorm:"not null;default:1" json:"year"`
	Semester     int         `gorm:"not null;default:1" json:"semester"`
	Description  string      `gorm:"size:2000;not null;default:''" json:"description"`
	ThumbnailURL string      `gorm:"size:255;not null;default:''" json:"thumbnail_url"`
	DemoVideos   []DemoVideo `gorm:"foreignKey:SubjectID" json:"demo_videos"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Subject) TableName() string {
	return "subjects"
}

// DemoVideo — демонстрационное видео преподавателя по предмету.
// Добавлять видео могут только валидированные преподаватели.
type DemoVideo struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	SubjectID      uint      `gorm:"not null;index" json:"subject_id"`
	Title          string    `gorm:"size:200;not null" json:"title"`
	URL            string    `gorm:"size:255;not null" json:"url"`
	ThumbnailURL   string    `gorm:"size:255;not null;default:''" json:"thumbnail_url"`
	InstructorID   uint      `gorm:"not null;index" json:"instructor_id"`
	InstructorName string    `gorm:"size:100;not null" json:"instructor_name"`
	Duration       string    `gorm:"size:20;not null;default:''" json:"duration"`
	UploadDate     time.Time `gorm:"not null" json:"upload_date"`
	Views          int       `gorm:"not null;default:0" json:"views"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (DemoVideo) TableName() string {
	return "demo_videos"
}
