package entity

import (
	"time"
)

// Course представляет курс, который ведёт валидированный преподаватель
type Course struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Title          string  `gorm:"size:200;not null" json:"title"`
	Subject        string  `gorm:"size:100;not null" json:"subject"`
	Description    string  `gorm:"size:2000;not null;default:''" json:"description"`
	InstructorID   uint    `gorm:"not null;index" json:"instructor_id"`
	InstructorName string  `gorm:"size:100;not null" json:"instructor_name"`
	DemoVideoURL   string  `gorm:"size:255;not null;default:''" json:"demo_video_url"`
	ThumbnailURL   string  `gorm:"size:255;not null;default:''" json:"thumbnail_url"`
	Rating         float64 `gorm:"not null;default:0" json:"rating"`
	ReviewCount    int     `gorm:"not null;default:0" json:"review_count"`
	Semester       string  `gorm:"size:20;not null;default:''" json:"semester,omitempty"`
	Year           int     `gorm:"not null;default:0" json:"year,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Course) TableName() string {
	return "courses"
}

// Enrollment — запись студента на курс. Пара (course_id, user_id) уникальна,
// повторная запись отклоняется как конфликт.
type Enrollment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CourseID  uint      `gorm:"not null;index;uniqueIndex:idx_course_user" json:"course_id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_course_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Enrollment) TableName() string {
	return "enrollments"
}
