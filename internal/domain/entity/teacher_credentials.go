package entity

import (
	"time"
)

// ValidationStatus — статус проверки документов преподавателя
type ValidationStatus string

// Допустимые статусы проверки
const (
	ValidationPending  ValidationStatus = "pending"
	ValidationApproved ValidationStatus = "approved"
	ValidationRejected ValidationStatus = "rejected"
)

// IsValid проверяет, что значение является известным статусом
func (s ValidationStatus) IsValid() bool {
	switch s {
	case ValidationPending, ValidationApproved, ValidationRejected:
		return true
	}
	return false
}

// CanTransition проверяет допустимость перехода статуса.
// Обычные переходы: pending -> approved, pending -> rejected.
// Повторная подача документов возвращает любой статус в pending.
// Админ дополнительно может пересматривать терминальные статусы
// (approved <-> rejected).
func (s ValidationStatus) CanTransition(to ValidationStatus, byAdmin bool) bool {
	if !to.IsValid() {
		return false
	}
	// Повторная подача: из любого статуса обратно в pending
	if to == ValidationPending {
		return true
	}
	if s == ValidationPending {
		return true // pending -> approved | rejected
	}
	// Из терминального статуса выходим только решением админа
	return byAdmin
}

// TeacherCredentials — поданные пользователем документы о квалификации.
// У пользователя не более одной записи; при повторной подаче запись
// заменяется целиком, а статус сбрасывается в pending.
type TeacherCredentials struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          uint        `gorm:"not null;uniqueIndex" json:"user_id"`
	Institution     string      `gorm:"size:200;not null" json:"institution"`
	Degree          string      `gorm:"size:200;not null" json:"degree"`
	GraduationYear  string      `gorm:"size:10;not null" json:"graduation_year"`
	Specialization  string      `gorm:"size:200;not null" json:"specialization"`
	ExperienceYears int         `gorm:"not null;default:0" json:"experience"`
	DocumentURLs    StringArray `gorm:"type:jsonb;not null" json:"document_urls"`

	ValidationStatus ValidationStatus `gorm:"size:20;not null;default:'pending'" json:"validation_status"`
	SubmittedAt      time.Time        `gorm:"not null" json:"submitted_at"`
	ValidationDate   *time.Time       `gorm:"type:timestamp" json:"validation_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (TeacherCredentials) TableName() string {
	return "teacher_credentials"
}
