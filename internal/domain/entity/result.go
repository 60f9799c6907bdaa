package entity

import (
	"time"
)

// Result представляет итог одной сдачи сертификационного теста.
// Запись создаётся ровно один раз на отправку ответов и после создания
// не изменяется. Дедупликации нет: повторная сдача даёт новую запись.
type Result struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	TestID      uint      `gorm:"not null;index" json:"test_id"`
	Subject     string    `gorm:"size:100;not null" json:"subject"`
	Score       int       `gorm:"not null;default:0" json:"score"` // процент 0..100
	Passed      bool      `gorm:"not null;default:false" json:"passed"`
	CompletedAt time.Time `gorm:"not null;index" json:"completed_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Result) TableName() string {
	return "results"
}
