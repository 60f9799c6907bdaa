package entity

import (
	"time"
)

// Test представляет сертификационный тест по предмету.
// На предмет существует один тест; вопросы упорядочены по Position.
type Test struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	SubjectID    uint       `gorm:"not null;uniqueIndex" json:"subject_id"`
	Subject      string     `gorm:"size:100;not null" json:"subject"`
	PassingScore int        `gorm:"not null;default:70" json:"passing_score"` // процент 0..100
	TimeLimitMin int        `gorm:"not null;default:30" json:"time_limit"`    // в минутах
	Questions    []Question `gorm:"foreignKey:TestID" json:"questions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Test) TableName() string {
	return "tests"
}

// QuestionCount возвращает количество вопросов в тесте
func (t *Test) QuestionCount() int {
	return len(t.Questions)
}
