package entity

import (
	"time"
)

// Статусы сертификации
const (
	CertificationActive  = "active"
	CertificationExpired = "expired"
)

// CertificationValidity — срок действия сертификации с момента выдачи
const CertificationValidity = 365 * 24 * time.Hour

// Certification подтверждает сдачу сертификационного теста по предмету.
// Записи только добавляются; фоновой очистки истекших нет, актуальный статус
// вычисляется лениво при чтении через EffectiveStatus.
type Certification struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Subject    string    `gorm:"size:100;not null" json:"subject"`
	Score      int       `gorm:"not null" json:"score"`
	IssuedDate time.Time `gorm:"not null" json:"issued_date"`
	ExpiryDate time.Time `gorm:"not null" json:"expiry_date"`
	// Status хранится денормализованно; источником истины является ExpiryDate
	Status string `gorm:"size:20;not null;default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Certification) TableName() string {
	return "certifications"
}

// NewCertification создаёт сертификацию по результату теста со сроком действия 365 дней
func NewCertification(userID uint, subject string, score int, now time.Time) *Certification {
	return &Certification{
		UserID:     userID,
		Subject:    subject,
		Score:      score,
		IssuedDate: now,
		ExpiryDate: now.Add(CertificationValidity),
		Status:     CertificationActive,
	}
}

// IsExpired возвращает true, если срок действия истёк на момент now
func (c *Certification) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiryDate)
}

// EffectiveStatus возвращает актуальный статус, вычисленный по ExpiryDate,
// независимо от того, что сохранено в колонке Status
func (c *Certification) EffectiveStatus(now time.Time) string {
	if c.IsExpired(now) {
		return CertificationExpired
	}
	return CertificationActive
}
