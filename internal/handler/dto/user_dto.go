package dto

import (
	"time"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
)

// UserResponse представляет пользователя в формате для ответа клиенту
type UserResponse struct {
	ID                 uint                 `json:"id"`
	Name               string               `json:"name"`
	Email              string               `json:"email"`
	Avatar             string               `json:"avatar,omitempty"`
	Bio                string               `json:"bio,omitempty"`
	IsValidatedTeacher bool                 `json:"is_validated_teacher"`
	TeacherCredentials *CredentialsResponse `json:"teacher_credentials,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
}

// AuthResponse возвращается при регистрации и входе
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// CredentialsResponse представляет поданные документы преподавателя
type CredentialsResponse struct {
	Institution      string     `json:"institution"`
	Degree           string     `json:"degree"`
	GraduationYear   string     `json:"graduation_year"`
	Specialization   string     `json:"specialization"`
	ExperienceYears  int        `json:"experience"`
	DocumentURLs     []string   `json:"document_urls"`
	ValidationStatus string     `json:"validation_status"`
	SubmittedAt      time.Time  `json:"submitted_at"`
	ValidationDate   *time.Time `json:"validation_date,omitempty"`
}

// CertificationResponse представляет сертификацию с актуальным статусом
type CertificationResponse struct {
	ID         uint      `json:"id"`
	Subject    string    `json:"subject"`
	Score      int       `json:"score"`
	IssuedDate time.Time `json:"issued_date"`
	ExpiryDate time.Time `json:"expiry_date"`
	Status     string    `json:"status"`
}

// NewUserResponse создает DTO для пользователя
func NewUserResponse(user *entity.User) *UserResponse {
	resp := &UserResponse{
		ID:                 user.ID,
		Name:               user.Name,
		Email:              user.Email,
		Avatar:             user.Avatar,
		Bio:                user.Bio,
		IsValidatedTeacher: user.IsValidatedTeacher,
		CreatedAt:          user.CreatedAt,
	}
	if user.TeacherCredentials != nil {
		resp.TeacherCredentials = NewCredentialsResponse(user.TeacherCredentials)
	}
	return resp
}

// NewCredentialsResponse создает DTO для документов преподавателя
func NewCredentialsResponse(creds *entity.TeacherCredentials) *CredentialsResponse {
	return &CredentialsResponse{
		Institution:      creds.Institution,
		Degree:           creds.Degree,
		GraduationYear:   creds.GraduationYear,
		Specialization:   creds.Specialization,
		ExperienceYears:  creds.ExperienceYears,
		DocumentURLs:     creds.DocumentURLs,
		ValidationStatus: string(creds.ValidationStatus),
		SubmittedAt:      creds.SubmittedAt,
		ValidationDate:   creds.ValidationDate,
	}
}

// NewCertificationResponse создает DTO сертификации.
// Статус вычисляется по сроку действия на момент now, а не берётся из колонки
func NewCertificationResponse(cert *entity.Certification, now time.Time) *CertificationResponse {
	return &CertificationResponse{
		ID:         cert.ID,
		Subject:    cert.Subject,
		Score:      cert.Score,
		IssuedDate: cert.IssuedDate,
		ExpiryDate: cert.ExpiryDate,
		Status:     cert.EffectiveStatus(now),
	}
}

// NewCertificationListResponse создает список DTO сертификаций
func NewCertificationListResponse(certs []entity.Certification, now time.Time) []*CertificationResponse {
	out := make([]*CertificationResponse, 0, len(certs))
	for i := range certs {
		out = append(out, NewCertificationResponse(&certs[i], now))
	}
	return out
}
