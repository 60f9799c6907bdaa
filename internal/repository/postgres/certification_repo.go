package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
)

// CertificationRepo реализует repository.CertificationRepository
type CertificationRepo struct {
	db *gorm.DB
}

// NewCertificationRepo создает новый репозиторий сертификаций
func NewCertificationRepo(db *gorm.DB) *CertificationRepo {
	return &CertificationRepo{db: db}
}

// Append добавляет сертификацию пользователю. Всегда INSERT: список
// сертификаций append-only, дедупликации по предмету нет.
func (r *CertificationRepo) Append(tx *gorm.DB, cert *entity.Certification) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(cert).Error
}

// ListByUser возвращает сертификации пользователя, новые первыми
func (r *CertificationRepo) ListByUser(userID uint) ([]entity.Certification, error) {
	var certs []entity.Certification
	err := r.db.Where("user_id = ?", userID).
		Order("issued_date DESC").
		Find(&certs).Error
	// Пустой слайс — валидный результат, ErrRecordNotFound здесь не возникает
	return certs, err
}
