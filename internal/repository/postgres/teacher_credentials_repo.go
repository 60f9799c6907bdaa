package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
	apperrors "github.com/yourusername/peerlearn-api/internal/pkg/errors"
)

// TeacherCredentialsRepo реализует repository.TeacherCredentialsRepository
type TeacherCredentialsRepo struct {
	db *gorm.DB
}

// NewTeacherCredentialsRepo создает новый репозиторий документов преподавателей
func NewTeacherCredentialsRepo(db *gorm.DB) *TeacherCredentialsRepo {
	return &TeacherCredentialsRepo{db: db}
}

// GetByUser возвращает документы пользователя
func (r *TeacherCredentialsRepo) GetByUser(userID uint) (*entity.TeacherCredentials, error) {
	var creds entity.TeacherCredentials
	err := r.db.Where("user_id = ?", userID).First(&creds).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &creds, nil
}

// Replace заменяет документы пользователя целиком. Upsert по user_id:
// повторная подача перезаписывает все поля, включая сброс статуса в pending.
func (r *TeacherCredentialsRepo) Replace(creds *entity.TeacherCredentials) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"institution", "degree", "graduation_year", "specialization",
			"experience_years", "document_urls", "validation_status",
			"submitted_at", "validation_date", "updated_at",
		}),
	}).Create(creds).Error
}

// SetStatus обновляет статус проверки документов и дату решения
func (r *TeacherCredentialsRepo) SetStatus(tx *gorm.DB, userID uint, status entity.ValidationStatus, validatedAt time.Time) error {
	db := tx
	if db == nil {
		db = r.db
	}
	res := db.Model(&entity.TeacherCredentials{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"validation_status": status,
			"validation_date":   validatedAt,
			"updated_at":        time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
