package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
	apperrors "github.com/yourusername/peerlearn-api/internal/pkg/errors"
)

// MockTeacherCredentialsRepo реализует repository.TeacherCredentialsRepository
type MockTeacherCredentialsRepo struct {
	mock.Mock
}

func (m *MockTeacherCredentialsRepo) GetByUser(userID uint) (*entity.TeacherCredentials, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TeacherCredentials), args.Error(1)
}

func (m *MockTeacherCredentialsRepo) Replace(creds *entity.TeacherCredentials) error {
	args := m.Called(creds)
	return args.Error(0)
}

func (m *MockTeacherCredentialsRepo) SetStatus(tx *gorm.DB, userID uint, status entity.ValidationStatus, validatedAt time.Time) error {
	args := m.Called(tx, userID, status, validatedAt)
	return args.Error(0)
}

func credentialsInputFixture() CredentialsInput {
	return CredentialsInput{
		Institution:     "MSU",
		Degree:          "MSc",
		GraduationYear:  "2019",
		Specialization:  "Physics",
		ExperienceYears: 5,
		DocumentURLs:    []string{"https://files.example.com/diploma.pdf"},
	}
}

func TestTeacherService_SubmitCredentials_Forbidden(t *testing.T) {
	userRepo := new(MockUserRepo)
	credsRepo := new(MockTeacherCredentialsRepo)
	svc := NewTeacherService(userRepo, credsRepo, &NoopEmailService{}, nil)

	caller := &entity.User{ID: 2, Role: entity.RoleUser}

	user, err := svc.SubmitCredentials(caller, 5, credentialsInputFixture())

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
	assert.Nil(t, user)
	credsRepo.AssertNotCalled(t, "Replace", mock.Anything)
}

func TestTeacherService_SubmitCredentials_UserNotFound(t *testing.T) {
	userRepo := new(MockUserRepo)
	credsRepo := new(MockTeacherCredentialsRepo)
	svc := NewTeacherService(userRepo, credsRepo, &NoopEmailService{}, nil)

	caller := &entity.User{ID: 5, Role: entity.RoleUser}
	userRepo.On("GetByID", uint(5)).Return(nil, apperrors.ErrNotFound).Once()

	user, err := svc.SubmitCredentials(caller, 5, credentialsInputFixture())

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Nil(t, user)
}

func TestTeacherService_SubmitCredentials_FirstSubmission(t *testing.T) {
	userRepo := new(MockUserRepo)
	credsRepo := new(MockTeacherCredentialsRepo)
	svc := NewTeacherService(userRepo, credsRepo, &NoopEmailService{}, nil)

	caller := &entity.User{ID: 5, Email: "user@test.com", Role: entity.RoleUser}
	userRepo.On("GetByID", uint(5)).Return(caller, nil).Once()
	credsRepo.On("GetByUser", uint(5)).Return(nil, apperrors.ErrNotFound).Once()
	credsRepo.On("Replace", mock.AnythingOfType("*entity.TeacherCredentials")).Return(nil).Once()
	userRepo.On("GetWithTeacherData", uint(5)).Return(caller, nil).Once()

	_, err := svc.SubmitCredentials(caller, 5, credentialsInputFixture())

	require.NoError(t, err)
	saved := credsRepo.Calls[1].Arguments.Get(0).(*entity.TeacherCredentials)
	assert.Equal(t, entity.ValidationPending, saved.ValidationStatus)
	assert.Nil(t, saved.ValidationDate)
	assert.Equal(t, uint(5), saved.UserID)
	assert.False(t, saved.SubmittedAt.IsZero())
}

func TestTeacherService_SubmitCredentials_ResubmissionResetsToPending(t *testing.T) {
	userRepo := new(MockUserRepo)
	credsRepo := new(MockTeacherCredentialsRepo)
	svc := NewTeacherService(userRepo, credsRepo, &NoopEmailService{}, nil)

	// Пользователь уже валидирован, прежняя заявка одобрена
	caller := &entity.User{ID: 5, Email: "user@test.com", Role: entity.RoleUser, IsValidatedTeacher: true}
	validatedAt := time.Now().Add(-30 * 24 * time.Hour)
	prev := &entity.TeacherCredentials{
		UserID:           5,
		ValidationStatus: entity.ValidationApproved,
		ValidationDate:   &validatedAt,
	}

	userRepo.On("GetByID", uint(5)).Return(caller, nil).Once()
	credsRepo.On("GetByUser", uint(5)).Return(prev, nil).Once()
	credsRepo.On("Replace", mock.AnythingOfType("*entity.TeacherCredentials")).Return(nil).Once()
	userRepo.On("GetWithTeacherData", uint(5)).Return(caller, nil).Once()

	_, err := svc.SubmitCredentials(caller, 5, credentialsInputFixture())

	require.NoError(t, err)

	// Повторная подача сбрасывает статус и дату решения
	saved := credsRepo.Calls[1].Arguments.Get(0).(*entity.TeacherCredentials)
	assert.Equal(t, entity.ValidationPending, saved.ValidationStatus)
	assert.Nil(t, saved.ValidationDate)

	// Флаг валидации при повторной подаче не меняется
	userRepo.AssertNotCalled(t, "SetValidatedTeacher", mock.Anything, mock.Anything, mock.Anything)
}

func TestTeacherService_AdminValidate_UserNotFound(t *testing.T) {
	userRepo := new(MockUserRepo)
	credsRepo := new(MockTeacherCredentialsRepo)
	svc := NewTeacherService(userRepo, credsRepo, &NoopEmailService{}, nil)

	userRepo.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound).Once()

	user, err := svc.AdminValidate(99, true)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Nil(t, user)
	userRepo.AssertNotCalled(t, "SetValidatedTeacher", mock.Anything, mock.Anything, mock.Anything)
}

func TestTeacherService_AdminValidate_ApprovePending(t *testing.T) {
	userRepo := new(MockUserRepo)
	credsRepo := new(MockTeacherCredentialsRepo)
	svc := NewTeacherService(userRepo, credsRepo, &NoopEmailService{}, nil)
	svc.txRunner = runWithoutTx

	user := &entity.User{ID: 7, Name: "Dr. Smith", Email: "smith@example.com"}
	creds := &entity.TeacherCredentials{UserID: 7, ValidationStatus: entity.ValidationPending}
	validated := &entity.User{ID: 7, Name: "Dr. Smith", IsValidatedTeacher: true}

	userRepo.On("GetByID", uint(7)).Return(user, nil).Once()
	credsRepo.On("GetByUser", uint(7)).Return(creds, nil).Once()
	userRepo.On("SetValidatedTeacher", mock.Anything, uint(7), true).Return(nil).Once()
	credsRepo.On("SetStatus", mock.Anything, uint(7), entity.ValidationApproved, mock.AnythingOfType("time.Time")).Return(nil).Once()
	userRepo.On("GetWithTeacherData", uint(7)).Return(validated, nil).Once()

	got, err := svc.AdminValidate(7, true)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsValidatedTeacher)
	userRepo.AssertExpectations(t)
	credsRepo.AssertExpectations(t)
}

// Отзыв ранее одобренного преподавателя: статус уходит в rejected,
// флаг is_validated_teacher снимается.
func TestTeacherService_AdminValidate_DisapproveApprovedTeacher(t *testing.T) {
	userRepo := new(MockUserRepo)
	credsRepo := new(MockTeacherCredentialsRepo)
	svc := NewTeacherService(userRepo, credsRepo, &NoopEmailService{}, nil)
	svc.txRunner = runWithoutTx

	now := time.Now()
	user := &entity.User{ID: 7, Name: "Dr. Smith", Email: "smith@example.com", IsValidatedTeacher: true}
	creds := &entity.TeacherCredentials{UserID: 7, ValidationStatus: entity.ValidationApproved, ValidationDate: &now}
	revoked := &entity.User{ID: 7, Name: "Dr. Smith", IsValidatedTeacher: false}

	userRepo.On("GetByID", uint(7)).Return(user, nil).Once()
	credsRepo.On("GetByUser", uint(7)).Return(creds, nil).Once()
	userRepo.On("SetValidatedTeacher", mock.Anything, uint(7), false).Return(nil).Once()
	credsRepo.On("SetStatus", mock.Anything, uint(7), entity.ValidationRejected, mock.AnythingOfType("time.Time")).Return(nil).Once()
	userRepo.On("GetWithTeacherData", uint(7)).Return(revoked, nil).Once()

	got, err := svc.AdminValidate(7, false)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsValidatedTeacher)
	userRepo.AssertExpectations(t)
	credsRepo.AssertExpectations(t)
}

// Решение админа по пользователю без поданных документов: меняется
// только флаг, статус документов трогать нечего.
func TestTeacherService_AdminValidate_NoCredentialsOnFile(t *testing.T) {
	userRepo := new(MockUserRepo)
	credsRepo := new(MockTeacherCredentialsRepo)
	svc := NewTeacherService(userRepo, credsRepo, &NoopEmailService{}, nil)
	svc.txRunner = runWithoutTx

	user := &entity.User{ID: 7, Name: "Dr. Smith", Email: "smith@example.com"}
	validated := &entity.User{ID: 7, Name: "Dr. Smith", IsValidatedTeacher: true}

	userRepo.On("GetByID", uint(7)).Return(user, nil).Once()
	credsRepo.On("GetByUser", uint(7)).Return(nil, apperrors.ErrNotFound).Once()
	userRepo.On("SetValidatedTeacher", mock.Anything, uint(7), true).Return(nil).Once()
	userRepo.On("GetWithTeacherData", uint(7)).Return(validated, nil).Once()

	got, err := svc.AdminValidate(7, true)

	require.NoError(t, err)
	require.NotNil(t, got)
	credsRepo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
