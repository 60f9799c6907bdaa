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

// ============================================================================
// Моки для ResultService
// ============================================================================

// MockTestRepo реализует repository.TestRepository
type MockTestRepo struct {
	mock.Mock
}

func (m *MockTestRepo) List() ([]entity.Test, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Test), args.Error(1)
}

func (m *MockTestRepo) GetWithQuestions(id uint) (*entity.Test, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Test), args.Error(1)
}

func (m *MockTestRepo) GetBySubjectID(subjectID uint) (*entity.Test, error) {
	args := m.Called(subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Test), args.Error(1)
}

// MockResultRepo реализует repository.ResultRepository
type MockResultRepo struct {
	mock.Mock
}

func (m *MockResultRepo) Save(tx *gorm.DB, result *entity.Result) error {
	args := m.Called(tx, result)
	return args.Error(0)
}

func (m *MockResultRepo) GetByID(id uint) (*entity.Result, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Result), args.Error(1)
}

func (m *MockResultRepo) ListByUser(userID uint) ([]entity.Result, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Result), args.Error(1)
}

func (m *MockResultRepo) ListByTest(testID uint) ([]entity.Result, error) {
	args := m.Called(testID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Result), args.Error(1)
}

func newResultServiceForTest(testRepo *MockTestRepo, resultRepo *MockResultRepo) *ResultService {
	certService := NewCertificationService(new(MockCertificationRepo), new(MockUserRepo))
	return NewResultService(testRepo, resultRepo, certService, &NoopEmailService{}, nil)
}

// ============================================================================
// SubmitTest — ошибки до транзакции
// ============================================================================

func TestResultService_SubmitTest_TestNotFound(t *testing.T) {
	testRepo := new(MockTestRepo)
	resultRepo := new(MockResultRepo)
	svc := newResultServiceForTest(testRepo, resultRepo)

	caller := &entity.User{ID: 5, Role: entity.RoleUser}
	testRepo.On("GetWithQuestions", uint(99)).Return(nil, apperrors.ErrNotFound).Once()

	result, cert, err := svc.SubmitTest(caller, 99, []int{0, 1})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Nil(t, result)
	assert.Nil(t, cert)
	resultRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestResultService_SubmitTest_TooManyAnswers(t *testing.T) {
	testRepo := new(MockTestRepo)
	resultRepo := new(MockResultRepo)
	svc := newResultServiceForTest(testRepo, resultRepo)

	caller := &entity.User{ID: 5, Role: entity.RoleUser}
	testRepo.On("GetWithQuestions", uint(1)).Return(newScoringTest(70, 1, 1), nil).Once()

	result, cert, err := svc.SubmitTest(caller, 1, []int{0, 1, 0})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Nil(t, result)
	assert.Nil(t, cert)
	// Невалидная сдача не оставляет записей
	resultRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestResultService_SubmitTest_EmptyTest(t *testing.T) {
	testRepo := new(MockTestRepo)
	resultRepo := new(MockResultRepo)
	svc := newResultServiceForTest(testRepo, resultRepo)

	caller := &entity.User{ID: 5, Role: entity.RoleUser}
	testRepo.On("GetWithQuestions", uint(1)).Return(newScoringTest(70), nil).Once()

	_, _, err := svc.SubmitTest(caller, 1, []int{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	resultRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// ============================================================================
// Чтение результатов — контроль доступа
// ============================================================================

func TestResultService_GetUserResults_Owner(t *testing.T) {
	testRepo := new(MockTestRepo)
	resultRepo := new(MockResultRepo)
	svc := newResultServiceForTest(testRepo, resultRepo)

	caller := &entity.User{ID: 5, Role: entity.RoleUser}
	expected := []entity.Result{
		{ID: 2, UserID: 5, Subject: "Physics", Score: 90, Passed: true, CompletedAt: time.Now()},
		{ID: 1, UserID: 5, Subject: "Physics", Score: 40, Passed: false, CompletedAt: time.Now().Add(-time.Hour)},
	}
	resultRepo.On("ListByUser", uint(5)).Return(expected, nil).Once()

	results, err := svc.GetUserResults(caller, 5)

	require.NoError(t, err)
	assert.Equal(t, expected, results)
}

func TestResultService_GetUserResults_Forbidden(t *testing.T) {
	testRepo := new(MockTestRepo)
	resultRepo := new(MockResultRepo)
	svc := newResultServiceForTest(testRepo, resultRepo)

	caller := &entity.User{ID: 2, Role: entity.RoleUser}

	results, err := svc.GetUserResults(caller, 5)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
	assert.Nil(t, results)
	resultRepo.AssertNotCalled(t, "ListByUser", mock.Anything)
}

func TestResultService_GetUserResults_AdminAllowed(t *testing.T) {
	testRepo := new(MockTestRepo)
	resultRepo := new(MockResultRepo)
	svc := newResultServiceForTest(testRepo, resultRepo)

	admin := &entity.User{ID: 1, Role: entity.RoleAdmin}
	resultRepo.On("ListByUser", uint(5)).Return([]entity.Result{}, nil).Once()

	_, err := svc.GetUserResults(admin, 5)

	require.NoError(t, err)
	resultRepo.AssertExpectations(t)
}

func TestResultService_GetResult_OwnerAndForbidden(t *testing.T) {
	testRepo := new(MockTestRepo)
	resultRepo := new(MockResultRepo)
	svc := newResultServiceForTest(testRepo, resultRepo)

	stored := &entity.Result{ID: 7, UserID: 5, Subject: "Physics", Score: 90, Passed: true}
	resultRepo.On("GetByID", uint(7)).Return(stored, nil)

	owner := &entity.User{ID: 5, Role: entity.RoleUser}
	result, err := svc.GetResult(owner, 7)
	require.NoError(t, err)
	assert.Equal(t, stored, result)

	stranger := &entity.User{ID: 3, Role: entity.RoleUser}
	result, err = svc.GetResult(stranger, 7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
	assert.Nil(t, result)
}

func TestResultService_GetResult_NotFound(t *testing.T) {
	testRepo := new(MockTestRepo)
	resultRepo := new(MockResultRepo)
	svc := newResultServiceForTest(testRepo, resultRepo)

	caller := &entity.User{ID: 5, Role: entity.RoleUser}
	resultRepo.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound).Once()

	result, err := svc.GetResult(caller, 99)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Nil(t, result)
}

func TestResultService_GetTestResults_TestNotFound(t *testing.T) {
	testRepo := new(MockTestRepo)
	resultRepo := new(MockResultRepo)
	svc := newResultServiceForTest(testRepo, resultRepo)

	testRepo.On("GetWithQuestions", uint(99)).Return(nil, apperrors.ErrNotFound).Once()

	results, err := svc.GetTestResults(99)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Nil(t, results)
	resultRepo.AssertNotCalled(t, "ListByTest", mock.Anything)
}

// ============================================================================
// SubmitTest — транзакционные пути (транзакция подменяется прямым вызовом)
// ============================================================================

func runWithoutTx(fn func(tx *gorm.DB) error) error { return fn(nil) }

func TestResultService_SubmitTest_PassIssuesCertification(t *testing.T) {
	testRepo := new(MockTestRepo)
	resultRepo := new(MockResultRepo)
	certRepo := new(MockCertificationRepo)
	userRepo := new(MockUserRepo)
	svc := NewResultService(testRepo, resultRepo, NewCertificationService(certRepo, userRepo), &NoopEmailService{}, nil)
	svc.txRunner = runWithoutTx

	caller := &entity.User{ID: 5, Role: entity.RoleUser, Email: "smith@example.com"}
	testRepo.On("GetWithQuestions", uint(1)).Return(newScoringTest(70, 0, 1, 2), nil).Once()
	resultRepo.On("Save", mock.Anything, mock.AnythingOfType("*entity.Result")).Return(nil).Once()
	certRepo.On("Append", mock.Anything, mock.AnythingOfType("*entity.Certification")).Return(nil).Once()
	userRepo.On("SetValidatedTeacher", mock.Anything, uint(5), true).Return(nil).Once()

	result, cert, err := svc.SubmitTest(caller, 1, []int{0, 1, 2})

	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, cert)
	assert.Equal(t, 100, result.Score)
	assert.True(t, result.Passed)
	assert.Equal(t, uint(5), cert.UserID)
	assert.Equal(t, "Mathematics", cert.Subject)
	assert.Equal(t, result.CompletedAt.Add(entity.CertificationValidity), cert.ExpiryDate)
	resultRepo.AssertExpectations(t)
	certRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestResultService_SubmitTest_RepeatSubmissionAppendsSecondRow(t *testing.T) {
	testRepo := new(MockTestRepo)
	resultRepo := new(MockResultRepo)
	svc := newResultServiceForTest(testRepo, resultRepo)
	svc.txRunner = runWithoutTx

	caller := &entity.User{ID: 5, Role: entity.RoleUser}
	testRepo.On("GetWithQuestions", uint(1)).Return(newScoringTest(70, 0, 1, 2), nil).Twice()
	resultRepo.On("Save", mock.Anything, mock.AnythingOfType("*entity.Result")).Return(nil).Twice()

	// Обе сдачи проваливаются: сертификация не выдаётся, но записи копятся
	first, cert1, err := svc.SubmitTest(caller, 1, []int{3, 3, 3})
	require.NoError(t, err)
	second, cert2, err := svc.SubmitTest(caller, 1, []int{3, 3, 3})
	require.NoError(t, err)

	assert.Nil(t, cert1)
	assert.Nil(t, cert2)
	assert.NotSame(t, first, second)
	resultRepo.AssertNumberOfCalls(t, "Save", 2)
}

func TestResultService_SubmitTest_SaveErrorAbortsSubmission(t *testing.T) {
	testRepo := new(MockTestRepo)
	resultRepo := new(MockResultRepo)
	svc := newResultServiceForTest(testRepo, resultRepo)
	svc.txRunner = runWithoutTx

	caller := &entity.User{ID: 5, Role: entity.RoleUser}
	testRepo.On("GetWithQuestions", uint(1)).Return(newScoringTest(70, 0, 1, 2), nil).Once()
	resultRepo.On("Save", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	result, cert, err := svc.SubmitTest(caller, 1, []int{0, 1, 2})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Nil(t, cert)
}
