package service

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
)

// MockCacheRepo реализует repository.CacheRepository
type MockCacheRepo struct {
	mock.Mock
}

func (m *MockCacheRepo) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockCacheRepo) SetJSON(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepo) GetJSON(key string, dest interface{}) error {
	args := m.Called(key, dest)
	return args.Error(0)
}

func (m *MockCacheRepo) ListPush(key string, value interface{}, maxLen int64) error {
	args := m.Called(key, value, maxLen)
	return args.Error(0)
}

func (m *MockCacheRepo) ListRange(key string, start, stop int64) ([]string, error) {
	args := m.Called(key, start, stop)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestChatService_RecordMessage(t *testing.T) {
	cacheRepo := new(MockCacheRepo)
	svc := NewChatService(cacheRepo)

	cacheRepo.On("ListPush", "chat:course:3:history", mock.Anything, int64(chatHistoryLen)).Return(nil).Once()

	msg := svc.RecordMessage(3, 7, "Dr. Smith", "hello")

	require.NotNil(t, msg)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, uint(3), msg.CourseID)
	assert.Equal(t, uint(7), msg.SenderID)
	assert.Equal(t, "Dr. Smith", msg.SenderName)
	assert.Equal(t, "hello", msg.Content)
	assert.False(t, msg.Timestamp.IsZero())
	cacheRepo.AssertExpectations(t)
}

func TestChatService_RecordMessage_CacheErrorDoesNotFail(t *testing.T) {
	cacheRepo := new(MockCacheRepo)
	svc := NewChatService(cacheRepo)

	cacheRepo.On("ListPush", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

	// Отказ Redis не должен мешать доставке сообщения
	msg := svc.RecordMessage(3, 7, "Dr. Smith", "hello")

	require.NotNil(t, msg)
	assert.NotEmpty(t, msg.ID)
}

func TestChatService_History(t *testing.T) {
	cacheRepo := new(MockCacheRepo)
	svc := NewChatService(cacheRepo)

	first, _ := json.Marshal(entity.ChatMessage{ID: "a", CourseID: 3, Content: "first"})
	second, _ := json.Marshal(entity.ChatMessage{ID: "b", CourseID: 3, Content: "second"})
	cacheRepo.On("ListRange", "chat:course:3:history", int64(0), int64(-1)).
		Return([]string{string(first), "not-json", string(second)}, nil).Once()

	messages, err := svc.History(3)

	require.NoError(t, err)
	// Нечитаемые записи пропускаются, порядок сохраняется
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "second", messages[1].Content)
}

func TestChatService_History_CacheError(t *testing.T) {
	cacheRepo := new(MockCacheRepo)
	svc := NewChatService(cacheRepo)

	cacheRepo.On("ListRange", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("redis down")).Once()

	messages, err := svc.History(3)

	require.Error(t, err)
	assert.Nil(t, messages)
}
