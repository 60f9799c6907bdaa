package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
	"github.com/yourusername/peerlearn-api/internal/domain/repository"
)

// chatHistoryLen — сколько последних сообщений курса хранится в Redis
const chatHistoryLen = 50

// ChatService хранит ограниченную историю сообщений чата курса.
// Доставка сообщений — забота websocket-хаба; сервис отвечает только
// за присвоение идентификаторов и историю.
type ChatService struct {
	cacheRepo repository.CacheRepository
}

// NewChatService создает новый сервис чата
func NewChatService(cacheRepo repository.CacheRepository) *ChatService {
	return &ChatService{cacheRepo: cacheRepo}
}

func chatHistoryKey(courseID uint) string {
	return fmt.Sprintf("chat:course:%d:history", courseID)
}

// RecordMessage присваивает сообщению ID и время и добавляет его в историю
// курса. Ошибка записи истории не мешает доставке: сообщение уже ушло
// подключённым клиентам.
func (s *ChatService) RecordMessage(courseID, senderID uint, senderName, content string) *entity.ChatMessage {
	msg := &entity.ChatMessage{
		ID:         uuid.New().String(),
		CourseID:   courseID,
		SenderID:   senderID,
		SenderName: senderName,
		Content:    content,
		Timestamp:  time.Now(),
	}

	key := chatHistoryKey(courseID)
	if err := s.cacheRepo.ListPush(key, msg, chatHistoryLen); err != nil {
		log.Printf("[ChatService.RecordMessage] Не удалось сохранить сообщение в историю курса %d: %v", courseID, err)
	}
	return msg
}

// History возвращает последние сообщения курса в порядке отправки
func (s *ChatService) History(courseID uint) ([]entity.ChatMessage, error) {
	raw, err := s.cacheRepo.ListRange(chatHistoryKey(courseID), 0, -1)
	if err != nil {
		return nil, err
	}

	messages := make([]entity.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var msg entity.ChatMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			log.Printf("[ChatService.History] Пропущено нечитаемое сообщение в истории курса %d: %v", courseID, err)
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
