package entity

import (
	"time"
)

// ChatMessage — сообщение чата курса. Сообщения не хранятся в PostgreSQL:
// хаб ретранслирует их подключённым клиентам, а ограниченная история
// держится в Redis-списке курса.
type ChatMessage struct {
	ID         string    `json:"id"` // uuid
	CourseID   uint      `json:"course_id"`
	SenderID   uint      `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}
