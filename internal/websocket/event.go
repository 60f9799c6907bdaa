package websocket

import "encoding/json"

// Типы событий чата. Протокол повторяет события клиента:
// вход в комнату курса, выход и сообщение.
const (
	EventJoinCourse  = "join_course"
	EventLeaveCourse = "leave_course"
	EventMessage     = "message"
	EventHistory     = "history"
	EventError       = "server:error"
)

// Event представляет структуру WebSocket-сообщения
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// OutgoingEvent — событие, отправляемое клиентам
type OutgoingEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// NewOutgoingEvent сериализует событие для отправки клиентам
func NewOutgoingEvent(eventType string, data interface{}) ([]byte, error) {
	return json.Marshal(OutgoingEvent{Type: eventType, Data: data})
}
