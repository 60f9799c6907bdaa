package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"

	"github.com/yourusername/peerlearn-api/internal/domain/repository"
	"github.com/yourusername/peerlearn-api/internal/service"
	"github.com/yourusername/peerlearn-api/internal/websocket"
	"github.com/yourusername/peerlearn-api/pkg/auth"
)

// maxChatMessageLen ограничивает длину одного сообщения чата
const maxChatMessageLen = 1000

// WSHandler обрабатывает WebSocket соединения чатов курсов
type WSHandler struct {
	hub         *websocket.Hub
	chatService *service.ChatService
	jwtService  *auth.JWTService
	userRepo    repository.UserRepository
}

// NewWSHandler создает новый обработчик WebSocket
func NewWSHandler(
	hub *websocket.Hub,
	chatService *service.ChatService,
	jwtService *auth.JWTService,
	userRepo repository.UserRepository,
) *WSHandler {
	return &WSHandler{
		hub:         hub,
		chatService: chatService,
		jwtService:  jwtService,
		userRepo:    userRepo,
	}
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		// Пустой Origin — не браузерный клиент (мобильное приложение, curl),
		// такие подключения разрешаем
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}

		// Список разрешенных origin (синхронизирован с CORS в main.go)
		allowedOrigins := []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}
		for _, allowed := range allowedOrigins {
			if origin == allowed {
				return true
			}
		}

		log.Printf("[WSHandler] Отклонено подключение с origin: %s", origin)
		return false
	},
}

// HandleConnection устанавливает WebSocket-соединение.
// Токен передаётся query-параметром token или заголовком Authorization
func (h *WSHandler) HandleConnection(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = parts[1]
		}
	}
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token is required"})
		return
	}

	claims, err := h.jwtService.ParseToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	user, err := h.userRepo.GetByID(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WSHandler] Ошибка апгрейда соединения для userID=%d: %v", user.ID, err)
		return
	}

	client := websocket.NewClient(h.hub, conn, user.ID, user.Name)
	h.hub.Register(client)
	client.Run(h.handleMessage)
}

// joinPayload — данные событий join_course и leave_course
type joinPayload struct {
	CourseID uint `json:"course_id"`
}

// messagePayload — данные события message
type messagePayload struct {
	CourseID uint   `json:"course_id"`
	Content  string `json:"content"`
}

// handleMessage разбирает входящее событие клиента и выполняет его
func (h *WSHandler) handleMessage(message []byte, client *websocket.Client) error {
	var event websocket.Event
	if err := json.Unmarshal(message, &event); err != nil {
		h.sendError(client, "invalid message format")
		return nil
	}

	switch event.Type {
	case websocket.EventJoinCourse:
		var payload joinPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil || payload.CourseID == 0 {
			h.sendError(client, "invalid course_id")
			return nil
		}
		h.hub.Join(client, payload.CourseID)

		// Новому участнику отправляем недавнюю историю комнаты
		history, err := h.chatService.History(payload.CourseID)
		if err != nil {
			log.Printf("[WSHandler] Не удалось загрузить историю чата курса ID=%d: %v", payload.CourseID, err)
			return nil
		}
		if data, err := websocket.NewOutgoingEvent(websocket.EventHistory, history); err == nil {
			client.Send(data)
		}

	case websocket.EventLeaveCourse:
		var payload joinPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil || payload.CourseID == 0 {
			h.sendError(client, "invalid course_id")
			return nil
		}
		h.hub.Leave(client, payload.CourseID)

	case websocket.EventMessage:
		var payload messagePayload
		if err := json.Unmarshal(event.Data, &payload); err != nil || payload.CourseID == 0 {
			h.sendError(client, "invalid message payload")
			return nil
		}
		content := strings.TrimSpace(payload.Content)
		if content == "" || len(content) > maxChatMessageLen {
			h.sendError(client, "message content must be 1-1000 characters")
			return nil
		}

		msg := h.chatService.RecordMessage(payload.CourseID, client.UserID, client.UserName, content)
		data, err := websocket.NewOutgoingEvent(websocket.EventMessage, msg)
		if err != nil {
			return err
		}
		h.hub.BroadcastToCourse(payload.CourseID, data)

	default:
		h.sendError(client, "unknown event type: "+event.Type)
	}

	return nil
}

func (h *WSHandler) sendError(client *websocket.Client, message string) {
	if data, err := websocket.NewOutgoingEvent(websocket.EventError, gin.H{"message": message}); err == nil {
		client.Send(data)
	}
}
