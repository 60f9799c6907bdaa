package websocket

import (
	"context"
	"log"
)

type eventKind int

const (
	eventRegister eventKind = iota
	eventUnregister
	eventJoin
	eventLeave
	eventBroadcast
)

// hubEvent — событие хаба. Все события идут через один канал: так события
// одного клиента (register → join → unregister) обрабатываются строго в
// порядке отправки, раздельные каналы такой порядок не гарантируют.
type hubEvent struct {
	kind     eventKind
	client   *Client
	courseID uint
	payload  []byte
}

// Hub ретранслирует сообщения чата по комнатам курсов.
// Всеми картами владеет одна горутина Run: клиенты общаются с хабом
// только через канал событий, внешних блокировок нет. Порядок доставки —
// порядок поступления событий в канал; упорядочивания между
// конкурирующими отправителями сверх этого не гарантируется.
type Hub struct {
	// Комнаты: courseID -> подключённые клиенты
	rooms map[uint]map[*Client]bool

	// Обратный индекс: клиент -> комнаты, в которых он состоит
	clientRooms map[*Client]map[uint]bool

	events chan hubEvent
}

// NewHub создает новый хаб чата
func NewHub() *Hub {
	return &Hub{
		rooms:       make(map[uint]map[*Client]bool),
		clientRooms: make(map[*Client]map[uint]bool),
		events:      make(chan hubEvent, 256),
	}
}

// Register подключает клиента к хабу
func (h *Hub) Register(client *Client) {
	h.events <- hubEvent{kind: eventRegister, client: client}
}

// Unregister отключает клиента от хаба и всех его комнат
func (h *Hub) Unregister(client *Client) {
	h.events <- hubEvent{kind: eventUnregister, client: client}
}

// Join подписывает клиента на комнату курса
func (h *Hub) Join(client *Client, courseID uint) {
	h.events <- hubEvent{kind: eventJoin, client: client, courseID: courseID}
}

// Leave отписывает клиента от комнаты курса
func (h *Hub) Leave(client *Client, courseID uint) {
	h.events <- hubEvent{kind: eventLeave, client: client, courseID: courseID}
}

// BroadcastToCourse отправляет сообщение всем клиентам комнаты курса.
// Доставка fire-and-forget: медленные клиенты пропускают сообщение.
func (h *Hub) BroadcastToCourse(courseID uint, payload []byte) {
	h.events <- hubEvent{kind: eventBroadcast, courseID: courseID, payload: payload}
}

// Run обрабатывает события хаба до отмены контекста
func (h *Hub) Run(ctx context.Context) {
	log.Println("[ChatHub] Хаб чата запущен")
	for {
		select {
		case <-ctx.Done():
			log.Println("[ChatHub] Останавливаем хаб чата...")
			for client := range h.clientRooms {
				close(client.send)
			}
			return

		case ev := <-h.events:
			h.handleEvent(ev)
		}
	}
}

func (h *Hub) handleEvent(ev hubEvent) {
	switch ev.kind {
	case eventRegister:
		h.clientRooms[ev.client] = make(map[uint]bool)
		log.Printf("[ChatHub] Клиент подключён: UserID=%d ConnID=%s", ev.client.UserID, ev.client.ConnectionID)

	case eventUnregister:
		h.removeClient(ev.client)

	case eventJoin:
		if _, ok := h.clientRooms[ev.client]; !ok {
			return // Клиент уже отключён
		}
		if h.rooms[ev.courseID] == nil {
			h.rooms[ev.courseID] = make(map[*Client]bool)
		}
		h.rooms[ev.courseID][ev.client] = true
		h.clientRooms[ev.client][ev.courseID] = true
		log.Printf("[ChatHub] UserID=%d вошёл в комнату курса %d", ev.client.UserID, ev.courseID)

	case eventLeave:
		h.removeFromRoom(ev.client, ev.courseID)
		log.Printf("[ChatHub] UserID=%d вышел из комнаты курса %d", ev.client.UserID, ev.courseID)

	case eventBroadcast:
		for client := range h.rooms[ev.courseID] {
			if !client.Send(ev.payload) {
				log.Printf("[ChatHub] Переполнен буфер клиента UserID=%d ConnID=%s, сообщение отброшено",
					client.UserID, client.ConnectionID)
			}
		}
	}
}

// removeClient убирает клиента из всех комнат и закрывает его канал отправки
func (h *Hub) removeClient(client *Client) {
	rooms, ok := h.clientRooms[client]
	if !ok {
		return
	}
	for courseID := range rooms {
		h.removeFromRoom(client, courseID)
	}
	delete(h.clientRooms, client)
	close(client.send)
	log.Printf("[ChatHub] Клиент отключён: UserID=%d ConnID=%s", client.UserID, client.ConnectionID)
}

// removeFromRoom убирает клиента из комнаты, удаляя пустые комнаты
func (h *Hub) removeFromRoom(client *Client, courseID uint) {
	if room, ok := h.rooms[courseID]; ok {
		delete(room, client)
		if len(room) == 0 {
			delete(h.rooms, courseID)
		}
	}
	if rooms, ok := h.clientRooms[client]; ok {
		delete(rooms, courseID)
	}
}
