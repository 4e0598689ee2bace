package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

type Hub struct {
	Clients       map[string]map[*websocket.Conn]*Client // Theo từng summaryID
	GlobalClients map[*websocket.Conn]*Client            // Dành cho broadcast chung
	Mutex         sync.RWMutex
}

var H = Hub{
	Clients:       make(map[string]map[*websocket.Conn]*Client),
	GlobalClients: make(map[*websocket.Conn]*Client),
}

// Trạng thái tiến trình AI (enhance / merge / quiz) của 1 bài tóm tắt
type GenerationStatusUpdate struct {
	SummaryID string `json:"summary_id"`
	Workflow  string `json:"workflow"` // enhance | update_from_media | generate_quiz
	Status    string `json:"status"`   // Đang xử lý | Hoàn thành | Lỗi
	Error     string `json:"error,omitempty"`
}

// Register theo summaryID riêng
func (h *Hub) Register(summaryID string, conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if _, ok := h.Clients[summaryID]; !ok {
		h.Clients[summaryID] = make(map[*websocket.Conn]*Client)
	}

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	h.Clients[summaryID][conn] = client

	go h.readPump(summaryID, conn)
	go h.writePump(summaryID, conn)
}

// Register global cho trang danh sách
func (h *Hub) RegisterGlobal(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	h.GlobalClients[conn] = client

	go h.readGlobalPump(conn)
	go h.writeGlobalPump(conn)
}

// Broadcast theo summaryID
func (h *Hub) Broadcast(summaryID string, messageType int, data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	if clients, ok := h.Clients[summaryID]; ok {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
			}
		}
	}
}

// Broadcast toàn bộ global clients (danh sách)
func (h *Hub) BroadcastGlobal(messageType int, data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	for _, client := range h.GlobalClients {
		select {
		case client.Send <- data:
		default:
		}
	}
}

// GetStats trả số liệu kết nối cho health check
func (h *Hub) GetStats() map[string]int {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	perSummary := 0
	for _, clients := range h.Clients {
		perSummary += len(clients)
	}
	return map[string]int{
		"summary_clients": perSummary,
		"global_clients":  len(h.GlobalClients),
	}
}

// Public function gửi trạng thái tiến trình AI của 1 bài tóm tắt
func SendGenerationStatus(summaryID, workflow, status, errorMsg string) {
	update := GenerationStatusUpdate{
		SummaryID: summaryID,
		Workflow:  workflow,
		Status:    status,
		Error:     errorMsg,
	}
	data, err := json.Marshal(update)
	if err != nil {
		log.Println("JSON marshal error:", err)
		return
	}
	H.Broadcast(summaryID, websocket.TextMessage, data)
}

// Public function báo nội dung (môn học / bài tóm tắt) có thay đổi
func BroadcastContentChanged() {
	data := []byte(`{"type": "content_changed"}`)
	H.BroadcastGlobal(websocket.TextMessage, data)
}

// Unregister client theo summaryID
func (h *Hub) Unregister(summaryID string, conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if clients, ok := h.Clients[summaryID]; ok {
		if client, ok := clients[conn]; ok {
			close(client.Send)
			delete(clients, conn)
		}
		if len(clients) == 0 {
			delete(h.Clients, summaryID)
		}
	}
}

// Unregister global client
func (h *Hub) UnregisterGlobal(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if client, ok := h.GlobalClients[conn]; ok {
		close(client.Send)
		delete(h.GlobalClients, conn)
	}
}

// Read pump riêng theo summaryID
func (h *Hub) readPump(summaryID string, conn *websocket.Conn) {
	defer h.Unregister(summaryID, conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Write pump riêng theo summaryID
func (h *Hub) writePump(summaryID string, conn *websocket.Conn) {
	client := h.Clients[summaryID][conn]
	defer func() {
		conn.WriteMessage(websocket.CloseMessage, []byte{})
		conn.Close()
	}()
	for msg := range client.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// Read pump global
func (h *Hub) readGlobalPump(conn *websocket.Conn) {
	defer h.UnregisterGlobal(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Write pump global
func (h *Hub) writeGlobalPump(conn *websocket.Conn) {
	client := h.GlobalClients[conn]
	defer func() {
		conn.WriteMessage(websocket.CloseMessage, []byte{})
		conn.Close()
	}()
	for msg := range client.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}
