package service

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/qanooni/hr-assistant-be/types"
)

// WebSocketService answers chat messages over a websocket using the same
// orchestrator as the HTTP chat endpoint.
type WebSocketService struct {
	rag      *RAGService
	upgrader websocket.Upgrader
}

func NewWebSocketService(rag *RAGService, allowedOrigins []string) *WebSocketService {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origins[origin] = true
	}
	return &WebSocketService{
		rag: rag,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origins[origin]
			},
		},
	}
}

func (s *WebSocketService) HandleChat(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(512 * 1024) // 512KB max message size
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var req types.WebsocketRequest
		if err := json.Unmarshal(p, &req); err != nil {
			s.writeError(conn, "Invalid message")
			continue
		}

		switch req.Type {
		case types.TypeWebsocketChat:
			payloadBytes, err := json.Marshal(req.Payload)
			if err != nil {
				s.writeError(conn, "Invalid payload")
				continue
			}
			var chatReq types.ChatRequest
			if err := json.Unmarshal(payloadBytes, &chatReq); err != nil {
				s.writeError(conn, "Invalid payload")
				continue
			}
			resp, err := s.rag.Chat(ctx, chatReq)
			if err != nil {
				log.Println("Chat error:", err)
				s.writeError(conn, "Chat failed")
				continue
			}
			if err := conn.WriteJSON(types.WebSocketResponse{
				Type:    types.TypeWebsocketChat,
				Payload: resp,
			}); err != nil {
				log.Println("Write error:", err)
			}
		case types.TypeWebsocketPing:
			if err := conn.WriteJSON(types.WebSocketResponse{
				Type: types.TypeWebsocketPong,
			}); err != nil {
				log.Println("Write error:", err)
			}
		default:
			s.writeError(conn, "Invalid message type")
		}
	}
}

func (s *WebSocketService) writeError(conn *websocket.Conn, message string) {
	if err := conn.WriteJSON(types.WebSocketResponse{
		Type:    types.TypeWebsocketError,
		Payload: message,
	}); err != nil {
		log.Println("Write error:", err)
	}
}
