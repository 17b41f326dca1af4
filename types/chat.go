package types

// Message represents a single message in the conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Source is a cited retrieval result echoed back to the caller. Ref matches
// the "[#n]" labels used in the grounded prompt so inline citations in the
// model output are resolvable.
type Source struct {
	Type     string `json:"type"`
	FileName string `json:"fileName"`
	Content  string `json:"content"`
	Ref      string `json:"ref"`
}

const (
	TypeWebsocketPing  = "ping"
	TypeWebsocketPong  = "pong"
	TypeWebsocketChat  = "chat"
	TypeWebsocketError = "error"
)

type WebsocketRequest struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type WebSocketResponse struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
