package types

type ChatRequest struct {
	Message string    `json:"message"`
	History []Message `json:"history,omitempty"`
	Mode    string    `json:"mode"`
}

type DeleteDocumentsRequest struct {
	Type string `json:"type,omitempty"`
}
