package models

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is a message to the site assistant. Messages may carry an
// inline history; otherwise the stored session history is used.
type ChatRequest struct {
	Message   string        `json:"message"`
	SessionID string        `json:"sessionId,omitempty"`
	Messages  []ChatMessage `json:"messages,omitempty"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	OK        bool   `json:"ok"`
	Reply     string `json:"reply,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message,omitempty"`
}
