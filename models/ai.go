package models

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the assistant endpoint input.
type ChatRequest struct {
	BusinessID string        `json:"-"`
	SessionID  string        `json:"sessionId"`
	Message    string        `json:"message" binding:"required"`
	History    []ChatMessage `json:"conversationHistory,omitempty"`
}

// ChatResponse is the assistant endpoint output.
type ChatResponse struct {
	SessionID string `json:"sessionId"`
	Reply     string `json:"reply"`
}

// ChatContext is the per-session assistant state kept in Redis.
type ChatContext struct {
	BusinessID string        `json:"businessId"`
	History    []ChatMessage `json:"history"`
}
