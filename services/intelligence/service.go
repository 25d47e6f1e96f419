// Package ai implements the site chat assistant: a thin stateful proxy in
// front of a generative model, with conversation history kept per session.
package ai

import (
	"context"
	"fmt"
	"strings"

	"bvetra/models"

	"github.com/google/uuid"
)

const systemPrompt = "You are a helpful assistant for the Bvetra website. " +
	"Help users navigate, answer questions about services and fleet, and " +
	"assist in creating booking requests by asking for the required fields. " +
	"Be concise and friendly."

// Service answers one user message in the context of its session.
type Service interface {
	Chat(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error)
}

// DefaultAIService is the production implementation.
type DefaultAIService struct {
	gen   Generator
	store HistoryStore
}

func NewDefaultAIService(gen Generator, store HistoryStore) *DefaultAIService {
	return &DefaultAIService{gen: gen, store: store}
}

// Chat builds one prompt from the system instruction, the session history
// (inline history from the request wins over the stored one) and the new
// user message. On success both turns are appended to the stored history.
func (s *DefaultAIService) Chat(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	history := req.Messages
	if len(history) == 0 {
		stored, err := s.store.Get(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("load chat history: %w", err)
		}
		history = stored
	}

	reply, err := s.gen.GenerateContent(ctx, buildPrompt(history, req.Message))
	if err != nil {
		return nil, err
	}

	history = append(history,
		models.ChatMessage{Role: "user", Content: req.Message},
		models.ChatMessage{Role: "assistant", Content: reply},
	)
	// History loss only degrades follow-up answers; the reply stands.
	_ = s.store.Set(ctx, sessionID, history)

	return &models.ChatResponse{OK: true, Reply: reply, SessionID: sessionID}, nil
}

func buildPrompt(history []models.ChatMessage, message string) string {
	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\n")
	for _, m := range history {
		switch m.Role {
		case "assistant":
			sb.WriteString("Assistant: ")
		default:
			sb.WriteString("User: ")
		}
		sb.WriteString(m.Content)
		sb.WriteString("\n")
	}
	sb.WriteString("User: ")
	sb.WriteString(message)
	sb.WriteString("\nAssistant:")
	return sb.String()
}
