package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bvetra/handlers"
	"bvetra/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubAssistant struct {
	reply string
	err   error
}

func (s *stubAssistant) Chat(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.ChatResponse{OK: true, Reply: s.reply, SessionID: "sess-1"}, nil
}

func postChat(t *testing.T, h *handlers.ChatHandler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	h.Message(c)
	return w
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	h := handlers.NewChatHandler(&stubAssistant{}, zap.NewNop())
	w := postChat(t, h, []byte(`{"message":""}`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestChatUnconfiguredAssistant(t *testing.T) {
	h := handlers.NewChatHandler(nil, zap.NewNop())
	w := postChat(t, h, []byte(`{"message":"hello"}`))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when no assistant is wired, got %d", w.Code)
	}
}

func TestChatReturnsReply(t *testing.T) {
	h := handlers.NewChatHandler(&stubAssistant{reply: "How can I help?"}, zap.NewNop())
	w := postChat(t, h, []byte(`{"message":"hello"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp models.ChatResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.OK || resp.Reply != "How can I help?" || resp.SessionID == "" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestChatModelFailure(t *testing.T) {
	h := handlers.NewChatHandler(&stubAssistant{err: errors.New("model unavailable")}, zap.NewNop())
	w := postChat(t, h, []byte(`{"message":"hello"}`))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
