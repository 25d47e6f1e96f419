package handlers

import (
	"net/http"

	"bvetra/models"
	ai "bvetra/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler proxies site chat messages to the assistant service.
// Svc is nil when no model API key is configured.
type ChatHandler struct {
	Svc    ai.Service
	Logger *zap.Logger
}

func NewChatHandler(svc ai.Service, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Svc: svc, Logger: logger}
}

func (h *ChatHandler) Message(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, models.ChatResponse{OK: false})
		return
	}

	if h.Svc == nil {
		c.JSON(http.StatusInternalServerError, models.ChatResponse{OK: false, Message: "Assistant not configured"})
		return
	}

	resp, err := h.Svc.Chat(c.Request.Context(), &req)
	if err != nil {
		h.Logger.Error("chat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ChatResponse{OK: false, Message: "Server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
