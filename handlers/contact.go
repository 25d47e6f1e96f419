package handlers

import (
	"fmt"
	"net/http"

	"bvetra/services/notify"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler forwards contact-form messages to the site mailbox.
type ContactHandler struct {
	Mailer notify.MailSender
	To     string
	Logger *zap.Logger
}

func NewContactHandler(mailer notify.MailSender, to string, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{Mailer: mailer, To: to, Logger: logger}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *ContactHandler) Send(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}
	if req.Email == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	from := req.Name
	if from == "" {
		from = req.Email
	}
	subject := fmt.Sprintf("Website contact from %s", from)
	html := fmt.Sprintf("<p><strong>From:</strong> %s &lt;%s&gt;</p><p>%s</p>",
		orUnknown(req.Name), req.Email, req.Message)

	if h.Mailer == nil || !h.Mailer.Configured() || h.To == "" {
		h.Logger.Error("contact mail relay not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		return
	}
	if err := h.Mailer.Send(h.To, subject, html, req.Message); err != nil {
		h.Logger.Error("contact mail send failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
