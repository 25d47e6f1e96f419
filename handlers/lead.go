package handlers

import (
	"net/http"

	"bvetra/models"
	"bvetra/services/notify"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LeadHandler forwards generic site-form submissions to the CRM.
type LeadHandler struct {
	Bitrix *notify.BitrixClient
	Logger *zap.Logger
}

func NewLeadHandler(bitrix *notify.BitrixClient, logger *zap.Logger) *LeadHandler {
	return &LeadHandler{Bitrix: bitrix, Logger: logger}
}

func (h *LeadHandler) Create(c *gin.Context) {
	if h.Bitrix == nil || !h.Bitrix.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "BITRIX_WEBHOOK_URL not configured"})
		return
	}

	var sub models.LeadSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	result, err := h.Bitrix.CreateLead(c.Request.Context(), notify.SubmissionLeadFields(&sub))
	if err != nil {
		h.Logger.Error("lead create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "data": result})
}
