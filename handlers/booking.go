package handlers

import (
	"errors"
	"net/http"

	"bvetra/middleware"
	"bvetra/models"
	"bvetra/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the transfer booking intake endpoint.
type BookingHandler struct {
	Svc    booking.Service
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// Create accepts one booking request. The verdict reflects only whether
// the request was well-formed and processing was attempted; individual
// channel outcomes stay in the logs.
func (h *BookingHandler) Create(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("booking body parse failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{OK: false, Message: "Server error"})
		return
	}

	outcomes, err := h.Svc.Submit(c.Request.Context(), &req)
	if errors.Is(err, booking.ErrMissingRequired) {
		c.JSON(http.StatusBadRequest, models.APIResponse{OK: false, Message: "Missing required fields"})
		return
	}
	if err != nil {
		h.Logger.Error("booking submit failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{OK: false, Message: "Server error"})
		return
	}

	h.Logger.Debug("booking fan-out finished",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Any("outcomes", outcomes))
	c.JSON(http.StatusOK, models.APIResponse{OK: true})
}
