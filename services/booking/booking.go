// Package booking implements the transfer-request intake pipeline:
// server-side validation followed by a best-effort notification fan-out.
package booking

import (
	"context"
	"errors"

	"bvetra/models"
	"bvetra/services/notify"

	"go.uber.org/zap"
)

// ErrMissingRequired marks a request rejected by server-side validation.
var ErrMissingRequired = errors.New("booking: missing required fields")

// Service accepts one booking request, validates it and drives the
// notification channels. The outcome slice reports per-channel results for
// logging; it is never exposed to the HTTP client.
type Service interface {
	Submit(ctx context.Context, req *models.BookingRequest) ([]models.ChannelOutcome, error)
}

// IntakeService is the production implementation.
type IntakeService struct {
	Dispatcher *notify.Dispatcher
	Logger     *zap.Logger
}

func NewIntakeService(dispatcher *notify.Dispatcher, logger *zap.Logger) *IntakeService {
	return &IntakeService{Dispatcher: dispatcher, Logger: logger}
}

// Submit re-validates the request (client checks are never trusted), then
// runs every channel in order. Channel failures are absorbed by the
// dispatcher: a booking is accepted as long as the request itself was
// well-formed, so a CRM or relay outage never loses a lead.
func (s *IntakeService) Submit(ctx context.Context, req *models.BookingRequest) ([]models.ChannelOutcome, error) {
	if req == nil || req.MissingRequired() {
		return nil, ErrMissingRequired
	}

	s.Logger.Info("booking accepted",
		zap.String("name", req.Name),
		zap.String("route", req.Route()),
		zap.String("date", req.Date))

	outcomes := s.Dispatcher.Dispatch(ctx, req)

	for _, o := range outcomes {
		if o.Status == models.OutcomeFailed {
			s.Logger.Warn("booking notification incomplete",
				zap.String("channel", o.Channel),
				zap.String("error", o.Error))
		}
	}
	return outcomes, nil
}
