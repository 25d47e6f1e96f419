package notify

import (
	"context"
	"errors"

	"bvetra/models"

	"go.uber.org/zap"
)

// ErrSkip is returned by a channel when the booking itself makes the
// channel inapplicable (e.g. no customer email to confirm to).
var ErrSkip = errors.New("notify: channel not applicable")

// Channel is one independent notification target for a booking. A channel
// with missing configuration reports Configured() == false and is skipped
// without being treated as a failure.
type Channel interface {
	Name() string
	Configured() bool
	Send(ctx context.Context, req *models.BookingRequest) error
}

// Dispatcher fans a booking out to its channels in a fixed order. Each
// channel is isolated: an error is logged and recorded but never stops the
// remaining channels and never reaches the HTTP client.
type Dispatcher struct {
	Channels []Channel
	Logger   *zap.Logger
}

func NewDispatcher(logger *zap.Logger, channels ...Channel) *Dispatcher {
	return &Dispatcher{Channels: channels, Logger: logger}
}

// Dispatch runs every channel sequentially and returns one outcome per
// channel, in channel order.
func (d *Dispatcher) Dispatch(ctx context.Context, req *models.BookingRequest) []models.ChannelOutcome {
	outcomes := make([]models.ChannelOutcome, 0, len(d.Channels))

	for _, ch := range d.Channels {
		outcome := models.ChannelOutcome{Channel: ch.Name()}

		switch {
		case !ch.Configured():
			outcome.Status = models.OutcomeSkipped
			d.Logger.Warn("notification channel not configured, skipping",
				zap.String("channel", ch.Name()))
		default:
			err := ch.Send(ctx, req)
			switch {
			case err == nil:
				outcome.Status = models.OutcomeSent
				d.Logger.Info("notification sent",
					zap.String("channel", ch.Name()),
					zap.String("route", req.Route()))
			case errors.Is(err, ErrSkip):
				outcome.Status = models.OutcomeSkipped
				d.Logger.Info("notification channel not applicable, skipping",
					zap.String("channel", ch.Name()))
			default:
				outcome.Status = models.OutcomeFailed
				outcome.Error = err.Error()
				d.Logger.Error("notification channel failed",
					zap.String("channel", ch.Name()),
					zap.Error(err))
			}
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes
}
