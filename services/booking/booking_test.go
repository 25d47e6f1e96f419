package booking_test

import (
	"context"
	"errors"
	"testing"

	"bvetra/models"
	"bvetra/services/booking"
	"bvetra/services/notify"

	"go.uber.org/zap"
)

type countingChannel struct {
	name      string
	err       error
	sendCount int
}

func (c *countingChannel) Name() string     { return c.name }
func (c *countingChannel) Configured() bool { return true }
func (c *countingChannel) Send(ctx context.Context, req *models.BookingRequest) error {
	c.sendCount++
	return c.err
}

func validRequest() *models.BookingRequest {
	return &models.BookingRequest{
		Name:  "Ivan",
		Phone: "+375291234567",
		From:  "Minsk",
		To:    "Moscow",
		Date:  "2024-05-01",
	}
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	ch := &countingChannel{name: "bitrix"}
	svc := booking.NewIntakeService(notify.NewDispatcher(zap.NewNop(), ch), zap.NewNop())

	for _, mutate := range []func(*models.BookingRequest){
		func(r *models.BookingRequest) { r.Name = "" },
		func(r *models.BookingRequest) { r.Phone = "" },
		func(r *models.BookingRequest) { r.From = "" },
		func(r *models.BookingRequest) { r.To = "" },
		func(r *models.BookingRequest) { r.Date = "" },
	} {
		req := validRequest()
		mutate(req)
		_, err := svc.Submit(context.Background(), req)
		if !errors.Is(err, booking.ErrMissingRequired) {
			t.Errorf("expected ErrMissingRequired, got %v", err)
		}
	}
	if ch.sendCount != 0 {
		t.Fatalf("no channel may be attempted for an invalid request, got %d sends", ch.sendCount)
	}
}

func TestSubmitSucceedsDespiteChannelFailures(t *testing.T) {
	failing := &countingChannel{name: "owner-email", err: errors.New("relay down")}
	alsoFailing := &countingChannel{name: "bitrix", err: errors.New("webhook down")}
	svc := booking.NewIntakeService(notify.NewDispatcher(zap.NewNop(), failing, alsoFailing), zap.NewNop())

	outcomes, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("a channel outage must not fail the booking: %v", err)
	}
	for _, o := range outcomes {
		if o.Status != models.OutcomeFailed {
			t.Errorf("channel %s: expected failed outcome, got %s", o.Channel, o.Status)
		}
	}
	if failing.sendCount != 1 || alsoFailing.sendCount != 1 {
		t.Errorf("every channel must be attempted once")
	}
}

func TestSubmitNilRequest(t *testing.T) {
	svc := booking.NewIntakeService(notify.NewDispatcher(zap.NewNop()), zap.NewNop())
	if _, err := svc.Submit(context.Background(), nil); !errors.Is(err, booking.ErrMissingRequired) {
		t.Fatalf("expected ErrMissingRequired for nil request, got %v", err)
	}
}
