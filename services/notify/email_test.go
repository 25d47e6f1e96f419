package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gopkg.in/gomail.v2"
)

func stubMailer(sent *[]*gomail.Message) *Mailer {
	return &Mailer{
		cfg: MailerConfig{Host: "smtp.test", Port: 587, User: "u", Pass: "p", From: "no-reply@test"},
		send: func(m *gomail.Message) error {
			*sent = append(*sent, m)
			return nil
		},
	}
}

func TestOwnerEmailBodySubstitutesDashes(t *testing.T) {
	req := sampleBooking()
	html, text := ownerEmailBody(req, "bvetra.by")

	if !strings.Contains(html, "Minsk → Moscow") {
		t.Errorf("html missing route: %s", html)
	}
	// No email and no notes were given.
	if strings.Count(html, "—") != 2 {
		t.Errorf("expected dashes for empty email and notes, got: %s", html)
	}
	if !strings.Contains(text, "Ivan | +375291234567 | — | Minsk → Moscow | 2024-05-01") {
		t.Errorf("unexpected text body: %s", text)
	}
}

func TestOwnerChannelConfiguration(t *testing.T) {
	var sent []*gomail.Message
	cases := []struct {
		name string
		ch   OwnerEmailChannel
		want bool
	}{
		{"full", OwnerEmailChannel{Mailer: stubMailer(&sent), OwnerTo: "owner@test"}, true},
		{"no recipient", OwnerEmailChannel{Mailer: stubMailer(&sent)}, false},
		{"no relay", OwnerEmailChannel{Mailer: NewMailer(MailerConfig{}), OwnerTo: "owner@test"}, false},
	}
	for _, tc := range cases {
		if got := tc.ch.Configured(); got != tc.want {
			t.Errorf("%s: Configured() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCustomerChannelSkipsWithoutEmail(t *testing.T) {
	var sent []*gomail.Message
	ch := CustomerEmailChannel{Mailer: stubMailer(&sent)}

	err := ch.Send(context.Background(), sampleBooking())
	if !errors.Is(err, ErrSkip) {
		t.Fatalf("expected ErrSkip, got %v", err)
	}
	if len(sent) != 0 {
		t.Fatalf("no message should be sent without a customer address")
	}
}

func TestCustomerChannelSendsAcknowledgment(t *testing.T) {
	var sent []*gomail.Message
	ch := CustomerEmailChannel{Mailer: stubMailer(&sent)}

	req := sampleBooking()
	req.Email = "ivan@example.com"
	if err := ch.Send(context.Background(), req); err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(sent))
	}
	if got := sent[0].GetHeader("To"); len(got) != 1 || got[0] != "ivan@example.com" {
		t.Errorf("unexpected recipient: %v", got)
	}
	if got := sent[0].GetHeader("Subject"); len(got) != 1 || !strings.Contains(got[0], "Bvetra") {
		t.Errorf("unexpected subject: %v", got)
	}
}
