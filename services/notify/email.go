package notify

import (
	"context"
	"fmt"

	"bvetra/models"

	"gopkg.in/gomail.v2"
)

// MailerConfig carries the SMTP relay settings shared by the email channels.
type MailerConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func (c MailerConfig) configured() bool {
	return c.Host != "" && c.Port != 0 && c.User != "" && c.Pass != ""
}

// MailSender sends one message. *Mailer is the SMTP implementation; tests
// substitute their own.
type MailSender interface {
	Configured() bool
	Send(to, subject, html, text string) error
}

// Mailer sends a single message through the SMTP relay. Port 465 uses
// implicit TLS.
type Mailer struct {
	cfg MailerConfig
	// send is swapped in tests; defaults to dialing the relay.
	send func(m *gomail.Message) error
}

func NewMailer(cfg MailerConfig) *Mailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	d.SSL = cfg.Port == 465
	return &Mailer{cfg: cfg, send: func(m *gomail.Message) error { return d.DialAndSend(m) }}
}

// Configured reports whether the relay credentials are complete.
func (m *Mailer) Configured() bool { return m.cfg.configured() }

func (m *Mailer) Send(to, subject, html, text string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)
	return m.send(msg)
}

// OwnerEmailChannel mails the full booking summary to the site owner.
type OwnerEmailChannel struct {
	Mailer  MailSender
	OwnerTo string
	SiteURL string
}

func (c *OwnerEmailChannel) Name() string { return "owner-email" }

func (c *OwnerEmailChannel) Configured() bool {
	return c.Mailer != nil && c.Mailer.Configured() && c.OwnerTo != ""
}

func (c *OwnerEmailChannel) Send(ctx context.Context, req *models.BookingRequest) error {
	subject := fmt.Sprintf("Новая заявка: %s", req.Name)
	html, text := ownerEmailBody(req, c.SiteURL)
	return c.Mailer.Send(c.OwnerTo, subject, html, text)
}

func ownerEmailBody(req *models.BookingRequest, siteURL string) (html, text string) {
	html = fmt.Sprintf(`<h2>Новая заявка на трансфер</h2>
<p><strong>Имя:</strong> %s</p>
<p><strong>Телефон:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Маршрут:</strong> %s</p>
<p><strong>Дата / Время:</strong> %s %s</p>
<p><strong>Примечания:</strong> %s</p>
<hr/>
<p>Отправлено с сайта: %s</p>`,
		req.Name, req.Phone, orDash(req.Email), req.Route(),
		req.Date, req.Time, orDash(req.Notes), siteURL)

	text = fmt.Sprintf("Новая заявка: %s | %s | %s | %s | %s %s",
		req.Name, req.Phone, orDash(req.Email), req.Route(), req.Date, req.Time)
	return html, text
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// CustomerEmailChannel mails a short acknowledgment to the customer.
// A booking without an email address skips this channel.
type CustomerEmailChannel struct {
	Mailer MailSender
}

func (c *CustomerEmailChannel) Name() string { return "customer-email" }

func (c *CustomerEmailChannel) Configured() bool {
	return c.Mailer != nil && c.Mailer.Configured()
}

func (c *CustomerEmailChannel) Send(ctx context.Context, req *models.BookingRequest) error {
	if req.Email == "" {
		return ErrSkip
	}
	html := fmt.Sprintf("<p>Здравствуйте %s,</p><p>Ваша заявка принята.</p>", req.Name)
	return c.Mailer.Send(req.Email, "Подтверждение заявки — Bvetra", html, "Ваша заявка принята.")
}
