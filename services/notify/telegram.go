package notify

import (
	"context"
	"fmt"
	"sync"

	"bvetra/models"

	tele "gopkg.in/telebot.v3"
)

// TelegramChannel pushes a condensed booking alert to the ops chat.
// The bot is created lazily so the server does not require Telegram
// connectivity at startup.
type TelegramChannel struct {
	Token  string
	ChatID int64

	mu  sync.Mutex
	bot *tele.Bot
}

func (c *TelegramChannel) Name() string { return "telegram" }

func (c *TelegramChannel) Configured() bool {
	return c.Token != "" && c.ChatID != 0
}

func (c *TelegramChannel) getBot() (*tele.Bot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bot != nil {
		return c.bot, nil
	}
	// Send-only bot: no poller is attached and Start is never called.
	b, err := tele.NewBot(tele.Settings{Token: c.Token})
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	c.bot = b
	return b, nil
}

func (c *TelegramChannel) Send(ctx context.Context, req *models.BookingRequest) error {
	bot, err := c.getBot()
	if err != nil {
		return err
	}
	_, err = bot.Send(tele.ChatID(c.ChatID), AlertText(req), tele.ModeHTML)
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

// AlertText renders the ops-chat message for a booking.
func AlertText(req *models.BookingRequest) string {
	return fmt.Sprintf("<b>Новая заявка</b>\nИмя: %s\nТелефон: %s\nМаршрут: %s\nДата: %s %s",
		req.Name, req.Phone, req.Route(), req.Date, req.Time)
}
