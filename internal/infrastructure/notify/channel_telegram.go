package notify

import (
	"context"
	"fmt"
	"log"

	"m2_studio/internal/domain/entities"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramChannel alerts the studio's staff chat.
type TelegramChannel struct {
	bot    telegramSender
	chatID int64
}

func NewTelegramChannel(token string, chatID int64) (*TelegramChannel, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	log.Printf("[notify][telegram] authorized on account %s", api.Self.UserName)
	return &TelegramChannel{bot: api, chatID: chatID}, nil
}

func (c *TelegramChannel) Name() string { return "telegram" }

func (c *TelegramChannel) Deliver(_ context.Context, ev entities.NotificationEvent) error {
	text, ok := telegramText(ev)
	if !ok {
		return nil
	}
	_, err := c.bot.Send(tgbotapi.NewMessage(c.chatID, text))
	return err
}

func telegramText(ev entities.NotificationEvent) (string, bool) {
	switch {
	case ev.Type == entities.EventOrderSubmitted:
		return fmt.Sprintf("🎬 New order %s\n👤 %s (%s)\n🎯 %s\n💰 %s\n📅 %s\n\n%s",
			ev.OrderID, ev.UserName, ev.Whatsapp, ev.ServiceType,
			orNotSpecified(ev.Budget), orNotSpecified(ev.Deadline), truncate(ev.Description, 1000)), true
	case ev.Type == entities.EventMessageNew && ev.RecipientID == "":
		return fmt.Sprintf("💬 %s on order %s:\n%s", ev.UserName, ev.OrderID, truncate(ev.Text, 1000)), true
	case ev.Type == entities.EventReviewSubmitted:
		return fmt.Sprintf("⭐ %d/5 review from %s on order %s\n%s", ev.Rating, ev.UserName, ev.OrderID, ev.Text), true
	case ev.Type == entities.EventJoinSubmitted && ev.Application != nil:
		a := ev.Application
		return fmt.Sprintf("🙋 Application from %s (%s)\n🎯 %s · %s\n🛠️ %s\n🔗 %s",
			a.FullName, a.Email, a.Position, a.Durability, a.Software, orDefault(a.Portfolio, "Not provided")), true
	}
	return "", false
}
