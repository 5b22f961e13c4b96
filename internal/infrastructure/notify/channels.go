package notify

import (
	"log"
	"os"
	"strconv"
	"strings"

	"m2_studio/internal/usecase/interfaces"
)

// ChannelsFromEnv builds every channel whose configuration is present.
// The in-app channel is always on when a repository is given.
func ChannelsFromEnv(notifications interfaces.INotificationRepository) []Channel {
	var channels []Channel
	if notifications != nil {
		channels = append(channels, NewInAppChannel(notifications))
	}

	if cfg, ok := SMTPConfigFromEnv(); ok {
		channels = append(channels, NewEmailChannel(NewSMTPMailer(cfg), getenvDefault("APP_URL", "http://localhost:3000")))
	} else {
		log.Printf("[notify][worker] email disabled: SMTP_HOST or SMTP_FROM not set")
	}

	orders, applications := os.Getenv("DISCORD_WEBHOOK_URL"), os.Getenv("DISCORD_APPLICATION_WEBHOOK_URL")
	if orders != "" || applications != "" {
		channels = append(channels, NewDiscordChannel(orders, os.Getenv("DISCORD_MENTION")).
			WithApplications(applications, os.Getenv("DISCORD_APPLICATION_MENTION")))
	}
	if url := os.Getenv("SHEETS_WEBHOOK_URL"); url != "" {
		channels = append(channels, NewSheetsChannel(url))
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		chatID, err := strconv.ParseInt(strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")), 10, 64)
		if err != nil {
			log.Printf("[notify][worker] telegram disabled: invalid TELEGRAM_CHAT_ID: %v", err)
		} else if ch, err := NewTelegramChannel(token, chatID); err != nil {
			log.Printf("[notify][worker] telegram disabled: %v", err)
		} else {
			channels = append(channels, ch)
		}
	}

	names := make([]string, 0, len(channels))
	for _, ch := range channels {
		names = append(names, ch.Name())
	}
	log.Printf("[notify][worker] channels=%s", strings.Join(names, ","))
	return channels
}
