package notify

import (
	"testing"

	mock_interfaces "m2_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestChannelsFromEnv(t *testing.T) {
	for _, k := range []string{"SMTP_HOST", "SMTP_FROM", "TELEGRAM_BOT_TOKEN", "DISCORD_WEBHOOK_URL", "DISCORD_APPLICATION_WEBHOOK_URL", "SHEETS_WEBHOOK_URL"} {
		t.Setenv(k, "")
	}

	t.Run("only in-app by default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		got := ChannelsFromEnv(mock_interfaces.NewMockINotificationRepository(ctrl))
		if len(got) != 1 || got[0].Name() != "in_app" {
			t.Fatalf("unexpected channels %v", got)
		}
	})

	t.Run("webhooks and email when configured", func(t *testing.T) {
		t.Setenv("DISCORD_WEBHOOK_URL", "https://discord.example/hook")
		t.Setenv("SHEETS_WEBHOOK_URL", "https://script.example/exec")
		t.Setenv("SMTP_HOST", "smtp.example.com")
		t.Setenv("SMTP_FROM", "studio@m2.test")

		names := map[string]bool{}
		for _, ch := range ChannelsFromEnv(nil) {
			names[ch.Name()] = true
		}
		for _, want := range []string{"email", "discord", "sheets"} {
			if !names[want] {
				t.Fatalf("missing channel %s in %v", want, names)
			}
		}
		if names["in_app"] {
			t.Fatalf("in_app needs a repository")
		}
	})

	t.Run("applications webhook alone enables discord", func(t *testing.T) {
		t.Setenv("DISCORD_APPLICATION_WEBHOOK_URL", "https://discord.example/apply")
		got := ChannelsFromEnv(nil)
		if len(got) != 1 || got[0].Name() != "discord" {
			t.Fatalf("unexpected channels %v", got)
		}
	})
}
