package usecase

import (
	"context"
	"errors"
	"testing"

	"m2_studio/internal/domain/entities"
	mock_interfaces "m2_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validApplication() ApplicationInput {
	return ApplicationInput{
		FullName:   "Bia Lima",
		Email:      "bia@example.com",
		Phone:      "+5521988",
		Device:     "MacBook Pro",
		Software:   "Premiere",
		Position:   "Editor",
		WhyJoin:    "I love short form",
		Durability: "12 months",
	}
}

func TestJoinUseCase_Submit(t *testing.T) {
	t.Run("each required field is named", func(t *testing.T) {
		uc := NewJoinUseCase(nil)
		blanks := map[string]func(*ApplicationInput){
			"full_name":  func(in *ApplicationInput) { in.FullName = "" },
			"email":      func(in *ApplicationInput) { in.Email = " " },
			"phone":      func(in *ApplicationInput) { in.Phone = "" },
			"device":     func(in *ApplicationInput) { in.Device = "" },
			"software":   func(in *ApplicationInput) { in.Software = "" },
			"position":   func(in *ApplicationInput) { in.Position = "" },
			"why_join":   func(in *ApplicationInput) { in.WhyJoin = "" },
			"durability": func(in *ApplicationInput) { in.Durability = "" },
		}
		for field, blank := range blanks {
			in := validApplication()
			blank(&in)
			_, err := uc.Submit(context.Background(), in)
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Field != field {
				t.Fatalf("%s: expected validation error, got %v", field, err)
			}
		}
	})

	t.Run("portfolio is optional and the event reaches the outbox", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewJoinUseCase(notifier)

		notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev entities.NotificationEvent) error {
			if ev.Type != entities.EventJoinSubmitted || ev.ID == "" || ev.Application == nil || ev.Application.Device != "MacBook Pro" {
				t.Fatalf("unexpected event %+v", ev)
			}
			return nil
		})

		a, err := uc.Submit(context.Background(), validApplication())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.ID == "" || a.SubmittedAt.IsZero() {
			t.Fatalf("expected id and timestamp, got %+v", a)
		}
	})

	t.Run("outbox failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewJoinUseCase(notifier)

		notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		if _, err := uc.Submit(context.Background(), validApplication()); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})
}
