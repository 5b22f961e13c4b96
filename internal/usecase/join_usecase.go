package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ApplicationInput is the "join the team" form.
type ApplicationInput struct {
	FullName   string
	Email      string
	Phone      string
	Device     string
	Software   string
	Position   string
	Portfolio  string
	WhyJoin    string
	Durability string
}

type IJoinUseCase interface {
	Submit(ctx context.Context, in ApplicationInput) (entities.Application, error)
}

// JoinUseCase validates applications and hands them to the staff
// channels. Applications are not stored.
type JoinUseCase struct {
	notifier interfaces.INotifier
}

var _ IJoinUseCase = (*JoinUseCase)(nil)

func NewJoinUseCase(notifier interfaces.INotifier) *JoinUseCase {
	return &JoinUseCase{notifier: notifier}
}

func (u *JoinUseCase) Submit(ctx context.Context, in ApplicationInput) (entities.Application, error) {
	a := entities.Application{
		FullName:   strings.TrimSpace(in.FullName),
		Email:      strings.TrimSpace(in.Email),
		Phone:      strings.TrimSpace(in.Phone),
		Device:     strings.TrimSpace(in.Device),
		Software:   strings.TrimSpace(in.Software),
		Position:   strings.TrimSpace(in.Position),
		Portfolio:  strings.TrimSpace(in.Portfolio),
		WhyJoin:    strings.TrimSpace(in.WhyJoin),
		Durability: strings.TrimSpace(in.Durability),
	}
	required := []struct {
		field string
		value string
	}{
		{"full_name", a.FullName},
		{"email", a.Email},
		{"phone", a.Phone},
		{"device", a.Device},
		{"software", a.Software},
		{"position", a.Position},
		{"why_join", a.WhyJoin},
		{"durability", a.Durability},
	}
	for _, r := range required {
		if r.value == "" {
			return entities.Application{}, newValidationError(r.field, "required")
		}
	}
	if !strings.Contains(a.Email, "@") {
		return entities.Application{}, newValidationError("email", "invalid")
	}

	a.ID = uuid.NewString()
	a.SubmittedAt = time.Now().UTC()
	log.Printf("[join][usecase] application id=%s position=%s", a.ID, a.Position)

	dispatchBestEffort(ctx, u.notifier, "join", entities.JoinEvent(a))
	return a, nil
}
