package notify

import (
	"context"
	"net/http"
	"time"

	"m2_studio/internal/domain/entities"
)

type sheetsRow struct {
	OrderID            string `json:"orderId"`
	FullName           string `json:"fullName"`
	Email              string `json:"email"`
	Whatsapp           string `json:"whatsapp"`
	ServiceType        string `json:"serviceType"`
	ProjectDescription string `json:"projectDescription"`
	Deadline           string `json:"deadline"`
	RawFileLink        string `json:"rawFileLink"`
	Budget             string `json:"budget"`
	Timestamp          string `json:"timestamp"`
}

// applicationRow keeps the field names the Apps Script expects.
type applicationRow struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Device     string `json:"Device"`
	Software   string `json:"software"`
	Position   string `json:"position"`
	Portfolio  string `json:"portfolio"`
	WhyJoin    string `json:"whyJoin"`
	Durability string `json:"durability"`
}

// SheetsChannel appends new orders and team applications as rows through
// a Google Apps Script webhook.
type SheetsChannel struct {
	webhookURL string
	client     *http.Client
}

func NewSheetsChannel(webhookURL string) *SheetsChannel {
	return &SheetsChannel{webhookURL: webhookURL, client: defaultHTTPClient()}
}

func (c *SheetsChannel) Name() string { return "sheets" }

func (c *SheetsChannel) Deliver(ctx context.Context, ev entities.NotificationEvent) error {
	if ev.Type == entities.EventJoinSubmitted && ev.Application != nil {
		a := ev.Application
		return postJSON(ctx, c.client, c.webhookURL, applicationRow{
			FullName:   a.FullName,
			Email:      a.Email,
			Phone:      a.Phone,
			Device:     a.Device,
			Software:   a.Software,
			Position:   a.Position,
			Portfolio:  orDefault(a.Portfolio, "N/A"),
			WhyJoin:    a.WhyJoin,
			Durability: a.Durability,
		})
	}
	if ev.Type != entities.EventOrderSubmitted {
		return nil
	}
	at := ev.OccurredAt
	if at.IsZero() {
		at = time.Now()
	}
	return postJSON(ctx, c.client, c.webhookURL, sheetsRow{
		OrderID:            ev.OrderID,
		FullName:           ev.UserName,
		Email:              ev.Email,
		Whatsapp:           ev.Whatsapp,
		ServiceType:        ev.ServiceType,
		ProjectDescription: ev.Description,
		Deadline:           orNotSpecified(ev.Deadline),
		RawFileLink:        orDefault(ev.RawFileLink, "Not provided"),
		Budget:             orNotSpecified(ev.Budget),
		Timestamp:          at.UTC().Format(time.RFC3339),
	})
}
