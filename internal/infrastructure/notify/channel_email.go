package notify

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"strings"

	"m2_studio/internal/domain/entities"
	"m2_studio/internal/domain/timeline"
)

//go:embed templates/*.html
var templateFS embed.FS

var emailTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

var statusColors = map[entities.OrderStatus]string{
	entities.OrderStatusPending:   "#FACC15",
	entities.OrderStatusWorking:   "#3B82F6",
	entities.OrderStatusDelivered: "#10B981",
	entities.OrderStatusCancelled: "#EF4444",
}

type emailData struct {
	Name         string
	OrderID      string
	ServiceType  string
	Budget       string
	Deadline     string
	StatusLabel  string
	StatusColor  string
	Note         string
	DashboardURL string
}

// EmailChannel mails the client: a confirmation on submission, status
// updates, and a delivery notice.
type EmailChannel struct {
	mailer Mailer
	appURL string
}

func NewEmailChannel(mailer Mailer, appURL string) *EmailChannel {
	return &EmailChannel{mailer: mailer, appURL: strings.TrimRight(appURL, "/")}
}

func (c *EmailChannel) Name() string { return "email" }

func (c *EmailChannel) Deliver(_ context.Context, ev entities.NotificationEvent) error {
	if ev.Email == "" {
		return nil
	}
	subject, html, ok, err := c.render(ev)
	if err != nil || !ok {
		return err
	}
	return c.mailer.Send(ev.Email, subject, html)
}

func (c *EmailChannel) render(ev entities.NotificationEvent) (string, string, bool, error) {
	var name, subject string
	switch ev.Type {
	case entities.EventOrderSubmitted:
		name, subject = "order_confirmation.html", "We received your order - M2 Studio"
	case entities.EventStatusChanged:
		name, subject = "status_update.html", "Order update: "+timeline.Label(ev.Status)+" - M2 Studio"
	case entities.EventOrderDelivered:
		name, subject = "delivery.html", "Your project is ready! - M2 Studio"
	default:
		return "", "", false, nil
	}

	data := emailData{
		Name:         orDefault(ev.UserName, "there"),
		OrderID:      ev.OrderID,
		ServiceType:  ev.ServiceType,
		Budget:       orNotSpecified(ev.Budget),
		Deadline:     orNotSpecified(ev.Deadline),
		StatusLabel:  timeline.Label(ev.Status),
		StatusColor:  orDefault(statusColors[ev.Status], "#737373"),
		Note:         ev.Note,
		DashboardURL: c.appURL + "/dashboard",
	}
	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", "", false, err
	}
	return subject, buf.String(), true, nil
}
