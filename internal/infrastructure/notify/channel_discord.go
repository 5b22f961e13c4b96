package notify

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"m2_studio/internal/domain/entities"
)

const (
	discordColorNew    = 0xfacc15
	discordColorReview = 0x10b981
)

type discordField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordEmbed struct {
	Title     string         `json:"title"`
	Color     int            `json:"color"`
	Fields    []discordField `json:"fields,omitempty"`
	Timestamp string         `json:"timestamp"`
	Footer    struct {
		Text string `json:"text"`
	} `json:"footer"`
}

type discordPayload struct {
	Content string         `json:"content,omitempty"`
	Embeds  []discordEmbed `json:"embeds,omitempty"`
}

// DiscordChannel posts staff alerts to Discord webhooks: new orders,
// client messages and reviews go to the orders webhook, team applications
// to the applications webhook. Either webhook may be unset.
type DiscordChannel struct {
	webhookURL      string
	mention         string
	applicationsURL string
	applyMention    string
	client          *http.Client
}

func NewDiscordChannel(webhookURL, mention string) *DiscordChannel {
	return &DiscordChannel{webhookURL: webhookURL, mention: strings.TrimSpace(mention), client: defaultHTTPClient()}
}

// WithApplications routes join.submitted events to a separate webhook.
func (c *DiscordChannel) WithApplications(webhookURL, mention string) *DiscordChannel {
	c.applicationsURL = webhookURL
	c.applyMention = strings.TrimSpace(mention)
	return c
}

func (c *DiscordChannel) Name() string { return "discord" }

func (c *DiscordChannel) Deliver(ctx context.Context, ev entities.NotificationEvent) error {
	url := c.webhookURL
	if ev.Type == entities.EventJoinSubmitted {
		url = c.applicationsURL
	}
	if url == "" {
		return nil
	}
	payload, ok := c.payload(ev)
	if !ok {
		return nil
	}
	return postJSON(ctx, c.client, url, payload)
}

func (c *DiscordChannel) payload(ev entities.NotificationEvent) (discordPayload, bool) {
	switch {
	case ev.Type == entities.EventJoinSubmitted && ev.Application != nil:
		a := ev.Application
		embed := newDiscordEmbed("🎬 New M2 Studio Application", discordColorNew, ev.OccurredAt)
		embed.Footer.Text = "M2 Studio Applications"
		embed.Fields = []discordField{
			{Name: "👤 Name", Value: a.FullName, Inline: true},
			{Name: "📧 Email", Value: a.Email, Inline: true},
			{Name: "📱 Phone", Value: a.Phone, Inline: true},
			{Name: "💻 Device", Value: a.Device, Inline: true},
			{Name: "🛠️ Software", Value: a.Software, Inline: true},
			{Name: "🎯 Position", Value: a.Position, Inline: true},
			{Name: "🔗 Portfolio", Value: orDefault(a.Portfolio, "Not provided")},
			{Name: "💭 Why Join", Value: truncate(a.WhyJoin, 1024)},
			{Name: "⏱️ Durability", Value: a.Durability, Inline: true},
		}
		content := "New application received!"
		if c.applyMention != "" {
			content = c.applyMention + " " + content
		}
		return discordPayload{Content: content, Embeds: []discordEmbed{embed}}, true

	case ev.Type == entities.EventOrderSubmitted:
		embed := newDiscordEmbed("📦 New M2 Studio Order", discordColorNew, ev.OccurredAt)
		embed.Fields = []discordField{
			{Name: "🆔 Order ID", Value: ev.OrderID, Inline: true},
			{Name: "👤 Name", Value: ev.UserName, Inline: true},
			{Name: "📧 Email", Value: ev.Email, Inline: true},
			{Name: "📱 WhatsApp", Value: ev.Whatsapp, Inline: true},
			{Name: "🎯 Service", Value: ev.ServiceType, Inline: true},
			{Name: "💰 Budget", Value: orNotSpecified(ev.Budget), Inline: true},
			{Name: "📅 Deadline", Value: orNotSpecified(ev.Deadline), Inline: true},
			{Name: "📝 Description", Value: truncate(ev.Description, 1024)},
			{Name: "🔗 Raw Files", Value: orDefault(ev.RawFileLink, "Not provided")},
		}
		content := "🎬 New order received!"
		if c.mention != "" {
			content += " " + c.mention
		}
		return discordPayload{Content: content, Embeds: []discordEmbed{embed}}, true

	case ev.Type == entities.EventMessageNew && ev.RecipientID == "":
		return discordPayload{
			Content: fmt.Sprintf("💬 New message from %s on order %s:\n%s", ev.UserName, ev.OrderID, truncate(ev.Text, 1500)),
		}, true

	case ev.Type == entities.EventReviewSubmitted:
		embed := newDiscordEmbed("⭐ New Review", discordColorReview, ev.OccurredAt)
		embed.Fields = []discordField{
			{Name: "🆔 Order ID", Value: ev.OrderID, Inline: true},
			{Name: "👤 Name", Value: ev.UserName, Inline: true},
			{Name: "⭐ Rating", Value: stars(ev.Rating), Inline: true},
			{Name: "📝 Review", Value: orDefault(truncate(ev.Text, 1024), "-")},
		}
		return discordPayload{Embeds: []discordEmbed{embed}}, true
	}
	return discordPayload{}, false
}

func newDiscordEmbed(title string, color int, at time.Time) discordEmbed {
	if at.IsZero() {
		at = time.Now()
	}
	e := discordEmbed{Title: title, Color: color, Timestamp: at.UTC().Format(time.RFC3339)}
	e.Footer.Text = "M2 Studio Orders"
	return e
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func stars(rating int) string {
	rating = min(max(rating, 0), entities.MaxReviewRating)
	return strings.Repeat("★", rating) + strings.Repeat("☆", entities.MaxReviewRating-rating)
}
