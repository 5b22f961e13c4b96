package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IMessageUseCase exposes the per-order chat between client and studio.
type IMessageUseCase interface {
	Send(ctx context.Context, p entities.Principal, orderID, body, fileURL, fileName string) (entities.Message, error)
	SendFile(ctx context.Context, p entities.Principal, orderID, body string, file FileUpload) (entities.Message, error)
	List(ctx context.Context, p entities.Principal, orderID string) ([]entities.Message, error)
	MarkRead(ctx context.Context, p entities.Principal, orderID string) (int, error)
	UnreadCount(ctx context.Context, p entities.Principal, orderID string) (int, error)
}

type MessageUseCase struct {
	orders   interfaces.IOrderRepository
	messages interfaces.IMessageRepository
	storage  interfaces.IObjectStorage
	notifier interfaces.INotifier
	feed     interfaces.IChangeFeed
}

var _ IMessageUseCase = (*MessageUseCase)(nil)

func NewMessageUseCase(orders interfaces.IOrderRepository, messages interfaces.IMessageRepository, storage interfaces.IObjectStorage, notifier interfaces.INotifier, feed interfaces.IChangeFeed) *MessageUseCase {
	return &MessageUseCase{orders: orders, messages: messages, storage: storage, notifier: notifier, feed: feed}
}

func (u *MessageUseCase) Send(ctx context.Context, p entities.Principal, orderID, body, fileURL, fileName string) (entities.Message, error) {
	body = strings.TrimSpace(body)
	fileURL = strings.TrimSpace(fileURL)
	if body == "" && fileURL == "" {
		return entities.Message{}, newValidationError("message", "message or file required")
	}
	o, err := u.authorize(ctx, p, orderID)
	if err != nil {
		return entities.Message{}, err
	}
	return u.create(ctx, p, o, body, fileURL, strings.TrimSpace(fileName))
}

func (u *MessageUseCase) SendFile(ctx context.Context, p entities.Principal, orderID, body string, file FileUpload) (entities.Message, error) {
	if file.Body == nil || strings.TrimSpace(file.Name) == "" {
		return entities.Message{}, newValidationError("file", "required")
	}
	o, err := u.authorize(ctx, p, orderID)
	if err != nil {
		return entities.Message{}, err
	}
	key := entities.ObjectKey(entities.FileCategoryChat, o.ID, file.Name, time.Now())
	ref, err := u.storage.Upload(ctx, key, file.ContentType, file.Body, file.Size, progressLogger("messages", key))
	if err != nil {
		return entities.Message{}, newStorageError("upload attachment", err)
	}
	return u.create(ctx, p, o, strings.TrimSpace(body), ref, strings.TrimSpace(file.Name))
}

func (u *MessageUseCase) create(ctx context.Context, p entities.Principal, o entities.Order, body, fileURL, fileName string) (entities.Message, error) {
	role := entities.SenderRoleClient
	if p.IsAdmin() {
		role = entities.SenderRoleAdmin
	}
	now := time.Now().UTC()
	m := entities.Message{
		ID:         uuid.NewString(),
		OrderID:    o.ID,
		SenderID:   p.ID,
		SenderName: p.DisplayName,
		SenderRole: role,
		Body:       body,
		FileURL:    fileURL,
		FileName:   fileName,
		CreatedAt:  now,
	}
	created, err := u.messages.Create(ctx, m)
	if err != nil {
		return entities.Message{}, newStorageError("create message", err)
	}
	log.Printf("[messages][usecase] sent order_id=%s message_id=%s role=%s", o.ID, created.ID, created.SenderRole)

	publishChange(u.feed, entities.ChangeEvent{Type: entities.ChangeMessageNew, Data: created}, entities.MessagesTopic(o.ID))

	event := entities.OrderEvent(entities.EventMessageNew, o, now)
	event.Text = created.Body
	if role == entities.SenderRoleClient {
		// Client messages go to the studio, not back to the client.
		event.RecipientID = ""
		event.Email = ""
	}
	dispatchBestEffort(ctx, u.notifier, "messages", event)
	return created, nil
}

// List returns the thread oldest first.
func (u *MessageUseCase) List(ctx context.Context, p entities.Principal, orderID string) ([]entities.Message, error) {
	o, err := u.authorize(ctx, p, orderID)
	if err != nil {
		return nil, err
	}
	msgs, err := u.messages.ListByOrderID(ctx, o.ID)
	if err != nil {
		return nil, newStorageError("list messages", err)
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
	return msgs, nil
}

// MarkRead marks every unread message sent by the other party as read and
// returns how many were changed.
func (u *MessageUseCase) MarkRead(ctx context.Context, p entities.Principal, orderID string) (int, error) {
	msgs, err := u.List(ctx, p, orderID)
	if err != nil {
		return 0, err
	}
	marked := 0
	for _, m := range unreadFromOthers(p, msgs) {
		if err := u.messages.MarkRead(ctx, m.ID); err != nil {
			return marked, newStorageError("mark message read", err)
		}
		marked++
	}
	if marked > 0 {
		publishChange(u.feed, entities.ChangeEvent{Type: entities.ChangeMessageRead, Data: map[string]any{
			"order_id": strings.TrimSpace(orderID),
			"reader":   p.ID,
			"count":    marked,
		}}, entities.MessagesTopic(strings.TrimSpace(orderID)))
	}
	return marked, nil
}

func (u *MessageUseCase) UnreadCount(ctx context.Context, p entities.Principal, orderID string) (int, error) {
	msgs, err := u.List(ctx, p, orderID)
	if err != nil {
		return 0, err
	}
	return len(unreadFromOthers(p, msgs)), nil
}

func (u *MessageUseCase) authorize(ctx context.Context, p entities.Principal, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, newValidationError("order_id", "required")
	}
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, newStorageError("get order", err)
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if !p.CanView(o) {
		return entities.Order{}, ErrForbidden
	}
	return o, nil
}

// unreadFromOthers selects unread messages written by the other side of
// the conversation. Staff read client messages and vice versa.
func unreadFromOthers(p entities.Principal, msgs []entities.Message) []entities.Message {
	own := entities.SenderRoleClient
	if p.IsAdmin() {
		own = entities.SenderRoleAdmin
	}
	var out []entities.Message
	for _, m := range msgs {
		if !m.Read && m.SenderRole != own {
			out = append(out, m)
		}
	}
	return out
}
