package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"m2_studio/internal/domain/dashboard"
	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const submittedNote = "Order submitted"

// SubmitOrderInput is the public order form. UserID is empty for guests.
type SubmitOrderInput struct {
	UserID      string
	FullName    string
	Email       string
	Whatsapp    string
	ServiceType string
	Description string
	Deadline    string
	Budget      string
	RawFileLink string
}

// FileUpload is a file streamed from a multipart request into the bucket.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// IOrderUseCase exposes the order lifecycle.
//
// Every status change goes through the repository's AppendStatus, so the
// status field and the last history entry never diverge. Notifications and
// change-feed events are emitted only after the store accepted the write.
type IOrderUseCase interface {
	Submit(ctx context.Context, in SubmitOrderInput) (entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, actor entities.Actor, note string) (entities.Order, error)
	UploadDeliverable(ctx context.Context, orderID, fileRef string) (entities.Order, error)
	StoreDeliverable(ctx context.Context, orderID string, file FileUpload) (entities.Order, error)
	AttachClientFile(ctx context.Context, orderID, ownerID, fileRef string) (entities.Order, error)
	StoreClientFile(ctx context.Context, orderID, ownerID string, file FileUpload) (entities.Order, error)
	SetPrice(ctx context.Context, orderID, price string) (entities.Order, error)
	Cancel(ctx context.Context, orderID string, p entities.Principal) (entities.Order, error)
	GetByID(ctx context.Context, orderID string, p entities.Principal) (entities.Order, error)
	DownloadLinks(ctx context.Context, orderID string, p entities.Principal) ([]string, error)
	ListForUser(ctx context.Context, userID, filter string) ([]entities.Order, error)
	ListAll(ctx context.Context, filter string) ([]entities.Order, error)
}

type OrderUseCase struct {
	repo     interfaces.IOrderRepository
	storage  interfaces.IObjectStorage
	notifier interfaces.INotifier
	feed     interfaces.IChangeFeed
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, storage interfaces.IObjectStorage, notifier interfaces.INotifier, feed interfaces.IChangeFeed) *OrderUseCase {
	return &OrderUseCase{repo: repo, storage: storage, notifier: notifier, feed: feed}
}

func (u *OrderUseCase) Submit(ctx context.Context, in SubmitOrderInput) (entities.Order, error) {
	in = trimSubmitInput(in)
	required := []struct {
		field string
		value string
	}{
		{"full_name", in.FullName},
		{"email", in.Email},
		{"whatsapp", in.Whatsapp},
		{"service_type", in.ServiceType},
		{"description", in.Description},
	}
	for _, r := range required {
		if r.value == "" {
			return entities.Order{}, newValidationError(r.field, "required")
		}
	}
	if !strings.Contains(in.Email, "@") {
		return entities.Order{}, newValidationError("email", "invalid")
	}

	budget := in.Budget
	if budget == "" {
		budget = entities.DefaultBudget
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:           uuid.NewString(),
		UserID:       in.UserID,
		UserName:     in.FullName,
		UserEmail:    in.Email,
		UserWhatsapp: in.Whatsapp,
		ServiceType:  in.ServiceType,
		Description:  in.Description,
		Deadline:     in.Deadline,
		Budget:       budget,
		RawFileLink:  in.RawFileLink,
		CreatedAt:    now,
	}
	o.AppendStatus(entities.NewStatusHistoryEntry(
		entities.OrderStatusPending,
		entities.Actor{ID: in.UserID, Name: in.FullName},
		submittedNote,
		now,
	))

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Order{}, newStorageError("create order", err)
	}
	log.Printf("[orders][usecase] submitted order_id=%s user_id=%s service=%s", created.ID, created.UserID, created.ServiceType)

	publishOrder(u.feed, entities.ChangeOrderCreated, created)
	dispatchBestEffort(ctx, u.notifier, "orders", entities.OrderEvent(entities.EventOrderSubmitted, created, now))
	return created, nil
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, actor entities.Actor, note string) (entities.Order, error) {
	o, err := u.load(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	return u.applyStatus(ctx, o, status, actor, note)
}

func (u *OrderUseCase) applyStatus(ctx context.Context, o entities.Order, status entities.OrderStatus, actor entities.Actor, note string) (entities.Order, error) {
	if err := o.CheckTransition(status); err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	entry := entities.NewStatusHistoryEntry(status, actor, note, now)
	updated, err := u.repo.AppendStatus(ctx, o.ID, o.Status, entry)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.Order{}, ErrStatusConflict
	}
	if err != nil {
		return entities.Order{}, newStorageError("append status", err)
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[orders][usecase] status order_id=%s from=%s to=%s by=%s", updated.ID, o.Status, status, entry.UpdatedBy)

	publishOrder(u.feed, entities.ChangeOrderUpdated, updated)

	eventType := entities.EventStatusChanged
	if status == entities.OrderStatusDelivered {
		eventType = entities.EventOrderDelivered
	}
	event := entities.OrderEvent(eventType, updated, now)
	event.Note = entry.Note
	dispatchBestEffort(ctx, u.notifier, "orders", event)
	return updated, nil
}

func (u *OrderUseCase) UploadDeliverable(ctx context.Context, orderID, fileRef string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	fileRef = strings.TrimSpace(fileRef)
	if orderID == "" {
		return entities.Order{}, newValidationError("order_id", "required")
	}
	if fileRef == "" {
		return entities.Order{}, newValidationError("file", "required")
	}

	updated, err := u.repo.AppendDownloadURLs(ctx, orderID, []string{fileRef})
	if err != nil {
		return entities.Order{}, newStorageError("append deliverable", err)
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[orders][usecase] deliverable order_id=%s files=%d", updated.ID, len(updated.DownloadURLs))

	publishOrder(u.feed, entities.ChangeOrderUpdated, updated)
	return updated, nil
}

func (u *OrderUseCase) StoreDeliverable(ctx context.Context, orderID string, file FileUpload) (entities.Order, error) {
	o, err := u.load(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	ref, err := u.upload(ctx, entities.FileCategoryDelivered, o.ID, file)
	if err != nil {
		return entities.Order{}, err
	}
	return u.UploadDeliverable(ctx, o.ID, ref)
}

func (u *OrderUseCase) AttachClientFile(ctx context.Context, orderID, ownerID, fileRef string) (entities.Order, error) {
	fileRef = strings.TrimSpace(fileRef)
	if fileRef == "" {
		return entities.Order{}, newValidationError("file", "required")
	}
	o, err := u.loadClientWritable(ctx, orderID, ownerID)
	if err != nil {
		return entities.Order{}, err
	}
	return u.appendClientFile(ctx, o.ID, fileRef)
}

func (u *OrderUseCase) StoreClientFile(ctx context.Context, orderID, ownerID string, file FileUpload) (entities.Order, error) {
	o, err := u.loadClientWritable(ctx, orderID, ownerID)
	if err != nil {
		return entities.Order{}, err
	}
	ref, err := u.upload(ctx, entities.FileCategoryClient, o.ID, file)
	if err != nil {
		return entities.Order{}, err
	}
	return u.appendClientFile(ctx, o.ID, ref)
}

func (u *OrderUseCase) appendClientFile(ctx context.Context, orderID, fileRef string) (entities.Order, error) {
	updated, err := u.repo.AppendFileURLs(ctx, orderID, []string{fileRef})
	if err != nil {
		return entities.Order{}, newStorageError("append client file", err)
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	publishOrder(u.feed, entities.ChangeOrderUpdated, updated)
	return updated, nil
}

func (u *OrderUseCase) SetPrice(ctx context.Context, orderID, price string) (entities.Order, error) {
	price = strings.TrimSpace(price)
	if price == "" {
		return entities.Order{}, newValidationError("price", "required")
	}
	o, err := u.load(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.Status.IsTerminal() {
		return entities.Order{}, ErrOrderLocked
	}

	updated, err := u.repo.UpdatePrice(ctx, o.ID, price)
	if err != nil {
		return entities.Order{}, newStorageError("update price", err)
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	publishOrder(u.feed, entities.ChangeOrderUpdated, updated)
	return updated, nil
}

// Cancel lets the owner withdraw a pending order. Staff may cancel any
// non-terminal order.
func (u *OrderUseCase) Cancel(ctx context.Context, orderID string, p entities.Principal) (entities.Order, error) {
	o, err := u.load(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	note := "Cancelled by studio"
	if !p.IsAdmin() {
		if !o.IsOwnedBy(p.ID) {
			return entities.Order{}, ErrForbidden
		}
		if o.Status != entities.OrderStatusPending {
			return entities.Order{}, ErrOrderLocked
		}
		note = "Cancelled by client"
	}
	return u.applyStatus(ctx, o, entities.OrderStatusCancelled, p.Actor(), note)
}

func (u *OrderUseCase) GetByID(ctx context.Context, orderID string, p entities.Principal) (entities.Order, error) {
	o, err := u.load(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !p.CanView(o) {
		return entities.Order{}, ErrForbidden
	}
	return o, nil
}

// DownloadLinks returns short-lived links for the order's deliverables.
func (u *OrderUseCase) DownloadLinks(ctx context.Context, orderID string, p entities.Principal) ([]string, error) {
	o, err := u.GetByID(ctx, orderID, p)
	if err != nil {
		return nil, err
	}
	links := make([]string, 0, len(o.DownloadURLs))
	for _, ref := range o.DownloadURLs {
		link, err := u.storage.DownloadURL(ctx, ref)
		if err != nil {
			return nil, newStorageError("presign deliverable", err)
		}
		links = append(links, link)
	}
	return links, nil
}

func (u *OrderUseCase) ListForUser(ctx context.Context, userID, filter string) ([]entities.Order, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, newValidationError("user_id", "required")
	}
	f, err := dashboard.ParseFilter(filter)
	if err != nil {
		return nil, newValidationError("status", err.Error())
	}
	orders, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, newStorageError("list user orders", err)
	}
	return dashboard.FilterByStatus(orders, f), nil
}

func (u *OrderUseCase) ListAll(ctx context.Context, filter string) ([]entities.Order, error) {
	f, err := dashboard.ParseFilter(filter)
	if err != nil {
		return nil, newValidationError("status", err.Error())
	}
	orders, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, newStorageError("list orders", err)
	}
	return dashboard.FilterByStatus(orders, f), nil
}

func (u *OrderUseCase) load(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, newValidationError("order_id", "required")
	}
	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, newStorageError("get order", err)
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if !o.IsConsistent() {
		// the history log is authoritative
		log.Printf("[orders][usecase] status drift order_id=%s status=%s history=%s", o.ID, o.Status, o.CurrentStatus())
		o.Status = o.CurrentStatus()
	}
	return o, nil
}

func (u *OrderUseCase) loadClientWritable(ctx context.Context, orderID, ownerID string) (entities.Order, error) {
	o, err := u.load(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !o.IsOwnedBy(ownerID) {
		return entities.Order{}, ErrForbidden
	}
	if !o.AcceptsClientFiles() {
		return entities.Order{}, ErrOrderLocked
	}
	return o, nil
}

func (u *OrderUseCase) upload(ctx context.Context, category entities.FileCategory, orderID string, file FileUpload) (string, error) {
	if file.Body == nil || strings.TrimSpace(file.Name) == "" {
		return "", newValidationError("file", "required")
	}
	key := entities.ObjectKey(category, orderID, file.Name, time.Now())
	ref, err := u.storage.Upload(ctx, key, file.ContentType, file.Body, file.Size, progressLogger("orders", key))
	if err != nil {
		return "", newStorageError("upload object", err)
	}
	log.Printf("[orders][usecase] uploaded order_id=%s key=%s size=%d", orderID, key, file.Size)
	return ref, nil
}

func trimSubmitInput(in SubmitOrderInput) SubmitOrderInput {
	return SubmitOrderInput{
		UserID:      strings.TrimSpace(in.UserID),
		FullName:    strings.TrimSpace(in.FullName),
		Email:       strings.TrimSpace(in.Email),
		Whatsapp:    strings.TrimSpace(in.Whatsapp),
		ServiceType: strings.TrimSpace(in.ServiceType),
		Description: strings.TrimSpace(in.Description),
		Deadline:    strings.TrimSpace(in.Deadline),
		Budget:      strings.TrimSpace(in.Budget),
		RawFileLink: strings.TrimSpace(in.RawFileLink),
	}
}
