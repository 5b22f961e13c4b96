package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase/interfaces"
)

const (
	defaultReviewLimit = 10
	maxReviewLimit     = 50
)

// IReviewUseCase exposes client reviews. An order gets at most one review,
// and only after it was delivered.
type IReviewUseCase interface {
	Submit(ctx context.Context, p entities.Principal, orderID string, rating int, text string) (entities.Review, error)
	Get(ctx context.Context, orderID string) (entities.Review, error)
	ListRecent(ctx context.Context, limit int) ([]entities.Review, error)
}

type ReviewUseCase struct {
	orders   interfaces.IOrderRepository
	reviews  interfaces.IReviewRepository
	notifier interfaces.INotifier
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(orders interfaces.IOrderRepository, reviews interfaces.IReviewRepository, notifier interfaces.INotifier) *ReviewUseCase {
	return &ReviewUseCase{orders: orders, reviews: reviews, notifier: notifier}
}

func (u *ReviewUseCase) Submit(ctx context.Context, p entities.Principal, orderID string, rating int, text string) (entities.Review, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Review{}, newValidationError("order_id", "required")
	}
	if rating < entities.MinReviewRating || rating > entities.MaxReviewRating {
		return entities.Review{}, newValidationError("rating", "must be between 1 and 5")
	}

	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Review{}, newStorageError("get order", err)
	}
	if o.ID == "" {
		return entities.Review{}, ErrOrderNotFound
	}
	if !o.IsOwnedBy(p.ID) {
		return entities.Review{}, ErrForbidden
	}
	if o.Status != entities.OrderStatusDelivered {
		return entities.Review{}, ErrReviewNotAllowed
	}

	now := time.Now().UTC()
	r := entities.Review{
		OrderID:     o.ID,
		UserID:      p.ID,
		UserName:    firstNonEmpty(p.DisplayName, o.UserName),
		UserEmail:   firstNonEmpty(p.Email, o.UserEmail),
		Rating:      rating,
		Text:        strings.TrimSpace(text),
		ServiceType: o.ServiceType,
		CreatedAt:   now,
	}
	created, err := u.reviews.Create(ctx, r)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.Review{}, ErrReviewAlreadyExists
	}
	if err != nil {
		return entities.Review{}, newStorageError("create review", err)
	}
	log.Printf("[reviews][usecase] submitted order_id=%s rating=%d", created.OrderID, created.Rating)

	event := entities.OrderEvent(entities.EventReviewSubmitted, o, now)
	event.RecipientID = ""
	event.Rating = created.Rating
	event.Text = created.Text
	dispatchBestEffort(ctx, u.notifier, "reviews", event)
	return created, nil
}

func (u *ReviewUseCase) Get(ctx context.Context, orderID string) (entities.Review, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Review{}, newValidationError("order_id", "required")
	}
	r, err := u.reviews.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.Review{}, newStorageError("get review", err)
	}
	if r.OrderID == "" {
		return entities.Review{}, ErrReviewNotFound
	}
	return r, nil
}

func (u *ReviewUseCase) ListRecent(ctx context.Context, limit int) ([]entities.Review, error) {
	if limit <= 0 {
		limit = defaultReviewLimit
	}
	if limit > maxReviewLimit {
		limit = maxReviewLimit
	}
	reviews, err := u.reviews.ListRecent(ctx, limit)
	if err != nil {
		return nil, newStorageError("list reviews", err)
	}
	return reviews, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
