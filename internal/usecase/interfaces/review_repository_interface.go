package interfaces

import (
	"context"
	"m2_studio/internal/domain/entities"
)

// IReviewRepository abstracts DynamoDB persistence for Review.
//
// Create returns ErrConditionFailed when the order already has a review.
type IReviewRepository interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.Review, error)
	ListRecent(ctx context.Context, limit int) ([]entities.Review, error)
}
