package usecase

import (
	"context"
	"errors"
	"testing"

	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase/interfaces"
	mock_interfaces "m2_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReviewUseCase_Submit(t *testing.T) {
	owner := entities.Principal{ID: "u1", DisplayName: "Ana", Email: "ana@example.com"}
	delivered := entities.Order{ID: "o1", UserID: "u1", ServiceType: "Reels", Status: entities.OrderStatusDelivered}

	t.Run("rating out of range", func(t *testing.T) {
		uc := NewReviewUseCase(nil, nil, nil)
		for _, rating := range []int{0, 6} {
			_, err := uc.Submit(context.Background(), owner, "o1", rating, "")
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Field != "rating" {
				t.Fatalf("rating %d: expected rating validation error, got %v", rating, err)
			}
		}
	})

	t.Run("order not delivered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewReviewUseCase(orders, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{ID: "o1", UserID: "u1", Status: entities.OrderStatusWorking}, nil)

		_, err := uc.Submit(context.Background(), owner, "o1", 5, "great")
		if !errors.Is(err, ErrReviewNotAllowed) {
			t.Fatalf("expected ErrReviewNotAllowed, got %v", err)
		}
	})

	t.Run("not the owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewReviewUseCase(orders, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "o1").Return(delivered, nil)

		_, err := uc.Submit(context.Background(), entities.Principal{ID: "u2"}, "o1", 5, "")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("duplicate review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		uc := NewReviewUseCase(orders, reviews, nil)

		orders.EXPECT().GetByID(gomock.Any(), "o1").Return(delivered, nil)
		reviews.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Review{}, interfaces.ErrConditionFailed)

		_, err := uc.Submit(context.Background(), owner, "o1", 4, "")
		if !errors.Is(err, ErrReviewAlreadyExists) {
			t.Fatalf("expected ErrReviewAlreadyExists, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewReviewUseCase(orders, reviews, notifier)

		orders.EXPECT().GetByID(gomock.Any(), "o1").Return(delivered, nil)
		reviews.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Review{})).DoAndReturn(
			func(_ context.Context, r entities.Review) (entities.Review, error) {
				if r.OrderID != "o1" || r.Rating != 5 || r.Text != "Loved it" || r.ServiceType != "Reels" || r.UserName != "Ana" {
					t.Fatalf("unexpected review: %+v", r)
				}
				return r, nil
			},
		)
		notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev entities.NotificationEvent) error {
				if ev.Type != entities.EventReviewSubmitted || ev.Rating != 5 {
					t.Fatalf("unexpected event: %+v", ev)
				}
				return nil
			},
		)

		if _, err := uc.Submit(context.Background(), owner, "o1", 5, " Loved it "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestReviewUseCase_Reads(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		uc := NewReviewUseCase(nil, reviews, nil)

		reviews.EXPECT().GetByOrderID(gomock.Any(), "o1").Return(entities.Review{}, nil)

		_, err := uc.Get(context.Background(), "o1")
		if !errors.Is(err, ErrReviewNotFound) {
			t.Fatalf("expected ErrReviewNotFound, got %v", err)
		}
	})

	t.Run("list recent clamps limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		uc := NewReviewUseCase(nil, reviews, nil)

		reviews.EXPECT().ListRecent(gomock.Any(), 10).Return(nil, nil)
		reviews.EXPECT().ListRecent(gomock.Any(), 50).Return(nil, nil)

		if _, err := uc.ListRecent(context.Background(), 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.ListRecent(context.Background(), 500); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
