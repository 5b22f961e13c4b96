package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase/interfaces"
	mock_interfaces "m2_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validSubmitInput() SubmitOrderInput {
	return SubmitOrderInput{
		UserID:      "u1",
		FullName:    " Ana Lima ",
		Email:       "ana@example.com",
		Whatsapp:    "+5511999999999",
		ServiceType: "Wedding Edit",
		Description: "Highlights reel",
		Budget:      "$500",
	}
}

func workingOrder() entities.Order {
	created := time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)
	started := created.Add(time.Hour)
	return entities.Order{
		ID:        "o1",
		UserID:    "u1",
		UserName:  "Ana Lima",
		UserEmail: "ana@example.com",
		Status:    entities.OrderStatusWorking,
		StatusHistory: []entities.StatusHistoryEntry{
			{Status: entities.OrderStatusPending, Timestamp: created, UpdatedBy: "u1", UpdatedByName: "Ana Lima"},
			{Status: entities.OrderStatusWorking, Timestamp: started, UpdatedBy: "admin-1", UpdatedByName: "Studio"},
		},
		CreatedAt: created,
		UpdatedAt: started,
	}
}

func TestOrderUseCase_Submit(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		fields := map[string]func(in *SubmitOrderInput){
			"full_name":    func(in *SubmitOrderInput) { in.FullName = "   " },
			"email":        func(in *SubmitOrderInput) { in.Email = "" },
			"whatsapp":     func(in *SubmitOrderInput) { in.Whatsapp = "" },
			"service_type": func(in *SubmitOrderInput) { in.ServiceType = " " },
			"description":  func(in *SubmitOrderInput) { in.Description = "" },
		}
		for field, clear := range fields {
			t.Run(field, func(t *testing.T) {
				uc := NewOrderUseCase(nil, nil, nil, nil)
				in := validSubmitInput()
				clear(&in)

				_, err := uc.Submit(context.Background(), in)
				var ve *ValidationError
				if !errors.As(err, &ve) || ve.Field != field {
					t.Fatalf("expected validation error on %s, got %v", field, err)
				}
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
			})
		}
	})

	t.Run("creates pending order with seed history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		feed := mock_interfaces.NewMockIChangeFeed(ctrl)
		uc := NewOrderUseCase(repo, nil, notifier, feed)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" || o.UserName != "Ana Lima" || o.Budget != "$500" {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.Status != entities.OrderStatusPending || len(o.StatusHistory) != 1 {
					t.Fatalf("expected one pending entry, got %+v", o.StatusHistory)
				}
				seed := o.StatusHistory[0]
				if seed.UpdatedBy != "u1" || seed.UpdatedByName != "Ana Lima" || seed.Note != "Order submitted" {
					t.Fatalf("unexpected seed entry: %+v", seed)
				}
				if o.CreatedAt.IsZero() || !o.UpdatedAt.Equal(seed.Timestamp) {
					t.Fatalf("expected timestamps to match seed entry")
				}
				return o, nil
			},
		)
		feed.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(3)
		notifier.EXPECT().Dispatch(gomock.Any(), gomock.AssignableToTypeOf(entities.NotificationEvent{})).DoAndReturn(
			func(_ context.Context, ev entities.NotificationEvent) error {
				if ev.Type != entities.EventOrderSubmitted || ev.Email != "ana@example.com" {
					t.Fatalf("unexpected event: %+v", ev)
				}
				if ev.ID == "" {
					t.Fatalf("expected event id")
				}
				return nil
			},
		)

		o, err := uc.Submit(context.Background(), validSubmitInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !o.IsConsistent() {
			t.Fatalf("expected consistent order")
		}
	})

	t.Run("budget defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)

		in := validSubmitInput()
		in.Budget = "  "
		o, err := uc.Submit(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Budget != entities.DefaultBudget {
			t.Fatalf("expected default budget, got %q", o.Budget)
		}
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewOrderUseCase(repo, nil, notifier, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))

		_, err := uc.Submit(context.Background(), validSubmitInput())
		if !errors.Is(err, ErrStorage) {
			t.Fatalf("expected ErrStorage, got %v", err)
		}
	})

	t.Run("notifier failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewOrderUseCase(repo, nil, notifier, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)
		notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		o, err := uc.Submit(context.Background(), validSubmitInput())
		if err != nil {
			t.Fatalf("expected success despite notifier failure, got %v", err)
		}
		if o.ID == "" {
			t.Fatalf("expected created order")
		}
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	admin := entities.Actor{ID: "admin-1", Name: "Studio"}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "missing", entities.OrderStatusWorking, admin, "")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(workingOrder(), nil)

		_, err := uc.UpdateStatus(context.Background(), "o1", entities.OrderStatusPending, admin, "")
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("working to delivered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		feed := mock_interfaces.NewMockIChangeFeed(ctrl)
		uc := NewOrderUseCase(repo, nil, notifier, feed)

		current := workingOrder()
		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(current, nil)
		repo.EXPECT().AppendStatus(gomock.Any(), "o1", entities.OrderStatusWorking, gomock.AssignableToTypeOf(entities.StatusHistoryEntry{})).DoAndReturn(
			func(_ context.Context, _ string, _ entities.OrderStatus, e entities.StatusHistoryEntry) (entities.Order, error) {
				if e.Status != entities.OrderStatusDelivered || e.UpdatedBy != "admin-1" || e.Note != "Final cut" {
					t.Fatalf("unexpected entry: %+v", e)
				}
				next := current
				next.AppendStatus(e)
				return next, nil
			},
		)
		feed.EXPECT().Publish(entities.OrderTopic("o1"), gomock.Any())
		feed.EXPECT().Publish(entities.TopicAllOrders, gomock.Any())
		feed.EXPECT().Publish(entities.UserOrdersTopic("u1"), gomock.Any())
		notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev entities.NotificationEvent) error {
				if ev.Type != entities.EventOrderDelivered || ev.RecipientID != "u1" || ev.Note != "Final cut" {
					t.Fatalf("unexpected event: %+v", ev)
				}
				return nil
			},
		)

		o, err := uc.UpdateStatus(context.Background(), "o1", entities.OrderStatusDelivered, admin, " Final cut ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != entities.OrderStatusDelivered || o.DeliveredAt == nil {
			t.Fatalf("expected delivered with delivered_at, got %+v", o)
		}
		if len(o.StatusHistory) != 3 {
			t.Fatalf("expected history to grow by one, got %d", len(o.StatusHistory))
		}
	})

	t.Run("store error leaves order untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewOrderUseCase(repo, nil, notifier, nil)

		current := workingOrder()
		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(current, nil)
		repo.EXPECT().AppendStatus(gomock.Any(), "o1", entities.OrderStatusWorking, gomock.Any()).Return(entities.Order{}, errors.New("throttled"))

		_, err := uc.UpdateStatus(context.Background(), "o1", entities.OrderStatusDelivered, admin, "")
		var se *StorageError
		if !errors.As(err, &se) {
			t.Fatalf("expected StorageError, got %v", err)
		}
		if len(current.StatusHistory) != 2 {
			t.Fatalf("loaded order must not be mutated")
		}
	})

	t.Run("concurrent change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(workingOrder(), nil)
		repo.EXPECT().AppendStatus(gomock.Any(), "o1", entities.OrderStatusWorking, gomock.Any()).Return(entities.Order{}, interfaces.ErrConditionFailed)

		_, err := uc.UpdateStatus(context.Background(), "o1", entities.OrderStatusCancelled, admin, "")
		if !errors.Is(err, ErrStatusConflict) {
			t.Fatalf("expected ErrStatusConflict, got %v", err)
		}
	})
}

func TestOrderUseCase_Cancel(t *testing.T) {
	pending := entities.Order{ID: "o1", UserID: "u1", Status: entities.OrderStatusPending}
	client := entities.Principal{ID: "u1", DisplayName: "Ana", Role: entities.RoleClient}

	t.Run("other client forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(pending, nil)

		_, err := uc.Cancel(context.Background(), "o1", entities.Principal{ID: "u2", Role: entities.RoleClient})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("client cannot cancel work in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(workingOrder(), nil)

		_, err := uc.Cancel(context.Background(), "o1", client)
		if !errors.Is(err, ErrOrderLocked) {
			t.Fatalf("expected ErrOrderLocked, got %v", err)
		}
	})

	t.Run("owner cancels pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(pending, nil)
		repo.EXPECT().AppendStatus(gomock.Any(), "o1", entities.OrderStatusPending, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.OrderStatus, e entities.StatusHistoryEntry) (entities.Order, error) {
				if e.UpdatedBy != "u1" || e.UpdatedByName != "Ana" || e.Note != "Cancelled by client" {
					t.Fatalf("unexpected entry: %+v", e)
				}
				next := pending
				next.AppendStatus(e)
				return next, nil
			},
		)

		o, err := uc.Cancel(context.Background(), "o1", client)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != entities.OrderStatusCancelled {
			t.Fatalf("expected cancelled, got %s", o.Status)
		}
	})
}

func TestOrderUseCase_Files(t *testing.T) {
	t.Run("deliverable requires a file", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil)
		_, err := uc.UploadDeliverable(context.Background(), "o1", " ")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("deliverable appended without status change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		updated := workingOrder()
		updated.DownloadURLs = []string{"https://cdn/x.mp4"}
		repo.EXPECT().AppendDownloadURLs(gomock.Any(), "o1", []string{"https://cdn/x.mp4"}).Return(updated, nil)

		o, err := uc.UploadDeliverable(context.Background(), "o1", "https://cdn/x.mp4")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != entities.OrderStatusWorking || len(o.DownloadURLs) != 1 {
			t.Fatalf("unexpected order: %+v", o)
		}
	})

	t.Run("store deliverable uploads then appends", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewOrderUseCase(repo, storage, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(workingOrder(), nil)
		storage.EXPECT().Upload(gomock.Any(), gomock.Any(), "video/mp4", gomock.Any(), int64(4), gomock.Any()).DoAndReturn(
			func(_ context.Context, key, _ string, _ io.Reader, _ int64, progress interfaces.ProgressFunc) (string, error) {
				if !strings.HasPrefix(key, "delivered-files/o1/") || !strings.HasSuffix(key, "_final_cut.mp4") {
					t.Fatalf("unexpected key %q", key)
				}
				progress(4, 4)
				return "https://bucket/" + key, nil
			},
		)
		repo.EXPECT().AppendDownloadURLs(gomock.Any(), "o1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, urls []string) (entities.Order, error) {
				o := workingOrder()
				o.DownloadURLs = urls
				return o, nil
			},
		)

		o, err := uc.StoreDeliverable(context.Background(), "o1", FileUpload{
			Name: "final cut.mp4", ContentType: "video/mp4", Size: 4, Body: strings.NewReader("data"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(o.DownloadURLs) != 1 || !strings.HasPrefix(o.DownloadURLs[0], "https://bucket/delivered-files/o1/") {
			t.Fatalf("unexpected download urls: %v", o.DownloadURLs)
		}
	})

	t.Run("client file on delivered order is locked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		delivered := workingOrder()
		delivered.AppendStatus(entities.StatusHistoryEntry{Status: entities.OrderStatusDelivered, Timestamp: delivered.UpdatedAt.Add(time.Hour)})
		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(delivered, nil)

		_, err := uc.AttachClientFile(context.Background(), "o1", "u1", "https://drive/raw")
		if !errors.Is(err, ErrOrderLocked) {
			t.Fatalf("expected ErrOrderLocked, got %v", err)
		}
	})

	t.Run("client file by owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(workingOrder(), nil)
		repo.EXPECT().AppendFileURLs(gomock.Any(), "o1", []string{"https://drive/raw"}).Return(workingOrder(), nil)

		if _, err := uc.AttachClientFile(context.Background(), "o1", "u1", "https://drive/raw"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("download links are presigned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewOrderUseCase(repo, storage, nil, nil)

		o := workingOrder()
		o.DownloadURLs = []string{"a", "b"}
		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(o, nil)
		storage.EXPECT().DownloadURL(gomock.Any(), "a").Return("signed-a", nil)
		storage.EXPECT().DownloadURL(gomock.Any(), "b").Return("signed-b", nil)

		links, err := uc.DownloadLinks(context.Background(), "o1", entities.Principal{ID: "u1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(links) != 2 || links[0] != "signed-a" || links[1] != "signed-b" {
			t.Fatalf("unexpected links: %v", links)
		}
	})
}

func TestOrderUseCase_SetPrice(t *testing.T) {
	t.Run("empty price", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil)
		_, err := uc.SetPrice(context.Background(), "o1", "")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("terminal order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{ID: "o1", Status: entities.OrderStatusCancelled}, nil)

		_, err := uc.SetPrice(context.Background(), "o1", "$450")
		if !errors.Is(err, ErrOrderLocked) {
			t.Fatalf("expected ErrOrderLocked, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		o := workingOrder()
		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(o, nil)
		o.Price = "$450"
		repo.EXPECT().UpdatePrice(gomock.Any(), "o1", "$450").Return(o, nil)

		res, err := uc.SetPrice(context.Background(), "o1", " $450 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Price != "$450" {
			t.Fatalf("unexpected price %q", res.Price)
		}
	})
}

func TestOrderUseCase_Reads(t *testing.T) {
	t.Run("get forbidden for other client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(workingOrder(), nil)

		_, err := uc.GetByID(context.Background(), "o1", entities.Principal{ID: "u2"})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("get by admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(workingOrder(), nil)

		if _, err := uc.GetByID(context.Background(), "o1", entities.Principal{ID: "a", Role: entities.RoleAdmin}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("status follows the history log", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		drifted := workingOrder()
		drifted.Status = entities.OrderStatusPending
		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(drifted, nil)

		o, err := uc.GetByID(context.Background(), "o1", entities.Principal{ID: "u1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != entities.OrderStatusWorking || !o.IsConsistent() {
			t.Fatalf("expected status repaired from history, got %s", o.Status)
		}
	})

	t.Run("list for user filters by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		repo.EXPECT().ListByUserID(gomock.Any(), "u1").Return([]entities.Order{
			{ID: "a", Status: entities.OrderStatusPending},
			{ID: "b", Status: entities.OrderStatusWorking},
			{ID: "c", Status: entities.OrderStatusPending},
		}, nil)

		res, err := uc.ListForUser(context.Background(), "u1", "pending")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 || res[0].ID != "a" || res[1].ID != "c" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("list all rejects unknown filter", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil)
		_, err := uc.ListAll(context.Background(), "archived")
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field != "status" {
			t.Fatalf("expected status validation error, got %v", err)
		}
	})

	t.Run("list all storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		repo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.ListAll(context.Background(), "")
		if !errors.Is(err, ErrStorage) {
			t.Fatalf("expected ErrStorage, got %v", err)
		}
	})
}
