package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	response "m2_studio/internal/adapter/http/dto/response"
	"m2_studio/internal/adapter/http/handlers/mocks"
	"m2_studio/internal/domain/dashboard"
	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestAdminHandler_UpdateStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAdminHandler(mocks.NewMockIOrderUseCase(ctrl))
		r := newTestRouter()
		r.PATCH("/v1/admin/orders/:id/status", as(adminPrincipal), h.UpdateStatus)

		if w := doJSON(r, http.MethodPatch, "/v1/admin/orders/o1/status", `{"status":"paid"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAdminHandler(mocks.NewMockIOrderUseCase(ctrl))
		r := newTestRouter()
		r.PATCH("/v1/admin/orders/:id/status", as(adminPrincipal), h.UpdateStatus)

		if w := doJSON(r, http.MethodPatch, "/v1/admin/orders/o1/status", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAdminHandler(uc)
		r := newTestRouter()
		r.PATCH("/v1/admin/orders/:id/status", as(adminPrincipal), h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "o1", entities.OrderStatusPending, adminPrincipal.Actor(), "").
			Return(entities.Order{}, fmt.Errorf("%w: delivered -> pending", entities.ErrInvalidTransition))

		if w := doJSON(r, http.MethodPatch, "/v1/admin/orders/o1/status", `{"status":"pending"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("concurrent update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAdminHandler(uc)
		r := newTestRouter()
		r.PATCH("/v1/admin/orders/:id/status", as(adminPrincipal), h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "o1", entities.OrderStatusWorking, gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrStatusConflict)

		if w := doJSON(r, http.MethodPatch, "/v1/admin/orders/o1/status", `{"status":"working"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAdminHandler(uc)
		r := newTestRouter()
		r.PATCH("/v1/admin/orders/:id/status", as(adminPrincipal), h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "o1", entities.OrderStatusWorking, adminPrincipal.Actor(), "Editing started").
			Return(sampleOrder(entities.OrderStatusWorking), nil)

		w := doJSON(r, http.MethodPatch, "/v1/admin/orders/o1/status", `{"status":" Working ","note":"Editing started"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		got := decodeBody[response.OrderResponse](t, w)
		if got.Status != "working" || got.StatusHistory[len(got.StatusHistory)-1].Status != got.Status {
			t.Fatalf("status and history diverge: %+v", got)
		}
	})
}

func TestAdminHandler_ListAndStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	h := NewAdminHandler(uc)
	r := newTestRouter()
	r.GET("/v1/admin/orders", as(adminPrincipal), h.ListOrders)
	r.GET("/v1/admin/orders/stats", as(adminPrincipal), h.Stats)

	all := []entities.Order{sampleOrder(entities.OrderStatusDelivered), sampleOrder(entities.OrderStatusCancelled)}
	uc.EXPECT().ListAll(gomock.Any(), "").Return(all, nil)
	uc.EXPECT().ListAll(gomock.Any(), dashboard.FilterAll).Return(all, nil)

	list := decodeBody[response.OrderListResponse](t, doJSON(r, http.MethodGet, "/v1/admin/orders", ""))
	if list.Count != 2 || list.Status != "all" {
		t.Fatalf("unexpected list %+v", list)
	}
	stats := decodeBody[dashboard.Stats](t, doJSON(r, http.MethodGet, "/v1/admin/orders/stats", ""))
	if stats.Total != 2 || stats.Delivered != 1 || stats.Cancelled != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestAdminHandler_UpdatePrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	h := NewAdminHandler(uc)
	r := newTestRouter()
	r.PATCH("/v1/admin/orders/:id/price", as(adminPrincipal), h.UpdatePrice)

	uc.EXPECT().SetPrice(gomock.Any(), "o1", "$250").Return(entities.Order{}, usecase.ErrOrderLocked)

	if w := doJSON(r, http.MethodPatch, "/v1/admin/orders/o1/price", `{"price":"$250"}`); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestAdminHandler_UploadDeliverable(t *testing.T) {
	t.Run("multipart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAdminHandler(uc)
		r := newTestRouter()
		r.POST("/v1/admin/orders/:id/deliverables", as(adminPrincipal), h.UploadDeliverable)

		o := sampleOrder(entities.OrderStatusWorking)
		o.DownloadURLs = []string{"https://bucket/delivered-files/o1/1_final.mp4"}
		uc.EXPECT().StoreDeliverable(gomock.Any(), "o1", gomock.Any()).Return(o, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartRequest(t, "/v1/admin/orders/o1/deliverables", "file", "final.mp4", []byte("video"), nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := decodeBody[response.OrderResponse](t, w); len(got.DownloadURLs) != 1 {
			t.Fatalf("unexpected order %+v", got)
		}
	})

	t.Run("json link to missing order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAdminHandler(uc)
		r := newTestRouter()
		r.POST("/v1/admin/orders/:id/deliverables", as(adminPrincipal), h.UploadDeliverable)

		uc.EXPECT().UploadDeliverable(gomock.Any(), "nope", "https://cdn/final.mp4").Return(entities.Order{}, usecase.ErrOrderNotFound)

		if w := doJSON(r, http.MethodPost, "/v1/admin/orders/nope/deliverables", `{"file_url":"https://cdn/final.mp4"}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
