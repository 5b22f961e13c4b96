package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"m2_studio/internal/adapter/http/handlers/mocks"
	"m2_studio/internal/domain/entities"
	"m2_studio/internal/infrastructure/realtime"
	"m2_studio/internal/usecase"

	"github.com/gorilla/websocket"
	"go.uber.org/mock/gomock"
)

func waitForSubscribers(t *testing.T, hub *realtime.Hub, topic string, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Subscribers(topic) < n {
		if time.Now().After(deadline) {
			t.Fatalf("no subscriber on %s", topic)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWSHandler_OrderFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	hub := realtime.NewHub()
	h := NewWSHandler(uc, hub)

	r := newTestRouter()
	r.GET("/v1/ws/orders/:id", as(clientPrincipal), h.OrderFeed)
	srv := httptest.NewServer(r)
	defer srv.Close()

	uc.EXPECT().GetByID(gomock.Any(), "o1", clientPrincipal).Return(sampleOrder(entities.OrderStatusPending), nil)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/ws/orders/o1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	waitForSubscribers(t, hub, entities.MessagesTopic("o1"), 1)
	hub.Publish(entities.MessagesTopic("o1"), entities.ChangeEvent{Type: entities.ChangeMessageNew, Data: map[string]string{"id": "m1"}})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev struct {
		Type string `json:"type"`
	}
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("read: %v", err)
	}
	if ev.Type != entities.ChangeMessageNew {
		t.Fatalf("unexpected event %+v", ev)
	}

	_ = conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Subscribers(entities.OrderTopic("o1")) > 0 || hub.Subscribers(entities.MessagesTopic("o1")) > 0 {
		if time.Now().After(deadline) {
			t.Fatalf("subscriptions not released after close")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWSHandler_OrderFeed_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	h := NewWSHandler(uc, realtime.NewHub())

	r := newTestRouter()
	r.GET("/v1/ws/orders/:id", as(clientPrincipal), h.OrderFeed)

	uc.EXPECT().GetByID(gomock.Any(), "o2", clientPrincipal).Return(entities.Order{}, usecase.ErrForbidden)

	if w := doJSON(r, http.MethodGet, "/v1/ws/orders/o2", ""); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestWSHandler_OrdersFeed_AdminTopic(t *testing.T) {
	hub := realtime.NewHub()
	h := NewWSHandler(nil, hub)

	r := newTestRouter()
	r.GET("/v1/ws/orders", as(adminPrincipal), h.OrdersFeed)
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/v1/ws/orders", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitForSubscribers(t, hub, entities.TopicAllOrders, 1)
	if hub.Subscribers(entities.UserOrdersTopic(adminPrincipal.ID)) != 0 {
		t.Fatalf("admin should follow every order")
	}
}
