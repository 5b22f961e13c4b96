package handlers

import (
	"log"
	"net/http"
	"time"

	"m2_studio/internal/domain/entities"
	"m2_studio/internal/infrastructure/realtime"
	"m2_studio/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = (wsPongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Subscriber opens change-feed subscriptions.
type Subscriber interface {
	Subscribe(topic string) *realtime.Subscription
	Subscribers(topic string) int
}

// WSHandler streams change events over websockets. The server only pushes;
// anything the client sends is discarded.
type WSHandler struct {
	orders usecase.IOrderUseCase
	feed   Subscriber
}

func NewWSHandler(orders usecase.IOrderUseCase, feed Subscriber) *WSHandler {
	return &WSHandler{orders: orders, feed: feed}
}

// OrderFeed streams status, deliverable and chat events for one order.
func (h *WSHandler) OrderFeed(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	order, err := h.orders.GetByID(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		respondError(c, "ws", err)
		return
	}
	h.stream(c, entities.OrderTopic(order.ID), entities.MessagesTopic(order.ID))
}

// OrdersFeed streams every order for staff, or the caller's own orders.
func (h *WSHandler) OrdersFeed(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	topic := entities.UserOrdersTopic(p.ID)
	if p.IsAdmin() {
		topic = entities.TopicAllOrders
	}
	h.stream(c, topic)
}

func (h *WSHandler) stream(c *gin.Context, topics ...string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[ws][handler] upgrade failed path=%s err=%v", c.FullPath(), err)
		return
	}
	defer conn.Close()

	events := make(chan entities.ChangeEvent)
	done := make(chan struct{})
	defer close(done)

	for _, topic := range topics {
		sub := h.feed.Subscribe(topic)
		defer sub.Close()
		go forward(sub, events, done)
		log.Printf("[ws][handler] subscribed topic=%s subscribers=%d", topic, h.feed.Subscribers(topic))
	}

	closed := make(chan struct{})
	go readUntilClosed(conn, closed)

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case <-c.Request.Context().Done():
			return
		case ev := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func forward(sub *realtime.Subscription, out chan<- entities.ChangeEvent, done <-chan struct{}) {
	for ev := range sub.C() {
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func readUntilClosed(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
