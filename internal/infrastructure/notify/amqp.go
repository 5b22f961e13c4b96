package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase/interfaces"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeOrderEvents = "order_events"
	QueueWorker         = "order_events.worker"

	amqpTypeDelivery = "notify.deliver"

	reconnectDelay = 5 * time.Second
)

// amqpChannel is the subset of *amqp.Channel used here.
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Qos(prefetchCount, prefetchSize int, global bool) error
	Confirm(noWait bool) error
	NotifyPublish(confirm chan amqp.Confirmation) chan amqp.Confirmation
	NotifyClose(c chan *amqp.Error) chan *amqp.Error
	Close() error
}

// amqpConn lazily (re)dials the broker and hands out channels.
type amqpConn struct {
	url  string
	mu   sync.Mutex
	conn *amqp.Connection
}

func (c *amqpConn) channel() (amqpChannel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || c.conn.IsClosed() {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		c.conn = conn
	}
	ch, err := c.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return ch, nil
}

func (c *amqpConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil && !c.conn.IsClosed() {
		return c.conn.Close()
	}
	return nil
}

func declareExchange(ch amqpChannel) error {
	if err := ch.ExchangeDeclare(ExchangeOrderEvents, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}
	return nil
}

var ErrPublishNacked = errors.New("broker rejected publish")

// AMQPDispatcher publishes events to the order_events fanout exchange over
// one long-lived channel in confirm mode. Dispatch returns once the broker
// has acknowledged the message.
type AMQPDispatcher struct {
	open   func() (amqpChannel, error)
	closer func() error

	mu       sync.Mutex
	ch       amqpChannel
	confirms chan amqp.Confirmation
}

var _ interfaces.INotifier = (*AMQPDispatcher)(nil)

func NewAMQPDispatcher(url string) *AMQPDispatcher {
	conn := &amqpConn{url: url}
	return &AMQPDispatcher{open: conn.channel, closer: conn.Close}
}

func (d *AMQPDispatcher) Dispatch(ctx context.Context, event entities.NotificationEvent) error {
	event = withEventID(event)
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ensureChannel(); err != nil {
		return err
	}
	err = d.ch.PublishWithContext(ctx, ExchangeOrderEvents, string(event.Type), false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Type:         string(event.Type),
		MessageId:    event.ID,
		Timestamp:    event.OccurredAt,
		Body:         body,
	})
	if err != nil {
		d.reset()
		return fmt.Errorf("failed to publish event: %w", err)
	}

	select {
	case <-ctx.Done():
		// the pending confirm would be read by the next publish
		d.reset()
		return ctx.Err()
	case c, ok := <-d.confirms:
		if !ok {
			d.reset()
			return fmt.Errorf("channel closed before publish was confirmed")
		}
		if !c.Ack {
			return fmt.Errorf("%w: event_id=%s", ErrPublishNacked, event.ID)
		}
	}
	return nil
}

// ensureChannel must be called with d.mu held.
func (d *AMQPDispatcher) ensureChannel() error {
	if d.ch != nil {
		return nil
	}
	ch, err := d.open()
	if err != nil {
		return err
	}
	if err := declareExchange(ch); err != nil {
		_ = ch.Close()
		return err
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		return fmt.Errorf("failed to enable publisher confirms: %w", err)
	}
	d.confirms = ch.NotifyPublish(make(chan amqp.Confirmation, 1))
	d.ch = ch
	return nil
}

func (d *AMQPDispatcher) reset() {
	if d.ch != nil {
		_ = d.ch.Close()
	}
	d.ch, d.confirms = nil, nil
}

func (d *AMQPDispatcher) Close() error {
	d.mu.Lock()
	d.reset()
	d.mu.Unlock()
	if d.closer == nil {
		return nil
	}
	return d.closer()
}

// AMQPConsumer drains the worker queue bound to order_events.
type AMQPConsumer struct {
	open     func() (amqpChannel, error)
	closer   func() error
	prefetch int
}

func NewAMQPConsumer(url string, prefetch int) *AMQPConsumer {
	conn := &amqpConn{url: url}
	return &AMQPConsumer{open: conn.channel, closer: conn.Close, prefetch: prefetch}
}

// Run consumes until ctx is cancelled, reconnecting after broker failures.
func (c *AMQPConsumer) Run(ctx context.Context, p *Processor) error {
	defer func() {
		if c.closer != nil {
			_ = c.closer()
		}
	}()
	for {
		err := c.consume(ctx, p)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err == nil {
			return nil
		}

		log.Printf("[notify][amqp] consumer disconnected: %v. Reconnecting in %s...", err, reconnectDelay)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(reconnectDelay):
		}
	}
}

func (c *AMQPConsumer) consume(ctx context.Context, p *Processor) error {
	ch, err := c.open()
	if err != nil {
		return err
	}
	defer ch.Close()

	closeChan := ch.NotifyClose(make(chan *amqp.Error, 1))

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}
	if err := declareExchange(ch); err != nil {
		return err
	}
	q, err := ch.QueueDeclare(QueueWorker, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}
	if err := ch.QueueBind(q.Name, "", ExchangeOrderEvents, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}
	msgs, err := ch.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-closeChan:
			if err != nil {
				return fmt.Errorf("channel closed: %w", err)
			}
			return fmt.Errorf("channel closed gracefully")

		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("messages channel closed")
			}
			c.deliver(ctx, ch, msg, p)
		}
	}
}

// deliver runs one message and always settles it. Events fan out to every
// channel; each failed channel is republished to the worker queue as its own
// delivery message until it has been tried MaxRetry more times.
func (c *AMQPConsumer) deliver(ctx context.Context, pub amqpChannel, msg amqp.Delivery, p *Processor) {
	var failed []Delivery
	if msg.Type == amqpTypeDelivery {
		d, err := decodeDelivery(msg.Body)
		if err != nil {
			log.Printf("[notify][amqp] dropping undecodable delivery: %v", err)
			_ = msg.Nack(false, false)
			return
		}
		if err := p.Deliver(ctx, d); err != nil {
			if errors.Is(err, ErrUnknownChannel) {
				log.Printf("[notify][amqp] dropping delivery: %v", err)
				_ = msg.Nack(false, false)
				return
			}
			failed = append(failed, d)
		}
	} else {
		ev, err := decodeEvent(msg.Body)
		if err != nil {
			log.Printf("[notify][amqp] dropping undecodable message: %v", err)
			_ = msg.Nack(false, false)
			return
		}
		failed = p.Process(ctx, withEventID(ev))
	}

	for _, d := range failed {
		d.Attempt++
		if d.Attempt > MaxRetry {
			log.Printf("[notify][amqp] giving up channel=%s event_id=%s after %d retries", d.Channel, d.Event.ID, MaxRetry)
			continue
		}
		if err := republish(ctx, pub, d); err != nil {
			log.Printf("[notify][amqp] retry publish failed channel=%s event_id=%s: %v", d.Channel, d.Event.ID, err)
			if msg.Type == amqpTypeDelivery {
				// a single delivery can be requeued without touching other channels
				_ = msg.Nack(false, true)
				return
			}
		}
	}
	_ = msg.Ack(false)
}

// republish routes d straight to the worker queue through the default
// exchange, so other consumers of order_events never see retries.
func republish(ctx context.Context, pub amqpChannel, d Delivery) error {
	body, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return pub.PublishWithContext(ctx, "", QueueWorker, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Type:         amqpTypeDelivery,
		MessageId:    DeliveryTaskID(d),
		Body:         body,
	})
}
