package notify

import (
	"context"
	"errors"
	"fmt"
	"log"

	"m2_studio/internal/domain/entities"

	"github.com/hibiken/asynq"
)

var ErrUnknownChannel = errors.New("unknown notification channel")

// Channel delivers an event to one destination. Events a channel does not
// handle are ignored with a nil error.
type Channel interface {
	Name() string
	Deliver(ctx context.Context, event entities.NotificationEvent) error
}

// Processor delivers events to the configured channels. Each channel is
// retried on its own: an event is split into one Delivery per channel and
// a failed Delivery never re-runs the channels that already succeeded.
type Processor struct {
	channels []Channel
	byName   map[string]Channel
}

func NewProcessor(channels ...Channel) *Processor {
	byName := make(map[string]Channel, len(channels))
	for _, ch := range channels {
		byName[ch.Name()] = ch
	}
	return &Processor{channels: channels, byName: byName}
}

// Deliveries splits event into one Delivery per channel.
func (p *Processor) Deliveries(event entities.NotificationEvent) []Delivery {
	out := make([]Delivery, 0, len(p.channels))
	for _, ch := range p.channels {
		out = append(out, Delivery{Channel: ch.Name(), Event: event})
	}
	return out
}

// Deliver runs a single Delivery on its channel.
func (p *Processor) Deliver(ctx context.Context, d Delivery) error {
	ch, ok := p.byName[d.Channel]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownChannel, d.Channel)
	}
	if err := ch.Deliver(ctx, d.Event); err != nil {
		log.Printf("[notify][worker] channel=%s type=%s event_id=%s order_id=%s attempt=%d err=%v",
			ch.Name(), d.Event.Type, d.Event.ID, d.Event.OrderID, d.Attempt, err)
		return fmt.Errorf("%s: %w", ch.Name(), err)
	}
	return nil
}

// Process delivers event to every channel and returns the deliveries that
// failed, ready to be retried one by one.
func (p *Processor) Process(ctx context.Context, event entities.NotificationEvent) []Delivery {
	var failed []Delivery
	for _, d := range p.Deliveries(event) {
		if err := p.Deliver(ctx, d); err != nil {
			failed = append(failed, d)
		}
	}
	return failed
}

// HandleEvent returns the asynq handler for event tasks. It only enqueues
// one delivery task per channel; delivery task ids make a re-run of the
// split a no-op for channels already enqueued.
func (p *Processor) HandleEvent(q taskEnqueuer) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		ev, err := decodeEvent(t.Payload())
		if err != nil {
			return fmt.Errorf("decode %s: %v: %w", t.Type(), err, asynq.SkipRetry)
		}
		ev = withEventID(ev)

		var errs []error
		for _, d := range p.Deliveries(ev) {
			task, err := NewDeliveryTask(d)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if _, err := q.EnqueueContext(ctx, task); err != nil {
				if errors.Is(err, asynq.ErrTaskIDConflict) {
					continue
				}
				errs = append(errs, fmt.Errorf("enqueue %s: %w", d.Channel, err))
			}
		}
		return errors.Join(errs...)
	}
}

// HandleDelivery is the asynq handler for delivery tasks. A failure makes
// asynq retry this channel only.
func (p *Processor) HandleDelivery(ctx context.Context, t *asynq.Task) error {
	d, err := decodeDelivery(t.Payload())
	if err != nil {
		return fmt.Errorf("decode %s: %v: %w", t.Type(), err, asynq.SkipRetry)
	}
	err = p.Deliver(ctx, d)
	if errors.Is(err, ErrUnknownChannel) {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	return err
}

func (p *Processor) Mux(q taskEnqueuer) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	split := p.HandleEvent(q)
	for _, tt := range TaskTypes() {
		mux.Handle(tt, split)
	}
	mux.HandleFunc(TaskDeliver, p.HandleDelivery)
	return mux
}

func NewServer(redisAddr string, concurrency int) *asynq.Server {
	return asynq.NewServer(asynq.RedisClientOpt{Addr: redisAddr}, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			QueueNotifications: 10,
		},
	})
}
