package notify

import (
	"context"
	"log"

	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase/interfaces"

	"github.com/hibiken/asynq"
)

type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqDispatcher enqueues events on Redis for the worker.
type AsynqDispatcher struct {
	client taskEnqueuer
	closer func() error
}

var _ interfaces.INotifier = (*AsynqDispatcher)(nil)

func NewAsynqDispatcher(redisAddr string) *AsynqDispatcher {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	return &AsynqDispatcher{client: client, closer: client.Close}
}

func (d *AsynqDispatcher) Dispatch(ctx context.Context, event entities.NotificationEvent) error {
	task, err := NewTask(event)
	if err != nil {
		return err
	}
	info, err := d.client.EnqueueContext(ctx, task)
	if err != nil {
		return err
	}
	log.Printf("[notify][asynq] enqueued type=%s id=%s order_id=%s", task.Type(), info.ID, event.OrderID)
	return nil
}

func (d *AsynqDispatcher) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer()
}
