package jobs

import (
	"context"

	"focusflow-api/core/config"
	"focusflow-api/core/logger"

	"github.com/hibiken/asynq"
)

// Queue wraps the asynq client used to enqueue background tasks.
type Queue struct {
	client *asynq.Client
}

func NewQueue(cfg config.RedisConfig) *Queue {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Queue{client: client}
}

// Enqueue submits a task. Callers decide whether a failure is fatal; most
// enqueues here are best-effort side work.
func (q *Queue) Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) error {
	info, err := q.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		logger.Error("Queue:Enqueue", "type", task.Type(), "error", err)
		return err
	}
	logger.Debug("Queue:Enqueue", "type", task.Type(), "id", info.ID, "queue", info.Queue)
	return nil
}

func (q *Queue) Close() error {
	return q.client.Close()
}

// NewWorkerServer builds the asynq server that consumes the task queue.
// Handlers are registered on the returned mux by core/server.
func NewWorkerServer(cfg config.RedisConfig) (*asynq.Server, *asynq.ServeMux) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		asynq.Config{
			Concurrency: 5,
		},
	)
	return srv, asynq.NewServeMux()
}
