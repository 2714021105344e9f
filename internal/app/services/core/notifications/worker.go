package notifications

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/app/services/shared/notificationqueue"
	"time"

	"go.uber.org/zap"
)

const workerBatchSize = 20

// Worker drains the notification queue and materializes notification
// documents with at-least-once semantics. A redis NX lock keeps multiple
// instances from draining the same batch twice.
type Worker struct {
	log        *zap.Logger
	queue      *notificationqueue.Service
	repository contracts.NotificationRepository
	redis      contracts.RedisRepository
	stop       chan struct{}
}

func NewWorker(log *zap.Logger, queue *notificationqueue.Service, repository contracts.NotificationRepository, redisRepository contracts.RedisRepository) *Worker {
	return &Worker{
		log:        log,
		queue:      queue,
		repository: repository,
		redis:      redisRepository,
		stop:       make(chan struct{}),
	}
}

// Start begins the ticker loop. It returns a stop function to halt execution.
func (w *Worker) Start(ctx context.Context) (stop func()) {
	ticker := time.NewTicker(5 * time.Second)
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-w.stop:
				ticker.Stop()
				return
			case <-ticker.C:
				w.runOnce(ctx)
			}
		}
	}()

	return func() {
		close(w.stop)
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	acquired, err := w.redis.TrySetNX(ctx, "notifications:worker:lock", "1", 4*time.Second)
	if err != nil {
		w.log.Warn("notification worker lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		return
	}

	items, err := w.queue.FetchN(ctx, workerBatchSize)
	if err != nil {
		w.log.Error("notification worker fetch failed", zap.Error(err))
		return
	}

	for _, item := range items {
		w.processItem(ctx, item)
	}
}

func (w *Worker) processItem(ctx context.Context, item notificationqueue.QueuedItem) {
	now := time.Now()
	notificationModel := &models.Notification{
		UserID:    item.Event.UserID,
		Type:      item.Event.Type,
		Message:   item.Event.Message,
		Read:      false,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	if _, err := w.repository.CreateNotification(ctx, notificationModel); err != nil {
		w.log.Error("notification worker failed persisting notification",
			zap.String("user_id", item.Event.UserID),
			zap.Error(err),
		)
		// Leave unacked so the broker redelivers it.
		return
	}

	if err := w.queue.AckMessage(item.DeliveryTag); err != nil {
		w.log.Error("notification worker failed acking message", zap.Error(err))
	}
}
