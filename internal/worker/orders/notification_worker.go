package orders

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/domain/repository"
	"github.com/jet-charter-service/internal/worker"
)

const (
	retryBackoff = 500 * time.Millisecond
	// claimMinIdle - через сколько неподтверждённое сообщение считается брошенным
	claimMinIdle = time.Minute
)

// OrderEventHandler - обработчик события о новой заявке
type OrderEventHandler interface {
	HandleOrderCreated(ctx context.Context, payload string) error
}

// NotificationWorker читает stream:orders:created и передаёт заявки менеджерам
type NotificationWorker struct {
	*worker.BaseWorker
	streamRepo    repository.StreamRepository
	handler       OrderEventHandler
	consumerGroup string
	consumerName  string
	maxRetries    int
}

// NewNotificationWorker создает новый NotificationWorker
func NewNotificationWorker(
	streamRepo repository.StreamRepository,
	handler OrderEventHandler,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *NotificationWorker {
	hostname, _ := os.Hostname()
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &NotificationWorker{
		BaseWorker:    worker.NewBaseWorker("order-notification", logger),
		streamRepo:    streamRepo,
		handler:       handler,
		consumerGroup: consumerGroup,
		consumerName:  fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		maxRetries:    maxRetries,
	}
}

// Start запускает воркер; возвращается после Stop или отмены ctx
func (w *NotificationWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting order notification worker",
		zap.String("consumer_group", w.consumerGroup),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamOrdersCreated, w.consumerGroup); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	consumeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-w.StopChan():
			cancel()
		case <-consumeCtx.Done():
		}
	}()

	messages, err := w.streamRepo.ConsumeStream(consumeCtx, domain.StreamOrdersCreated, w.consumerGroup, w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	// сообщения упавших потребителей группы
	pending, err := w.streamRepo.ClaimPending(consumeCtx, domain.StreamOrdersCreated, w.consumerGroup, w.consumerName, claimMinIdle)
	if err != nil {
		logger.Warn("Failed to claim pending messages", zap.Error(err))
	}
	for _, msg := range pending {
		w.process(consumeCtx, msg)
	}

	for msg := range messages {
		w.process(consumeCtx, msg)
	}

	if err := ctx.Err(); err != nil {
		logger.Info("Context cancelled")
		return err
	}
	logger.Info("Worker stopped")
	return nil
}

// process handles one message with bounded retries; the message is acked either way.
func (w *NotificationWorker) process(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var err error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if err = w.handler.HandleOrderCreated(ctx, msg.Data); err == nil {
			break
		}
		logger.Warn("Failed to handle order event",
			zap.String("message_id", msg.ID),
			zap.Int("attempt", attempt),
			zap.Error(err))

		if attempt < w.maxRetries {
			select {
			case <-time.After(retryBackoff * time.Duration(attempt)):
			case <-ctx.Done():
				return
			}
		}
	}

	if err != nil {
		logger.Error("Dropping order event after retries",
			zap.String("message_id", msg.ID),
			zap.Error(err))
	}

	if err := w.streamRepo.AckMessage(ctx, domain.StreamOrdersCreated, w.consumerGroup, msg.ID); err != nil {
		logger.Error("Failed to ack message", zap.String("message_id", msg.ID), zap.Error(err))
	}
}
