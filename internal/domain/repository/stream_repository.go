package repository

import (
	"context"
	"time"

	"github.com/jet-charter-service/internal/domain"
)

// StreamRepository - события заявок поверх Redis Streams (consumer groups)
type StreamRepository interface {
	// CreateConsumerGroup создаёт группу с начала стрима; существующая группа не ошибка
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeStream отдаёт новые сообщения группы; канал закрывается при отмене ctx
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	// ClaimPending забирает сообщения, которые другие потребители получили,
	// но не подтвердили дольше minIdle (например, упавший процесс)
	ClaimPending(ctx context.Context, stream, group, consumer string, minIdle time.Duration) ([]domain.StreamMessage, error)

	AckMessage(ctx context.Context, stream, group, messageID string) error

	// PublishToStream публикует data как JSON в поле "data"
	PublishToStream(ctx context.Context, stream string, data any) error
}
