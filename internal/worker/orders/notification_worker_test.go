package orders_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/domain"
	redisRepo "github.com/jet-charter-service/internal/repository/redis"
	"github.com/jet-charter-service/internal/worker/orders"
)

type recordingHandler struct {
	mu       sync.Mutex
	payloads []string
	failures int
}

func (h *recordingHandler) HandleOrderCreated(_ context.Context, payload string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.failures > 0 {
		h.failures--
		return errors.New("smtp unavailable")
	}
	h.payloads = append(h.payloads, payload)
	return nil
}

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.payloads)
}

func TestNotificationWorker_ConsumesAndAcks(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := zap.NewNop()
	stream := redisRepo.NewStreamRepository(client, logger, 50*time.Millisecond)
	handler := &recordingHandler{failures: 1}
	w := orders.NewNotificationWorker(stream, handler, "notifiers", 3, logger)

	ctx := context.Background()
	event := domain.OrderCreatedEvent{OrderID: uuid.New(), ListingType: "charter", Name: "Sam"}
	require.NoError(t, stream.PublishToStream(ctx, domain.StreamOrdersCreated, event))

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	assert.Eventually(t, func() bool { return handler.count() == 1 }, 5*time.Second, 20*time.Millisecond)

	assert.Eventually(t, func() bool {
		pending, err := client.XPending(ctx, domain.StreamOrdersCreated, "notifiers").Result()
		return err == nil && pending.Count == 0
	}, 2*time.Second, 20*time.Millisecond)

	require.NoError(t, w.Stop())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("worker did not stop")
	}
	assert.Equal(t, "order-notification", w.Name())
}
