package worker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// WorkerManager запускает зарегистрированные воркеры и останавливает их вместе
type WorkerManager struct {
	workers []Worker
	status  map[string]*Status
	logger  *zap.Logger
	wg      sync.WaitGroup
	mu      sync.Mutex
}

// NewWorkerManager создает новый WorkerManager
func NewWorkerManager(logger *zap.Logger) *WorkerManager {
	return &WorkerManager{
		status: make(map[string]*Status),
		logger: logger,
	}
}

// Register регистрирует воркер; имена должны быть уникальны
func (m *WorkerManager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.status[w.Name()]; ok {
		m.logger.Warn("Worker already registered", zap.String("name", w.Name()))
		return
	}

	m.workers = append(m.workers, w)
	m.status[w.Name()] = &Status{Name: w.Name()}
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

// Start запускает каждый воркер в своей горутине и сразу возвращается
func (m *WorkerManager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.workers) == 0 {
		return errors.New("no workers registered")
	}

	m.logger.Info("Starting workers", zap.Int("count", len(m.workers)))

	now := time.Now()
	for _, w := range m.workers {
		st := m.status[w.Name()]
		st.Running = true
		st.StartedAt = now
		st.StoppedAt = nil
		st.LastError = ""

		m.wg.Add(1)
		go m.run(ctx, w)
	}

	return nil
}

func (m *WorkerManager) run(ctx context.Context, w Worker) {
	defer m.wg.Done()

	err := w.Start(ctx)

	m.mu.Lock()
	st := m.status[w.Name()]
	stoppedAt := time.Now()
	st.Running = false
	st.StoppedAt = &stoppedAt
	if err != nil && !errors.Is(err, context.Canceled) {
		st.LastError = err.Error()
	}
	m.mu.Unlock()

	if err != nil && !errors.Is(err, context.Canceled) {
		m.logger.Error("Worker failed", zap.String("name", w.Name()), zap.Error(err))
		return
	}
	m.logger.Info("Worker exited", zap.String("name", w.Name()))
}

// Stop сигнализирует всем воркерам и ждёт их завершения, пока не истечёт ctx
func (m *WorkerManager) Stop(ctx context.Context) error {
	m.mu.Lock()
	workers := append([]Worker(nil), m.workers...)
	m.mu.Unlock()

	m.logger.Info("Stopping workers", zap.Int("count", len(workers)))

	var errs []error
	for _, w := range workers {
		if err := w.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", w.Name(), err))
		}
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("All workers stopped gracefully")
	case <-ctx.Done():
		m.logger.Warn("Workers shutdown timed out, some tasks may not have completed")
		errs = append(errs, fmt.Errorf("workers shutdown: %w", ctx.Err()))
	}

	return errors.Join(errs...)
}

// Statuses - снимок состояния воркеров, отсортированный по имени
func (m *WorkerManager) Statuses() []Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Status, 0, len(m.status))
	for _, st := range m.status {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
