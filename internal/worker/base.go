package worker

import (
	"sync"

	"go.uber.org/zap"
)

// BaseWorker - общая часть воркеров: имя, логгер и однократная остановка.
// Встраивается в конкретные воркеры, Start они реализуют сами.
type BaseWorker struct {
	name   string
	logger *zap.Logger
	stop   chan struct{}
	once   sync.Once
}

// NewBaseWorker создает новый BaseWorker
func NewBaseWorker(name string, logger *zap.Logger) *BaseWorker {
	return &BaseWorker{
		name:   name,
		logger: logger.With(zap.String("worker", name)),
		stop:   make(chan struct{}),
	}
}

func (w *BaseWorker) Name() string {
	return w.name
}

// Stop закрывает канал остановки; повторный вызов ничего не делает
func (w *BaseWorker) Stop() error {
	w.once.Do(func() {
		w.logger.Info("Stopping worker")
		close(w.stop)
	})
	return nil
}

// IsStopped reports whether Stop has been called.
func (w *BaseWorker) IsStopped() bool {
	select {
	case <-w.stop:
		return true
	default:
		return false
	}
}

func (w *BaseWorker) StopChan() <-chan struct{} {
	return w.stop
}

func (w *BaseWorker) Logger() *zap.Logger {
	return w.logger
}
