package worker

import (
	"context"
	"time"
)

// Worker - фоновая задача процесса cmd/worker.
// Start блокируется до остановки; Stop должен быть безопасен при повторном вызове.
type Worker interface {
	Start(ctx context.Context) error
	Stop() error
	Name() string
}

// Status - состояние воркера для логов и health
type Status struct {
	Name      string     `json:"name"`
	Running   bool       `json:"running"`
	StartedAt time.Time  `json:"startedAt"`
	StoppedAt *time.Time `json:"stoppedAt,omitempty"`
	LastError string     `json:"lastError,omitempty"`
}
