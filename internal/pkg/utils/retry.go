package utils

import (
	"context"
	"time"
)

// Retry вызывает op до attempts раз с линейно растущей паузой backoff*attempt.
// onRetry (может быть nil) получает номер неудачной попытки и ошибку.
// Возвращает последнюю ошибку op или ошибку ctx.
func Retry(ctx context.Context, attempts int, backoff time.Duration, op func(ctx context.Context) error, onRetry func(attempt int, err error)) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = op(ctx); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		if onRetry != nil {
			onRetry(attempt, err)
		}

		timer := time.NewTimer(backoff * time.Duration(attempt))
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
	return err
}
