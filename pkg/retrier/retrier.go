package retrier

import (
	"context"
	"time"
)

// Retrier повторяет fn по своей политике, пока она не вернет nil,
// постоянную ошибку или пока не истечет ctx.
type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// OnRetryFunc вызывается перед каждой паузой: err - ошибка попытки, next - длина паузы.
type OnRetryFunc func(err error, next time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// nil - повторяются все ошибки
	ShouldRetry ShouldRetryFunc

	OnRetry OnRetryFunc
}
