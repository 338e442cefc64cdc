package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"oficina_insufilm/internal/domain/entities"
)

// DefaultCASAttempts bounds the read-modify-write loop when no value is
// configured.
const DefaultCASAttempts = 3

// retryOnConflict re-runs fn while it fails with a version conflict. fn must
// re-read the aggregate on every attempt. When attempts run out the error
// wraps exhausted.
func retryOnConflict[T any](ctx context.Context, area string, attempts int, exhausted error, fn func() (T, error)) (T, error) {
	var zero T
	if attempts < 1 {
		attempts = DefaultCASAttempts
	}
	for attempt := 1; attempt <= attempts; attempt++ {
		v, err := fn()
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, entities.ErrVersionConflict) {
			return zero, err
		}
		log.Printf("[%s][usecase] version conflict attempt=%d/%d", area, attempt, attempts)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zero, ctxErr
		}
	}
	return zero, fmt.Errorf("%w after %d attempts", exhausted, attempts)
}
