package orders

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
)

const (
	orderCodePrefix = "REY"
	maxCodeAttempts = 100
)

var errCodeExhausted = errors.New("could not generate a unique order code")

type codeStore interface {
	OrderCodeExists(ctx context.Context, code string) (bool, error)
}

// generateOrderCode draws random REYnnnnnn codes until one is unused.
// After maxCodeAttempts collisions it fails hard rather than reusing a code.
func generateOrderCode(ctx context.Context, store codeStore) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := fmt.Sprintf("%s%06d", orderCodePrefix, rand.IntN(999999)+1)
		exists, err := store.OrderCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errCodeExhausted
}
