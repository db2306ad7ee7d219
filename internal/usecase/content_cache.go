package usecase

import (
	"context"
	"time"
)

// ContentCache fronts the read-mostly content library. Implementations must
// tolerate an unavailable backend by behaving as a miss.
type ContentCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
