package lock

import (
	"context"

	domain "github.com/BruksfildServices01/appointment-booking/internal/domain/appointment"
)

// Noop always grants the lock. Used when no Redis is configured.
type Noop struct{}

func (Noop) Acquire(context.Context, string) (func(), bool, error) {
	return func() {}, true, nil
}

var _ domain.Locker = Noop{}
