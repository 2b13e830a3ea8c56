package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
)

// CurrentTimeProvider implements domain.CurrentTimeProvider with the wall
// clock. Use cases depend on the interface so tests can pin time.
type CurrentTimeProvider struct{}

// Now returns the current time.
func (ts CurrentTimeProvider) Now() time.Time {
	return time.Now()
}

// InitCurrentTimeProvider registers the wall clock in the dependency
// container.
type InitCurrentTimeProvider struct {
}

func (its InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](CurrentTimeProvider{})
	return ctx, nil
}
