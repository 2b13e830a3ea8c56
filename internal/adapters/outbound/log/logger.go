package log

import (
	"context"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger registers the shared application logger. Timestamps are UTC so
// log lines line up with trace timestamps regardless of host timezone.
type InitLogger struct{}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(log.New(os.Stdout, "", log.LstdFlags|log.LUTC|log.Lmsgprefix))
	return ctx, nil
}
