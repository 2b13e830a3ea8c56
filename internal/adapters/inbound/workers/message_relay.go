package workers

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/usecases"
)

// MessageRelay drains the outbox on a fixed interval and hands each batch to
// the RelayOutbox use case for publishing.
type MessageRelay struct {
	MessageDispatcher   usecases.RelayOutbox `resolve:""`
	Logger              *log.Logger          `resolve:""`
	Interval            time.Duration        `config:"FETCH_OUTBOX_INTERVAL" default:"500ms"`
	workerExecutionChan chan struct{}
}

// Run loops until the context is cancelled. Batch errors are logged and the
// next tick retries, failed events stay in the outbox.
func (op MessageRelay) Run(ctx context.Context) error {
	op.Logger.Println("MessageRelay: running...")
	ticker := time.NewTicker(op.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := op.MessageDispatcher.Execute(ctx); err != nil {
				op.Logger.Printf("MessageRelay: error processing batch: %v", err)
			}
			if op.workerExecutionChan != nil {
				op.workerExecutionChan <- struct{}{}
			}
		case <-ctx.Done():
			op.Logger.Println("MessageRelay: stopping...")
			return nil
		}
	}
}
