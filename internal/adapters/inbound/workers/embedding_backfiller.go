package workers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/usecases"
)

// EmbeddingBackfiller is a runnable that periodically embeds tasks that were
// persisted without a vector, so a transient model outage at creation time
// heals over time.
type EmbeddingBackfiller struct {
	Backfill            usecases.BackfillEmbeddings `resolve:""`
	Logger              *log.Logger                 `resolve:""`
	Interval            time.Duration               `config:"EMBEDDING_BACKFILL_INTERVAL" default:"1m"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic embedding backfill.
func (eb EmbeddingBackfiller) Run(ctx context.Context) error {
	eb.Logger.Println("EmbeddingBackfiller: running...")
	ticker := time.NewTicker(eb.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			processed, err := eb.Backfill.Execute(ctx)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					eb.Logger.Printf("EmbeddingBackfiller: %v", err)
				}
			} else if processed > 0 {
				eb.Logger.Printf("EmbeddingBackfiller: embedded %d tasks", processed)
			}
			if eb.workerExecutionChan != nil {
				eb.workerExecutionChan <- struct{}{}
			}
		case <-ctx.Done():
			eb.Logger.Println("EmbeddingBackfiller: stopping...")
			return nil
		}
	}
}
