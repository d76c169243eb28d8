package jobs

import (
	"context"
	"log"
	"time"
)

// Warmer is implemented by fallback responders that can preload their model.
type Warmer interface {
	Warm(ctx context.Context) error
}

// Warmup keeps the fallback model loaded by warming it periodically.
type Warmup struct {
	warmer   Warmer
	interval time.Duration
	timeout  time.Duration
}

// NewWarmup creates a new warm-up job.
func NewWarmup(warmer Warmer, interval, timeout time.Duration) *Warmup {
	return &Warmup{
		warmer:   warmer,
		interval: interval,
		timeout:  timeout,
	}
}

// Start begins the background warm-up loop.
func (w *Warmup) Start(ctx context.Context) {
	log.Printf("Responder warm-up started (interval: %v)", w.interval)

	// Run immediately on start
	w.warm(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Responder warm-up stopped")
			return
		case <-ticker.C:
			w.warm(ctx)
		}
	}
}

// warm performs one bounded warm-up call.
func (w *Warmup) warm(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	if err := w.warmer.Warm(ctx); err != nil {
		log.Printf("Responder warm-up: %v", err)
	}
}
