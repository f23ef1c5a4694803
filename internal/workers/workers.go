package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-smooai-config/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Run starts every worker in its own goroutine and returns once all of them
// have stopped. Worker errors are logged and joined.
func (w *Workers) Run(ctx context.Context) error {
	log := logger.OrNop(w.logger)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, worker := range w.workers {
		wg.Go(func() {
			if err := worker.Run(ctx); err != nil {
				log.Err(err).Msg("worker stopped with error")
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		})
	}
	wg.Wait()

	return errors.Join(errs...)
}
