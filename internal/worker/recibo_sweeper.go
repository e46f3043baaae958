package worker

// Background goroutine that re-enqueues receipts for paid sales whose
// receipt job was lost (Redis down at payment time, DLQ'd, process crash).
// Only sales paid inside the sweep window are considered, so a sale whose
// receipt keeps failing stops being retried once it ages out.

import (
	"context"
	"time"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/repository"

	"github.com/rs/zerolog/log"
)

const (
	sweepTickInterval = time.Minute
	sweepBatchSize    = 20
	sweepGrace        = 5 * time.Minute
	sweepWindow       = 24 * time.Hour
)

// ReciboEnqueuer is satisfied by *Dispatcher.
type ReciboEnqueuer interface {
	EnqueueRecibo(ctx context.Context, vendaID uint) error
}

// ReciboSweeperConfig holds all dependencies for the sweeper goroutine.
type ReciboSweeperConfig struct {
	Vendas     repository.VendaRepository
	Dispatcher ReciboEnqueuer
	Now        func() time.Time // defaults to time.Now
}

// StartReciboSweeper launches a goroutine that ticks every minute until ctx
// is cancelled.
func StartReciboSweeper(ctx context.Context, cfg ReciboSweeperConfig) {
	go func() {
		ticker := time.NewTicker(sweepTickInterval)
		defer ticker.Stop()

		log.Info().Msg("recibo_sweeper: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("recibo_sweeper: shutting down")
				return
			case <-ticker.C:
				sweepRecibos(ctx, cfg)
			}
		}
	}()
}

// sweepRecibos runs one pass and returns how many jobs were enqueued.
func sweepRecibos(ctx context.Context, cfg ReciboSweeperConfig) int {
	now := time.Now
	if cfg.Now != nil {
		now = cfg.Now
	}
	// Grace leaves time for the job enqueued at payment to finish.
	antes := now().Add(-sweepGrace).UTC()
	desde := antes.Add(-sweepWindow)

	vendas, err := cfg.Vendas.ListSemRecibo(ctx, desde, antes, sweepBatchSize)
	if err != nil {
		log.Error().Err(err).Msg("recibo_sweeper: failed to query sales without receipt")
		return 0
	}

	enqueued := 0
	for _, v := range vendas {
		if err := cfg.Dispatcher.EnqueueRecibo(ctx, v.ID); err != nil {
			// Redis is likely down; the next tick will try again.
			log.Warn().Err(err).Msg("recibo_sweeper: enqueue failed, stopping pass")
			break
		}
		enqueued++
	}
	if enqueued > 0 {
		log.Info().Int("count", enqueued).Msg("recibo_sweeper: receipts re-enqueued")
	}
	return enqueued
}
