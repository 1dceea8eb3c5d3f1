package ledger

import (
	"context"
	"database/sql"
	"github.com/QuangTung97/campaign-ledger/pkg/otellib"
	"go.uber.org/zap"
	"time"
)

// Sweeper drives SweepExpired on a fixed interval
type Sweeper struct {
	ledger   ILedger
	interval time.Duration
	logger   *zap.Logger
}

// NewSweeper ...
func NewSweeper(ledger ILedger, interval time.Duration, logger *zap.Logger) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{
		ledger:   ledger,
		interval: interval,
		logger:   logger,
	}
}

// RunOnce sweeps every campaign, returns the number of transitioned submissions
func (w *Sweeper) RunOnce(ctx context.Context) (int, error) {
	ctx = otellib.ToContext(ctx, w.logger)

	swept, err := w.ledger.SweepExpired(ctx, sql.NullInt64{})
	if err != nil {
		w.logger.Error("sweep failed", zap.Int("swept", len(swept)), zap.Error(err))
		return len(swept), err
	}
	if len(swept) > 0 {
		w.logger.Info("sweep finished", zap.Int("swept", len(swept)))
	}
	return len(swept), nil
}

// Run sweeps immediately then on every tick, until ctx is done
func (w *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		_, _ = w.RunOnce(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
