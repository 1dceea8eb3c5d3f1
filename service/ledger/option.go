package ledger

import (
	"github.com/QuangTung97/campaign-ledger/config"
	"github.com/QuangTung97/campaign-ledger/pkg/memtable"
	"time"
)

type serviceOptions struct {
	clock       Clock
	maxAttempts int

	sweepBatchSize     int
	opportunisticSweep time.Duration
	sweepTable         *memtable.MemTable

	observers []Observer
	metrics   *Metrics
}

func defaultServiceOptions() serviceOptions {
	return serviceOptions{
		clock:          NewClock(),
		maxAttempts:    3,
		sweepBatchSize: 200,
	}
}

func newServiceOptions(options ...Option) serviceOptions {
	opts := defaultServiceOptions()
	for _, fn := range options {
		fn(&opts)
	}
	if opts.opportunisticSweep > 0 && opts.sweepTable == nil {
		opts.sweepTable = memtable.New(1024 * 1024)
	}
	return opts
}

// Option ...
type Option func(opts *serviceOptions)

// WithClock ...
func WithClock(clock Clock) Option {
	return func(opts *serviceOptions) {
		opts.clock = clock
	}
}

// WithConfig applies max attempts, sweep batch size and the opportunistic sweep settings
func WithConfig(conf config.LedgerConfig) Option {
	return func(opts *serviceOptions) {
		if conf.MaxAttempts > 0 {
			opts.maxAttempts = conf.MaxAttempts
		}
		if conf.SweepBatchSize > 0 {
			opts.sweepBatchSize = conf.SweepBatchSize
		}
		opts.opportunisticSweep = conf.OpportunisticSweepInterval
		if conf.OpportunisticSweepInterval > 0 && conf.SweepCacheSize > 0 {
			opts.sweepTable = memtable.New(conf.SweepCacheSize)
		}
	}
}

// WithObserver appends an observer called after every committed transition
func WithObserver(o Observer) Option {
	return func(opts *serviceOptions) {
		opts.observers = append(opts.observers, o)
	}
}

// WithMetrics also registers the metrics as an observer
func WithMetrics(m *Metrics) Option {
	return func(opts *serviceOptions) {
		opts.metrics = m
		opts.observers = append(opts.observers, m)
	}
}
