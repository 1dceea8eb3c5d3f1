package config

import "time"

// LedgerConfig ...
type LedgerConfig struct {
	// MaxAttempts for a transaction that hits a write conflict
	MaxAttempts int `mapstructure:"max_attempts"`

	SweepInterval  time.Duration `mapstructure:"sweep_interval"`
	SweepBatchSize int           `mapstructure:"sweep_batch_size"`

	// OpportunisticSweepInterval is the min gap between sweeps triggered by reads of one campaign,
	// zero disables them
	OpportunisticSweepInterval time.Duration `mapstructure:"opportunistic_sweep_interval"`
	SweepCacheSize             int           `mapstructure:"sweep_cache_size"`

	RelayInterval  time.Duration `mapstructure:"relay_interval"`
	RelayBatchSize int           `mapstructure:"relay_batch_size"`
}
