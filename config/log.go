package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig ...
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// NewLogger creates a production zap logger at the configured level
func NewLogger(conf LogConfig) *zap.Logger {
	var level zapcore.Level
	err := level.UnmarshalText([]byte(conf.Level))
	if err != nil {
		panic(err)
	}

	zapConf := zap.NewProductionConfig()
	zapConf.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapConf.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
