package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects where and how much to log
type Config struct {
	Level       string // debug, info, warn or error
	Development bool   // Console encoding instead of JSON
	File        string // Log destination; empty means stderr
	Discard     bool   // Drop everything unless File is set
}

// New builds a zap logger. With Discard set and no File it returns a no-op
// logger, for frontends that own stderr.
func New(cfg Config) (*zap.Logger, error) {
	if cfg.Discard && cfg.File == "" {
		return zap.NewNop(), nil
	}

	var zapConfig zap.Config
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if cfg.File != "" {
		zapConfig.OutputPaths = []string{cfg.File}
		zapConfig.ErrorOutputPaths = []string{cfg.File}
		// Colour escapes make a mess of files
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		zapConfig.OutputPaths = []string{"stderr"}
		zapConfig.ErrorOutputPaths = []string{"stderr"}
	}

	return zapConfig.Build()
}
