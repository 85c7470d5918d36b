package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"viciolinks/internal/config/configs"
)

// New builds a zap.Logger from the LOG_ configuration section. Output goes
// to stdout, the logger's own failures to stderr.
func New(cfg configs.Logger) (*zap.Logger, error) {
	return build(cfg, "stdout")
}

// NewStderr is like New but writes to stderr. The console uses it so that
// log lines never mix with command output.
func NewStderr(cfg configs.Logger) (*zap.Logger, error) {
	return build(cfg, "stderr")
}

func build(cfg configs.Logger, output string) (*zap.Logger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	zapConfig := zap.Config{
		Level:             zap.NewAtomicLevelAt(cfg.ZapLevel()),
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          cfg.ZapEncoding(),
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{output},
		ErrorOutputPaths:  []string{"stderr"},
	}

	log, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}
