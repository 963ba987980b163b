package logger

import (
	"os"

	"github.com/Sufmax/printful-sdk/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Package-level logger to be used across packages after Init.
var S *zap.SugaredLogger

// Logger logs a structured object under a named key. It satisfies the
// per-package logger interfaces declared in pkg/printful and pkg/notify.
type Logger struct {
	base *zap.Logger
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) InfoObj(string, string, interface{})  {}
func (NopLogger) DebugObj(string, string, interface{}) {}
func (NopLogger) WarnObj(string, string, interface{})  {}
func (NopLogger) ErrorObj(string, string, interface{}) {}

// Init initializes a zap SugaredLogger using settings from config.
func Init(cfg *config.Config) (*Logger, error) {
	var level zapcore.Level
	switch cfg.LogLevel {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn", "warning":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(zapcore.Lock(os.Stdout)),
		level,
	)

	base := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	S = base.Sugar()
	return &Logger{base: base}, nil
}

// Close flushes any buffered loggers.
func Close() error {
	if S == nil {
		return nil
	}
	return S.Sync()
}

func (l *Logger) InfoObj(msg, key string, obj interface{}) {
	if l == nil || l.base == nil {
		return
	}
	l.base.Info(msg, zap.Any(key, obj))
}

func (l *Logger) DebugObj(msg, key string, obj interface{}) {
	if l == nil || l.base == nil {
		return
	}
	l.base.Debug(msg, zap.Any(key, obj))
}

func (l *Logger) WarnObj(msg, key string, obj interface{}) {
	if l == nil || l.base == nil {
		return
	}
	l.base.Warn(msg, zap.Any(key, obj))
}

func (l *Logger) ErrorObj(msg, key string, obj interface{}) {
	if l == nil || l.base == nil {
		return
	}
	l.base.Error(msg, zap.Any(key, obj))
}

// Minimal object logging helpers -------------------------------------------------
// These log the given object as a structured field named `key` on the
// package-level logger.
func InfoObj(msg, key string, obj interface{}) {
	if S == nil {
		return
	}
	S.Desugar().Info(msg, zap.Any(key, obj))
}

func DebugObj(msg, key string, obj interface{}) {
	if S == nil {
		return
	}
	S.Desugar().Debug(msg, zap.Any(key, obj))
}

func WarnObj(msg, key string, obj interface{}) {
	if S == nil {
		return
	}
	S.Desugar().Warn(msg, zap.Any(key, obj))
}

func ErrorObj(msg, key string, obj interface{}) {
	if S == nil {
		return
	}
	S.Desugar().Error(msg, zap.Any(key, obj))
}
