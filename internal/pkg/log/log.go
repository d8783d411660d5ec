package log

import (
	"context"
	"os"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging surface used by usecases and repositories.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
}

type logger struct {
	zap *otelzap.Logger
}

// SetupLogger builds the zap production logger, honouring LOG_LEVEL.
func SetupLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		level, err := zapcore.ParseLevel(lvl)
		if err == nil {
			cfg.Level = zap.NewAtomicLevelAt(level)
		}
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// Init installs the otelzap global wrapping l.
func Init(l *zap.Logger) {
	otelzap.ReplaceGlobals(otelzap.New(l, otelzap.WithMinLevel(zap.DebugLevel)))
}

// GetLogger returns a Logger backed by the otelzap global.
func GetLogger() Logger {
	return &logger{zap: otelzap.L()}
}

// Setup returns a no-op otelzap logger for handlers under test.
func Setup() *otelzap.Logger {
	return otelzap.New(zap.NewNop())
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Ctx(ctx).Debug(msg, toZapFields(fields)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Ctx(ctx).Info(msg, toZapFields(fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Ctx(ctx).Warn(msg, toZapFields(fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Ctx(ctx).Error(msg, toZapFields(fields)...)
}

func toZapFields(fields []interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch v := f.(type) {
		case zap.Field:
			out = append(out, v)
		case error:
			out = append(out, zap.Error(v))
		default:
			out = append(out, zap.Any("detail", v))
		}
	}
	return out
}
