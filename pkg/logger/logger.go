package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LevelDebug = zap.DebugLevel
	LevelInfo  = zap.InfoLevel
	LevelWarn  = zap.WarnLevel
	LevelError = zap.ErrorLevel
)

var (
	String   = zap.String
	Strings  = zap.Strings
	Int      = zap.Int
	Float64  = zap.Float64
	Duration = zap.Duration
	Bool     = zap.Bool
	ErrorF   = zap.Error
	Any      = zap.Any
)

type Field = zap.Field

type ctxKey struct{}

// Logger is a zap logger scoped by a fixed set of fields.
type Logger struct {
	z *zap.Logger
}

var (
	mu     sync.RWMutex
	global = &Logger{z: zap.NewNop()}
)

// Init replaces the process logger. Until it is called every log call is a no-op.
func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	if !asJSON {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true

	z, err := cfg.Build()
	if err != nil {
		return err
	}

	mu.Lock()
	global = &Logger{z: z}
	mu.Unlock()
	return nil
}

func Sync() error {
	return L().z.Sync()
}

func L() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// With returns the process logger extended with fields.
func With(fields ...Field) *Logger {
	return L().With(fields...)
}

// WithContext stores fields on ctx; they are attached to every entry logged with that ctx.
func WithContext(ctx context.Context, fields ...Field) context.Context {
	prev, _ := ctx.Value(ctxKey{}).([]Field)
	merged := make([]Field, 0, len(prev)+len(fields))
	merged = append(merged, prev...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, ctxKey{}, merged)
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{z: l.z.With(fields...)}
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.z.Debug(msg, withCtx(ctx, fields)...)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.z.Info(msg, withCtx(ctx, fields)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.z.Warn(msg, withCtx(ctx, fields)...)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.z.Error(msg, withCtx(ctx, fields)...)
}

func withCtx(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	extra, _ := ctx.Value(ctxKey{}).([]Field)
	if len(extra) == 0 {
		return fields
	}
	return append(append(make([]Field, 0, len(extra)+len(fields)), extra...), fields...)
}
