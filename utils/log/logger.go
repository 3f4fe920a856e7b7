package log

import (
	"context"
	"os"
	"sync"

	"go.uber.org/zap"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

var (
	mu     sync.RWMutex
	logger *zap.Logger
)

func init() {
	Configure(os.Getenv("DEBUG") == "true")
}

// Configure rebuilds the package logger. Debug selects zap's development
// config; otherwise the production JSON logger is used.
func Configure(debug bool) {
	var l *zap.Logger
	if debug {
		l, _ = zap.NewDevelopment()
	} else {
		l, _ = zap.NewProduction()
	}
	if l == nil {
		l = zap.NewNop()
	}
	Replace(l)
}

// Replace swaps the package logger and returns a func restoring the previous one.
func Replace(l *zap.Logger) (restore func()) {
	mu.Lock()
	prev := logger
	logger = l
	mu.Unlock()
	return func() { Replace(prev) }
}

func current() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// ContextWithRequestID returns a copy of ctx carrying the request id picked up by WithCtx.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func WithCtx(ctx context.Context) *zap.Logger {
	fields := []zap.Field{}

	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		fields = append(fields, zap.String("request_id", v))
	}

	return current().With(fields...)
}

func With(fields ...zap.Field) *zap.Logger {
	return current().With(fields...)
}

// Sync flushes buffered entries. Errors from syncing stderr are ignored.
func Sync() {
	_ = current().Sync()
}
