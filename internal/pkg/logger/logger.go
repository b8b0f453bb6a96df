// Package logger provides zap logger construction and context helpers.
package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

// New builds the process logger. Debug mode switches to the development
// config so debug-level statements (which may include sensitive payloads)
// become visible.
func New(debug bool) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

// ToContext stores the logger on the context.
func ToContext(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored on the context, or a no-op logger
// if none was set.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok {
		return l
	}
	return zap.NewNop().Sugar()
}
