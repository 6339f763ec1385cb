package entity

import "context"

// Logger specifies the contextual, structured logger used by stores and panels.
type Logger interface {
	Info(ctx context.Context, msg string, kv ...any)
	Error(ctx context.Context, msg string, err error, kv ...any)
}
