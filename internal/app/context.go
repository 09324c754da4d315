package app

import "context"

type contextKey struct{}

// FromContext returns the App stored by WithApp, or nil
func FromContext(ctx context.Context) *App {
	a, ok := ctx.Value(contextKey{}).(*App)
	if !ok {
		return nil
	}
	return a
}

// WithApp stores a in ctx for the subcommands
func WithApp(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// Require returns the App stored in ctx or ErrNotInitialized
func Require(ctx context.Context) (*App, error) {
	if a := FromContext(ctx); a != nil {
		return a, nil
	}
	return nil, ErrNotInitialized
}
