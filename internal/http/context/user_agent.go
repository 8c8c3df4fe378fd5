package context

import (
	"context"
)

const keyDesktop contextKey = "desktop"

// IsDesktop reports whether the request comes from the desktop window.
func IsDesktop(ctx context.Context) bool {
	desktop, ok := ctx.Value(keyDesktop).(bool)
	if !ok {
		return false
	}

	return desktop
}

func SetDesktop(ctx context.Context, desktop bool) context.Context {
	return context.WithValue(ctx, keyDesktop, desktop)
}
