package setup

import (
	"context"

	"github.com/bornholm/orders/internal/config"
	httpServer "github.com/bornholm/orders/internal/http"
	"github.com/pkg/errors"
)

// NewDesktopServerFromConfig creates the server backing the desktop window.
func NewDesktopServerFromConfig(ctx context.Context, conf *config.Config) (*httpServer.Server, error) {
	server, err := NewHTTPServerFromConfig(
		ctx, conf,
		httpServer.WithBaseURL("/"),
		httpServer.WithDesktop(true),
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return server, nil
}
