package setup

import (
	"context"
	"log/slog"
	"time"

	"github.com/bornholm/orders/internal/build"
	"github.com/bornholm/orders/internal/config"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

// SetupSentry initializes the error reporting client when a DSN is
// configured. Without DSN, captured errors are dropped.
var SetupSentry = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (bool, error) {
	if conf.Sentry.DSN == "" {
		return false, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         conf.Sentry.DSN,
		Environment: conf.Sentry.Environment,
		Release:     build.ShortVersion,
		Debug:       conf.Sentry.Debug,
	})
	if err != nil {
		return false, errors.Wrap(err, "could not initialize sentry")
	}

	slog.DebugContext(ctx, "sentry initialized", slog.String("environment", conf.Sentry.Environment))

	onClose(func() error {
		sentry.Flush(2 * time.Second)
		return nil
	})

	return true, nil
})
