package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/orders/internal/build"
	"github.com/bornholm/orders/internal/config"
	"github.com/bornholm/orders/internal/desktop"
	"github.com/bornholm/orders/internal/setup"
	"github.com/pkg/errors"
	"github.com/zserge/lorca"
)

var (
	logLevel int  = int(slog.LevelInfo)
	noUpdate bool = false
)

func init() {
	flag.IntVar(&logLevel, "log-level", logLevel, "log level")
	flag.BoolVar(&noUpdate, "no-update", noUpdate, "disable self update")
}

func main() {
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slogx.ContextHandler{
		Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     slog.Level(logLevel),
			AddSource: true,
		}),
	})

	slog.SetDefault(logger)

	if !noUpdate && build.LongVersion != "unknown" {
		updated, err := update(ctx, build.LongVersion)
		if err != nil {
			slog.WarnContext(ctx, "could not update the app", slogx.Error(err))
		} else if updated {
			if err := restartSelf(ctx); err != nil {
				slog.WarnContext(ctx, "could not restart the app automatically", slogx.Error(err))
			} else {
				os.Exit(0)
			}
		}
	}

	if err := run(ctx, cancel); err != nil {
		slog.ErrorContext(ctx, "could not run app", slogx.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cancel context.CancelFunc) error {
	conf, err := config.Parse()
	if err != nil {
		return errors.Wrap(err, "could not parse config")
	}

	defer func() {
		if err := setup.Close(); err != nil {
			slog.ErrorContext(ctx, "could not release resources", slogx.Error(err))
		}
	}()

	settingsStore := desktop.NewSettingsStore()

	settings, err := settingsStore.Get(false)
	if err != nil {
		slog.WarnContext(ctx, "could not read desktop settings, using defaults", slogx.Error(err))
	} else if !settingsStore.Exists() {
		if err := settingsStore.Save(settings); err != nil {
			slog.WarnContext(ctx, "could not write default desktop settings", slogx.Error(err))
		}
	}

	settings = settings.Normalized()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	go func() {
		slog.InfoContext(ctx, "use ctrl+c to interrupt")
		<-sig
		cancel()
	}()

	server, err := setup.NewDesktopServerFromConfig(ctx, conf)
	if err != nil {
		return errors.Wrap(err, "could not create desktop server")
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return errors.Wrap(err, "could not listen")
	}

	serverCtx, stopServer := context.WithCancel(ctx)

	var serverErr error
	serverDone := make(chan struct{})

	go func() {
		defer close(serverDone)
		serverErr = server.Serve(serverCtx, listener)
	}()

	// The server must be fully shut down before the deferred setup.Close
	// releases the database.
	defer func() {
		stopServer()
		<-serverDone
	}()

	app, err := lorca.New(
		lorca.WithWindowSize(settings.WindowWidth, settings.WindowHeight),
		lorca.WithAdditionalCustomArgs(
			"--guest",
			fmt.Sprintf("--user-agent=%s/%s", desktop.UserAgentPrefix, build.ShortVersion),
		),
	)
	if err != nil {
		return errors.Wrap(err, "could not open window")
	}

	defer app.Close()

	if err := app.Load(fmt.Sprintf("http://%s", listener.Addr().String())); err != nil {
		return errors.Wrap(err, "could not load application")
	}

	select {
	case <-app.Done():
	case <-ctx.Done():
	case <-serverDone:
	}

	stopServer()
	<-serverDone

	if serverErr != nil {
		return errors.WithStack(serverErr)
	}

	return nil
}
