package common

import (
	"github.com/bornholm/orders/internal/config"
	"github.com/bornholm/orders/internal/core/service"
	"github.com/bornholm/orders/internal/locale"
	"github.com/bornholm/orders/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	paramDatabase = "database"
	paramLocale   = "locale"
)

var (
	flagDatabase = &cli.StringFlag{
		Name:    paramDatabase,
		Aliases: []string{"d"},
		Value:   "",
		Usage:   "SQLite database path, defaults to the one of the application",
	}
	flagLocale = &cli.StringFlag{
		Name:  paramLocale,
		Value: "",
		Usage: "Locale used to display dates and times",
	}
)

func WithCommonFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagDatabase,
		flagLocale,
	}, flags...)
}

// GetConfig parses the application configuration and applies the command
// line overrides.
func GetConfig(ctx *cli.Context) (*config.Config, error) {
	conf, err := config.Parse()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if dsn := ctx.String(paramDatabase); dsn != "" {
		conf.Storage.Database.DSN = dsn
	}

	if l := ctx.String(paramLocale); l != "" {
		conf.Locale = l
	}

	return conf, nil
}

func GetOrderManager(ctx *cli.Context) (*service.OrderManager, error) {
	conf, err := GetConfig(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	orderManager, err := setup.GetOrderManagerFromConfig(ctx.Context, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return orderManager, nil
}

func GetFormatter(ctx *cli.Context) (locale.Formatter, error) {
	conf, err := GetConfig(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	formatter, err := setup.GetLocaleFormatterFromConfig(ctx.Context, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return formatter, nil
}
