package setup

import (
	"context"

	"github.com/bornholm/orders/internal/config"
	"github.com/bornholm/orders/internal/locale"
	"github.com/pkg/errors"
)

var GetLocaleFormatterFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (locale.Formatter, error) {
	formatter, err := locale.Parse(conf.Locale)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse locale '%s'", conf.Locale)
	}

	return formatter, nil
})
