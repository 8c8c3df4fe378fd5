package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const Prefix = "ORDERS_"

type Config struct {
	Logger  Logger  `envPrefix:"LOGGER_"`
	HTTP    HTTP    `envPrefix:"HTTP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Form    Form    `envPrefix:"FORM_"`
	Locale  string  `env:"LOCALE" envDefault:"cs-CZ"`
	Sentry  Sentry  `envPrefix:"SENTRY_"`
}

func Parse() (*Config, error) {
	return ParseWithEnvironment(nil)
}

// ParseWithEnvironment parses the configuration from the given variables
// instead of the process environment when environment is not nil.
func ParseWithEnvironment(environment map[string]string) (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix:      Prefix,
		Environment: environment,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}
