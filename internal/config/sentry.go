package config

type Sentry struct {
	DSN         string `env:"DSN,expand"`
	Environment string `env:"ENVIRONMENT,expand" envDefault:"production"`
	Debug       bool   `env:"DEBUG,expand" envDefault:"false"`
}
