package config

import (
	"path/filepath"
	"time"

	"github.com/kirsle/configdir"
	"github.com/pkg/errors"
)

const AppName = "orders"

type Storage struct {
	Database Database `envPrefix:"DATABASE_"`
	Cache    Cache    `envPrefix:"CACHE_"`
}

type Database struct {
	// DSN of the SQLite database. Defaults to a file in the user
	// configuration directory.
	DSN string `env:"DSN,expand"`
}

type Cache struct {
	Size int           `env:"SIZE,expand" envDefault:"64"`
	TTL  time.Duration `env:"TTL,expand" envDefault:"1m"`
}

// DefaultDatabaseDSN returns the path of the database in the user
// configuration directory, creating the directory if needed.
func DefaultDatabaseDSN() (string, error) {
	dir := configdir.LocalConfig(AppName)

	if err := configdir.MakePath(dir); err != nil {
		return "", errors.Wrapf(err, "could not create directory '%s'", dir)
	}

	return filepath.Join(dir, "orders.sqlite"), nil
}
