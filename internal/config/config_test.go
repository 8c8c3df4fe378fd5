package config

import (
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func TestParseDefaults(t *testing.T) {
	conf, err := ParseWithEnvironment(map[string]string{})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	t.Logf("config: %s", spew.Sdump(conf))

	if e, g := ":3003", conf.HTTP.Address; e != g {
		t.Errorf("conf.HTTP.Address: expected '%s', got '%s'", e, g)
	}

	if e, g := "cs-CZ", conf.Locale; e != g {
		t.Errorf("conf.Locale: expected '%s', got '%s'", e, g)
	}

	if conf.Form.RecomputeDefaultOnReset {
		t.Errorf("conf.Form.RecomputeDefaultOnReset: expected false")
	}

	if e, g := "", conf.Storage.Database.DSN; e != g {
		t.Errorf("conf.Storage.Database.DSN: expected '%s', got '%s'", e, g)
	}
}

func TestParseEnvironment(t *testing.T) {
	conf, err := ParseWithEnvironment(map[string]string{
		"ORDERS_HTTP_ADDRESS":                    "127.0.0.1:8080",
		"ORDERS_HTTP_SESSION_KEYS":               "first,second",
		"ORDERS_STORAGE_DATABASE_DSN":            "/tmp/orders.sqlite",
		"ORDERS_STORAGE_CACHE_TTL":               "30s",
		"ORDERS_FORM_RECOMPUTE_DEFAULT_ON_RESET": "true",
		"ORDERS_HTTP_RATE_LIMIT_INTERVAL":        "500ms",
		"ORDERS_LOGGER_LEVEL":                    "-4",
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "127.0.0.1:8080", conf.HTTP.Address; e != g {
		t.Errorf("conf.HTTP.Address: expected '%s', got '%s'", e, g)
	}

	if e, g := 2, len(conf.HTTP.Session.Keys); e != g {
		t.Errorf("len(conf.HTTP.Session.Keys): expected %d, got %d", e, g)
	}

	if e, g := "/tmp/orders.sqlite", conf.Storage.Database.DSN; e != g {
		t.Errorf("conf.Storage.Database.DSN: expected '%s', got '%s'", e, g)
	}

	if e, g := 30*time.Second, conf.Storage.Cache.TTL; e != g {
		t.Errorf("conf.Storage.Cache.TTL: expected '%s', got '%s'", e, g)
	}

	if !conf.Form.RecomputeDefaultOnReset {
		t.Errorf("conf.Form.RecomputeDefaultOnReset: expected true")
	}

	if e, g := 500*time.Millisecond, conf.HTTP.RateLimit.Interval; e != g {
		t.Errorf("conf.HTTP.RateLimit.Interval: expected '%s', got '%s'", e, g)
	}

	if e, g := -4, conf.Logger.Level; e != g {
		t.Errorf("conf.Logger.Level: expected %d, got %d", e, g)
	}
}
