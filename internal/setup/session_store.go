package setup

import (
	"context"
	"crypto/rand"
	"net/http"

	"github.com/bornholm/orders/internal/config"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

var getSessionStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (sessions.Store, error) {
	keyPairs := make([][]byte, 0)
	if len(conf.HTTP.Session.Keys) == 0 {
		key, err := getRandomBytes(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate cookie signing key")
		}

		keyPairs = append(keyPairs, key)
	} else {
		for _, k := range conf.HTTP.Session.Keys {
			keyPairs = append(keyPairs, []byte(k))
		}
	}

	sessionStore := sessions.NewCookieStore(keyPairs...)

	sessionStore.MaxAge(int(conf.HTTP.Session.Cookie.MaxAge.Seconds()))
	sessionStore.Options.Path = conf.HTTP.Session.Cookie.Path
	sessionStore.Options.HttpOnly = conf.HTTP.Session.Cookie.HTTPOnly
	sessionStore.Options.Secure = conf.HTTP.Session.Cookie.Secure
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return sessionStore, nil
})

func getRandomBytes(n int) ([]byte, error) {
	data := make([]byte, n)

	read, err := rand.Read(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if read != n {
		return nil, errors.Errorf("could not read %d bytes", n)
	}

	return data, nil
}
