package setup

import (
	"context"
	"net/http"

	"github.com/bornholm/orders/internal/config"
	httpServer "github.com/bornholm/orders/internal/http"
	"github.com/bornholm/orders/internal/http/handler/metrics"
	"github.com/bornholm/orders/internal/http/handler/webui"
	"github.com/bornholm/orders/internal/http/handler/webui/common"
	"github.com/bornholm/orders/internal/http/handler/webui/order"
	"github.com/bornholm/orders/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config, funcs ...httpServer.OptionFunc) (*httpServer.Server, error) {
	if _, err := SetupSentry(ctx, conf); err != nil {
		return nil, errors.WithStack(err)
	}

	webuiHandler, err := getWebUIHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure webui handler from config")
	}

	options := []httpServer.OptionFunc{
		httpServer.WithAddress(conf.HTTP.Address),
		httpServer.WithBaseURL(conf.HTTP.BaseURL),
		httpServer.WithMount("/assets/", common.NewHandler()),
		httpServer.WithMount("/metrics/", metrics.NewHandler()),
		httpServer.WithMount("/", webuiHandler),
	}

	options = append(options, funcs...)

	server := httpServer.NewServer(options...)

	return server, nil
}

func getWebUIHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	orderManager, err := GetOrderManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create order manager from config")
	}

	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create session store from config")
	}

	formatter, err := GetLocaleFormatterFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	funcs := []order.OptionFunc{
		order.WithFormatter(formatter),
		order.WithRecomputeDefaultOnReset(conf.Form.RecomputeDefaultOnReset),
	}

	if rl := conf.HTTP.RateLimit; rl.Enabled {
		funcs = append(funcs, order.WithSubmitMiddleware(
			ratelimit.Middleware(rl.TrustHeaders, rl.Interval, rl.MaxBurst, rl.CacheSize, rl.CacheTTL),
		))
	}

	return webui.NewHandler(orderManager, sessionStore, funcs...), nil
}
