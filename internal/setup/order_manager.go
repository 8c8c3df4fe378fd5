package setup

import (
	"context"

	"github.com/bornholm/orders/internal/config"
	"github.com/bornholm/orders/internal/core/service"
	"github.com/pkg/errors"
)

var GetOrderManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.OrderManager, error) {
	store, err := getOrderStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create order store from config")
	}

	return service.NewOrderManager(store), nil
})
