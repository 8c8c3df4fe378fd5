package setup

import (
	"context"

	"github.com/bornholm/orders/internal/adapter/cache"
	gormAdapter "github.com/bornholm/orders/internal/adapter/gorm"
	"github.com/bornholm/orders/internal/config"
	"github.com/bornholm/orders/internal/core/port"
	"github.com/pkg/errors"
)

var getOrderStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.OrderStore, error) {
	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create database from config")
	}

	var store port.OrderStore = gormAdapter.NewStore(db)

	if conf.Storage.Cache.Size > 0 {
		store = cache.NewOrderStore(store, conf.Storage.Cache.Size, conf.Storage.Cache.TTL)
	}

	return store, nil
})
