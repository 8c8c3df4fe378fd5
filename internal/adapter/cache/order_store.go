package cache

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/bornholm/orders/internal/core/model"
	"github.com/bornholm/orders/internal/core/port"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// OrderStore caches individual orders of its backend. Stored orders never
// change, so a cached order stays valid even when another process writes to
// the same database. Listings always go to the backend.
type OrderStore struct {
	backend    port.OrderStore
	orderCache *expirable.LRU[model.OrderID, *model.Order]
}

// CreateOrder implements [port.OrderStore].
func (s *OrderStore) CreateOrder(ctx context.Context, input model.OrderInput, createdAt civil.DateTime) (model.OrderID, error) {
	return s.backend.CreateOrder(ctx, input, createdAt)
}

// GetOrderByID implements [port.OrderStore].
func (s *OrderStore) GetOrderByID(ctx context.Context, id model.OrderID) (*model.Order, error) {
	if order, exists := s.orderCache.Get(id); exists {
		return order, nil
	}

	order, err := s.backend.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.orderCache.Add(order.ID, order)

	return order, nil
}

// QueryOrders implements [port.OrderStore].
func (s *OrderStore) QueryOrders(ctx context.Context, opts port.QueryOrdersOptions) ([]*model.Order, error) {
	orders, err := s.backend.QueryOrders(ctx, opts)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		s.orderCache.Add(o.ID, o)
	}

	return orders, nil
}

func NewOrderStore(backend port.OrderStore, size int, ttl time.Duration) *OrderStore {
	return &OrderStore{
		backend:    backend,
		orderCache: expirable.NewLRU[model.OrderID, *model.Order](size, nil, ttl),
	}
}

var _ port.OrderStore = &OrderStore{}
