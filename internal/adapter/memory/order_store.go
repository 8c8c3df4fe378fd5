package memory

import (
	"context"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/bornholm/orders/internal/core/model"
	"github.com/bornholm/orders/internal/core/port"
	"github.com/pkg/errors"
)

// OrderStore keeps orders in process memory. Ids are assigned from a
// monotonic sequence and never reused.
type OrderStore struct {
	mutex  sync.RWMutex
	lastID model.OrderID
	orders []*model.Order
}

// CreateOrder implements [port.OrderStore].
func (s *OrderStore) CreateOrder(ctx context.Context, input model.OrderInput, createdAt civil.DateTime) (model.OrderID, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.WithStack(err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.lastID++

	order := &model.Order{
		OrderInput: input,
		ID:         s.lastID,
		CreatedAt:  createdAt,
	}

	if input.AlternateTime != nil {
		alt := *input.AlternateTime
		order.AlternateTime = &alt
	}

	s.orders = append(s.orders, order)

	return order.ID, nil
}

// GetOrderByID implements [port.OrderStore].
func (s *OrderStore) GetOrderByID(ctx context.Context, id model.OrderID) (*model.Order, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}

	return nil, errors.WithStack(port.ErrNotFound)
}

// QueryOrders implements [port.OrderStore].
func (s *OrderStore) QueryOrders(ctx context.Context, opts port.QueryOrdersOptions) ([]*model.Order, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	start, end := 0, len(s.orders)

	limit := -1
	if opts.Limit != nil {
		limit = *opts.Limit
	}

	if opts.Page != nil {
		if limit < 0 {
			limit = 10
		}
		start = min(*opts.Page*limit, len(s.orders))
	}

	if limit >= 0 {
		end = min(start+limit, len(s.orders))
	}

	orders := make([]*model.Order, end-start)
	copy(orders, s.orders[start:end])

	return orders, nil
}

func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders: make([]*model.Order, 0),
	}
}

var _ port.OrderStore = &OrderStore{}
