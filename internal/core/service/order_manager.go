package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/orders/internal/core/model"
	"github.com/bornholm/orders/internal/core/port"
	"github.com/bornholm/orders/internal/metrics"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

// OrderObserver receives a fresh snapshot of all orders after each
// successful write.
type OrderObserver func(ctx context.Context, orders []*model.Order)

type OrderManager struct {
	store port.OrderStore
	clock model.Clock

	observersMutex sync.RWMutex
	observers      map[string]OrderObserver
}

type OrderManagerOptions struct {
	Clock model.Clock
}

type OrderManagerOptionFunc func(opts *OrderManagerOptions)

func WithClock(clock model.Clock) OrderManagerOptionFunc {
	return func(opts *OrderManagerOptions) {
		opts.Clock = clock
	}
}

func NewOrderManagerOptions(funcs ...OrderManagerOptionFunc) *OrderManagerOptions {
	opts := &OrderManagerOptions{
		Clock: nil,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// Save persists a new order, stamps its creation date-time and returns
// the assigned id. Observers are notified once the write succeeded.
func (m *OrderManager) Save(ctx context.Context, input model.OrderInput) (model.OrderID, error) {
	input = input.Normalized()

	createdAt := model.Now(m.clock)

	orderID, err := m.store.CreateOrder(ctx, input, createdAt)
	if err != nil {
		metrics.SaveFailures.Inc()
		return 0, errors.Wrap(err, "could not save order")
	}

	metrics.SavedOrders.Inc()

	slog.DebugContext(ctx, "order saved", slog.Int64("orderID", int64(orderID)))

	m.notify(context.WithoutCancel(ctx))

	return orderID, nil
}

// ListAll returns a snapshot of every stored order in insertion order.
func (m *OrderManager) ListAll(ctx context.Context) ([]*model.Order, error) {
	orders, err := m.store.QueryOrders(ctx, port.QueryOrdersOptions{})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return orders, nil
}

// Query returns a page of orders in insertion order.
func (m *OrderManager) Query(ctx context.Context, opts port.QueryOrdersOptions) ([]*model.Order, error) {
	orders, err := m.store.QueryOrders(ctx, opts)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return orders, nil
}

// Get returns an order by its id, or port.ErrNotFound.
func (m *OrderManager) Get(ctx context.Context, orderID model.OrderID) (*model.Order, error) {
	order, err := m.store.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return order, nil
}

// Subscribe registers an observer and returns the function deregistering it.
// Calling the returned function more than once has no effect.
func (m *OrderManager) Subscribe(observer OrderObserver) func() {
	id := xid.New().String()

	m.observersMutex.Lock()
	m.observers[id] = observer
	m.observersMutex.Unlock()

	metrics.Subscribers.Inc()

	var once sync.Once

	return func() {
		once.Do(func() {
			m.observersMutex.Lock()
			delete(m.observers, id)
			m.observersMutex.Unlock()

			metrics.Subscribers.Dec()
		})
	}
}

func (m *OrderManager) notify(ctx context.Context) {
	m.observersMutex.RLock()
	observers := make([]OrderObserver, 0, len(m.observers))
	for _, o := range m.observers {
		observers = append(observers, o)
	}
	m.observersMutex.RUnlock()

	if len(observers) == 0 {
		return
	}

	orders, err := m.ListAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not load orders snapshot for observers", slogx.Error(err))
		return
	}

	for _, o := range observers {
		o(ctx, orders)
	}
}

func NewOrderManager(store port.OrderStore, funcs ...OrderManagerOptionFunc) *OrderManager {
	opts := NewOrderManagerOptions(funcs...)

	return &OrderManager{
		store:     store,
		clock:     opts.Clock,
		observers: make(map[string]OrderObserver),
	}
}
