package order

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/orders/internal/core/model"
	"github.com/bornholm/orders/internal/core/service"
	"github.com/bornholm/orders/internal/http/handler/webui/common"
	"github.com/bornholm/orders/internal/http/handler/webui/order/component"
	"github.com/pkg/errors"
)

// ListView follows the stored orders while it is mounted. Only the latest
// snapshot is kept for the consumer.
type ListView struct {
	orders *service.OrderManager

	mutex       sync.Mutex
	updates     chan []*model.Order
	unsubscribe func()
}

// Mount subscribes to the repository and queues the current snapshot.
func (v *ListView) Mount(ctx context.Context) error {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	if v.unsubscribe != nil {
		return nil
	}

	v.unsubscribe = v.orders.Subscribe(func(ctx context.Context, orders []*model.Order) {
		v.mutex.Lock()
		defer v.mutex.Unlock()

		v.push(orders)
	})

	orders, err := v.orders.ListAll(ctx)
	if err != nil {
		v.unsubscribe()
		v.unsubscribe = nil
		return errors.WithStack(err)
	}

	v.push(orders)

	return nil
}

// Updates returns the channel receiving snapshots.
func (v *ListView) Updates() <-chan []*model.Order {
	return v.updates
}

// Unmount stops following the repository.
func (v *ListView) Unmount() {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	if v.unsubscribe == nil {
		return
	}

	v.unsubscribe()
	v.unsubscribe = nil
}

// push replaces any pending snapshot with the given one. It must be called
// with the mutex held.
func (v *ListView) push(orders []*model.Order) {
	for {
		select {
		case v.updates <- orders:
			return
		default:
		}

		select {
		case <-v.updates:
		default:
		}
	}
}

func NewListView(orders *service.OrderManager) *ListView {
	return &ListView{
		orders:  orders,
		updates: make(chan []*model.Order, 1),
	}
}

// FillListVModel loads the current snapshot. The list is rendered in its
// loading state when the snapshot is not available.
func (h *Handler) FillListVModel(ctx context.Context) component.ListVModel {
	vmodel := component.ListVModel{
		Formatter: h.formatter,
	}

	orders, err := h.orders.ListAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not list orders", slogx.Error(err))
		return vmodel
	}

	vmodel.Loaded = true
	vmodel.Orders = orders

	return vmodel
}

func (h *Handler) getOrderList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.orders.ListAll(ctx)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	vmodel := component.ListVModel{
		Loaded:    true,
		Orders:    orders,
		Formatter: h.formatter,
	}

	renderComponent(w, r, component.OrderListContent(vmodel), http.StatusOK)
}
