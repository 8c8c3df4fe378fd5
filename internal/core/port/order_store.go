package port

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/bornholm/orders/internal/core/model"
)

type OrderStore interface {
	// CreateOrder inserts a new order stamped with the given creation date-time
	// and returns the identifier assigned by the store
	CreateOrder(ctx context.Context, input model.OrderInput, createdAt civil.DateTime) (model.OrderID, error)

	// GetOrderByID returns an order by its id, or ErrNotFound
	GetOrderByID(ctx context.Context, id model.OrderID) (*model.Order, error)

	// QueryOrders returns the stored orders in ascending id order. A stored
	// row that cannot be decoded makes the query fail with ErrCorrupted
	QueryOrders(ctx context.Context, opts QueryOrdersOptions) ([]*model.Order, error)
}

type QueryOrdersOptions struct {
	Page  *int
	Limit *int
}
