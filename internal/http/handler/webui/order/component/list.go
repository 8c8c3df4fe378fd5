package component

import (
	"github.com/bornholm/orders/internal/core/model"
	"github.com/bornholm/orders/internal/locale"
)

const (
	ListID     = "order-list"
	EventOrder = "orders"
)

type ListVModel struct {
	// Loaded is false until a first snapshot was received.
	Loaded    bool
	Orders    []*model.Order
	Formatter locale.Formatter
}
