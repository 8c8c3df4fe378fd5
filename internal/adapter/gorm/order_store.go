package gorm

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/bornholm/orders/internal/core/model"
	"github.com/bornholm/orders/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateOrder implements [port.OrderStore].
func (s *Store) CreateOrder(ctx context.Context, input model.OrderInput, createdAt civil.DateTime) (model.OrderID, error) {
	order := fromOrderInput(input)
	order.CreatedAt = model.FormatDateTime(createdAt)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		order.ID = 0

		if err := db.Create(order).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return model.OrderID(order.ID), nil
}

// GetOrderByID implements [port.OrderStore].
func (s *Store) GetOrderByID(ctx context.Context, id model.OrderID) (*model.Order, error) {
	var order Order

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&order, "id = ?", int64(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return toOrder(&order)
}

// QueryOrders implements [port.OrderStore].
func (s *Store) QueryOrders(ctx context.Context, opts port.QueryOrdersOptions) ([]*model.Order, error) {
	var orders []*Order

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		query := db.Model(&Order{}).Order("id asc")

		if opts.Page != nil {
			limit := 10
			if opts.Limit != nil {
				limit = *opts.Limit
			}
			query = query.Offset(*opts.Page * limit).Limit(limit)
		} else if opts.Limit != nil {
			query = query.Limit(*opts.Limit)
		}

		if err := query.Find(&orders).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	results := make([]*model.Order, 0, len(orders))
	for _, o := range orders {
		order, err := toOrder(o)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		results = append(results, order)
	}

	return results, nil
}

var _ port.OrderStore = &Store{}
