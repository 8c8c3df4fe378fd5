package gorm

import (
	"github.com/bornholm/orders/internal/core/model"
	"github.com/bornholm/orders/internal/core/port"
	"github.com/pkg/errors"
)

// Order is the stored representation of an order. Temporal values are
// kept in their canonical text encoding.
type Order struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	FirstName           string `gorm:"index;not null"`
	LastName            string `gorm:"index;not null"`
	BirthDate           string `gorm:"index;not null"`
	AppointmentDateTime string `gorm:"index;not null"`
	AlternateTime       *string
	CreatedAt           string `gorm:"index;not null"`
}

func fromOrderInput(input model.OrderInput) *Order {
	order := &Order{
		FirstName:           input.FirstName,
		LastName:            input.LastName,
		BirthDate:           model.FormatDate(input.BirthDate),
		AppointmentDateTime: model.FormatDateTime(input.AppointmentDateTime),
	}

	if input.AlternateTime != nil {
		alternateTime := model.FormatTime(*input.AlternateTime)
		order.AlternateTime = &alternateTime
	}

	return order
}

func toOrder(o *Order) (*model.Order, error) {
	order := &model.Order{
		ID: model.OrderID(o.ID),
		OrderInput: model.OrderInput{
			FirstName: o.FirstName,
			LastName:  o.LastName,
		},
	}

	var err error

	order.BirthDate, err = model.ParseDate(o.BirthDate)
	if err != nil {
		return nil, corrupted(o, err)
	}

	order.AppointmentDateTime, err = model.ParseDateTime(o.AppointmentDateTime)
	if err != nil {
		return nil, corrupted(o, err)
	}

	if o.AlternateTime != nil {
		alternateTime, err := model.ParseTime(*o.AlternateTime)
		if err != nil {
			return nil, corrupted(o, err)
		}

		order.AlternateTime = &alternateTime
	}

	order.CreatedAt, err = model.ParseDateTime(o.CreatedAt)
	if err != nil {
		return nil, corrupted(o, err)
	}

	return order, nil
}

func corrupted(o *Order, err error) error {
	return errors.Wrapf(port.ErrCorrupted, "order %d: %s", o.ID, err.Error())
}
