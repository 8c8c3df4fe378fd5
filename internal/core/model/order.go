package model

import (
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
)

type OrderID int64

func (id OrderID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func ParseOrderID(s string) (OrderID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return OrderID(id), nil
}

// OrderInput holds what a person submits when placing an order.
type OrderInput struct {
	FirstName           string
	LastName            string
	BirthDate           civil.Date
	AppointmentDateTime civil.DateTime
	// AlternateTime is an optional time of day, nil when not chosen.
	AlternateTime *civil.Time
}

// Normalized returns a copy with trimmed names and minute precision
// appointment and alternate time.
func (i OrderInput) Normalized() OrderInput {
	i.FirstName = strings.TrimSpace(i.FirstName)
	i.LastName = strings.TrimSpace(i.LastName)
	i.AppointmentDateTime = TruncateMinute(i.AppointmentDateTime)

	if i.AlternateTime != nil {
		alt := *i.AlternateTime
		alt.Second = 0
		alt.Nanosecond = 0
		i.AlternateTime = &alt
	}

	return i
}

// Order is a persisted order. Orders are never modified after creation.
type Order struct {
	OrderInput

	ID        OrderID
	CreatedAt civil.DateTime
}

func (o *Order) FullName() string {
	return strings.TrimSpace(o.FirstName + " " + o.LastName)
}
