package order

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/bornholm/orders/internal/core/model"
	"github.com/bornholm/orders/internal/locale"
	"github.com/pkg/errors"
)

func TestPrintOrders(t *testing.T) {
	alternate := civil.Time{Hour: 14, Minute: 45}

	orders := []*model.Order{
		{
			ID: 1,
			OrderInput: model.OrderInput{
				FirstName:           "Jan",
				LastName:            "Novák",
				BirthDate:           civil.Date{Year: 1990, Month: time.May, Day: 17},
				AppointmentDateTime: civil.DateTime{Date: civil.Date{Year: 2025, Month: time.June, Day: 1}, Time: civil.Time{Hour: 10, Minute: 15}},
			},
			CreatedAt: civil.DateTime{Date: civil.Date{Year: 2025, Month: time.June, Day: 1}, Time: civil.Time{Hour: 10, Minute: 7, Second: 33}},
		},
		{
			ID: 2,
			OrderInput: model.OrderInput{
				FirstName:           "Jana",
				LastName:            "Dvořáková",
				BirthDate:           civil.Date{Year: 1985, Month: time.January, Day: 2},
				AppointmentDateTime: civil.DateTime{Date: civil.Date{Year: 2025, Month: time.June, Day: 2}, Time: civil.Time{Hour: 8, Minute: 0}},
				AlternateTime:       &alternate,
			},
			CreatedAt: civil.DateTime{Date: civil.Date{Year: 2025, Month: time.June, Day: 1}, Time: civil.Time{Hour: 10, Minute: 9}},
		},
	}

	var buff bytes.Buffer

	if err := printOrders(&buff, locale.Czech, orders); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	output := buff.String()

	if e, g := 3, strings.Count(output, "\n"); e != g {
		t.Errorf("expected %d lines, got %d: %s", e, g, output)
	}

	expected := []string{
		"Jan Novák",
		"17. května 1990",
		"neděle 1. 6. 2025 10:15",
		"nezvolen",
		"14:45",
		"1. 6. 2025 10:07:33",
	}

	for _, s := range expected {
		if !strings.Contains(output, s) {
			t.Errorf("expected output to contain '%s', got '%s'", s, output)
		}
	}
}
