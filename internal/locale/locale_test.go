package locale

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

func TestCzech(t *testing.T) {
	birthDate := civil.Date{Year: 1990, Month: time.May, Day: 17}
	appointment := civil.DateTime{
		Date: civil.Date{Year: 2025, Month: time.June, Day: 1},
		Time: civil.Time{Hour: 10, Minute: 15},
	}

	if e, g := "17. května 1990", Czech.LongDate(birthDate); e != g {
		t.Errorf("LongDate: expected '%s', got '%s'", e, g)
	}

	if e, g := "neděle 1. 6. 2025 10:15", Czech.WeekdayDateTime(appointment); e != g {
		t.Errorf("WeekdayDateTime: expected '%s', got '%s'", e, g)
	}

	if e, g := "09:05", Czech.ShortTime(civil.Time{Hour: 9, Minute: 5}); e != g {
		t.Errorf("ShortTime: expected '%s', got '%s'", e, g)
	}

	if e, g := "14:45", Czech.ShortTime(civil.Time{Hour: 14, Minute: 45, Second: 59}); e != g {
		t.Errorf("ShortTime: expected '%s', got '%s'", e, g)
	}

	if e, g := "1. ledna 2026", Czech.LongDate(civil.Date{Year: 2026, Month: time.January, Day: 1}); e != g {
		t.Errorf("LongDate: expected '%s', got '%s'", e, g)
	}

	createdAt := civil.DateTime{
		Date: civil.Date{Year: 2025, Month: time.May, Day: 30},
		Time: civil.Time{Hour: 9, Minute: 7, Second: 3},
	}

	if e, g := "30. 5. 2025 9:07:03", Czech.DateTime(createdAt); e != g {
		t.Errorf("DateTime: expected '%s', got '%s'", e, g)
	}
}

func TestCzechWeekdays(t *testing.T) {
	expected := []string{"pondělí", "úterý", "středa", "čtvrtek", "pátek", "sobota", "neděle"}

	for i, e := range expected {
		dt := civil.DateTime{
			Date: civil.Date{Year: 2025, Month: time.June, Day: 2 + i},
			Time: civil.Time{Hour: 8},
		}

		if g := Czech.WeekdayDateTime(dt); g[:len(e)] != e {
			t.Errorf("WeekdayDateTime(%s): expected weekday '%s', got '%s'", dt, e, g)
		}
	}
}

func TestParse(t *testing.T) {
	for _, raw := range []string{"cs-CZ", "cs", "en-US"} {
		formatter, err := Parse(raw)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := Czech, formatter; e != g {
			t.Errorf("Parse(%s): expected Czech formatter, got %v", raw, g.Tag())
		}
	}

	if _, err := Parse("not a locale!"); err == nil {
		t.Errorf("expected error on invalid locale")
	}

	if base, _ := For(language.Czech).Tag().Base(); base.String() != "cs" {
		t.Errorf("For(cs): expected 'cs' base, got '%s'", base)
	}
}
