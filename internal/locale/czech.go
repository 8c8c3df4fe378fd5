package locale

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-playground/locales"
	"github.com/go-playground/locales/cs_CZ"
	"golang.org/x/text/language"
)

var Czech Formatter = &cldr{
	tag:        language.MustParse("cs-CZ"),
	translator: cs_CZ.New(),
}

// cldr formats values with the CLDR calendar data of a locale.
type cldr struct {
	tag        language.Tag
	translator locales.Translator
}

// Tag implements [Formatter].
func (c *cldr) Tag() language.Tag {
	return c.tag
}

// LongDate implements [Formatter].
func (c *cldr) LongDate(d civil.Date) string {
	return c.translator.FmtDateLong(d.In(time.UTC))
}

// WeekdayDateTime implements [Formatter].
func (c *cldr) WeekdayDateTime(dt civil.DateTime) string {
	t := dt.In(time.UTC)
	return c.translator.WeekdayWide(t.Weekday()) + " " + c.translator.FmtDateMedium(t) + " " + c.ShortTime(dt.Time)
}

// ShortTime implements [Formatter]. Hours are always rendered with two
// digits.
func (c *cldr) ShortTime(t civil.Time) string {
	formatted := c.translator.FmtTimeShort(civilTime(t))
	if t.Hour < 10 {
		formatted = "0" + formatted
	}

	return formatted
}

// DateTime implements [Formatter].
func (c *cldr) DateTime(dt civil.DateTime) string {
	t := dt.In(time.UTC)
	return c.translator.FmtDateMedium(t) + " " + c.translator.FmtTimeMedium(t)
}

func civilTime(t civil.Time) time.Time {
	return time.Date(1970, time.January, 1, t.Hour, t.Minute, t.Second, t.Nanosecond, time.UTC)
}
