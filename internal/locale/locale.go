// Package locale renders temporal values for display. Formatting is purely
// presentational and never affects stored values.
package locale

import (
	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

type Formatter interface {
	Tag() language.Tag

	// LongDate renders a calendar date with a spelled out month.
	LongDate(d civil.Date) string
	// WeekdayDateTime renders a date-time with its long weekday name and a
	// minute precision time.
	WeekdayDateTime(dt civil.DateTime) string
	// ShortTime renders a time of day with minute precision.
	ShortTime(t civil.Time) string
	// DateTime renders a date-time with second precision.
	DateTime(dt civil.DateTime) string
}

var supported = []Formatter{
	Czech,
}

var matcher = language.NewMatcher(supportedTags())

// For returns the formatter best matching the given tag. Unsupported tags
// fall back to Czech.
func For(tag language.Tag) Formatter {
	_, index, _ := matcher.Match(tag)
	return supported[index]
}

// Parse returns the formatter best matching the given BCP 47 locale.
func Parse(locale string) (Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return For(tag), nil
}

func supportedTags() []language.Tag {
	tags := make([]language.Tag, 0, len(supported))
	for _, f := range supported {
		tags = append(tags, f.Tag())
	}
	return tags
}
