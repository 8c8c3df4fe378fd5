package orderform

import (
	"strings"

	"github.com/bornholm/orders/internal/core/model"
)

const (
	MessageFirstNameRequired           = "Jméno je povinné"
	MessageLastNameRequired            = "Příjmení je povinné"
	MessageBirthDateRequired           = "Datum narození je povinné"
	MessageBirthDateInvalid            = "Neplatné datum narození"
	MessageAppointmentDateTimeRequired = "Datum a čas objednání je povinný"
	MessageAppointmentDateTimeInvalid  = "Neplatné datum a čas objednání"
	MessageAlternateTimeInvalid        = "Neplatný náhradní čas"
)

// validate returns the message describing why the value is not acceptable
// for the field, or an empty string.
func validate(field Field, value string) string {
	value = strings.TrimSpace(value)

	switch field {
	case FieldFirstName:
		if value == "" {
			return MessageFirstNameRequired
		}

	case FieldLastName:
		if value == "" {
			return MessageLastNameRequired
		}

	case FieldBirthDate:
		if value == "" {
			return MessageBirthDateRequired
		}
		if _, err := model.ParseDate(value); err != nil {
			return MessageBirthDateInvalid
		}

	case FieldAppointmentDateTime:
		if value == "" {
			return MessageAppointmentDateTimeRequired
		}
		if _, err := model.ParseDateTime(value); err != nil {
			return MessageAppointmentDateTimeInvalid
		}

	case FieldAlternateTime:
		if value == "" {
			return ""
		}
		if _, err := model.ParseTime(value); err != nil {
			return MessageAlternateTimeInvalid
		}
	}

	return ""
}
