package component

import "github.com/bornholm/orders/internal/orderform"

const (
	FormID              = "order-form"
	FieldMountMinimum   = "mountMinimum"
	appointmentStepSecs = "900"
)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeDanger  NoticeKind = "danger"
)

type Notice struct {
	Kind    NoticeKind
	Message string
}

type FormVModel struct {
	Form   *orderform.Form
	Notice *Notice
}

type fieldDefinition struct {
	Label        string
	Type         string
	Required     bool
	Placeholder  string
	Autocomplete string
}

var fieldDefinitions = map[orderform.Field]fieldDefinition{
	orderform.FieldFirstName: {
		Label:        "Jméno",
		Type:         "text",
		Required:     true,
		Placeholder:  "Zadejte své jméno",
		Autocomplete: "given-name",
	},
	orderform.FieldLastName: {
		Label:        "Příjmení",
		Type:         "text",
		Required:     true,
		Placeholder:  "Zadejte své příjmení",
		Autocomplete: "family-name",
	},
	orderform.FieldBirthDate: {
		Label:        "Datum narození",
		Type:         "date",
		Required:     true,
		Autocomplete: "bday",
	},
	orderform.FieldAppointmentDateTime: {
		Label:    "Datum a čas objednání",
		Type:     "datetime-local",
		Required: true,
	},
	orderform.FieldAlternateTime: {
		Label: "Náhradní čas",
		Type:  "time",
	},
}

func fieldID(field orderform.Field) string {
	return "field-" + string(field)
}
