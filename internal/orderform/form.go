// Package orderform holds the state of the order entry form: its values,
// per-field validation and submission lifecycle.
package orderform

import (
	"context"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/bornholm/orders/internal/core/model"
	"github.com/bornholm/orders/internal/metrics"
	"github.com/pkg/errors"
)

var ErrInvalid = errors.New("invalid form")

// Saver persists a submitted order.
type Saver interface {
	Save(ctx context.Context, input model.OrderInput) (model.OrderID, error)
}

type Field string

const (
	FieldFirstName           Field = "firstName"
	FieldLastName            Field = "lastName"
	FieldBirthDate           Field = "birthDate"
	FieldAppointmentDateTime Field = "appointmentDateTime"
	FieldAlternateTime       Field = "alternateTime"
)

// Fields lists the form fields in display order.
var Fields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldBirthDate,
	FieldAppointmentDateTime,
	FieldAlternateTime,
}

func ParseField(s string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == s {
			return f, true
		}
	}

	return "", false
}

type State int

const (
	StatePristine State = iota
	StateEditing
	StateValidating
	StateInvalid
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StatePristine:
		return "pristine"
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateInvalid:
		return "invalid"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Values are the raw, textual values of the form inputs.
type Values struct {
	FirstName           string
	LastName            string
	BirthDate           string
	AppointmentDateTime string
	AlternateTime       string
}

func (v *Values) Get(field Field) string {
	switch field {
	case FieldFirstName:
		return v.FirstName
	case FieldLastName:
		return v.LastName
	case FieldBirthDate:
		return v.BirthDate
	case FieldAppointmentDateTime:
		return v.AppointmentDateTime
	case FieldAlternateTime:
		return v.AlternateTime
	default:
		return ""
	}
}

func (v *Values) Set(field Field, value string) {
	switch field {
	case FieldFirstName:
		v.FirstName = value
	case FieldLastName:
		v.LastName = value
	case FieldBirthDate:
		v.BirthDate = value
	case FieldAppointmentDateTime:
		v.AppointmentDateTime = value
	case FieldAlternateTime:
		v.AlternateTime = value
	}
}

type Form struct {
	clock            model.Clock
	recomputeOnReset bool

	minAppointment civil.DateTime

	values  Values
	errors  map[Field]string
	touched map[Field]bool
	state   State
}

// MinAppointment returns the earliest suggested appointment, computed when
// the form was mounted.
func (f *Form) MinAppointment() civil.DateTime {
	return f.minAppointment
}

func (f *Form) State() State {
	return f.state
}

func (f *Form) Values() Values {
	return f.values
}

func (f *Form) Value(field Field) string {
	return f.values.Get(field)
}

// Set updates a field value as typed by the user.
func (f *Form) Set(field Field, value string) {
	f.values.Set(field, value)
	f.state = StateEditing
}

// SetValues replaces all field values at once.
func (f *Form) SetValues(values Values) {
	f.values = values
	f.state = StateEditing
}

// Blur marks the field as touched and validates it alone.
func (f *Form) Blur(field Field) {
	f.touched[field] = true
	f.validateField(field)
}

// Error returns the message of a touched invalid field, or an empty
// string.
func (f *Form) Error(field Field) string {
	if !f.touched[field] {
		return ""
	}

	return f.errors[field]
}

func (f *Form) Touched(field Field) bool {
	return f.touched[field]
}

// Validate validates every field and reports whether the form is valid.
func (f *Form) Validate() bool {
	for _, field := range Fields {
		f.validateField(field)
	}

	return len(f.errors) == 0
}

func (f *Form) IsValid() bool {
	return len(f.errors) == 0
}

// Submit touches and validates every field, then saves the order. An
// invalid form returns ErrInvalid without calling the saver. A failed save
// keeps the values for another attempt; a successful one resets the form.
func (f *Form) Submit(ctx context.Context, saver Saver) (model.OrderID, error) {
	for _, field := range Fields {
		f.touched[field] = true
	}

	f.state = StateValidating

	if !f.Validate() {
		f.state = StateInvalid

		for field := range f.errors {
			metrics.ValidationFailures.WithLabelValues(string(field)).Inc()
		}

		return 0, errors.WithStack(ErrInvalid)
	}

	f.state = StateSubmitting

	input, err := f.input()
	if err != nil {
		f.state = StateEditing
		return 0, errors.WithStack(err)
	}

	orderID, err := saver.Save(ctx, input)
	if err != nil {
		f.state = StateEditing
		return 0, errors.WithStack(err)
	}

	f.Reset()

	return orderID, nil
}

// Reset restores the initial values. The appointment default is the one
// computed at mount unless the form was created with
// WithRecomputeDefaultOnReset.
func (f *Form) Reset() {
	if f.recomputeOnReset {
		f.minAppointment = model.CeilQuarterHour(model.Now(f.clock))
	}

	f.values = initialValues(f.minAppointment)
	f.errors = map[Field]string{}
	f.touched = map[Field]bool{}
	f.state = StatePristine
}

func (f *Form) validateField(field Field) {
	message := validate(field, f.values.Get(field))
	if message == "" {
		delete(f.errors, field)
		return
	}

	f.errors[field] = message
}

func (f *Form) input() (model.OrderInput, error) {
	birthDate, err := model.ParseDate(strings.TrimSpace(f.values.BirthDate))
	if err != nil {
		return model.OrderInput{}, errors.WithStack(err)
	}

	appointment, err := model.ParseDateTime(strings.TrimSpace(f.values.AppointmentDateTime))
	if err != nil {
		return model.OrderInput{}, errors.WithStack(err)
	}

	input := model.OrderInput{
		FirstName:           strings.TrimSpace(f.values.FirstName),
		LastName:            strings.TrimSpace(f.values.LastName),
		BirthDate:           birthDate,
		AppointmentDateTime: appointment,
	}

	if raw := strings.TrimSpace(f.values.AlternateTime); raw != "" {
		alternateTime, err := model.ParseTime(raw)
		if err != nil {
			return model.OrderInput{}, errors.WithStack(err)
		}

		input.AlternateTime = &alternateTime
	}

	return input, nil
}

func initialValues(minAppointment civil.DateTime) Values {
	return Values{
		AppointmentDateTime: model.FormatDateTime(minAppointment),
	}
}

// New mounts a new pristine form.
func New(funcs ...OptionFunc) *Form {
	opts := NewOptions(funcs...)

	minAppointment := model.CeilQuarterHour(model.Now(opts.Clock))
	if opts.MinAppointment != nil {
		minAppointment = model.TruncateMinute(*opts.MinAppointment)
	}

	f := &Form{
		clock:            opts.Clock,
		recomputeOnReset: opts.RecomputeDefaultOnReset,
		minAppointment:   minAppointment,
	}

	f.Reset()

	return f
}
