package orderform

import (
	"cloud.google.com/go/civil"
	"github.com/bornholm/orders/internal/core/model"
)

type Options struct {
	Clock                   model.Clock
	MinAppointment          *civil.DateTime
	RecomputeDefaultOnReset bool
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Clock:                   nil,
		MinAppointment:          nil,
		RecomputeDefaultOnReset: false,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithClock(clock model.Clock) OptionFunc {
	return func(opts *Options) {
		opts.Clock = clock
	}
}

// WithMinAppointment restores the appointment default of an already
// mounted form instead of computing a new one.
func WithMinAppointment(minAppointment civil.DateTime) OptionFunc {
	return func(opts *Options) {
		opts.MinAppointment = &minAppointment
	}
}

func WithRecomputeDefaultOnReset(recompute bool) OptionFunc {
	return func(opts *Options) {
		opts.RecomputeDefaultOnReset = recompute
	}
}
