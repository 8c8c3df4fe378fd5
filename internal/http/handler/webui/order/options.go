package order

import (
	"net/http"

	"github.com/bornholm/orders/internal/core/model"
	"github.com/bornholm/orders/internal/http/handler/webui/order/component"
	"github.com/bornholm/orders/internal/locale"
)

type Options struct {
	Formatter               locale.Formatter
	Clock                   model.Clock
	RecomputeDefaultOnReset bool
	PageRenderer            PageRenderer
	SubmitMiddleware        func(http.Handler) http.Handler
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Formatter:               locale.Czech,
		Clock:                   nil,
		RecomputeDefaultOnReset: false,
		PageRenderer:            renderFormOnly,
		SubmitMiddleware: func(h http.Handler) http.Handler {
			return h
		},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithFormatter(formatter locale.Formatter) OptionFunc {
	return func(opts *Options) {
		opts.Formatter = formatter
	}
}

func WithClock(clock model.Clock) OptionFunc {
	return func(opts *Options) {
		opts.Clock = clock
	}
}

func WithRecomputeDefaultOnReset(recompute bool) OptionFunc {
	return func(opts *Options) {
		opts.RecomputeDefaultOnReset = recompute
	}
}

func WithPageRenderer(renderer PageRenderer) OptionFunc {
	return func(opts *Options) {
		opts.PageRenderer = renderer
	}
}

// WithSubmitMiddleware wraps the submission endpoint, i.e. to rate limit it.
func WithSubmitMiddleware(middleware func(http.Handler) http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.SubmitMiddleware = middleware
	}
}

func renderFormOnly(w http.ResponseWriter, r *http.Request, form component.FormVModel, statusCode int) {
	renderComponent(w, r, component.OrderForm(form), statusCode)
}
