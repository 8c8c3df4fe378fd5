package http

import (
	"net/http"
	"time"
)

type Options struct {
	Address         string
	BaseURL         string
	Desktop         bool
	ShutdownTimeout time.Duration
	Mounts          map[string]http.Handler
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Address:         ":3003",
		BaseURL:         "",
		Desktop:         false,
		ShutdownTimeout: 5 * time.Second,
		Mounts:          map[string]http.Handler{},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithMount(prefix string, handler http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.Mounts[prefix] = handler
	}
}

func WithBaseURL(baseURL string) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithAddress(addr string) OptionFunc {
	return func(opts *Options) {
		opts.Address = addr
	}
}

// WithDesktop flags every request as coming from the desktop window.
func WithDesktop(desktop bool) OptionFunc {
	return func(opts *Options) {
		opts.Desktop = desktop
	}
}

func WithShutdownTimeout(timeout time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.ShutdownTimeout = timeout
	}
}
