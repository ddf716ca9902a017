package dispatch

import (
	"github.com/go-leo/gox/syncx/gopher"
	"github.com/go-leo/gox/syncx/gopher/sample"
	"log/slog"
)

type option struct {
	Pool   gopher.Gopher
	Logger *slog.Logger
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Pool == nil {
		o.Pool = sample.Gopher{}
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

type Option func(*option)

// Pool sets the worker pool DispatchAll runs on.
func Pool(pool gopher.Gopher) Option {
	return func(o *option) {
		o.Pool = pool
	}
}

// Logger sets the logger a Table reports dispatches and misses to, at debug level.
func Logger(logger *slog.Logger) Option {
	return func(o *option) {
		o.Logger = logger
	}
}
