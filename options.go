package gocml

import (
	"log/slog"

	"github.com/reoring/gocml/convention"
)

// Option configures documents and requirement enforcement.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	prefix     string
	indent     string
	convention *convention.Descriptor
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// WithLogger sets the logger that receives recommended-attribute warnings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithIndent makes Serialize indent nested elements.
func WithIndent(prefix, indent string) Option {
	return func(o *options) {
		o.prefix = prefix
		o.indent = indent
	}
}

// WithConvention attaches a convention descriptor to a Document. The
// descriptor is carried for callers and is not checked against the tree.
func WithConvention(d *convention.Descriptor) Option {
	return func(o *options) { o.convention = d }
}
