// Package cardkit parses Adaptive Card documents into a typed, extensible
// object model and serializes that model back to semantically equivalent
// documents. The root package is a thin convenience layer; pkg/card holds
// the model and engine, pkg/node the raw value tree.
package cardkit

import (
	"github.com/goliatone/go-cardkit/pkg/card"
	"github.com/goliatone/go-cardkit/pkg/node"
)

// Re-exported core types, so simple callers only import the root package.
type (
	// Card is the parsed document root.
	Card = card.Card
	// ParseResult bundles a parsed card with its warnings.
	ParseResult = card.ParseResult
	// ParseContext owns the registry pair for one parsing session.
	ParseContext = card.ParseContext
	// Warning is a non-fatal parse diagnostic.
	Warning = card.Warning
	// ParseError is a fatal parse failure.
	ParseError = card.ParseError
	// Decorator post-processes a parsed card.
	Decorator = card.Decorator
)

// NewParseContext constructs a context seeded with the built-in element and
// action kinds.
func NewParseContext() *card.ParseContext {
	return card.NewParseContext()
}

// Options configures the convenience parse entry points.
type Options struct {
	// Context supplies a pre-configured registry pair; nil uses a fresh one.
	Context *card.ParseContext
	// Decorators run in order over the parsed card.
	Decorators []card.Decorator
}

// Option mutates Options during construction.
type Option func(*Options)

// WithContext parses with a caller-configured context so host registrations
// apply.
func WithContext(ctx *card.ParseContext) Option {
	return func(o *Options) {
		o.Context = ctx
	}
}

// WithDecorators appends decorators applied after a successful parse.
func WithDecorators(decorators ...card.Decorator) Option {
	return func(o *Options) {
		o.Decorators = append(o.Decorators, decorators...)
	}
}

// ParseJSON parses a JSON card document.
func ParseJSON(data []byte, options ...Option) (*card.ParseResult, error) {
	return parseWith(options, func(ctx *card.ParseContext) (*card.ParseResult, error) {
		return ctx.ParseCardFromJSON(data)
	})
}

// ParseYAML parses a YAML card document.
func ParseYAML(data []byte, options ...Option) (*card.ParseResult, error) {
	return parseWith(options, func(ctx *card.ParseContext) (*card.ParseResult, error) {
		return ctx.ParseCardFromYAML(data)
	})
}

// Parse parses an already-decoded node tree.
func Parse(v *node.Value, options ...Option) (*card.ParseResult, error) {
	return parseWith(options, func(ctx *card.ParseContext) (*card.ParseResult, error) {
		return ctx.ParseCard(v)
	})
}

func parseWith(options []Option, run func(*card.ParseContext) (*card.ParseResult, error)) (*card.ParseResult, error) {
	opts := Options{}
	for _, opt := range options {
		opt(&opts)
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = card.NewParseContext()
	}

	res, err := run(ctx)
	if err != nil {
		return nil, err
	}
	for _, dec := range opts.Decorators {
		if dec == nil {
			continue
		}
		if err := dec.Decorate(res.Card); err != nil {
			return nil, err
		}
	}
	return res, nil
}
