// Package sanitize strips unsafe markup from the text-bearing fields of a
// parsed card before it reaches a host that renders text as HTML.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-cardkit/pkg/card"
)

var (
	defaultPolicyOnce sync.Once
	defaultPolicy     *bluemonday.Policy
)

// textPolicy strips every tag; card text is plain text with optional
// host-side markdown, never HTML.
func textPolicy() *bluemonday.Policy {
	defaultPolicyOnce.Do(func() {
		defaultPolicy = bluemonday.StrictPolicy()
	})
	return defaultPolicy
}

// Options configures the sanitizer decorator.
type Options struct {
	// Policy overrides the default strip-everything policy.
	Policy *bluemonday.Policy
}

// Option mutates Options during construction.
type Option func(*Options)

// WithPolicy substitutes a custom bluemonday policy.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(o *Options) {
		o.Policy = policy
	}
}

// New returns a decorator that sanitizes TextBlock text, fact rows, input
// titles and placeholders, and the card-level fallback and speak strings.
func New(options ...Option) card.Decorator {
	opts := Options{}
	for _, opt := range options {
		opt(&opts)
	}
	policy := opts.Policy
	if policy == nil {
		policy = textPolicy()
	}

	clean := func(s string) string {
		if s == "" {
			return s
		}
		return strings.TrimSpace(policy.Sanitize(s))
	}

	return card.DecoratorFunc(func(c *card.Card) error {
		c.FallbackText = clean(c.FallbackText)
		c.Speak = clean(c.Speak)
		c.WalkElements(func(el card.Element) {
			switch t := el.(type) {
			case *card.TextBlock:
				t.Text = clean(t.Text)
			case *card.FactSet:
				for i := range t.Facts {
					t.Facts[i].Title = clean(t.Facts[i].Title)
					t.Facts[i].Value = clean(t.Facts[i].Value)
				}
			case *card.Image:
				t.AltText = clean(t.AltText)
			case *card.TextInput:
				t.Placeholder = clean(t.Placeholder)
			case *card.ToggleInput:
				t.Title = clean(t.Title)
			case *card.ChoiceSetInput:
				t.Placeholder = clean(t.Placeholder)
				for i := range t.Choices {
					t.Choices[i].Title = clean(t.Choices[i].Title)
				}
			}
		})
		c.WalkActions(func(act card.Action) {
			switch t := act.(type) {
			case *card.OpenURLAction:
				t.Title = clean(t.Title)
			case *card.SubmitAction:
				t.Title = clean(t.Title)
			case *card.ShowCardAction:
				t.Title = clean(t.Title)
			case *card.ToggleVisibilityAction:
				t.Title = clean(t.Title)
			}
		})
		return nil
	})
}
