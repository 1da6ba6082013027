package card

import (
	"sort"
	"sync"

	"github.com/goliatone/go-cardkit/pkg/node"
)

// ElementParser deserializes one element kind. Deserialize is the fast path:
// the engine has already matched the node's type discriminator against the
// registration, so implementations may assume it. A returned error drops the
// element at its own boundary (warning plus fallback); it never aborts
// sibling or parent parsing.
type ElementParser interface {
	Deserialize(ctx *ParseContext, v *node.Value) (Element, error)
}

// ElementParserFunc adapts a function into an ElementParser.
type ElementParserFunc func(ctx *ParseContext, v *node.Value) (Element, error)

// Deserialize calls the underlying function.
func (fn ElementParserFunc) Deserialize(ctx *ParseContext, v *node.Value) (Element, error) {
	return fn(ctx, v)
}

// ActionParser deserializes one action kind, with the same contract as
// ElementParser.
type ActionParser interface {
	Deserialize(ctx *ParseContext, v *node.Value) (Action, error)
}

// ActionParserFunc adapts a function into an ActionParser.
type ActionParserFunc func(ctx *ParseContext, v *node.Value) (Action, error)

// Deserialize calls the underlying function.
func (fn ActionParserFunc) Deserialize(ctx *ParseContext, v *node.Value) (Action, error) {
	return fn(ctx, v)
}

// ElementRegistry maps element type discriminators to their parsers. Each
// ParseContext owns its own registry, so host customization on one context
// never leaks into another. The lock protects map integrity only; callers
// must still finish configuring a registry before parsing with it.
type ElementRegistry struct {
	mu      sync.RWMutex
	parsers map[string]ElementParser
}

// NewElementRegistry returns a registry seeded with every built-in element
// kind.
func NewElementRegistry() *ElementRegistry {
	r := &ElementRegistry{parsers: make(map[string]ElementParser)}
	registerBuiltinElements(r)
	return r
}

// Register binds a parser to a type discriminator, replacing any existing
// registration for that discriminator.
func (r *ElementRegistry) Register(typeName string, parser ElementParser) {
	if typeName == "" || parser == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parsers[typeName] = parser
}

// Unregister removes a registration. Absent discriminators are a no-op.
func (r *ElementRegistry) Unregister(typeName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.parsers, typeName)
}

// Get returns the parser registered for a discriminator.
func (r *ElementRegistry) Get(typeName string) (ElementParser, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	parser, ok := r.parsers[typeName]
	return parser, ok
}

// Types returns the registered discriminators, sorted.
func (r *ElementRegistry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ActionRegistry maps action type discriminators to their parsers. It is a
// separate namespace from ElementRegistry.
type ActionRegistry struct {
	mu      sync.RWMutex
	parsers map[string]ActionParser
}

// NewActionRegistry returns a registry seeded with every built-in action
// kind.
func NewActionRegistry() *ActionRegistry {
	r := &ActionRegistry{parsers: make(map[string]ActionParser)}
	registerBuiltinActions(r)
	return r
}

// Register binds a parser to a type discriminator, replacing any existing
// registration for that discriminator.
func (r *ActionRegistry) Register(typeName string, parser ActionParser) {
	if typeName == "" || parser == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parsers[typeName] = parser
}

// Unregister removes a registration. Absent discriminators are a no-op.
func (r *ActionRegistry) Unregister(typeName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.parsers, typeName)
}

// Get returns the parser registered for a discriminator.
func (r *ActionRegistry) Get(typeName string) (ActionParser, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	parser, ok := r.parsers[typeName]
	return parser, ok
}

// Types returns the registered discriminators, sorted.
func (r *ActionRegistry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func registerBuiltinElements(r *ElementRegistry) {
	r.Register(TypeTextBlock, ElementParserFunc(parseTextBlock))
	r.Register(TypeImage, ElementParserFunc(parseImage))
	r.Register(TypeContainer, ElementParserFunc(parseContainer))
	r.Register(TypeColumnSet, ElementParserFunc(parseColumnSet))
	r.Register(TypeColumn, ElementParserFunc(parseColumn))
	r.Register(TypeFactSet, ElementParserFunc(parseFactSet))
	r.Register(TypeImageSet, ElementParserFunc(parseImageSet))
	r.Register(TypeActionSet, ElementParserFunc(parseActionSet))
	r.Register(TypeTextInput, ElementParserFunc(parseTextInput))
	r.Register(TypeNumberInput, ElementParserFunc(parseNumberInput))
	r.Register(TypeDateInput, ElementParserFunc(parseDateInput))
	r.Register(TypeTimeInput, ElementParserFunc(parseTimeInput))
	r.Register(TypeToggleInput, ElementParserFunc(parseToggleInput))
	r.Register(TypeChoiceSetInput, ElementParserFunc(parseChoiceSetInput))
}

func registerBuiltinActions(r *ActionRegistry) {
	r.Register(TypeOpenURLAction, ActionParserFunc(parseOpenURLAction))
	r.Register(TypeSubmitAction, ActionParserFunc(parseSubmitAction))
	r.Register(TypeShowCardAction, ActionParserFunc(parseShowCardAction))
	r.Register(TypeToggleVisibilityAction, ActionParserFunc(parseToggleVisibilityAction))
}
