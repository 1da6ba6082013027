package card

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-cardkit/pkg/node"
)

// ParseContext owns the registry pair and the diagnostics of one parsing
// session. Contexts are cheap to construct; use one per document so host
// registrations stay isolated. A context must not be shared across goroutines
// while a parse is in flight.
type ParseContext struct {
	elements *ElementRegistry
	actions  *ActionRegistry

	warnings      []Warning
	path          []string
	fallbackDepth int
	fallbackSeen  map[*node.Value]struct{}
}

// NewParseContext constructs a context with both registries seeded with the
// built-in kinds.
func NewParseContext() *ParseContext {
	return &ParseContext{
		elements: NewElementRegistry(),
		actions:  NewActionRegistry(),
	}
}

// Elements exposes the element registry for host customization.
func (c *ParseContext) Elements() *ElementRegistry { return c.elements }

// Actions exposes the action registry for host customization.
func (c *ParseContext) Actions() *ActionRegistry { return c.actions }

// RegisterElement binds a custom element parser, overriding any built-in
// registration for the same discriminator.
func (c *ParseContext) RegisterElement(typeName string, parser ElementParser) {
	c.elements.Register(typeName, parser)
}

// UnregisterElement removes an element registration.
func (c *ParseContext) UnregisterElement(typeName string) {
	c.elements.Unregister(typeName)
}

// RegisterAction binds a custom action parser, overriding any built-in
// registration for the same discriminator.
func (c *ParseContext) RegisterAction(typeName string, parser ActionParser) {
	c.actions.Register(typeName, parser)
}

// UnregisterAction removes an action registration.
func (c *ParseContext) UnregisterAction(typeName string) {
	c.actions.Unregister(typeName)
}

// Warnings returns the diagnostics collected so far, in emission order.
func (c *ParseContext) Warnings() []Warning {
	out := make([]Warning, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// maxFallbackDepth bounds fallback recursion. Chains nest inside the node
// tree, so any chain from decoded input is shorter than the tree is deep;
// the cap only bites on pathological hand-built trees.
const maxFallbackDepth = 32

func (c *ParseContext) reset() {
	c.warnings = c.warnings[:0]
	c.path = c.path[:0]
	c.fallbackDepth = 0
	c.fallbackSeen = nil
}

func (c *ParseContext) pushPath(segment string) {
	c.path = append(c.path, segment)
}

func (c *ParseContext) popPath() {
	if len(c.path) > 0 {
		c.path = c.path[:len(c.path)-1]
	}
}

// currentRef names the element being parsed for diagnostics: the element id
// when known, otherwise the positional path such as "body[2].items[0]".
func (c *ParseContext) currentRef() string {
	return strings.Join(c.path, ".")
}

func (c *ParseContext) warn(kind WarningKind, ref, format string, args ...any) {
	if ref == "" {
		ref = c.currentRef()
	}
	c.warnings = append(c.warnings, Warning{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Element: ref,
	})
}

// enterFallback admits one step of fallback resolution. A node already on
// the active chain is a cycle; a chain past the depth cap is treated the
// same way. Both make the caller drop the element instead of recursing.
func (c *ParseContext) enterFallback(fb *node.Value) bool {
	if c.fallbackDepth >= maxFallbackDepth {
		return false
	}
	if _, active := c.fallbackSeen[fb]; active {
		return false
	}
	if c.fallbackSeen == nil {
		c.fallbackSeen = make(map[*node.Value]struct{})
	}
	c.fallbackSeen[fb] = struct{}{}
	c.fallbackDepth++
	return true
}

func (c *ParseContext) leaveFallback(fb *node.Value) {
	delete(c.fallbackSeen, fb)
	if c.fallbackDepth > 0 {
		c.fallbackDepth--
	}
}
