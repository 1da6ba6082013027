package card

import (
	"fmt"

	"github.com/goliatone/go-cardkit/pkg/node"
)

// ParseElement parses an ad hoc element node, performing the structural and
// type-discriminator checks itself before dispatching through the element
// registry. Structural failures on the node itself are fatal here because
// there is no parent to absorb them; inside a document the same failures
// degrade to warnings at the parent's boundary.
func (c *ParseContext) ParseElement(v *node.Value) (Element, error) {
	if v.Kind() != node.KindObject {
		return nil, fatalError(ErrorInvalidStructure, "element node must be an object, got %s", v.Kind())
	}
	if _, ok := elementTypeName(v); !ok {
		return nil, fatalError(ErrorMissingType, `element node has no string "type" field`)
	}
	el, _ := c.parseElementNode(v)
	return el, nil
}

// ParseElementFromJSON decodes raw JSON text and parses the resulting node
// via ParseElement.
func (c *ParseContext) ParseElementFromJSON(data []byte) (Element, error) {
	v, err := node.DecodeJSON(data)
	if err != nil {
		return nil, &ParseError{Kind: ErrorMalformedEncoding, Message: "element payload is not valid JSON", Err: err}
	}
	return c.ParseElement(v)
}

// ParseAction parses an ad hoc action node with the same contract as
// ParseElement.
func (c *ParseContext) ParseAction(v *node.Value) (Action, error) {
	if v.Kind() != node.KindObject {
		return nil, fatalError(ErrorInvalidStructure, "action node must be an object, got %s", v.Kind())
	}
	if _, ok := elementTypeName(v); !ok {
		return nil, fatalError(ErrorMissingType, `action node has no string "type" field`)
	}
	act, _ := c.parseActionNode(v)
	return act, nil
}

// ParseActionFromJSON decodes raw JSON text and parses the resulting node via
// ParseAction.
func (c *ParseContext) ParseActionFromJSON(data []byte) (Action, error) {
	v, err := node.DecodeJSON(data)
	if err != nil {
		return nil, &ParseError{Kind: ErrorMalformedEncoding, Message: "action payload is not valid JSON", Err: err}
	}
	return c.ParseAction(v)
}

func elementTypeName(v *node.Value) (string, bool) {
	t, ok := v.Field(keyType)
	if !ok || t.Kind() != node.KindString {
		return "", false
	}
	return t.StringVal(), true
}

// refFor prefers the node's declared id over the positional path when naming
// an element in diagnostics.
func (c *ParseContext) refFor(v *node.Value) string {
	if id, ok := v.Field(keyID); ok && id.Kind() == node.KindString && id.StringVal() != "" {
		return id.StringVal()
	}
	return c.currentRef()
}

// parseElementNode is the engine's per-node algorithm. The boolean result
// reports whether an element was produced; failures are contained here as
// warnings plus fallback resolution and never abort the caller.
func (c *ParseContext) parseElementNode(v *node.Value) (Element, bool) {
	if v.Kind() != node.KindObject {
		c.warn(WarningElementDropped, "", "element node is not an object, got %s", v.Kind())
		return nil, false
	}
	typeName, ok := elementTypeName(v)
	if !ok {
		c.warn(WarningMissingRequired, c.refFor(v), `element node has no string "type" field`)
		return c.elementFallbackOf(v)
	}

	parser, found := c.elements.Get(typeName)
	if !found {
		c.warn(WarningUnknownElementType, c.refFor(v), "unknown element type %q", typeName)
		if fb, has := v.Field(keyFallback); has {
			return c.resolveElementFallback(fb)
		}
		return newUnknownElement(v), true
	}

	el, err := parser.Deserialize(c, v)
	if err != nil {
		c.warn(WarningElementDropped, c.refFor(v), "element %q dropped: %v", typeName, err)
		return c.elementFallbackOf(v)
	}
	return el, el != nil
}

// elementFallbackOf resolves the node's own fallback declaration after the
// node itself failed. No declaration means the element is simply dropped.
func (c *ParseContext) elementFallbackOf(v *node.Value) (Element, bool) {
	fb, ok := v.Field(keyFallback)
	if !ok {
		return nil, false
	}
	return c.resolveElementFallback(fb)
}

// resolveElementFallback interprets one fallback value: the "drop" sentinel
// removes the element, an object node parses recursively under the cycle and
// depth guards, and anything else is ignored.
func (c *ParseContext) resolveElementFallback(fb *node.Value) (Element, bool) {
	switch fb.Kind() {
	case node.KindString:
		if fb.StringVal() != fallbackDrop {
			c.warn(WarningInvalidFieldType, "", "fallback must be an object or %q, got %q", fallbackDrop, fb.StringVal())
		}
		return nil, false
	case node.KindObject:
		if !c.enterFallback(fb) {
			c.warn(WarningFallbackExhausted, "", "fallback chain cycles or exceeds the depth bound, dropping element")
			return nil, false
		}
		defer c.leaveFallback(fb)
		return c.parseElementNode(fb)
	default:
		c.warn(WarningInvalidFieldType, "", "fallback must be an object or %q, got %s", fallbackDrop, fb.Kind())
		return nil, false
	}
}

// parseActionNode mirrors parseElementNode for the action namespace.
func (c *ParseContext) parseActionNode(v *node.Value) (Action, bool) {
	if v.Kind() != node.KindObject {
		c.warn(WarningElementDropped, "", "action node is not an object, got %s", v.Kind())
		return nil, false
	}
	typeName, ok := elementTypeName(v)
	if !ok {
		c.warn(WarningMissingRequired, c.refFor(v), `action node has no string "type" field`)
		return c.actionFallbackOf(v)
	}

	parser, found := c.actions.Get(typeName)
	if !found {
		c.warn(WarningUnknownActionType, c.refFor(v), "unknown action type %q", typeName)
		if fb, has := v.Field(keyFallback); has {
			return c.resolveActionFallback(fb)
		}
		return newUnknownAction(v), true
	}

	act, err := parser.Deserialize(c, v)
	if err != nil {
		c.warn(WarningElementDropped, c.refFor(v), "action %q dropped: %v", typeName, err)
		return c.actionFallbackOf(v)
	}
	return act, act != nil
}

func (c *ParseContext) actionFallbackOf(v *node.Value) (Action, bool) {
	fb, ok := v.Field(keyFallback)
	if !ok {
		return nil, false
	}
	return c.resolveActionFallback(fb)
}

func (c *ParseContext) resolveActionFallback(fb *node.Value) (Action, bool) {
	switch fb.Kind() {
	case node.KindString:
		if fb.StringVal() != fallbackDrop {
			c.warn(WarningInvalidFieldType, "", "fallback must be an object or %q, got %q", fallbackDrop, fb.StringVal())
		}
		return nil, false
	case node.KindObject:
		if !c.enterFallback(fb) {
			c.warn(WarningFallbackExhausted, "", "fallback chain cycles or exceeds the depth bound, dropping action")
			return nil, false
		}
		defer c.leaveFallback(fb)
		return c.parseActionNode(fb)
	default:
		c.warn(WarningInvalidFieldType, "", "fallback must be an object or %q, got %s", fallbackDrop, fb.Kind())
		return nil, false
	}
}

func indexed(key string, i int) string {
	return fmt.Sprintf("%s[%d]", key, i)
}

// parseElementArray parses a heterogeneous child sequence, preserving order.
// A failed child contributes its warnings and fallback result but never
// aborts its siblings.
func (c *ParseContext) parseElementArray(items []*node.Value, pathKey string) []Element {
	var out []Element
	for i, item := range items {
		c.pushPath(indexed(pathKey, i))
		if el, ok := c.parseElementNode(item); ok && el != nil {
			out = append(out, el)
		}
		c.popPath()
	}
	return out
}

// parseActionArray mirrors parseElementArray for actions.
func (c *ParseContext) parseActionArray(items []*node.Value, pathKey string) []Action {
	var out []Action
	for i, item := range items {
		c.pushPath(indexed(pathKey, i))
		if act, ok := c.parseActionNode(item); ok && act != nil {
			out = append(out, act)
		}
		c.popPath()
	}
	return out
}

// parseActionField parses a single owned action under the named key, used
// for selectAction-style fields.
func (c *ParseContext) parseActionField(rd *objectReader, key string) Action {
	v, ok := rd.value(key)
	if !ok {
		return nil
	}
	c.pushPath(key)
	defer c.popPath()
	act, _ := c.parseActionNode(v)
	return act
}
