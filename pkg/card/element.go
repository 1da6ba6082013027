package card

import "github.com/goliatone/go-cardkit/pkg/node"

// Schema key names shared by the base element and action models.
const (
	keyType      = "type"
	keyID        = "id"
	keySpacing   = "spacing"
	keySeparator = "separator"
	keyIsVisible = "isVisible"
	keyFallback  = "fallback"
	keyTitle     = "title"
	keyIconURL   = "iconUrl"
	keyStyle     = "style"
	keySelectAct = "selectAction"
	fallbackDrop = "drop"
)

// Element is the contract every card element satisfies, built-in or
// host-registered. Implementations own their children exclusively; the tree
// has no parent back-references.
type Element interface {
	// ElementType returns the type discriminator, fixed per concrete type.
	ElementType() string
	// ElementID returns the element id, empty when unset.
	ElementID() string
	// SerializeToValue emits the element as a document node. The type
	// discriminator is always emitted first, base fields are skipped at
	// their defaults, and unrecognized source properties are re-emitted
	// verbatim.
	SerializeToValue() *node.Value
}

// Fallback describes what replaces an element its consumer cannot handle.
// Exactly one of Drop, Element, or the retained raw node is meaningful.
type Fallback struct {
	// Drop requests that the element be removed with no substitute.
	Drop bool
	// Element is a programmatically supplied substitute.
	Element Element

	raw *node.Value
}

// FallbackRaw wraps an undecoded fallback node, as retained during parsing.
func FallbackRaw(v *node.Value) *Fallback {
	if v == nil {
		return nil
	}
	return &Fallback{raw: v}
}

// Raw returns the retained fallback node, nil for Drop or programmatic
// fallbacks.
func (f *Fallback) Raw() *node.Value {
	if f == nil {
		return nil
	}
	return f.raw
}

func (f *Fallback) serialize() *node.Value {
	switch {
	case f == nil:
		return nil
	case f.Drop:
		return node.String(fallbackDrop)
	case f.Element != nil:
		return f.Element.SerializeToValue()
	case f.raw != nil:
		return f.raw.Clone()
	default:
		return nil
	}
}

// BaseElement carries the attributes shared by every card element. Concrete
// types embed it and contribute their own discriminator and fields.
type BaseElement struct {
	ID        string
	Spacing   Spacing
	Separator bool
	IsVisible bool
	Fallback  *Fallback

	// AdditionalProperties preserves source properties no decoder claimed,
	// in source order, so they survive serialization.
	AdditionalProperties []node.Field
}

// NewBaseElement returns a base with every field at its schema default.
func NewBaseElement() BaseElement {
	return BaseElement{Spacing: SpacingDefault, IsVisible: true}
}

// ElementID returns the element id.
func (b *BaseElement) ElementID() string { return b.ID }

// baseRef lets same-package helpers reach the embedded base through the
// Element interface.
func (b *BaseElement) baseRef() *BaseElement { return b }

// serializeInto writes the discriminator and base fields onto obj in schema
// order. Fields at their default are skipped; type always emits, id emits
// when present.
func (b *BaseElement) serializeInto(obj *node.Value, typeName string) {
	obj.Set(keyType, node.String(typeName))
	if b.ID != "" {
		obj.Set(keyID, node.String(b.ID))
	}
	if b.Spacing != SpacingDefault && b.Spacing != "" {
		obj.Set(keySpacing, node.String(b.Spacing.String()))
	}
	if b.Separator {
		obj.Set(keySeparator, node.Bool(true))
	}
	if !b.IsVisible {
		obj.Set(keyIsVisible, node.Bool(false))
	}
	if fb := b.Fallback.serialize(); fb != nil {
		obj.Set(keyFallback, fb)
	}
}

// serializeAdditional re-emits preserved unknown properties after the typed
// fields.
func (b *BaseElement) serializeAdditional(obj *node.Value) {
	for _, f := range b.AdditionalProperties {
		obj.Set(f.Key, f.Value.Clone())
	}
}

// decodeBase populates the shared fields from an object reader. Unrecognized
// keys are left for the concrete decoder; whatever remains after it finishes
// lands in AdditionalProperties via rd.rest().
func (b *BaseElement) decodeBase(rd *objectReader) {
	*b = NewBaseElement()
	rd.claim(keyType)
	if id, ok := rd.stringField(keyID); ok {
		b.ID = id
		rd.setRef(id)
	}
	if tok, ok := rd.stringField(keySpacing); ok {
		spacing, valid := ParseSpacing(tok)
		if !valid {
			rd.warnEnum(keySpacing, tok)
		}
		b.Spacing = spacing
	}
	b.Separator = rd.boolField(keySeparator, false)
	b.IsVisible = rd.boolField(keyIsVisible, true)
	if fb, ok := rd.value(keyFallback); ok {
		b.Fallback = decodeFallback(fb)
	}
}

func decodeFallback(v *node.Value) *Fallback {
	switch v.Kind() {
	case node.KindString:
		if v.StringVal() == fallbackDrop {
			return &Fallback{Drop: true}
		}
		return nil
	case node.KindObject:
		return FallbackRaw(v.Clone())
	default:
		return nil
	}
}
