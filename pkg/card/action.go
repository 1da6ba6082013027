package card

import "github.com/goliatone/go-cardkit/pkg/node"

// Action is the contract every card action satisfies. Actions form a
// discriminator namespace independent from elements: "Image" the element and
// "Image" the action would be distinct registrations.
type Action interface {
	// ActionType returns the type discriminator, fixed per concrete type.
	ActionType() string
	// ActionID returns the action id, empty when unset.
	ActionID() string
	// SerializeToValue emits the action as a document node.
	SerializeToValue() *node.Value
}

// BaseAction carries the attributes shared by every action.
type BaseAction struct {
	ID       string
	Title    string
	IconURL  string
	Style    ActionStyle
	Fallback *Fallback

	// AdditionalProperties preserves source properties no decoder claimed.
	AdditionalProperties []node.Field
}

// NewBaseAction returns a base with every field at its schema default.
func NewBaseAction() BaseAction {
	return BaseAction{Style: ActionStyleDefault}
}

// ActionID returns the action id.
func (b *BaseAction) ActionID() string { return b.ID }

func (b *BaseAction) serializeInto(obj *node.Value, typeName string) {
	obj.Set(keyType, node.String(typeName))
	if b.ID != "" {
		obj.Set(keyID, node.String(b.ID))
	}
	if b.Title != "" {
		obj.Set(keyTitle, node.String(b.Title))
	}
	if b.IconURL != "" {
		obj.Set(keyIconURL, node.String(b.IconURL))
	}
	if b.Style != ActionStyleDefault && b.Style != "" {
		obj.Set(keyStyle, node.String(b.Style.String()))
	}
	if fb := b.Fallback.serialize(); fb != nil {
		obj.Set(keyFallback, fb)
	}
}

func (b *BaseAction) serializeAdditional(obj *node.Value) {
	for _, f := range b.AdditionalProperties {
		obj.Set(f.Key, f.Value.Clone())
	}
}

func (b *BaseAction) decodeBase(rd *objectReader) {
	*b = NewBaseAction()
	rd.claim(keyType)
	if id, ok := rd.stringField(keyID); ok {
		b.ID = id
		rd.setRef(id)
	}
	if title, ok := rd.stringField(keyTitle); ok {
		b.Title = title
	}
	if icon, ok := rd.stringField(keyIconURL); ok {
		b.IconURL = icon
	}
	if tok, ok := rd.stringField(keyStyle); ok {
		style, valid := ParseActionStyle(tok)
		if !valid {
			rd.warnEnum(keyStyle, tok)
		}
		b.Style = style
	}
	if fb, ok := rd.value(keyFallback); ok {
		b.Fallback = decodeFallback(fb)
	}
}
