package card

import "github.com/goliatone/go-cardkit/pkg/node"

// UnknownElement stands in for an element whose type discriminator has no
// registration, the forward-compatibility path: the raw node is preserved
// verbatim so the document still round-trips through older implementations.
type UnknownElement struct {
	raw *node.Value
}

func newUnknownElement(v *node.Value) *UnknownElement {
	return &UnknownElement{raw: v.Clone()}
}

// ElementType returns the unrecognized discriminator from the source node.
func (u *UnknownElement) ElementType() string {
	name, _ := elementTypeName(u.raw)
	return name
}

// ElementID returns the source node's id, when it carried one.
func (u *UnknownElement) ElementID() string {
	if id, ok := u.raw.Field(keyID); ok {
		return id.StringVal()
	}
	return ""
}

// SerializeToValue re-emits the source node verbatim.
func (u *UnknownElement) SerializeToValue() *node.Value {
	return u.raw.Clone()
}

// Raw exposes the preserved source node for hosts that want to inspect it.
func (u *UnknownElement) Raw() *node.Value {
	return u.raw
}

// UnknownAction is the action-namespace counterpart of UnknownElement.
type UnknownAction struct {
	raw *node.Value
}

func newUnknownAction(v *node.Value) *UnknownAction {
	return &UnknownAction{raw: v.Clone()}
}

// ActionType returns the unrecognized discriminator from the source node.
func (u *UnknownAction) ActionType() string {
	name, _ := elementTypeName(u.raw)
	return name
}

// ActionID returns the source node's id, when it carried one.
func (u *UnknownAction) ActionID() string {
	if id, ok := u.raw.Field(keyID); ok {
		return id.StringVal()
	}
	return ""
}

// SerializeToValue re-emits the source node verbatim.
func (u *UnknownAction) SerializeToValue() *node.Value {
	return u.raw.Clone()
}

// Raw exposes the preserved source node.
func (u *UnknownAction) Raw() *node.Value {
	return u.raw
}
