package card

import "github.com/goliatone/go-cardkit/pkg/node"

// TypeActionSet is the ActionSet element discriminator.
const TypeActionSet = "ActionSet"

// ActionSet embeds a row of actions inside the card body.
type ActionSet struct {
	BaseElement
	Actions []Action
}

// NewActionSet constructs an ActionSet with schema defaults.
func NewActionSet(actions ...Action) *ActionSet {
	return &ActionSet{BaseElement: NewBaseElement(), Actions: actions}
}

// ElementType returns the type discriminator.
func (s *ActionSet) ElementType() string { return TypeActionSet }

// SerializeToValue emits the element as a document node.
func (s *ActionSet) SerializeToValue() *node.Value {
	obj := node.Object()
	s.serializeInto(obj, TypeActionSet)
	actions := node.Array()
	for _, act := range s.Actions {
		actions.Append(act.SerializeToValue())
	}
	obj.Set("actions", actions)
	s.serializeAdditional(obj)
	return obj
}

func parseActionSet(ctx *ParseContext, v *node.Value) (Element, error) {
	rd := newObjectReader(ctx, v)
	set := NewActionSet()
	set.decodeBase(rd)

	if actions, ok := rd.arrayField("actions"); ok {
		set.Actions = ctx.parseActionArray(actions, "actions")
	}

	set.AdditionalProperties = rd.rest()
	return set, nil
}
