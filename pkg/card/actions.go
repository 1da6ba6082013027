package card

import (
	"errors"

	"github.com/goliatone/go-cardkit/pkg/node"
)

// Action discriminators.
const (
	TypeOpenURLAction          = "Action.OpenUrl"
	TypeSubmitAction           = "Action.Submit"
	TypeShowCardAction         = "Action.ShowCard"
	TypeToggleVisibilityAction = "Action.ToggleVisibility"
)

// errActionWithoutURL drops an Action.OpenUrl whose destination is missing.
var errActionWithoutURL = errors.New("Action.OpenUrl requires a url")

// OpenURLAction opens a URL in the host's browser.
type OpenURLAction struct {
	BaseAction
	URL string
}

// NewOpenURLAction constructs an Action.OpenUrl.
func NewOpenURLAction(url string) *OpenURLAction {
	return &OpenURLAction{BaseAction: NewBaseAction(), URL: url}
}

// ActionType returns the type discriminator.
func (a *OpenURLAction) ActionType() string { return TypeOpenURLAction }

// SerializeToValue emits the action as a document node.
func (a *OpenURLAction) SerializeToValue() *node.Value {
	obj := node.Object()
	a.serializeInto(obj, TypeOpenURLAction)
	obj.Set("url", node.String(a.URL))
	a.serializeAdditional(obj)
	return obj
}

func parseOpenURLAction(ctx *ParseContext, v *node.Value) (Action, error) {
	rd := newObjectReader(ctx, v)
	act := NewOpenURLAction("")
	act.decodeBase(rd)

	// URL is load-bearing: an OpenUrl action with nowhere to go is inert,
	// so absence drops the action in favor of its fallback chain.
	url, ok := rd.requireString("url")
	if !ok {
		return nil, errActionWithoutURL
	}
	act.URL = url

	act.AdditionalProperties = rd.rest()
	return act, nil
}

// SubmitAction gathers input values and hands them to the host, merged with
// the optional data payload.
type SubmitAction struct {
	BaseAction
	Data *node.Value
}

// NewSubmitAction constructs an Action.Submit.
func NewSubmitAction() *SubmitAction {
	return &SubmitAction{BaseAction: NewBaseAction()}
}

// ActionType returns the type discriminator.
func (a *SubmitAction) ActionType() string { return TypeSubmitAction }

// SerializeToValue emits the action as a document node.
func (a *SubmitAction) SerializeToValue() *node.Value {
	obj := node.Object()
	a.serializeInto(obj, TypeSubmitAction)
	if a.Data != nil && !a.Data.IsNull() {
		obj.Set("data", a.Data.Clone())
	}
	a.serializeAdditional(obj)
	return obj
}

func parseSubmitAction(ctx *ParseContext, v *node.Value) (Action, error) {
	rd := newObjectReader(ctx, v)
	act := NewSubmitAction()
	act.decodeBase(rd)

	if data, ok := rd.value("data"); ok {
		act.Data = data.Clone()
	}

	act.AdditionalProperties = rd.rest()
	return act, nil
}

// ShowCardAction reveals a nested card inline. The action exclusively owns
// the nested card.
type ShowCardAction struct {
	BaseAction
	Card *Card
}

// NewShowCardAction constructs an Action.ShowCard.
func NewShowCardAction(inner *Card) *ShowCardAction {
	return &ShowCardAction{BaseAction: NewBaseAction(), Card: inner}
}

// ActionType returns the type discriminator.
func (a *ShowCardAction) ActionType() string { return TypeShowCardAction }

// SerializeToValue emits the action as a document node.
func (a *ShowCardAction) SerializeToValue() *node.Value {
	obj := node.Object()
	a.serializeInto(obj, TypeShowCardAction)
	if a.Card != nil {
		obj.Set("card", a.Card.SerializeToValue())
	}
	a.serializeAdditional(obj)
	return obj
}

func parseShowCardAction(ctx *ParseContext, v *node.Value) (Action, error) {
	rd := newObjectReader(ctx, v)
	act := NewShowCardAction(nil)
	act.decodeBase(rd)

	if cardNode, ok := rd.value("card"); ok {
		ctx.pushPath("card")
		inner, err := ctx.parseCardValue(cardNode, true)
		ctx.popPath()
		if err != nil {
			return nil, err
		}
		act.Card = inner
	}

	act.AdditionalProperties = rd.rest()
	return act, nil
}

// VisibilityTarget names an element whose visibility an
// Action.ToggleVisibility flips or forces.
type VisibilityTarget struct {
	ElementID string
	// IsVisible forces a state when set; nil toggles.
	IsVisible *bool
}

// ToggleVisibilityAction shows or hides elements by id.
type ToggleVisibilityAction struct {
	BaseAction
	Targets []VisibilityTarget
}

// NewToggleVisibilityAction constructs an Action.ToggleVisibility.
func NewToggleVisibilityAction(targets ...VisibilityTarget) *ToggleVisibilityAction {
	return &ToggleVisibilityAction{BaseAction: NewBaseAction(), Targets: targets}
}

// ActionType returns the type discriminator.
func (a *ToggleVisibilityAction) ActionType() string { return TypeToggleVisibilityAction }

// SerializeToValue emits the action as a document node.
func (a *ToggleVisibilityAction) SerializeToValue() *node.Value {
	obj := node.Object()
	a.serializeInto(obj, TypeToggleVisibilityAction)
	targets := node.Array()
	for _, t := range a.Targets {
		if t.IsVisible == nil {
			targets.Append(node.String(t.ElementID))
			continue
		}
		targets.Append(node.Object(
			node.Field{Key: "elementId", Value: node.String(t.ElementID)},
			node.Field{Key: "isVisible", Value: node.Bool(*t.IsVisible)},
		))
	}
	obj.Set("targetElements", targets)
	a.serializeAdditional(obj)
	return obj
}

func parseToggleVisibilityAction(ctx *ParseContext, v *node.Value) (Action, error) {
	rd := newObjectReader(ctx, v)
	act := NewToggleVisibilityAction()
	act.decodeBase(rd)

	if targets, ok := rd.arrayField("targetElements"); ok {
		for i, targetNode := range targets {
			switch targetNode.Kind() {
			case node.KindString:
				act.Targets = append(act.Targets, VisibilityTarget{ElementID: targetNode.StringVal()})
			case node.KindObject:
				target := VisibilityTarget{}
				if id, has := targetNode.Field("elementId"); has && id.Kind() == node.KindString {
					target.ElementID = id.StringVal()
				}
				if vis, has := targetNode.Field("isVisible"); has && vis.Kind() == node.KindBool {
					visible := vis.BoolVal()
					target.IsVisible = &visible
				}
				act.Targets = append(act.Targets, target)
			default:
				ctx.warn(WarningInvalidFieldType, rd.ref, "target %s must be a string or object, skipping", indexed("targetElements", i))
			}
		}
	}

	act.AdditionalProperties = rd.rest()
	return act, nil
}
