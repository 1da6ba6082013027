package card

import (
	"errors"

	"github.com/goliatone/go-cardkit/pkg/node"
)

// Input element discriminators.
const (
	TypeTextInput      = "Input.Text"
	TypeNumberInput    = "Input.Number"
	TypeDateInput      = "Input.Date"
	TypeTimeInput      = "Input.Time"
	TypeToggleInput    = "Input.Toggle"
	TypeChoiceSetInput = "Input.ChoiceSet"
)

// errInputWithoutID drops an input at its boundary: an input that cannot
// name its value in a submission payload is load-bearing broken, so the
// engine replaces it with its fallback chain instead of defaulting.
var errInputWithoutID = errors.New("input elements require an id")

// decodeInputID enforces the load-bearing id policy shared by all inputs.
func decodeInputID(rd *objectReader, base *BaseElement) error {
	if base.ID != "" {
		return nil
	}
	rd.ctx.warn(WarningMissingRequired, rd.ref, `required field "id" is missing`)
	return errInputWithoutID
}

// TextInput collects free-form text.
type TextInput struct {
	BaseElement
	Placeholder string
	Value       string
	MaxLength   int
	IsMultiline bool
	Style       TextInputStyle
}

// NewTextInput constructs an Input.Text with schema defaults.
func NewTextInput(id string) *TextInput {
	base := NewBaseElement()
	base.ID = id
	return &TextInput{BaseElement: base, Style: TextInputStyleText}
}

// ElementType returns the type discriminator.
func (t *TextInput) ElementType() string { return TypeTextInput }

// SerializeToValue emits the element as a document node.
func (t *TextInput) SerializeToValue() *node.Value {
	obj := node.Object()
	t.serializeInto(obj, TypeTextInput)
	if t.Placeholder != "" {
		obj.Set("placeholder", node.String(t.Placeholder))
	}
	if t.Value != "" {
		obj.Set("value", node.String(t.Value))
	}
	if t.MaxLength > 0 {
		obj.Set("maxLength", node.Int(int64(t.MaxLength)))
	}
	if t.IsMultiline {
		obj.Set("isMultiline", node.Bool(true))
	}
	if t.Style != TextInputStyleText {
		obj.Set("style", node.String(t.Style.String()))
	}
	t.serializeAdditional(obj)
	return obj
}

func parseTextInput(ctx *ParseContext, v *node.Value) (Element, error) {
	rd := newObjectReader(ctx, v)
	in := NewTextInput("")
	in.decodeBase(rd)
	if err := decodeInputID(rd, &in.BaseElement); err != nil {
		return nil, err
	}

	if s, ok := rd.stringField("placeholder"); ok {
		in.Placeholder = s
	}
	if s, ok := rd.stringField("value"); ok {
		in.Value = s
	}
	in.MaxLength = rd.intField("maxLength", 0)
	in.IsMultiline = rd.boolField("isMultiline", false)
	if tok, ok := rd.stringField("style"); ok {
		style, valid := ParseTextInputStyle(tok)
		if !valid {
			rd.warnEnum("style", tok)
		}
		in.Style = style
	}

	in.AdditionalProperties = rd.rest()
	return in, nil
}

// NumberInput collects a numeric value.
type NumberInput struct {
	BaseElement
	Placeholder string
	Min         *float64
	Max         *float64
	Value       *float64
}

// NewNumberInput constructs an Input.Number with schema defaults.
func NewNumberInput(id string) *NumberInput {
	base := NewBaseElement()
	base.ID = id
	return &NumberInput{BaseElement: base}
}

// ElementType returns the type discriminator.
func (n *NumberInput) ElementType() string { return TypeNumberInput }

// SerializeToValue emits the element as a document node.
func (n *NumberInput) SerializeToValue() *node.Value {
	obj := node.Object()
	n.serializeInto(obj, TypeNumberInput)
	if n.Placeholder != "" {
		obj.Set("placeholder", node.String(n.Placeholder))
	}
	if n.Min != nil {
		obj.Set("min", node.Float(*n.Min))
	}
	if n.Max != nil {
		obj.Set("max", node.Float(*n.Max))
	}
	if n.Value != nil {
		obj.Set("value", node.Float(*n.Value))
	}
	n.serializeAdditional(obj)
	return obj
}

func parseNumberInput(ctx *ParseContext, v *node.Value) (Element, error) {
	rd := newObjectReader(ctx, v)
	in := NewNumberInput("")
	in.decodeBase(rd)
	if err := decodeInputID(rd, &in.BaseElement); err != nil {
		return nil, err
	}

	if s, ok := rd.stringField("placeholder"); ok {
		in.Placeholder = s
	}
	in.Min = rd.floatField("min")
	in.Max = rd.floatField("max")
	in.Value = rd.floatField("value")

	in.AdditionalProperties = rd.rest()
	return in, nil
}

// DateInput collects a date in ISO 8601 form.
type DateInput struct {
	BaseElement
	Placeholder string
	Min         string
	Max         string
	Value       string
}

// NewDateInput constructs an Input.Date with schema defaults.
func NewDateInput(id string) *DateInput {
	base := NewBaseElement()
	base.ID = id
	return &DateInput{BaseElement: base}
}

// ElementType returns the type discriminator.
func (d *DateInput) ElementType() string { return TypeDateInput }

// SerializeToValue emits the element as a document node.
func (d *DateInput) SerializeToValue() *node.Value {
	obj := node.Object()
	d.serializeInto(obj, TypeDateInput)
	if d.Placeholder != "" {
		obj.Set("placeholder", node.String(d.Placeholder))
	}
	if d.Min != "" {
		obj.Set("min", node.String(d.Min))
	}
	if d.Max != "" {
		obj.Set("max", node.String(d.Max))
	}
	if d.Value != "" {
		obj.Set("value", node.String(d.Value))
	}
	d.serializeAdditional(obj)
	return obj
}

func parseDateInput(ctx *ParseContext, v *node.Value) (Element, error) {
	rd := newObjectReader(ctx, v)
	in := NewDateInput("")
	in.decodeBase(rd)
	if err := decodeInputID(rd, &in.BaseElement); err != nil {
		return nil, err
	}

	if s, ok := rd.stringField("placeholder"); ok {
		in.Placeholder = s
	}
	if s, ok := rd.stringField("min"); ok {
		in.Min = s
	}
	if s, ok := rd.stringField("max"); ok {
		in.Max = s
	}
	if s, ok := rd.stringField("value"); ok {
		in.Value = s
	}

	in.AdditionalProperties = rd.rest()
	return in, nil
}

// TimeInput collects a time of day.
type TimeInput struct {
	BaseElement
	Placeholder string
	Min         string
	Max         string
	Value       string
}

// NewTimeInput constructs an Input.Time with schema defaults.
func NewTimeInput(id string) *TimeInput {
	base := NewBaseElement()
	base.ID = id
	return &TimeInput{BaseElement: base}
}

// ElementType returns the type discriminator.
func (t *TimeInput) ElementType() string { return TypeTimeInput }

// SerializeToValue emits the element as a document node.
func (t *TimeInput) SerializeToValue() *node.Value {
	obj := node.Object()
	t.serializeInto(obj, TypeTimeInput)
	if t.Placeholder != "" {
		obj.Set("placeholder", node.String(t.Placeholder))
	}
	if t.Min != "" {
		obj.Set("min", node.String(t.Min))
	}
	if t.Max != "" {
		obj.Set("max", node.String(t.Max))
	}
	if t.Value != "" {
		obj.Set("value", node.String(t.Value))
	}
	t.serializeAdditional(obj)
	return obj
}

func parseTimeInput(ctx *ParseContext, v *node.Value) (Element, error) {
	rd := newObjectReader(ctx, v)
	in := NewTimeInput("")
	in.decodeBase(rd)
	if err := decodeInputID(rd, &in.BaseElement); err != nil {
		return nil, err
	}

	if s, ok := rd.stringField("placeholder"); ok {
		in.Placeholder = s
	}
	if s, ok := rd.stringField("min"); ok {
		in.Min = s
	}
	if s, ok := rd.stringField("max"); ok {
		in.Max = s
	}
	if s, ok := rd.stringField("value"); ok {
		in.Value = s
	}

	in.AdditionalProperties = rd.rest()
	return in, nil
}

// ToggleInput collects an on/off choice.
type ToggleInput struct {
	BaseElement
	Title    string
	Value    string
	ValueOn  string
	ValueOff string
}

// NewToggleInput constructs an Input.Toggle with schema defaults.
func NewToggleInput(id, title string) *ToggleInput {
	base := NewBaseElement()
	base.ID = id
	return &ToggleInput{
		BaseElement: base,
		Title:       title,
		Value:       "false",
		ValueOn:     "true",
		ValueOff:    "false",
	}
}

// ElementType returns the type discriminator.
func (t *ToggleInput) ElementType() string { return TypeToggleInput }

// SerializeToValue emits the element as a document node.
func (t *ToggleInput) SerializeToValue() *node.Value {
	obj := node.Object()
	t.serializeInto(obj, TypeToggleInput)
	obj.Set("title", node.String(t.Title))
	if t.Value != "false" {
		obj.Set("value", node.String(t.Value))
	}
	if t.ValueOn != "true" {
		obj.Set("valueOn", node.String(t.ValueOn))
	}
	if t.ValueOff != "false" {
		obj.Set("valueOff", node.String(t.ValueOff))
	}
	t.serializeAdditional(obj)
	return obj
}

func parseToggleInput(ctx *ParseContext, v *node.Value) (Element, error) {
	rd := newObjectReader(ctx, v)
	in := NewToggleInput("", "")
	in.decodeBase(rd)
	if err := decodeInputID(rd, &in.BaseElement); err != nil {
		return nil, err
	}

	if s, ok := rd.requireString("title"); ok {
		in.Title = s
	}
	if s, ok := rd.stringField("value"); ok {
		in.Value = s
	}
	if s, ok := rd.stringField("valueOn"); ok {
		in.ValueOn = s
	}
	if s, ok := rd.stringField("valueOff"); ok {
		in.ValueOff = s
	}

	in.AdditionalProperties = rd.rest()
	return in, nil
}

// Choice is one selectable option of a ChoiceSetInput.
type Choice struct {
	Title string
	Value string
}

// ChoiceSetInput collects one or more choices from a fixed set.
type ChoiceSetInput struct {
	BaseElement
	Choices       []Choice
	Style         ChoiceSetStyle
	IsMultiSelect bool
	Value         string
	Placeholder   string
}

// NewChoiceSetInput constructs an Input.ChoiceSet with schema defaults.
func NewChoiceSetInput(id string, choices ...Choice) *ChoiceSetInput {
	base := NewBaseElement()
	base.ID = id
	return &ChoiceSetInput{
		BaseElement: base,
		Choices:     choices,
		Style:       ChoiceSetStyleCompact,
	}
}

// ElementType returns the type discriminator.
func (c *ChoiceSetInput) ElementType() string { return TypeChoiceSetInput }

// SerializeToValue emits the element as a document node.
func (c *ChoiceSetInput) SerializeToValue() *node.Value {
	obj := node.Object()
	c.serializeInto(obj, TypeChoiceSetInput)
	choices := node.Array()
	for _, choice := range c.Choices {
		choices.Append(node.Object(
			node.Field{Key: "title", Value: node.String(choice.Title)},
			node.Field{Key: "value", Value: node.String(choice.Value)},
		))
	}
	obj.Set("choices", choices)
	if c.Style != ChoiceSetStyleCompact {
		obj.Set("style", node.String(c.Style.String()))
	}
	if c.IsMultiSelect {
		obj.Set("isMultiSelect", node.Bool(true))
	}
	if c.Value != "" {
		obj.Set("value", node.String(c.Value))
	}
	if c.Placeholder != "" {
		obj.Set("placeholder", node.String(c.Placeholder))
	}
	c.serializeAdditional(obj)
	return obj
}

func parseChoiceSetInput(ctx *ParseContext, v *node.Value) (Element, error) {
	rd := newObjectReader(ctx, v)
	in := NewChoiceSetInput("")
	in.decodeBase(rd)
	if err := decodeInputID(rd, &in.BaseElement); err != nil {
		return nil, err
	}

	if choices, ok := rd.arrayField("choices"); ok {
		for i, choiceNode := range choices {
			if choiceNode.Kind() != node.KindObject {
				ctx.warn(WarningInvalidFieldType, rd.ref, "choice %s is not an object, skipping", indexed("choices", i))
				continue
			}
			choice := Choice{}
			if t, has := choiceNode.Field("title"); has && t.Kind() == node.KindString {
				choice.Title = t.StringVal()
			}
			if val, has := choiceNode.Field("value"); has && val.Kind() == node.KindString {
				choice.Value = val.StringVal()
			}
			in.Choices = append(in.Choices, choice)
		}
	}
	if tok, ok := rd.stringField("style"); ok {
		style, valid := ParseChoiceSetStyle(tok)
		if !valid {
			rd.warnEnum("style", tok)
		}
		in.Style = style
	}
	in.IsMultiSelect = rd.boolField("isMultiSelect", false)
	if s, ok := rd.stringField("value"); ok {
		in.Value = s
	}
	if s, ok := rd.stringField("placeholder"); ok {
		in.Placeholder = s
	}

	in.AdditionalProperties = rd.rest()
	return in, nil
}
