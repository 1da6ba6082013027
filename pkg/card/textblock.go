package card

import "github.com/goliatone/go-cardkit/pkg/node"

// TypeTextBlock is the TextBlock element discriminator.
const TypeTextBlock = "TextBlock"

// TextBlock displays a run of formatted text.
type TextBlock struct {
	BaseElement
	Text                string
	Wrap                bool
	MaxLines            int
	Size                TextSize
	Weight              TextWeight
	Color               TextColor
	IsSubtle            bool
	HorizontalAlignment HorizontalAlignment
}

// NewTextBlock constructs a TextBlock with schema defaults.
func NewTextBlock(text string) *TextBlock {
	return &TextBlock{
		BaseElement:         NewBaseElement(),
		Text:                text,
		Size:                TextSizeDefault,
		Weight:              TextWeightDefault,
		Color:               TextColorDefault,
		HorizontalAlignment: AlignLeft,
	}
}

// ElementType returns the type discriminator.
func (t *TextBlock) ElementType() string { return TypeTextBlock }

// SerializeToValue emits the element as a document node.
func (t *TextBlock) SerializeToValue() *node.Value {
	obj := node.Object()
	t.serializeInto(obj, TypeTextBlock)
	obj.Set("text", node.String(t.Text))
	if t.Wrap {
		obj.Set("wrap", node.Bool(true))
	}
	if t.MaxLines > 0 {
		obj.Set("maxLines", node.Int(int64(t.MaxLines)))
	}
	if t.Size != TextSizeDefault {
		obj.Set("size", node.String(t.Size.String()))
	}
	if t.Weight != TextWeightDefault {
		obj.Set("weight", node.String(t.Weight.String()))
	}
	if t.Color != TextColorDefault {
		obj.Set("color", node.String(t.Color.String()))
	}
	if t.IsSubtle {
		obj.Set("isSubtle", node.Bool(true))
	}
	if t.HorizontalAlignment != AlignLeft {
		obj.Set("horizontalAlignment", node.String(t.HorizontalAlignment.String()))
	}
	t.serializeAdditional(obj)
	return obj
}

func parseTextBlock(ctx *ParseContext, v *node.Value) (Element, error) {
	rd := newObjectReader(ctx, v)
	tb := NewTextBlock("")
	tb.decodeBase(rd)

	// Text is required but not load-bearing: a TextBlock with empty text is
	// still a valid, renderable element, so absence only warns.
	if text, ok := rd.requireString("text"); ok {
		tb.Text = text
	}
	tb.Wrap = rd.boolField("wrap", false)
	tb.MaxLines = rd.intField("maxLines", 0)
	if tok, ok := rd.stringField("size"); ok {
		size, valid := ParseTextSize(tok)
		if !valid {
			rd.warnEnum("size", tok)
		}
		tb.Size = size
	}
	if tok, ok := rd.stringField("weight"); ok {
		weight, valid := ParseTextWeight(tok)
		if !valid {
			rd.warnEnum("weight", tok)
		}
		tb.Weight = weight
	}
	if tok, ok := rd.stringField("color"); ok {
		color, valid := ParseTextColor(tok)
		if !valid {
			rd.warnEnum("color", tok)
		}
		tb.Color = color
	}
	tb.IsSubtle = rd.boolField("isSubtle", false)
	if tok, ok := rd.stringField("horizontalAlignment"); ok {
		align, valid := ParseHorizontalAlignment(tok)
		if !valid {
			rd.warnEnum("horizontalAlignment", tok)
		}
		tb.HorizontalAlignment = align
	}

	tb.AdditionalProperties = rd.rest()
	return tb, nil
}
