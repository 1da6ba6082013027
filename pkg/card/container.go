package card

import "github.com/goliatone/go-cardkit/pkg/node"

// TypeContainer is the Container element discriminator.
const TypeContainer = "Container"

// Container groups an ordered sequence of child elements. Children are owned
// exclusively by their container; the tree stays acyclic with no parent
// back-references.
type Container struct {
	BaseElement
	Items                    []Element
	Style                    ContainerStyle
	VerticalContentAlignment VerticalAlignment
	SelectAction             Action
}

// NewContainer constructs a Container with schema defaults.
func NewContainer(items ...Element) *Container {
	return &Container{
		BaseElement:              NewBaseElement(),
		Items:                    items,
		Style:                    ContainerStyleDefault,
		VerticalContentAlignment: VerticalTop,
	}
}

// ElementType returns the type discriminator.
func (c *Container) ElementType() string { return TypeContainer }

// SerializeToValue emits the element as a document node.
func (c *Container) SerializeToValue() *node.Value {
	obj := node.Object()
	c.serializeInto(obj, TypeContainer)
	items := node.Array()
	for _, el := range c.Items {
		items.Append(el.SerializeToValue())
	}
	obj.Set("items", items)
	if c.Style != ContainerStyleDefault {
		obj.Set("style", node.String(c.Style.String()))
	}
	if c.VerticalContentAlignment != VerticalTop {
		obj.Set("verticalContentAlignment", node.String(c.VerticalContentAlignment.String()))
	}
	if c.SelectAction != nil {
		obj.Set(keySelectAct, c.SelectAction.SerializeToValue())
	}
	c.serializeAdditional(obj)
	return obj
}

func parseContainer(ctx *ParseContext, v *node.Value) (Element, error) {
	rd := newObjectReader(ctx, v)
	cont := NewContainer()
	cont.decodeBase(rd)

	if items, ok := rd.arrayField("items"); ok {
		cont.Items = ctx.parseElementArray(items, "items")
	}
	if tok, ok := rd.stringField("style"); ok {
		style, valid := ParseContainerStyle(tok)
		if !valid {
			rd.warnEnum("style", tok)
		}
		cont.Style = style
	}
	if tok, ok := rd.stringField("verticalContentAlignment"); ok {
		align, valid := ParseVerticalAlignment(tok)
		if !valid {
			rd.warnEnum("verticalContentAlignment", tok)
		}
		cont.VerticalContentAlignment = align
	}
	cont.SelectAction = ctx.parseActionField(rd, keySelectAct)

	cont.AdditionalProperties = rd.rest()
	return cont, nil
}
