package card

import (
	"github.com/goliatone/go-cardkit/pkg/node"
)

// Discriminators for the column family.
const (
	TypeColumnSet = "ColumnSet"
	TypeColumn    = "Column"
)

// ColumnWidth values besides the two keywords are numeric weights carried as
// their original text.
const (
	ColumnWidthAuto    = "auto"
	ColumnWidthStretch = "stretch"
)

// ColumnSet lays out columns side by side.
type ColumnSet struct {
	BaseElement
	Columns      []*Column
	SelectAction Action
}

// NewColumnSet constructs a ColumnSet with schema defaults.
func NewColumnSet(columns ...*Column) *ColumnSet {
	return &ColumnSet{BaseElement: NewBaseElement(), Columns: columns}
}

// ElementType returns the type discriminator.
func (c *ColumnSet) ElementType() string { return TypeColumnSet }

// SerializeToValue emits the element as a document node.
func (c *ColumnSet) SerializeToValue() *node.Value {
	obj := node.Object()
	c.serializeInto(obj, TypeColumnSet)
	cols := node.Array()
	for _, col := range c.Columns {
		cols.Append(col.SerializeToValue())
	}
	obj.Set("columns", cols)
	if c.SelectAction != nil {
		obj.Set(keySelectAct, c.SelectAction.SerializeToValue())
	}
	c.serializeAdditional(obj)
	return obj
}

func parseColumnSet(ctx *ParseContext, v *node.Value) (Element, error) {
	rd := newObjectReader(ctx, v)
	set := NewColumnSet()
	set.decodeBase(rd)

	if cols, ok := rd.arrayField("columns"); ok {
		for i, colNode := range cols {
			ctx.pushPath(indexed("columns", i))
			el, produced := parseColumnChild(ctx, colNode)
			ctx.popPath()
			if !produced || el == nil {
				continue
			}
			if col, isCol := el.(*Column); isCol {
				set.Columns = append(set.Columns, col)
				continue
			}
			// A non-Column child (say, a fallback that resolved to another
			// kind) cannot live inside a ColumnSet.
			ctx.warn(WarningElementDropped, el.ElementID(), "ColumnSet children must be Column, got %q", el.ElementType())
		}
	}
	set.SelectAction = ctx.parseActionField(rd, keySelectAct)

	set.AdditionalProperties = rd.rest()
	return set, nil
}

// parseColumnChild parses one entry of a "columns" array. Column nodes often
// omit their type discriminator in the wild, so an object without one decodes
// directly as a Column instead of going through registry dispatch.
func parseColumnChild(ctx *ParseContext, v *node.Value) (Element, bool) {
	if v.Kind() == node.KindObject {
		if _, hasType := elementTypeName(v); !hasType {
			el, err := parseColumn(ctx, v)
			if err != nil || el == nil {
				return nil, false
			}
			return el, true
		}
	}
	return ctx.parseElementNode(v)
}

// Column is a vertical slice of a ColumnSet. Its type field is optional in
// the wild, so the ColumnSet parser tolerates nodes without one.
type Column struct {
	BaseElement
	Width        string
	Items        []Element
	Style        ContainerStyle
	SelectAction Action
}

// NewColumn constructs a Column with schema defaults.
func NewColumn(items ...Element) *Column {
	return &Column{
		BaseElement: NewBaseElement(),
		Width:       ColumnWidthAuto,
		Items:       items,
		Style:       ContainerStyleDefault,
	}
}

// ElementType returns the type discriminator.
func (c *Column) ElementType() string { return TypeColumn }

// SerializeToValue emits the element as a document node.
func (c *Column) SerializeToValue() *node.Value {
	obj := node.Object()
	c.serializeInto(obj, TypeColumn)
	if c.Width != ColumnWidthAuto && c.Width != "" {
		obj.Set("width", node.String(c.Width))
	}
	items := node.Array()
	for _, el := range c.Items {
		items.Append(el.SerializeToValue())
	}
	obj.Set("items", items)
	if c.Style != ContainerStyleDefault {
		obj.Set("style", node.String(c.Style.String()))
	}
	if c.SelectAction != nil {
		obj.Set(keySelectAct, c.SelectAction.SerializeToValue())
	}
	c.serializeAdditional(obj)
	return obj
}

func parseColumn(ctx *ParseContext, v *node.Value) (Element, error) {
	rd := newObjectReader(ctx, v)
	col := NewColumn()
	col.decodeBase(rd)

	if w, ok := rd.value("width"); ok {
		switch w.Kind() {
		case node.KindString:
			col.Width = w.StringVal()
		case node.KindNumber:
			// Numeric weights are legal; keep the source text.
			col.Width = w.NumberVal().String()
		default:
			ctx.warn(WarningInvalidFieldType, rd.ref, `field "width" expects a string or number, got %s`, w.Kind())
		}
	}
	if items, ok := rd.arrayField("items"); ok {
		col.Items = ctx.parseElementArray(items, "items")
	}
	if tok, ok := rd.stringField("style"); ok {
		style, valid := ParseContainerStyle(tok)
		if !valid {
			rd.warnEnum("style", tok)
		}
		col.Style = style
	}
	col.SelectAction = ctx.parseActionField(rd, keySelectAct)

	col.AdditionalProperties = rd.rest()
	return col, nil
}
