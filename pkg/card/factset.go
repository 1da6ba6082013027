package card

import "github.com/goliatone/go-cardkit/pkg/node"

// TypeFactSet is the FactSet element discriminator.
const TypeFactSet = "FactSet"

// Fact is one title/value row of a FactSet.
type Fact struct {
	Title string
	Value string
}

// FactSet displays a series of facts as a two-column list.
type FactSet struct {
	BaseElement
	Facts []Fact
}

// NewFactSet constructs a FactSet with schema defaults.
func NewFactSet(facts ...Fact) *FactSet {
	return &FactSet{BaseElement: NewBaseElement(), Facts: facts}
}

// ElementType returns the type discriminator.
func (f *FactSet) ElementType() string { return TypeFactSet }

// SerializeToValue emits the element as a document node.
func (f *FactSet) SerializeToValue() *node.Value {
	obj := node.Object()
	f.serializeInto(obj, TypeFactSet)
	facts := node.Array()
	for _, fact := range f.Facts {
		facts.Append(node.Object(
			node.Field{Key: "title", Value: node.String(fact.Title)},
			node.Field{Key: "value", Value: node.String(fact.Value)},
		))
	}
	obj.Set("facts", facts)
	f.serializeAdditional(obj)
	return obj
}

func parseFactSet(ctx *ParseContext, v *node.Value) (Element, error) {
	rd := newObjectReader(ctx, v)
	set := NewFactSet()
	set.decodeBase(rd)

	if facts, ok := rd.arrayField("facts"); ok {
		for i, factNode := range facts {
			if factNode.Kind() != node.KindObject {
				ctx.warn(WarningInvalidFieldType, rd.ref, "fact %s is not an object, skipping", indexed("facts", i))
				continue
			}
			fact := Fact{}
			if t, has := factNode.Field("title"); has && t.Kind() == node.KindString {
				fact.Title = t.StringVal()
			}
			if val, has := factNode.Field("value"); has && val.Kind() == node.KindString {
				fact.Value = val.StringVal()
			}
			set.Facts = append(set.Facts, fact)
		}
	}

	set.AdditionalProperties = rd.rest()
	return set, nil
}
