package node

import (
	"encoding/json"
	"strconv"
)

// Kind enumerates the value kinds a decoded document node can hold.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Field is one key/value pair inside an object. Objects store fields as an
// ordered slice rather than a map so source ordering survives round trips.
type Field struct {
	Key   string
	Value *Value
}

// Value is a single node in the decoded document tree. The zero Value is
// null. Values are immutable except through Set, which only object values
// support.
type Value struct {
	kind    Kind
	boolVal bool
	numVal  json.Number
	strVal  string
	items   []*Value
	fields  []Field
}

// Null returns the null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) *Value {
	return &Value{kind: KindBool, boolVal: b}
}

// Int returns a numeric value holding an integer.
func Int(i int64) *Value {
	return &Value{kind: KindNumber, numVal: json.Number(formatInt(i))}
}

// Float returns a numeric value holding a float.
func Float(f float64) *Value {
	return &Value{kind: KindNumber, numVal: json.Number(formatFloat(f))}
}

// Number returns a numeric value from pre-formatted numeric text.
func Number(n json.Number) *Value {
	if n == "" {
		n = "0"
	}
	return &Value{kind: KindNumber, numVal: n}
}

// String returns a string value.
func String(s string) *Value {
	return &Value{kind: KindString, strVal: s}
}

// Array returns an array value over the provided items.
func Array(items ...*Value) *Value {
	return &Value{kind: KindArray, items: items}
}

// Object returns an object value over the provided fields.
func Object(fields ...Field) *Value {
	return &Value{kind: KindObject, fields: fields}
}

// Kind reports the value kind. A nil receiver is null.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether the value is null.
func (v *Value) IsNull() bool {
	return v.Kind() == KindNull
}

// BoolVal returns the boolean payload, or false for non-boolean values.
func (v *Value) BoolVal() bool {
	if v == nil || v.kind != KindBool {
		return false
	}
	return v.boolVal
}

// NumberVal returns the numeric payload as json.Number, or "0" for
// non-numeric values.
func (v *Value) NumberVal() json.Number {
	if v == nil || v.kind != KindNumber {
		return "0"
	}
	return v.numVal
}

// StringVal returns the string payload, or "" for non-string values.
func (v *Value) StringVal() string {
	if v == nil || v.kind != KindString {
		return ""
	}
	return v.strVal
}

// Items returns the array elements. The returned slice must not be mutated.
func (v *Value) Items() []*Value {
	if v == nil || v.kind != KindArray {
		return nil
	}
	return v.items
}

// Fields returns the object fields in source order. The returned slice must
// not be mutated.
func (v *Value) Fields() []Field {
	if v == nil || v.kind != KindObject {
		return nil
	}
	return v.fields
}

// Field looks up an object field by key. The second result reports presence.
func (v *Value) Field(key string) (*Value, bool) {
	if v == nil || v.kind != KindObject {
		return nil, false
	}
	for _, f := range v.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Has reports whether an object field with the given key exists.
func (v *Value) Has(key string) bool {
	_, ok := v.Field(key)
	return ok
}

// Len returns the element count for arrays and the field count for objects.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.fields)
	default:
		return 0
	}
}

// Set replaces the value stored under key or appends a new field when absent.
// It is a no-op on non-object values.
func (v *Value) Set(key string, value *Value) {
	if v == nil || v.kind != KindObject {
		return
	}
	for i, f := range v.fields {
		if f.Key == key {
			v.fields[i].Value = value
			return
		}
	}
	v.fields = append(v.fields, Field{Key: key, Value: value})
}

// Append adds an item to an array value. It is a no-op on non-array values.
func (v *Value) Append(item *Value) {
	if v == nil || v.kind != KindArray {
		return
	}
	v.items = append(v.items, item)
}

// Depth returns the maximum nesting depth of the tree rooted at v. A scalar
// has depth 1.
func (v *Value) Depth() int {
	if v == nil {
		return 1
	}
	max := 0
	switch v.kind {
	case KindArray:
		for _, item := range v.items {
			if d := item.Depth(); d > max {
				max = d
			}
		}
	case KindObject:
		for _, f := range v.fields {
			if d := f.Value.Depth(); d > max {
				max = d
			}
		}
	default:
		return 1
	}
	return max + 1
}

// Clone returns a deep copy of the tree rooted at v.
func (v *Value) Clone() *Value {
	if v == nil {
		return Null()
	}
	out := &Value{kind: v.kind, boolVal: v.boolVal, numVal: v.numVal, strVal: v.strVal}
	if v.items != nil {
		out.items = make([]*Value, len(v.items))
		for i, item := range v.items {
			out.items[i] = item.Clone()
		}
	}
	if v.fields != nil {
		out.fields = make([]Field, len(v.fields))
		for i, f := range v.fields {
			out.fields[i] = Field{Key: f.Key, Value: f.Value.Clone()}
		}
	}
	return out
}

// Equal reports semantic equality between two trees: object field order is
// ignored, and numbers compare by value so "1.0" equals "1".
func Equal(a, b *Value) bool {
	ka, kb := a.Kind(), b.Kind()
	if ka != kb {
		return false
	}
	switch ka {
	case KindNull:
		return true
	case KindBool:
		return a.BoolVal() == b.BoolVal()
	case KindString:
		return a.StringVal() == b.StringVal()
	case KindNumber:
		return numbersEqual(a.NumberVal(), b.NumberVal())
	case KindArray:
		itemsA, itemsB := a.Items(), b.Items()
		if len(itemsA) != len(itemsB) {
			return false
		}
		for i := range itemsA {
			if !Equal(itemsA[i], itemsB[i]) {
				return false
			}
		}
		return true
	case KindObject:
		fieldsA, fieldsB := a.Fields(), b.Fields()
		if len(fieldsA) != len(fieldsB) {
			return false
		}
		for _, f := range fieldsA {
			other, ok := b.Field(f.Key)
			if !ok || !Equal(f.Value, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func numbersEqual(a, b json.Number) bool {
	if a == b {
		return true
	}
	ia, errA := a.Int64()
	ib, errB := b.Int64()
	if errA == nil && errB == nil {
		return ia == ib
	}
	fa, errA := a.Float64()
	fb, errB := b.Float64()
	if errA != nil || errB != nil {
		return false
	}
	return fa == fb
}

func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
