package card

import (
	"github.com/goliatone/go-cardkit/pkg/node"
)

// objectReader walks one object node on behalf of a decoder. It tracks which
// keys the base and concrete decoders claimed so everything left over can be
// preserved as additional properties, and it funnels coercion warnings to the
// context with a stable element reference.
type objectReader struct {
	ctx     *ParseContext
	obj     *node.Value
	claimed map[string]bool
	ref     string
}

func newObjectReader(ctx *ParseContext, obj *node.Value) *objectReader {
	return &objectReader{
		ctx:     ctx,
		obj:     obj,
		claimed: make(map[string]bool),
		ref:     ctx.currentRef(),
	}
}

// setRef switches diagnostics over to the element's id once it is known.
func (r *objectReader) setRef(id string) {
	if id != "" {
		r.ref = id
	}
}

// claim marks a key as consumed without reading it.
func (r *objectReader) claim(key string) {
	r.claimed[key] = true
}

// value returns the raw node for a key and marks it consumed.
func (r *objectReader) value(key string) (*node.Value, bool) {
	v, ok := r.obj.Field(key)
	if !ok {
		return nil, false
	}
	r.claimed[key] = true
	return v, true
}

// stringField reads a string-typed key. A present value of the wrong kind
// warns and reads as absent.
func (r *objectReader) stringField(key string) (string, bool) {
	v, ok := r.value(key)
	if !ok {
		return "", false
	}
	if v.Kind() != node.KindString {
		r.ctx.warn(WarningInvalidFieldType, r.ref, "field %q expects a string, got %s", key, v.Kind())
		return "", false
	}
	return v.StringVal(), true
}

// boolField reads a boolean-typed key, substituting def when absent or
// mistyped.
func (r *objectReader) boolField(key string, def bool) bool {
	v, ok := r.value(key)
	if !ok {
		return def
	}
	if v.Kind() != node.KindBool {
		r.ctx.warn(WarningInvalidFieldType, r.ref, "field %q expects a bool, got %s", key, v.Kind())
		return def
	}
	return v.BoolVal()
}

// intField reads an integer-typed key, substituting def when absent,
// mistyped, or non-integral.
func (r *objectReader) intField(key string, def int) int {
	v, ok := r.value(key)
	if !ok {
		return def
	}
	if v.Kind() != node.KindNumber {
		r.ctx.warn(WarningInvalidFieldType, r.ref, "field %q expects a number, got %s", key, v.Kind())
		return def
	}
	n, err := v.NumberVal().Int64()
	if err != nil {
		r.ctx.warn(WarningInvalidFieldType, r.ref, "field %q expects an integer, got %q", key, v.NumberVal())
		return def
	}
	return int(n)
}

// floatField reads an optional numeric key, returning nil when absent or
// mistyped so callers can tell "absent" from "zero".
func (r *objectReader) floatField(key string) *float64 {
	v, ok := r.value(key)
	if !ok {
		return nil
	}
	if v.Kind() != node.KindNumber {
		r.ctx.warn(WarningInvalidFieldType, r.ref, "field %q expects a number, got %s", key, v.Kind())
		return nil
	}
	f, err := v.NumberVal().Float64()
	if err != nil {
		r.ctx.warn(WarningInvalidFieldType, r.ref, "field %q holds an unparseable number %q", key, v.NumberVal())
		return nil
	}
	return &f
}

// arrayField reads an array-typed key. A present value of the wrong kind
// warns and reads as absent.
func (r *objectReader) arrayField(key string) ([]*node.Value, bool) {
	v, ok := r.value(key)
	if !ok {
		return nil, false
	}
	if v.Kind() != node.KindArray {
		r.ctx.warn(WarningInvalidFieldType, r.ref, "field %q expects an array, got %s", key, v.Kind())
		return nil, false
	}
	return v.Items(), true
}

// requireString reads a required string key. Absence warns with
// missing-required-field; a present value of the wrong kind warns with
// invalid-field-type only, since the field is not missing. Either way the
// caller decides whether the field is load-bearing enough to drop the
// element.
func (r *objectReader) requireString(key string) (string, bool) {
	v, ok := r.value(key)
	if !ok {
		r.ctx.warn(WarningMissingRequired, r.ref, "required field %q is missing", key)
		return "", false
	}
	if v.Kind() != node.KindString {
		r.ctx.warn(WarningInvalidFieldType, r.ref, "field %q expects a string, got %s", key, v.Kind())
		return "", false
	}
	return v.StringVal(), true
}

func (r *objectReader) warnEnum(key, token string) {
	r.ctx.warn(WarningInvalidEnumValue, r.ref, "field %q has unrecognized value %q, using default", key, token)
}

// rest returns the fields neither the base nor the concrete decoder claimed,
// in source order, cloned for ownership.
func (r *objectReader) rest() []node.Field {
	var out []node.Field
	for _, f := range r.obj.Fields() {
		if r.claimed[f.Key] {
			continue
		}
		out = append(out, node.Field{Key: f.Key, Value: f.Value.Clone()})
	}
	return out
}
