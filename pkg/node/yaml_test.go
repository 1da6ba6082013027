package node

import "testing"

func TestDecodeYAML_MatchesJSON(t *testing.T) {
	yamlDoc := []byte(`
type: AdaptiveCard
version: "1.0"
body:
  - type: TextBlock
    text: hello
    wrap: true
    maxLines: 3
`)
	jsonDoc := []byte(`{"type":"AdaptiveCard","version":"1.0","body":[{"type":"TextBlock","text":"hello","wrap":true,"maxLines":3}]}`)

	fromYAML, err := DecodeYAML(yamlDoc)
	if err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	fromJSON, err := DecodeJSON(jsonDoc)
	if err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if !Equal(fromYAML, fromJSON) {
		t.Fatalf("yaml and json trees differ:\nyaml: %s\njson: %s", fromYAML.EncodeJSON(), fromJSON.EncodeJSON())
	}
}

func TestDecodeYAML_PreservesMappingOrder(t *testing.T) {
	v, err := DecodeYAML([]byte("zebra: 1\nalpha: 2\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Fields()[0].Key != "zebra" {
		t.Fatalf("mapping order lost: got %q first", v.Fields()[0].Key)
	}
}

func TestDecodeYAML_Scalars(t *testing.T) {
	v, err := DecodeYAML([]byte("flag: true\ncount: 7\nratio: 0.5\nnothing: null\nname: hi\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if f, _ := v.Field("flag"); f.Kind() != KindBool || !f.BoolVal() {
		t.Fatal("flag should decode as true")
	}
	if c, _ := v.Field("count"); c.Kind() != KindNumber || c.NumberVal().String() != "7" {
		t.Fatal("count should decode as number 7")
	}
	if r, _ := v.Field("ratio"); r.Kind() != KindNumber {
		t.Fatal("ratio should decode as a number")
	}
	if n, _ := v.Field("nothing"); !n.IsNull() {
		t.Fatal("nothing should decode as null")
	}
	if s, _ := v.Field("name"); s.StringVal() != "hi" {
		t.Fatal("name should decode as a string")
	}
}

func TestDecodeYAML_Invalid(t *testing.T) {
	if _, err := DecodeYAML([]byte("a: [unclosed")); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}
