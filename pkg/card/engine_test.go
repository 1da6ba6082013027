package card

import (
	"errors"
	"testing"

	"github.com/goliatone/go-cardkit/pkg/node"
)

func mustNode(t *testing.T, doc string) *node.Value {
	t.Helper()
	v, err := node.DecodeJSON([]byte(doc))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return v
}

func warningKinds(warnings []Warning) []WarningKind {
	kinds := make([]WarningKind, 0, len(warnings))
	for _, w := range warnings {
		kinds = append(kinds, w.Kind)
	}
	return kinds
}

func TestParseElement_UnknownTypeBecomesPlaceholder(t *testing.T) {
	ctx := NewParseContext()
	el, err := ctx.ParseElement(mustNode(t, `{"type": "Graph", "series": [1]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	unknown, ok := el.(*UnknownElement)
	if !ok {
		t.Fatalf("want *UnknownElement, got %T", el)
	}
	if unknown.ElementType() != "Graph" {
		t.Fatalf("placeholder type: got %q", unknown.ElementType())
	}
	warnings := ctx.Warnings()
	if len(warnings) != 1 || warnings[0].Kind != WarningUnknownElementType {
		t.Fatalf("want one unknown-element-type warning, got %v", warnings)
	}
}

func TestParseElement_FallbackChain(t *testing.T) {
	ctx := NewParseContext()
	el, err := ctx.ParseElement(mustNode(t, `{
		"type": "Future.Chart",
		"fallback": {
			"type": "Future.Table",
			"fallback": {"type": "TextBlock", "text": "no chart support"}
		}
	}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	tb, ok := el.(*TextBlock)
	if !ok {
		t.Fatalf("fallback should resolve to *TextBlock, got %T", el)
	}
	if tb.Text != "no chart support" {
		t.Fatalf("unexpected fallback text %q", tb.Text)
	}

	kinds := warningKinds(ctx.Warnings())
	if len(kinds) != 2 || kinds[0] != WarningUnknownElementType || kinds[1] != WarningUnknownElementType {
		t.Fatalf("want two unknown-element-type warnings, got %v", kinds)
	}
}

func TestParseElement_FallbackDrop(t *testing.T) {
	ctx := NewParseContext()
	el, err := ctx.ParseElement(mustNode(t, `{"type": "Future.Chart", "fallback": "drop"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if el != nil {
		t.Fatalf("drop fallback should yield no element, got %T", el)
	}
	kinds := warningKinds(ctx.Warnings())
	if len(kinds) != 1 || kinds[0] != WarningUnknownElementType {
		t.Fatalf("want only the unknown-type warning, got %v", kinds)
	}
}

func TestParseElement_FallbackCycleTerminates(t *testing.T) {
	// Hand-built trees can alias nodes into a cycle, which decoded input
	// never produces. Resolution must refuse the cycle instead of recursing
	// forever.
	a := node.Object(node.Field{Key: "type", Value: node.String("Future.A")})
	b := node.Object(node.Field{Key: "type", Value: node.String("Future.B")})
	a.Set("fallback", b)
	b.Set("fallback", a)

	ctx := NewParseContext()
	el, err := ctx.ParseElement(a)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if el != nil {
		t.Fatalf("cyclic fallback should yield no element, got %T", el)
	}

	exhausted := false
	for _, w := range ctx.Warnings() {
		if w.Kind == WarningFallbackExhausted {
			exhausted = true
		}
	}
	if !exhausted {
		t.Fatalf("want a fallback-exhausted warning, got %v", ctx.Warnings())
	}
}

func TestParseElement_InputWithoutIDUsesFallback(t *testing.T) {
	ctx := NewParseContext()
	el, err := ctx.ParseElement(mustNode(t, `{
		"type": "Input.Text",
		"placeholder": "who are you",
		"fallback": {"type": "TextBlock", "text": "inputs unsupported"}
	}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if _, ok := el.(*TextBlock); !ok {
		t.Fatalf("want the fallback TextBlock, got %T", el)
	}
	kinds := warningKinds(ctx.Warnings())
	want := []WarningKind{WarningMissingRequired, WarningElementDropped}
	if len(kinds) != 2 || kinds[0] != want[0] || kinds[1] != want[1] {
		t.Fatalf("want %v, got %v", want, kinds)
	}
}

func TestParseElement_FatalContracts(t *testing.T) {
	ctx := NewParseContext()

	cases := []struct {
		name string
		doc  string
		kind ErrorKind
	}{
		{"not an object", `[1, 2]`, ErrorInvalidStructure},
		{"missing type", `{"text": "hi"}`, ErrorMissingType},
		{"non-string type", `{"type": 7}`, ErrorMissingType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ctx.ParseElement(mustNode(t, tc.doc))
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("want *ParseError, got %v", err)
			}
			if perr.Kind != tc.kind {
				t.Fatalf("error kind: want %s, got %s", tc.kind, perr.Kind)
			}
		})
	}
}

func TestParseElementFromJSON_MalformedPayload(t *testing.T) {
	ctx := NewParseContext()
	_, err := ctx.ParseElementFromJSON([]byte(`{"type": "TextBlock"`))
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != ErrorMalformedEncoding {
		t.Fatalf("want malformed-encoding, got %v", err)
	}
	if perr.Unwrap() == nil {
		t.Fatal("decode cause should be wrapped")
	}
}

func TestParseAction_UnknownTypeAndFallback(t *testing.T) {
	ctx := NewParseContext()

	act, err := ctx.ParseAction(mustNode(t, `{"type": "Action.Future", "payload": 1}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := act.(*UnknownAction); !ok {
		t.Fatalf("want *UnknownAction, got %T", act)
	}

	act, err = ctx.ParseAction(mustNode(t, `{
		"type": "Action.Future",
		"fallback": {"type": "Action.Submit", "title": "Send"}
	}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := act.(*SubmitAction); !ok {
		t.Fatalf("want the fallback SubmitAction, got %T", act)
	}
}

func TestParseAction_OpenURLWithoutURLDropped(t *testing.T) {
	ctx := NewParseContext()
	act, err := ctx.ParseAction(mustNode(t, `{"type": "Action.OpenUrl", "title": "Go"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if act != nil {
		t.Fatalf("url-less OpenUrl should drop, got %T", act)
	}

	kinds := warningKinds(ctx.Warnings())
	if len(kinds) != 2 || kinds[0] != WarningMissingRequired || kinds[1] != WarningElementDropped {
		t.Fatalf("unexpected warnings %v", kinds)
	}
}

func TestParseCard_ChildFailureIsolated(t *testing.T) {
	ctx := NewParseContext()
	res, err := ctx.ParseCard(mustNode(t, `{
		"type": "AdaptiveCard",
		"version": "1.0",
		"body": [
			{"type": "TextBlock", "text": "first"},
			{"type": "Input.Text", "placeholder": "no id, dropped"},
			{"type": "TextBlock", "text": "third"}
		]
	}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(res.Card.Body) != 2 {
		t.Fatalf("want 2 surviving elements, got %d", len(res.Card.Body))
	}
	if res.Card.Body[1].(*TextBlock).Text != "third" {
		t.Fatal("sibling after the failed child must survive in order")
	}
}

func TestWarnings_PositionalPaths(t *testing.T) {
	ctx := NewParseContext()
	res, err := ctx.ParseCard(mustNode(t, `{
		"type": "AdaptiveCard",
		"version": "1.0",
		"body": [
			{"type": "TextBlock", "text": "ok"},
			{"type": "Container", "items": [
				{"type": "TextBlock", "text": "ok"},
				{"type": "Mystery"}
			]}
		]
	}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(res.Warnings) != 1 {
		t.Fatalf("want one warning, got %v", res.Warnings)
	}
	if got := res.Warnings[0].Element; got != "body[1].items[1]" {
		t.Fatalf("warning path: want body[1].items[1], got %q", got)
	}
}

func TestWarnings_PreferElementID(t *testing.T) {
	ctx := NewParseContext()
	res, err := ctx.ParseCard(mustNode(t, `{
		"type": "AdaptiveCard",
		"version": "1.0",
		"body": [{"type": "Mystery", "id": "widget-7"}]
	}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Element != "widget-7" {
		t.Fatalf("want the element id as reference, got %v", res.Warnings)
	}
}

func TestRegistry_ContextIsolation(t *testing.T) {
	doc := `{"type": "Image", "url": "https://example.com/a.png"}`

	custom := NewParseContext()
	custom.RegisterElement(TypeImage, ElementParserFunc(func(ctx *ParseContext, v *node.Value) (Element, error) {
		return NewTextBlock("replaced"), nil
	}))

	el, err := custom.ParseElement(mustNode(t, doc))
	if err != nil {
		t.Fatalf("parse with override: %v", err)
	}
	if _, ok := el.(*TextBlock); !ok {
		t.Fatalf("override not applied, got %T", el)
	}

	// A fresh context still uses the builtin.
	plain := NewParseContext()
	el, err = plain.ParseElement(mustNode(t, doc))
	if err != nil {
		t.Fatalf("parse with builtin: %v", err)
	}
	if _, ok := el.(*Image); !ok {
		t.Fatalf("builtin registration leaked, got %T", el)
	}
}

func TestRegistry_Unregister(t *testing.T) {
	ctx := NewParseContext()
	ctx.UnregisterElement(TypeTextBlock)
	ctx.UnregisterElement("never-registered") // no-op

	el, err := ctx.ParseElement(mustNode(t, `{"type": "TextBlock", "text": "hi"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := el.(*UnknownElement); !ok {
		t.Fatalf("unregistered type should fall back to placeholder, got %T", el)
	}
}

func TestRegistry_SeparateNamespaces(t *testing.T) {
	ctx := NewParseContext()
	if _, ok := ctx.Elements().Get(TypeOpenURLAction); ok {
		t.Fatal("action discriminators must not appear in the element registry")
	}
	if _, ok := ctx.Actions().Get(TypeTextBlock); ok {
		t.Fatal("element discriminators must not appear in the action registry")
	}
}

func TestRegistry_Types(t *testing.T) {
	reg := NewElementRegistry()
	types := reg.Types()
	if len(types) == 0 {
		t.Fatal("builtin registry is empty")
	}
	for i := 1; i < len(types); i++ {
		if types[i-1] >= types[i] {
			t.Fatalf("Types() not sorted: %v", types)
		}
	}
}

func TestColumnSet_ColumnWithoutType(t *testing.T) {
	ctx := NewParseContext()
	res, err := ctx.ParseCard(mustNode(t, `{
		"type": "AdaptiveCard",
		"version": "1.0",
		"body": [{
			"type": "ColumnSet",
			"columns": [{"width": "auto", "items": [{"type": "TextBlock", "text": "hi"}]}]
		}]
	}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("type-less columns are legal, got warnings %v", res.Warnings)
	}
	set := res.Card.Body[0].(*ColumnSet)
	if len(set.Columns) != 1 || len(set.Columns[0].Items) != 1 {
		t.Fatalf("unexpected ColumnSet: %+v", set)
	}
}
