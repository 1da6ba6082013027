package cardkit

import (
	"errors"
	"testing"

	"github.com/goliatone/go-cardkit/pkg/card"
	"github.com/goliatone/go-cardkit/pkg/node"
	"github.com/goliatone/go-cardkit/pkg/testsupport"
)

func TestExpenseFixture(t *testing.T) {
	res := testsupport.ParseCard(t, "testdata/expense.json")
	if len(res.Warnings) != 0 {
		t.Fatalf("fixture should parse clean, got %v", res.Warnings)
	}
	if len(res.Card.Body) != 4 || len(res.Card.Actions) != 2 {
		t.Fatalf("unexpected shape: %d body, %d actions", len(res.Card.Body), len(res.Card.Actions))
	}

	show, ok := res.Card.Actions[1].(*card.ShowCardAction)
	if !ok || show.Card == nil {
		t.Fatalf("actions[1] should be a ShowCard with a nested card, got %#v", res.Card.Actions[1])
	}

	// The nested card omitted type and version, which serialization fills in,
	// so compare the stable subtrees instead of the whole document.
	original := testsupport.LoadNode(t, "testdata/expense.json")
	out := res.Card.SerializeToValue()
	origBody, _ := original.Field("body")
	outBody, _ := out.Field("body")
	if !node.Equal(origBody, outBody) {
		t.Fatalf("body diverged:\n in: %s\nout: %s", origBody.EncodeJSON(), outBody.EncodeJSON())
	}
}

func TestParseJSON(t *testing.T) {
	res, err := ParseJSON([]byte(`{
		"type": "AdaptiveCard",
		"version": "1.0",
		"body": [{"type": "TextBlock", "text": "hi"}]
	}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(res.Card.Body) != 1 || len(res.Warnings) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestParseJSON_FatalError(t *testing.T) {
	_, err := ParseJSON([]byte(`{"type": "AdaptiveCard"}`))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("want *ParseError, got %v", err)
	}
}

func TestParseYAML(t *testing.T) {
	res, err := ParseYAML([]byte(`
type: AdaptiveCard
version: "1.0"
body:
  - type: TextBlock
    text: from yaml
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if res.Card.Body[0].(*card.TextBlock).Text != "from yaml" {
		t.Fatalf("unexpected body: %+v", res.Card.Body)
	}
}

func TestParse_WithContext(t *testing.T) {
	ctx := NewParseContext()
	ctx.RegisterElement("Badge", card.ElementParserFunc(func(_ *card.ParseContext, v *node.Value) (card.Element, error) {
		return card.NewTextBlock("badge"), nil
	}))

	doc, err := node.DecodeJSON([]byte(`{
		"type": "AdaptiveCard",
		"version": "1.0",
		"body": [{"type": "Badge"}]
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	res, err := Parse(doc, WithContext(ctx))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("registered type should parse clean, got %v", res.Warnings)
	}
	if _, ok := res.Card.Body[0].(*card.TextBlock); !ok {
		t.Fatalf("custom parser not used, got %T", res.Card.Body[0])
	}
}

func TestParseJSON_WithDecorators(t *testing.T) {
	n := 0
	gen := func() string {
		n++
		return "auto-1"
	}

	res, err := ParseJSON([]byte(`{
		"type": "AdaptiveCard",
		"version": "1.0",
		"body": [{"type": "TextBlock", "text": "hi"}]
	}`), WithDecorators(card.AssignIDs(gen)))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := res.Card.Body[0].ElementID(); got != "auto-1" {
		t.Fatalf("decorator not applied, got id %q", got)
	}
}

func TestParseJSON_DecoratorErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	dec := card.DecoratorFunc(func(*card.Card) error { return boom })

	_, err := ParseJSON([]byte(`{
		"type": "AdaptiveCard",
		"version": "1.0",
		"body": []
	}`), WithDecorators(dec))
	if !errors.Is(err, boom) {
		t.Fatalf("want decorator error, got %v", err)
	}
}
