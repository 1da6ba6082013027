package card

import (
	"testing"

	"github.com/goliatone/go-cardkit/pkg/node"
)

// roundTrip parses a canonical JSON document, requires a clean parse, and
// asserts that serialization reproduces a semantically equal tree.
func roundTrip(t *testing.T, doc string) *Card {
	t.Helper()

	original, err := node.DecodeJSON([]byte(doc))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}

	ctx := NewParseContext()
	res, err := ctx.ParseCard(original)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("expected a clean parse, got warnings: %v", res.Warnings)
	}

	out := res.Card.SerializeToValue()
	if !node.Equal(original, out) {
		t.Fatalf("round trip diverged:\n in: %s\nout: %s", original.EncodeJSON(), out.EncodeJSON())
	}
	return res.Card
}

func TestRoundTrip_TextBlock(t *testing.T) {
	c := roundTrip(t, `{
		"type": "AdaptiveCard",
		"version": "1.0",
		"body": [{
			"type": "TextBlock",
			"id": "title",
			"spacing": "large",
			"separator": true,
			"text": "Hello",
			"wrap": true,
			"maxLines": 3,
			"size": "extraLarge",
			"weight": "bolder",
			"color": "attention",
			"isSubtle": true,
			"horizontalAlignment": "center"
		}]
	}`)

	tb, ok := c.Body[0].(*TextBlock)
	if !ok {
		t.Fatalf("body[0] is %T, want *TextBlock", c.Body[0])
	}
	if tb.Text != "Hello" || tb.MaxLines != 3 || tb.Weight != TextWeightBolder {
		t.Fatalf("unexpected TextBlock: %+v", tb)
	}
}

func TestRoundTrip_ImageWithSelectAction(t *testing.T) {
	c := roundTrip(t, `{
		"type": "AdaptiveCard",
		"version": "1.2",
		"body": [{
			"type": "Image",
			"url": "https://example.com/cat.png",
			"style": "person",
			"size": "large",
			"altText": "a cat",
			"selectAction": {"type": "Action.OpenUrl", "title": "Open", "url": "https://example.com"}
		}]
	}`)

	img := c.Body[0].(*Image)
	if img.Size != ImageSizeLarge || img.Style != ImageStylePerson {
		t.Fatalf("unexpected Image: %+v", img)
	}
	open, ok := img.SelectAction.(*OpenURLAction)
	if !ok || open.URL != "https://example.com" {
		t.Fatalf("unexpected selectAction: %#v", img.SelectAction)
	}
}

func TestRoundTrip_Containers(t *testing.T) {
	c := roundTrip(t, `{
		"type": "AdaptiveCard",
		"version": "1.0",
		"body": [
			{
				"type": "Container",
				"style": "emphasis",
				"verticalContentAlignment": "center",
				"items": [{"type": "TextBlock", "text": "inside"}]
			},
			{
				"type": "ColumnSet",
				"columns": [
					{"type": "Column", "width": "stretch", "items": [{"type": "TextBlock", "text": "left"}]},
					{"type": "Column", "width": "2", "style": "accent", "items": []}
				]
			},
			{
				"type": "FactSet",
				"facts": [{"title": "Status", "value": "Open"}, {"title": "Owner", "value": "sam"}]
			},
			{
				"type": "ImageSet",
				"imageSize": "small",
				"images": [{"type": "Image", "url": "https://example.com/a.png"}]
			},
			{
				"type": "ActionSet",
				"actions": [{"type": "Action.Submit", "title": "Send", "data": {"intent": "send"}}]
			}
		]
	}`)

	set := c.Body[1].(*ColumnSet)
	if len(set.Columns) != 2 || set.Columns[1].Width != "2" {
		t.Fatalf("unexpected ColumnSet: %+v", set)
	}
	facts := c.Body[2].(*FactSet)
	if len(facts.Facts) != 2 || facts.Facts[0].Title != "Status" {
		t.Fatalf("unexpected FactSet: %+v", facts)
	}
}

func TestRoundTrip_Inputs(t *testing.T) {
	c := roundTrip(t, `{
		"type": "AdaptiveCard",
		"version": "1.0",
		"body": [
			{"type": "Input.Text", "id": "name", "placeholder": "Your name", "maxLength": 40, "isMultiline": true, "style": "email", "value": "x@y.z"},
			{"type": "Input.Number", "id": "qty", "min": 1, "max": 10, "value": 2.5},
			{"type": "Input.Date", "id": "due", "min": "2026-01-01", "max": "2026-12-31", "value": "2026-06-15"},
			{"type": "Input.Time", "id": "at", "value": "09:30"},
			{"type": "Input.Toggle", "id": "agree", "title": "I agree", "value": "true", "valueOn": "yes", "valueOff": "no"},
			{
				"type": "Input.ChoiceSet",
				"id": "color",
				"style": "expanded",
				"isMultiSelect": true,
				"value": "r",
				"placeholder": "Pick one",
				"choices": [{"title": "Red", "value": "r"}, {"title": "Blue", "value": "b"}]
			}
		]
	}`)

	num := c.Body[1].(*NumberInput)
	if num.Min == nil || *num.Min != 1 || num.Value == nil || *num.Value != 2.5 {
		t.Fatalf("unexpected NumberInput: %+v", num)
	}
	choice := c.Body[5].(*ChoiceSetInput)
	if choice.Style != ChoiceSetStyleExpanded || len(choice.Choices) != 2 {
		t.Fatalf("unexpected ChoiceSetInput: %+v", choice)
	}
}

func TestRoundTrip_Actions(t *testing.T) {
	c := roundTrip(t, `{
		"type": "AdaptiveCard",
		"version": "1.0",
		"body": [{"type": "TextBlock", "text": "pick"}],
		"actions": [
			{"type": "Action.OpenUrl", "id": "open", "title": "Docs", "iconUrl": "https://example.com/i.png", "style": "positive", "url": "https://example.com/docs"},
			{"type": "Action.Submit", "title": "Send", "data": {"k": "v", "n": 7}},
			{
				"type": "Action.ShowCard",
				"title": "More",
				"card": {
					"type": "AdaptiveCard",
					"version": "1.0",
					"body": [{"type": "TextBlock", "text": "nested"}]
				}
			},
			{
				"type": "Action.ToggleVisibility",
				"title": "Toggle",
				"targetElements": ["a", {"elementId": "b", "isVisible": false}]
			}
		],
		"selectAction": {"type": "Action.Submit", "title": "Tap"}
	}`)

	show := c.Actions[2].(*ShowCardAction)
	if show.Card == nil || len(show.Card.Body) != 1 {
		t.Fatalf("nested card not parsed: %+v", show)
	}
	toggle := c.Actions[3].(*ToggleVisibilityAction)
	if len(toggle.Targets) != 2 || toggle.Targets[1].IsVisible == nil || *toggle.Targets[1].IsVisible {
		t.Fatalf("unexpected targets: %+v", toggle.Targets)
	}
}

func TestRoundTrip_CardLevelProperties(t *testing.T) {
	c := roundTrip(t, `{
		"type": "AdaptiveCard",
		"version": "1.3",
		"fallbackText": "upgrade your client",
		"lang": "en",
		"speak": "hello",
		"minHeight": "120px",
		"body": [{"type": "TextBlock", "text": "hi"}]
	}`)

	if c.Version != "1.3" || c.Lang != "en" || c.MinHeight != "120px" {
		t.Fatalf("unexpected card properties: %+v", c)
	}
}

func TestRoundTrip_PreservesUnclaimedProperties(t *testing.T) {
	c := roundTrip(t, `{
		"type": "AdaptiveCard",
		"version": "1.0",
		"x-host": {"theme": "dark"},
		"body": [{
			"type": "TextBlock",
			"text": "hi",
			"x-annotation": [1, 2, 3]
		}]
	}`)

	if len(c.AdditionalProperties) != 1 || c.AdditionalProperties[0].Key != "x-host" {
		t.Fatalf("card-level extras lost: %+v", c.AdditionalProperties)
	}
	tb := c.Body[0].(*TextBlock)
	if len(tb.AdditionalProperties) != 1 || tb.AdditionalProperties[0].Key != "x-annotation" {
		t.Fatalf("element-level extras lost: %+v", tb.AdditionalProperties)
	}
}

func TestRoundTrip_UnknownElementVerbatim(t *testing.T) {
	doc := `{
		"type": "AdaptiveCard",
		"version": "1.0",
		"body": [{"type": "Graph", "series": [3, 1, 4], "style": "spark"}]
	}`
	original, err := node.DecodeJSON([]byte(doc))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}

	ctx := NewParseContext()
	res, err := ctx.ParseCard(original)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Kind != WarningUnknownElementType {
		t.Fatalf("want exactly one unknown-element-type warning, got %v", res.Warnings)
	}

	if !node.Equal(original, res.Card.SerializeToValue()) {
		t.Fatalf("unknown element not preserved verbatim:\n%s", res.Card.ToJSON())
	}
}

func TestRoundTrip_FallbackDeclarationsSurvive(t *testing.T) {
	// The fallback of a successfully parsed element must re-serialize even
	// though it was never resolved.
	roundTrip(t, `{
		"type": "AdaptiveCard",
		"version": "1.0",
		"body": [
			{
				"type": "TextBlock",
				"text": "hi",
				"fallback": {"type": "TextBlock", "text": "plain"}
			},
			{"type": "Image", "url": "https://example.com/a.png", "fallback": "drop"}
		]
	}`)
}
