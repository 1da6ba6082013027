package card

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-cardkit/pkg/node"
)

// TypeAdaptiveCard is the document root discriminator.
const TypeAdaptiveCard = "AdaptiveCard"

// SupportedVersion is the newest schema version this implementation fully
// understands. Documents declaring a newer major version still parse
// best-effort with a version-too-new warning.
const SupportedVersion = "1.5"

// DefaultVersion is substituted when a document omits its version.
const DefaultVersion = "1.0"

// Card is the document root: an ordered body of elements plus the card-level
// actions.
type Card struct {
	Version      string
	FallbackText string
	Lang         string
	Speak        string
	MinHeight    string
	Body         []Element
	Actions      []Action
	SelectAction Action

	// AdditionalProperties preserves root-level source properties no decoder
	// claimed.
	AdditionalProperties []node.Field
}

// New constructs an empty card at the supported schema version.
func New() *Card {
	return &Card{Version: SupportedVersion}
}

// SerializeToValue emits the card as a document node. The function is total
// over a valid card.
func (c *Card) SerializeToValue() *node.Value {
	obj := node.Object()
	obj.Set(keyType, node.String(TypeAdaptiveCard))
	if c.Version != "" {
		obj.Set("version", node.String(c.Version))
	}
	if c.FallbackText != "" {
		obj.Set("fallbackText", node.String(c.FallbackText))
	}
	if c.Lang != "" {
		obj.Set("lang", node.String(c.Lang))
	}
	if c.Speak != "" {
		obj.Set("speak", node.String(c.Speak))
	}
	if c.MinHeight != "" {
		obj.Set("minHeight", node.String(c.MinHeight))
	}
	body := node.Array()
	for _, el := range c.Body {
		body.Append(el.SerializeToValue())
	}
	obj.Set("body", body)
	if len(c.Actions) > 0 {
		actions := node.Array()
		for _, act := range c.Actions {
			actions.Append(act.SerializeToValue())
		}
		obj.Set("actions", actions)
	}
	if c.SelectAction != nil {
		obj.Set(keySelectAct, c.SelectAction.SerializeToValue())
	}
	for _, f := range c.AdditionalProperties {
		obj.Set(f.Key, f.Value.Clone())
	}
	return obj
}

// ToJSON serializes the card to compact JSON text.
func (c *Card) ToJSON() []byte {
	return c.SerializeToValue().EncodeJSON()
}

// ToJSONIndent serializes the card to indented JSON text.
func (c *Card) ToJSONIndent(prefix, indent string) []byte {
	return c.SerializeToValue().EncodeJSONIndent(prefix, indent)
}

// ParseResult bundles a successfully parsed card with the non-fatal
// diagnostics collected along the way. Fatal failures are returned as a
// *ParseError instead, never alongside a card.
type ParseResult struct {
	Card     *Card
	Warnings []Warning
}

// ParseCard parses a whole document node. Fatal errors are limited to the
// root itself: a non-object root, a missing or wrong type discriminator, or
// a missing body. Everything below the root degrades to warnings.
func (c *ParseContext) ParseCard(v *node.Value) (*ParseResult, error) {
	c.reset()
	parsed, err := c.parseCardValue(v, false)
	if err != nil {
		return nil, err
	}
	return &ParseResult{Card: parsed, Warnings: c.Warnings()}, nil
}

// ParseCardFromJSON decodes JSON text and parses it via ParseCard.
func (c *ParseContext) ParseCardFromJSON(data []byte) (*ParseResult, error) {
	v, err := node.DecodeJSON(data)
	if err != nil {
		return nil, &ParseError{Kind: ErrorMalformedEncoding, Message: "document is not valid JSON", Err: err}
	}
	return c.ParseCard(v)
}

// ParseCardFromYAML decodes YAML text and parses it via ParseCard.
func (c *ParseContext) ParseCardFromYAML(data []byte) (*ParseResult, error) {
	v, err := node.DecodeYAML(data)
	if err != nil {
		return nil, &ParseError{Kind: ErrorMalformedEncoding, Message: "document is not valid YAML", Err: err}
	}
	return c.ParseCard(v)
}

// parseCardValue assembles one card. Nested cards (Action.ShowCard) relax
// the root requirements: version and body are both optional there.
func (c *ParseContext) parseCardValue(v *node.Value, nested bool) (*Card, error) {
	if v.Kind() != node.KindObject {
		return nil, fatalError(ErrorInvalidStructure, "document root must be an object, got %s", v.Kind())
	}

	rd := newObjectReader(c, v)
	typeName, hasType := elementTypeName(v)
	rd.claim(keyType)
	switch {
	case !hasType && nested:
		// Nested cards conventionally omit the discriminator.
	case !hasType:
		return nil, fatalError(ErrorMissingType, `document root has no string "type" field`)
	case typeName != TypeAdaptiveCard:
		return nil, fatalError(ErrorWrongType, "document type is %q, expected %q", typeName, TypeAdaptiveCard)
	}

	out := &Card{}
	out.Version = c.decodeVersion(rd, nested)

	bodyVal, hasBodyField := rd.value("body")
	if !nested {
		if !hasBodyField {
			return nil, fatalError(ErrorMissingBody, `document root has no "body" field`)
		}
		if bodyVal.Kind() != node.KindArray {
			return nil, fatalError(ErrorInvalidStructure, `document "body" must be an array, got %s`, bodyVal.Kind())
		}
	}
	if hasBodyField {
		if bodyVal.Kind() == node.KindArray {
			out.Body = c.parseElementArray(bodyVal.Items(), "body")
		} else {
			c.warn(WarningInvalidFieldType, "", `field "body" expects an array, got %s`, bodyVal.Kind())
		}
	}

	if actions, ok := rd.arrayField("actions"); ok {
		out.Actions = c.parseActionArray(actions, "actions")
	}
	out.SelectAction = c.parseActionField(rd, keySelectAct)

	if s, ok := rd.stringField("fallbackText"); ok {
		out.FallbackText = s
	}
	if s, ok := rd.stringField("lang"); ok {
		out.Lang = s
	}
	if s, ok := rd.stringField("speak"); ok {
		out.Speak = s
	}
	if s, ok := rd.stringField("minHeight"); ok {
		out.MinHeight = s
	}

	out.AdditionalProperties = rd.rest()
	return out, nil
}

func (c *ParseContext) decodeVersion(rd *objectReader, nested bool) string {
	raw, present := rd.value("version")
	var version string
	if present {
		switch raw.Kind() {
		case node.KindString:
			version = raw.StringVal()
		case node.KindNumber:
			// Unquoted YAML versions decode as numbers; keep the numeric text.
			version = raw.NumberVal().String()
		default:
			c.warn(WarningInvalidFieldType, "", `field "version" expects a string, got %s`, raw.Kind())
			return DefaultVersion
		}
	}
	if version == "" {
		if !nested {
			c.warn(WarningMissingVersion, "", "document declares no version, assuming %s", DefaultVersion)
		}
		return DefaultVersion
	}

	major, _, valid := parseVersion(version)
	supportedMajor, _, _ := parseVersion(SupportedVersion)
	switch {
	case !valid:
		c.warn(WarningInvalidFieldType, "", "version %q is not a MAJOR.MINOR string, assuming %s", version, DefaultVersion)
		return DefaultVersion
	case major > supportedMajor:
		c.warn(WarningVersionTooNew, "", "document version %s is newer than supported %s, parsing best-effort", version, SupportedVersion)
	}
	return version
}

// parseVersion splits a MAJOR.MINOR version string.
func parseVersion(s string) (major, minor int, ok bool) {
	parts := strings.SplitN(s, ".", 2)
	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 0 {
		return 0, 0, false
	}
	if len(parts) == 2 {
		minor, err = strconv.Atoi(parts[1])
		if err != nil || minor < 0 {
			return 0, 0, false
		}
	}
	return major, minor, true
}
