package card

import "fmt"

// WarningKind classifies non-fatal diagnostics collected during a parse.
type WarningKind string

const (
	WarningUnknownElementType WarningKind = "unknown-element-type"
	WarningUnknownActionType  WarningKind = "unknown-action-type"
	WarningInvalidEnumValue   WarningKind = "invalid-enum-value"
	WarningMissingRequired    WarningKind = "missing-required-field"
	WarningInvalidFieldType   WarningKind = "invalid-field-type"
	WarningVersionTooNew      WarningKind = "version-too-new"
	WarningMissingVersion     WarningKind = "missing-version"
	WarningFallbackExhausted  WarningKind = "fallback-exhausted"
	WarningElementDropped     WarningKind = "element-dropped"
)

// Warning is a non-fatal diagnostic. Element carries the offending element's
// id when it has one, otherwise its positional path (for example
// "body[2].items[0]").
type Warning struct {
	Kind    WarningKind
	Message string
	Element string
}

// String renders the warning for logs and CLI output.
func (w Warning) String() string {
	if w.Element == "" {
		return fmt.Sprintf("%s: %s", w.Kind, w.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", w.Kind, w.Message, w.Element)
}

// ErrorKind classifies fatal parse failures.
type ErrorKind string

const (
	ErrorMalformedEncoding ErrorKind = "malformed-encoding"
	ErrorMissingType       ErrorKind = "missing-type"
	ErrorWrongType         ErrorKind = "wrong-type"
	ErrorMissingBody       ErrorKind = "missing-body"
	ErrorInvalidStructure  ErrorKind = "invalid-structure"
)

// ParseError is the fatal failure surfaced when no document can be produced.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("card: %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("card: %s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause, when any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func fatalError(kind ErrorKind, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
