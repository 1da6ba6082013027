// Package testsupport provides fixture helpers shared by the package tests.
package testsupport

import (
	"os"
	"testing"

	"github.com/goliatone/go-cardkit/pkg/card"
	"github.com/goliatone/go-cardkit/pkg/node"
)

// LoadNode reads a JSON fixture into a node tree, failing the test on any
// error.
func LoadNode(t *testing.T, path string) *node.Value {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture %s: %v", path, err)
	}
	v, err := node.DecodeJSON(data)
	if err != nil {
		t.Fatalf("decode fixture %s: %v", path, err)
	}
	return v
}

// ParseCard parses a JSON fixture through a fresh context, failing the test
// on a fatal error.
func ParseCard(t *testing.T, path string) *card.ParseResult {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture %s: %v", path, err)
	}
	res, err := card.NewParseContext().ParseCardFromJSON(data)
	if err != nil {
		t.Fatalf("parse fixture %s: %v", path, err)
	}
	return res
}

// MustParse parses inline JSON through a fresh context, failing the test on
// a fatal error.
func MustParse(t *testing.T, payload string) *card.ParseResult {
	t.Helper()

	res, err := card.NewParseContext().ParseCardFromJSON([]byte(payload))
	if err != nil {
		t.Fatalf("parse payload: %v", err)
	}
	return res
}
