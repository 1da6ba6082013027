// Package card implements the typed object model for Adaptive Card
// documents and the forward-compatible parsing pipeline around it.
//
// A ParseContext owns one element registry and one action registry, both
// seeded with the built-in kinds; hosts extend or override either through
// RegisterElement and RegisterAction without touching the core. Parsing is a
// pure transformation from a node tree to a Card plus an ordered list of
// warnings: unknown types degrade to placeholders, malformed children are
// contained at their own boundary via fallback chains, and only a broken
// document root is fatal.
package card
