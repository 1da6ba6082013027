// Package node provides the structured-value tree that card documents decode
// into before typed deserialization. Object fields keep their source order so
// unrecognized properties survive a parse/serialize round trip byte-for-byte
// in content, and numbers keep their original text via json.Number.
package node
