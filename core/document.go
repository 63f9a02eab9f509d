// Package core defines the in-memory JSON document that every stage of the
// tool reads, transforms and writes, together with the shared error kinds and
// the per-run result record.
package core

import "github.com/tidwall/gjson"

// Shape classifies the root value of a document.
type Shape int

const (
	ShapeOther Shape = iota
	ShapeArray
	ShapeObject
)

func (s Shape) String() string {
	switch s {
	case ShapeArray:
		return "array"
	case ShapeObject:
		return "object"
	default:
		return "other"
	}
}

// Document is a JSON file held in memory as raw bytes. Transformers rewrite
// Raw; it is never decoded into Go maps, so key order and string bytes
// survive untouched.
type Document struct {
	Path string
	Raw  []byte
	// Size is the byte length of the file as read from disk.
	Size int
}

// Shape reports the kind of the root value.
func (d *Document) Shape() Shape {
	return DetectShape(d.Raw)
}

// DetectShape classifies raw JSON by its root value.
func DetectShape(raw []byte) Shape {
	root := gjson.ParseBytes(raw)
	switch {
	case root.IsArray():
		return ShapeArray
	case root.IsObject():
		return ShapeObject
	default:
		return ShapeOther
	}
}

// Result summarizes a single run for reporting.
type Result struct {
	Field    string
	Input    string
	Output   string
	Removed  int
	BytesIn  int
	BytesOut int
	DryRun   bool
}
