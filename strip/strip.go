// Package strip provides a Transformer that nulls oversized fields, such as
// base64 screenshots, on the top-level objects of a JSON document.
//
// Objects are rewritten member by member from the raw input, never decoded
// into maps. A key repeated within one object therefore stays repeated in
// the output, each occurrence at its own position; a map-based rewrite
// would keep a single member holding the last value. When the repeated key
// is the stripped field, every occurrence becomes null and the object is
// counted by its last occurrence.
package strip

import (
	"bytes"

	"github.com/sonnes/shotstrip/core"
	"github.com/tidwall/gjson"
)

// DefaultField is the key nulled when Config.Field is empty.
const DefaultField = "screenshot"

// Config controls the strip transformer behavior.
type Config struct {
	Field string
}

// Stripper replaces the value of Field with null on the root object, or on
// every object element of a root array. Nested values are never visited.
type Stripper struct {
	field   string
	removed int
}

// New creates a Stripper from the given config.
func New(cfg Config) *Stripper {
	field := cfg.Field
	if field == "" {
		field = DefaultField
	}
	return &Stripper{field: field}
}

// Field returns the key this Stripper nulls.
func (s *Stripper) Field() string {
	return s.field
}

// Removed returns how many entries had a non-null field before being
// nulled, summed over every Transform call.
func (s *Stripper) Removed() int {
	return s.removed
}

// Transform implements core.Transformer.
func (s *Stripper) Transform(d *core.Document) error {
	root := gjson.ParseBytes(d.Raw)

	switch {
	case root.IsArray():
		var buf bytes.Buffer
		buf.Grow(len(d.Raw))
		buf.WriteByte('[')
		n := 0
		root.ForEach(func(_, elem gjson.Result) bool {
			if n > 0 {
				buf.WriteByte(',')
			}
			n++
			if elem.IsObject() {
				s.stripObject(&buf, elem)
			} else {
				buf.WriteString(elem.Raw)
			}
			return true
		})
		buf.WriteByte(']')
		d.Raw = buf.Bytes()
	case root.IsObject():
		var buf bytes.Buffer
		buf.Grow(len(d.Raw))
		s.stripObject(&buf, root)
		d.Raw = buf.Bytes()
	}
	return nil
}

// stripObject re-emits obj into buf member by member with the field's value
// replaced by null. A repeated key is nulled every time; the entry counts
// once, judged by the last occurrence.
func (s *Stripper) stripObject(buf *bytes.Buffer, obj gjson.Result) {
	var found, nonNull bool

	buf.WriteByte('{')
	n := 0
	obj.ForEach(func(key, val gjson.Result) bool {
		if n > 0 {
			buf.WriteByte(',')
		}
		n++
		buf.WriteString(key.Raw)
		buf.WriteByte(':')
		if key.Str == s.field {
			found = true
			nonNull = val.Type != gjson.Null
			buf.WriteString("null")
			return true
		}
		buf.WriteString(val.Raw)
		return true
	})
	buf.WriteByte('}')

	if found && nonNull {
		s.removed++
	}
}
