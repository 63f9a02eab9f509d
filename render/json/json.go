// Package json writes encoded documents to a stream, optionally syntax
// highlighted for terminals.
package json

import (
	"io"

	"github.com/alecthomas/chroma/v2/quick"
)

const (
	formatter = "terminal256"
	style     = "monokai"
)

// Renderer writes encoded JSON to a writer.
type Renderer struct {
	// Highlight colorizes output with ANSI escapes.
	Highlight bool
}

// New creates a JSON Renderer.
func New(highlight bool) *Renderer {
	return &Renderer{Highlight: highlight}
}

// Render writes data, which must already be encoded, to w.
func (r *Renderer) Render(w io.Writer, data []byte) error {
	if !r.Highlight {
		_, err := w.Write(data)
		return err
	}
	return quick.Highlight(w, string(data), "json", formatter, style)
}
