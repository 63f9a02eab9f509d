package core

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure surfaced by the tool matches exactly one of
// these through errors.Is.
var (
	ErrNotFound   = errors.New("does not exist")
	ErrMalformed  = errors.New("invalid JSON")
	ErrProcessing = errors.New("processing failed")
)

// FileError ties an error kind to the file it happened on.
type FileError struct {
	Kind error
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause.
func (e *FileError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// SyntaxError is a JSON parse failure with a 1-based source position.
type SyntaxError struct {
	Msg    string
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s (line %d, column %d)", e.Msg, e.Line, e.Column)
}

// NewSyntaxError locates the byte at offset within data. Offset counts the
// bytes consumed when the parser gave up, so the offending byte is the one
// just before it.
func NewSyntaxError(msg string, data []byte, offset int64) *SyntaxError {
	p := int(offset) - 1
	if p < 0 {
		p = 0
	}
	if p > len(data) {
		p = len(data)
	}
	line, col := 1, 1
	for _, c := range data[:p] {
		if c == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return &SyntaxError{Msg: msg, Line: line, Column: col}
}
