package core

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectShape(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Shape
	}{
		{"array", `[{"a":1}]`, ShapeArray},
		{"empty array", `[]`, ShapeArray},
		{"array with leading whitespace", "\n  [1, 2]", ShapeArray},
		{"object", `{"a":1}`, ShapeObject},
		{"number", `42`, ShapeOther},
		{"string", `"x"`, ShapeOther},
		{"null", `null`, ShapeOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectShape([]byte(tt.raw)))
		})
	}
}

type appendTransformer struct {
	suffix string
	err    error
}

func (a *appendTransformer) Transform(d *Document) error {
	if a.err != nil {
		return a.err
	}
	d.Raw = append(d.Raw, a.suffix...)
	return nil
}

func TestChain(t *testing.T) {
	d := &Document{Raw: []byte("a")}
	require.NoError(t, Chain(d, &appendTransformer{suffix: "b"}, &appendTransformer{suffix: "c"}))
	assert.Equal(t, "abc", string(d.Raw))
}

func TestChainStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	d := &Document{Raw: []byte("a")}
	err := Chain(d, &appendTransformer{err: boom}, &appendTransformer{suffix: "b"})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "a", string(d.Raw))
}

func TestFileErrorUnwrap(t *testing.T) {
	cause := &SyntaxError{Msg: "bad", Line: 1, Column: 2}
	err := fmt.Errorf("read: %w", &FileError{Kind: ErrMalformed, Path: "in.json", Err: cause})

	assert.ErrorIs(t, err, ErrMalformed)
	assert.NotErrorIs(t, err, ErrNotFound)

	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 2, se.Column)
	assert.Equal(t, "read: in.json: invalid JSON: bad (line 1, column 2)", err.Error())

	nf := &FileError{Kind: ErrNotFound, Path: "x.json", Err: fs.ErrNotExist}
	assert.ErrorIs(t, nf, fs.ErrNotExist)
}

func TestNewSyntaxError(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		offset   int64
		wantLine int
		wantCol  int
	}{
		{"first line", "{not valid json", 2, 1, 2},
		{"second line", "{\n  x", 5, 2, 3},
		{"zero offset", "", 0, 1, 1},
		{"offset past end", "{", 10, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			se := NewSyntaxError("msg", []byte(tt.data), tt.offset)
			assert.Equal(t, tt.wantLine, se.Line)
			assert.Equal(t, tt.wantCol, se.Column)
		})
	}
}
