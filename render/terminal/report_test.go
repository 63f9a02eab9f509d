package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/sonnes/shotstrip/core"
	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	var buf bytes.Buffer
	Success(&buf, core.Result{
		Field:    "screenshot",
		Input:    "hitl/in.json",
		Output:   "hitl/out.json",
		Removed:  3,
		BytesIn:  1500,
		BytesOut: 300,
	})

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "Successfully processed hitl/in.json")
	assert.Contains(t, out, "Removed 3 screenshot entries")
	assert.Contains(t, out, "Output written to hitl/out.json")
	assert.Contains(t, out, "Size: 1.5 kB → 300 B (-80%)")
	assert.NotContains(t, out, "Dry run")
}

func TestSuccessDryRun(t *testing.T) {
	var buf bytes.Buffer
	Success(&buf, core.Result{
		Field:    "thumbnail",
		Input:    "in.json",
		Output:   "in.json",
		Removed:  0,
		BytesIn:  10,
		BytesOut: 10,
		DryRun:   true,
	})

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "Would remove 0 thumbnail entries")
	assert.Contains(t, out, "Dry run, nothing written")
	assert.Contains(t, out, "Size: 10 B → 10 B\n")
	assert.NotContains(t, out, "Output written")
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in, out int
		want    string
	}{
		{0, 0, "Size: 0 B → 0 B"},
		{2000, 1000, "Size: 2.0 kB → 1.0 kB (-50%)"},
		{100, 120, "Size: 100 B → 120 B"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatSize(tt.in, tt.out))
		})
	}
}

func TestFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not found",
			err:  &core.FileError{Kind: core.ErrNotFound, Path: "missing.json", Err: fs.ErrNotExist},
			want: "Error: Input file missing.json does not exist\n",
		},
		{
			name: "malformed",
			err: &core.FileError{
				Kind: core.ErrMalformed,
				Path: "bad.json",
				Err:  &core.SyntaxError{Msg: "invalid character 'n' looking for beginning of object key string", Line: 1, Column: 2},
			},
			want: "Error: Invalid JSON in bad.json: invalid character 'n' looking for beginning of object key string (line 1, column 2)\n",
		},
		{
			name: "wrapped malformed",
			err:  fmt.Errorf("read: %w", &core.FileError{Kind: core.ErrMalformed, Path: "bad.json", Err: &core.SyntaxError{Msg: "oops"}}),
			want: "Error: Invalid JSON in bad.json: oops\n",
		},
		{
			name: "processing with file",
			err:  &core.FileError{Kind: core.ErrProcessing, Path: "out.json", Err: fs.ErrPermission},
			want: "Error processing file out.json: permission denied\n",
		},
		{
			name: "processing without cause",
			err:  &core.FileError{Kind: core.ErrProcessing, Path: "out.json"},
			want: "Error processing file out.json: processing failed\n",
		},
		{
			name: "plain error",
			err:  errors.New("disk full"),
			want: "Error processing file: disk full\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Failure(&buf, tt.err)
			assert.Equal(t, tt.want, ansi.Strip(buf.String()))
		})
	}
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	Usage(&buf, "shotstrip")

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "Usage: shotstrip <input_file> [output_file]")
	assert.Contains(t, out, "Example: shotstrip hitl/hitl-form-input.json")
}
