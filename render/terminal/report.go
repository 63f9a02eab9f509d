// Package terminal renders run reports as short, colored status lines.
package terminal

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/sonnes/shotstrip/core"
)

// Success writes the report for a completed run.
func Success(w io.Writer, r core.Result) {
	fmt.Fprintf(w, "%s %s\n", styleOK.Render("Successfully processed"), stylePath.Render(r.Input))

	if r.DryRun {
		fmt.Fprintf(w, "Would remove %s %s entries\n", styleCount.Render(fmt.Sprint(r.Removed)), r.Field)
		fmt.Fprintln(w, styleWarn.Render("Dry run, nothing written"))
	} else {
		fmt.Fprintf(w, "Removed %s %s entries\n", styleCount.Render(fmt.Sprint(r.Removed)), r.Field)
		fmt.Fprintf(w, "Output written to %s\n", stylePath.Render(r.Output))
	}

	fmt.Fprintln(w, styleMeta.Render(formatSize(r.BytesIn, r.BytesOut)))
}

// formatSize returns a line like "Size: 12 MB → 3.1 kB (-100%)".
func formatSize(in, out int) string {
	s := fmt.Sprintf("Size: %s → %s", humanize.Bytes(uint64(in)), humanize.Bytes(uint64(out)))
	if in > 0 && out < in {
		s += fmt.Sprintf(" (-%d%%)", (in-out)*100/in)
	}
	return s
}

// Failure writes a one-line description of err, worded by its kind.
func Failure(w io.Writer, err error) {
	prefix := styleError.Render("Error")

	var fe *core.FileError
	hasFile := errors.As(err, &fe)

	switch {
	case hasFile && errors.Is(err, core.ErrNotFound):
		fmt.Fprintf(w, "%s: Input file %s does not exist\n", prefix, stylePath.Render(fe.Path))
	case hasFile && errors.Is(err, core.ErrMalformed):
		fmt.Fprintf(w, "%s: Invalid JSON in %s: %s\n", prefix, stylePath.Render(fe.Path), detail(fe))
	case hasFile:
		fmt.Fprintf(w, "%s processing file %s: %s\n", prefix, stylePath.Render(fe.Path), detail(fe))
	default:
		fmt.Fprintf(w, "%s processing file: %v\n", prefix, err)
	}
}

func detail(fe *core.FileError) string {
	if fe.Err == nil {
		return fe.Kind.Error()
	}
	return fe.Err.Error()
}

// Usage writes the invocation synopsis for the named command.
func Usage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage: %s <input_file> [output_file]\n", name)
	fmt.Fprintln(w, styleMeta.Render(fmt.Sprintf("Example: %s hitl/hitl-form-input.json", name)))
}
