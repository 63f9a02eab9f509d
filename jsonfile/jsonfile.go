// Package jsonfile reads JSON documents from disk, classifying failures into
// the core error kinds, and writes them back with stable indentation.
package jsonfile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/sonnes/shotstrip/core"
	"github.com/tailscale/hujson"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Options controls how ReadFile interprets file content.
type Options struct {
	// JSONC accepts comments and trailing commas, standardizing them away
	// before the document is validated.
	JSONC bool
}

// ReadFile loads the JSON document at path.
//
// Errors are *core.FileError values of kind core.ErrNotFound when the path
// does not exist, core.ErrMalformed (wrapping a *core.SyntaxError) when the
// content is not JSON, and core.ErrProcessing for everything else.
func ReadFile(path string, opts Options) (*core.Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &core.FileError{Kind: core.ErrNotFound, Path: path, Err: err}
	}
	if err != nil {
		return nil, &core.FileError{Kind: core.ErrProcessing, Path: path, Err: err}
	}
	log.Debug("read file", "path", path, "bytes", len(data))

	if !utf8.Valid(data) {
		return nil, &core.FileError{Kind: core.ErrProcessing, Path: path, Err: errors.New("content is not valid UTF-8")}
	}

	raw := data
	if opts.JSONC {
		raw, err = hujson.Standardize(data)
		if err != nil {
			return nil, &core.FileError{Kind: core.ErrMalformed, Path: path, Err: &core.SyntaxError{Msg: err.Error()}}
		}
	}

	if err := Validate(raw); err != nil {
		return nil, &core.FileError{Kind: core.ErrMalformed, Path: path, Err: err}
	}

	return &core.Document{Path: path, Raw: raw, Size: len(data)}, nil
}

// Validate reports whether raw is a single well-formed JSON value. The
// returned error is a *core.SyntaxError pointing at the offending byte.
func Validate(raw []byte) error {
	if gjson.ValidBytes(raw) {
		return nil
	}
	// gjson only says yes or no; encoding/json knows where it failed.
	var se *json.SyntaxError
	if err := json.Unmarshal(raw, new(json.RawMessage)); errors.As(err, &se) {
		return core.NewSyntaxError(se.Error(), raw, se.Offset)
	}
	return &core.SyntaxError{Msg: "invalid character in JSON input"}
}

var encodeOptions = &pretty.Options{
	Indent: "  ",
	// Zero width puts every array element on its own line.
	Width:    0,
	SortKeys: false,
}

// Encode formats raw JSON with two-space indentation and a trailing newline.
// Keys keep their order. Escapes in strings are decoded, so non-ASCII text
// comes out as UTF-8 whether or not the input escaped it; only quotes,
// backslashes and control characters remain escaped.
func Encode(raw []byte) []byte {
	return pretty.PrettyOptions(unescapeStrings(raw), encodeOptions)
}

// WriteFile writes data to path atomically using a temporary file and
// rename. An existing file keeps its permission bits.
func WriteFile(path string, data []byte) error {
	if err := writeFile(path, data); err != nil {
		return &core.FileError{Kind: core.ErrProcessing, Path: path, Err: err}
	}
	log.Debug("wrote file", "path", path, "bytes", len(data))
	return nil
}

func writeFile(path string, data []byte) error {
	perm := fs.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		if fi.IsDir() {
			return errors.New("is a directory")
		}
		perm = fi.Mode().Perm()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, path)
}
