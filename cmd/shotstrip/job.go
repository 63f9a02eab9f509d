package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/sonnes/shotstrip/core"
	"github.com/sonnes/shotstrip/jsonfile"
	jsonrender "github.com/sonnes/shotstrip/render/json"
	"github.com/sonnes/shotstrip/strip"
)

// stdoutPath selects standard output as the destination.
const stdoutPath = "-"

// job is one read, strip and write pass over a single file.
type job struct {
	input     string
	output    string
	field     string
	dryRun    bool
	jsonc     bool
	highlight bool
}

func (j job) toStdout() bool {
	return j.output == stdoutPath && !j.dryRun
}

// run performs the pass. Nothing is written unless the whole document was
// read, validated and transformed.
func (j job) run(stdout io.Writer) (core.Result, error) {
	d, err := jsonfile.ReadFile(j.input, jsonfile.Options{JSONC: j.jsonc})
	if err != nil {
		return core.Result{}, err
	}
	log.Info("read document", "path", d.Path, "shape", d.Shape(), "bytes", d.Size)

	s := strip.New(strip.Config{Field: j.field})
	if err := core.Chain(d, s); err != nil {
		return core.Result{}, &core.FileError{Kind: core.ErrProcessing, Path: j.input, Err: err}
	}
	log.Info("stripped", "field", s.Field(), "removed", s.Removed())

	data := jsonfile.Encode(d.Raw)

	res := core.Result{
		Field:    s.Field(),
		Input:    j.input,
		Output:   j.output,
		Removed:  s.Removed(),
		BytesIn:  d.Size,
		BytesOut: len(data),
		DryRun:   j.dryRun,
	}

	switch {
	case j.dryRun:
		log.Debug("dry run, skipping write", "output", j.output)
	case j.toStdout():
		res.Output = "stdout"
		if err := jsonrender.New(j.highlight).Render(stdout, data); err != nil {
			return res, &core.FileError{Kind: core.ErrProcessing, Path: res.Output, Err: err}
		}
	default:
		if err := jsonfile.WriteFile(j.output, data); err != nil {
			return res, err
		}
	}

	return res, nil
}
