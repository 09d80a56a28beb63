// Package script decodes documents that describe diagnostic lines and
// renders them through uprint.
//
// A script is a list of lines, each a list of arguments:
//
//	lines:
//	  - args: ["Current:", {units: {value: 5, label: mA}}]
//	  - args: ["[", {unspaced: 304}, "]"]
//
// The same shape is accepted as TOML ([[lines]] tables) and JSON. See [Arg]
// for the argument forms.
package script

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bjaus/uprint"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Script is a decoded document.
type Script struct {
	Lines []Line `yaml:"lines" toml:"lines" json:"lines"`
}

// Line is one output line.
type Line struct {
	Args []any `yaml:"args" toml:"args" json:"args"`
}

// Renderers converts the line's arguments.
func (l Line) Renderers() ([]uprint.Renderer, error) {
	return Args(l.Args)
}

// Decode reads a whole script in format f from r.
func Decode(r io.Reader, f Format) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var s Script
	switch f {
	case YAML:
		err = decodeYAML(data, &s)
	case TOML:
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&s)
	case JSON:
		err = decodeJSON(data, &s)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s script: %w", f, err)
	}
	return &s, nil
}

// decodeYAML reads exactly one document. An empty input is an empty script.
func decodeYAML(data []byte, s *Script) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}

// decodeJSON reads exactly one value.
func decodeJSON(data []byte, s *Script) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		return err
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}

// Load reads the script at path. An empty f infers the format from the
// file extension.
func Load(path string, f Format) (*Script, error) {
	if f == "" {
		var err error
		if f, err = FormatFromPath(path); err != nil {
			return nil, err
		}
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Decode(file, f)
}

// Run renders every line to t in order. A line with an invalid argument
// stops the run before any of its bytes are written; earlier lines stay
// written.
func (s *Script) Run(t uprint.Transport) error {
	for i, line := range s.Lines {
		args, err := line.Renderers()
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		uprint.Print(t, args...)
	}
	return nil
}

// Validate checks every argument of every line without rendering.
func (s *Script) Validate() error {
	for i, line := range s.Lines {
		if _, err := line.Renderers(); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return nil
}
