package task

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Format selects the document encoding.
type Format int

const (
	// FormatAuto picks the encoding from the document extension.
	FormatAuto Format = iota
	// FormatJSON encodes the document as a JSON array.
	FormatJSON
	// FormatYAML encodes the document as a YAML sequence.
	FormatYAML
)

// ParseFormat parses "auto", "json" or "yaml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("unknown document format %q (want auto, json or yaml)", s)
	}
}

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// resolve maps FormatAuto to a concrete format for path.
func (f Format) resolve(path string) Format {
	if f != FormatAuto {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

type codec interface {
	Marshal(tasks []Task) ([]byte, error)
	Unmarshal(data []byte) ([]Task, error)
	// Loader exposes the raw document to schema validation.
	Loader(data []byte) (gojsonschema.JSONLoader, error)
}

func codecFor(f Format) codec {
	if f == FormatYAML {
		return yamlCodec{}
	}
	return jsonCodec{}
}

type jsonCodec struct{}

func (jsonCodec) Marshal(tasks []Task) ([]byte, error) {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (jsonCodec) Unmarshal(data []byte) ([]Task, error) {
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (jsonCodec) Loader(data []byte) (gojsonschema.JSONLoader, error) {
	return gojsonschema.NewBytesLoader(data), nil
}

type yamlCodec struct{}

func (yamlCodec) Marshal(tasks []Task) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(tasks); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (yamlCodec) Unmarshal(data []byte) ([]Task, error) {
	var tasks []Task
	if err := yaml.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (yamlCodec) Loader(data []byte) (gojsonschema.JSONLoader, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return gojsonschema.NewGoLoader(doc), nil
}
