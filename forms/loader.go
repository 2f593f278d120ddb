package forms

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML form definition from the given path.
func LoadFile(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read form file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a Form. Unknown keys are rejected so typos in
// a definition surface immediately instead of silently dropping rules.
func Parse(data []byte) (*Form, error) {
	var f Form

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse form YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *Form) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Fields {
		if f.Fields[i].Type == "" {
			f.Fields[i].Type = TypeString
		}
	}
}
