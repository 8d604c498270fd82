package transcode

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/etf/term"
)

// ToJSON renders v as indented JSON using the ToNative conversion.
//
// Mapping keys come out sorted. Text that is not valid UTF-8 has its invalid
// bytes replaced with U+FFFD.
func ToJSON(v term.Value) ([]byte, error) {
	data, err := json.MarshalIndent(ToNative(v), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json export failed: %w", err)
	}

	return append(data, '\n'), nil
}

// FromJSON parses a single JSON document into a term.Value.
//
// Comments and trailing commas are stripped first. Numbers must be
// integers; anything after the first document is an error.
func FromJSON(data []byte) (term.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()

	var native any
	if err := dec.Decode(&native); err != nil {
		return nil, fmt.Errorf("json import failed: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("json import failed: unexpected data after the first document")
	}

	return FromNative(native)
}

// ToYAML renders v as a YAML document using the ToNative conversion.
func ToYAML(v term.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(ToNative(v)); err != nil {
		return nil, fmt.Errorf("yaml export failed: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yaml export failed: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a single YAML document into a term.Value.
//
// Floats are rejected as in FromNative. An empty document yields Unit.
func FromYAML(data []byte) (term.Value, error) {
	var native any
	if err := yaml.Unmarshal(data, &native); err != nil {
		return nil, fmt.Errorf("yaml import failed: %w", err)
	}

	return FromNative(native)
}
