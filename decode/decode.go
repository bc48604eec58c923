package decode

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Document decodes a JSON or YAML data document into a generic value
// tree of maps, slices and scalars, the shape the validation engine
// walks. JSON is tried first; since every JSON document is also valid
// YAML, the YAML path only runs for input JSON rejects.
func Document(data []byte) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var value any
	if err := json.Unmarshal(trimmed, &value); err == nil {
		return value, nil
	}
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("document is neither valid JSON nor valid YAML: %w", err)
	}
	return value, nil
}

// Select extracts the sub-document at a gjson path from a JSON document
// and decodes it like Document. The path must resolve to an existing
// value.
func Select(data []byte, path string) (any, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("path selection requires a valid JSON document")
	}
	res := gjson.GetBytes(data, path)
	if !res.Exists() {
		return nil, fmt.Errorf("path %q not found in document", path)
	}
	return res.Value(), nil
}
