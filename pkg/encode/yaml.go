package encode

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML encodes v as a YAML document. Code fragments carry the !js tag.
func YAML(v any) ([]byte, error) {
	doc, err := Document(v)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode: yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode: yaml: %w", err)
	}
	return buf.Bytes(), nil
}
