package scalar

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// JSTag is the YAML tag used for code fragments in option files.
const JSTag = "!js"

// JSCode is a JavaScript expression embedded as-is in the output document.
type JSCode string

// JS wraps src as a code fragment. Surrounding whitespace is dropped.
func JS(src string) JSCode {
	return JSCode(strings.TrimSpace(src))
}

// String returns the source text.
func (c JSCode) String() string { return string(c) }

// MarshalYAML tags the fragment so it survives a YAML round trip.
func (c JSCode) MarshalYAML() (any, error) {
	style := yaml.Style(0)
	if strings.Contains(string(c), "\n") {
		style = yaml.LiteralStyle
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: JSTag, Value: string(c), Style: style}, nil
}

// UnmarshalYAML accepts any scalar as source text.
func (c *JSCode) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("scalar: js code must be a scalar, got kind %d", node.Kind)
	}
	*c = JS(node.Value)
	return nil
}
