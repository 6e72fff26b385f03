package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-chartopts/pkg/odict"
	"github.com/goliatone/go-chartopts/pkg/scalar"
)

// Option customizes JSON output.
type Option func(*config)

type config struct {
	prefix     string
	indent     string
	escapeHTML bool
}

// WithIndent pretty-prints the document.
func WithIndent(prefix, indent string) Option {
	return func(c *config) {
		c.prefix = prefix
		c.indent = indent
	}
}

// WithEscapeHTML escapes <, > and & inside strings. Enable it when the
// document is embedded in an HTML page.
func WithEscapeHTML(enabled bool) Option {
	return func(c *config) {
		c.escapeHTML = enabled
	}
}

// JSON encodes v. Code fragments are written verbatim, without quoting or
// escaping.
func JSON(v any, opts ...Option) ([]byte, error) {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	doc, err := Document(v)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	fragments := make(map[string]string)
	doc = substitute(doc, fragments)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(cfg.escapeHTML)
	if cfg.prefix != "" || cfg.indent != "" {
		enc.SetIndent(cfg.prefix, cfg.indent)
	}
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	out := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	for placeholder, src := range fragments {
		out = bytes.Replace(out, []byte(`"`+placeholder+`"`), []byte(src), 1)
	}
	return out, nil
}

// JSONString is JSON returning a string.
func JSONString(v any, opts ...Option) (string, error) {
	data, err := JSON(v, opts...)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// substitute swaps every code fragment for a unique placeholder string.
func substitute(v any, fragments map[string]string) any {
	switch val := v.(type) {
	case scalar.JSCode:
		key := placeholder()
		fragments[key] = string(val)
		return key
	case *odict.Dict[any]:
		for k, item := range val.All() {
			val.Set(k, substitute(item, fragments))
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = substitute(item, fragments)
		}
		return val
	}
	return v
}

func placeholder() string {
	return "__js_" + strings.ReplaceAll(uuid.NewString(), "-", "") + "__"
}
