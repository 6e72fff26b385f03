package option

import (
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-chartopts/internal/similar"
	"github.com/goliatone/go-chartopts/pkg/odict"
)

// Mode is the storage mode of a node.
type Mode int

const (
	// ModeObject stores named child fields.
	ModeObject Mode = iota
	// ModeArray stores an ordered list of elements.
	ModeArray
	// ModeRaw proxies an arbitrary value.
	ModeRaw
)

func (m Mode) String() string {
	switch m {
	case ModeObject:
		return "object"
	case ModeArray:
		return "array"
	case ModeRaw:
		return "raw"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Field describes one named slot of a schema. Fields are templates: they
// are shared by every node of the schema and never mutated after the schema
// is built.
type Field struct {
	Name    string
	Key     string
	Doc     string
	Choices []string
	Mode    Mode
	// Seeded array fields start with one empty element.
	Seeded bool
	// Schema describes the children of object and array fields.
	Schema *Schema
	// Default is the initial value of raw fields. It is copied per node.
	Default any
}

// DataKey is the key the field is encoded under.
func (f *Field) DataKey() string {
	if f.Key != "" {
		return f.Key
	}
	return f.Name
}

// FieldOption customizes a field declaration.
type FieldOption func(*Field)

// Key sets the serialization key.
func Key(key string) FieldOption {
	return func(f *Field) { f.Key = key }
}

// Choices sets the allowed values used to correct misspelled input.
func Choices(values ...string) FieldOption {
	return func(f *Field) { f.Choices = slices.Clone(values) }
}

// Default sets the initial raw value.
func Default(v any) FieldOption {
	return func(f *Field) { f.Default = v }
}

// Doc attaches help text.
func Doc(text string) FieldOption {
	return func(f *Field) { f.Doc = strings.TrimSpace(text) }
}

// Seeded makes an array field start with one empty element.
func Seeded() FieldOption {
	return func(f *Field) { f.Seeded = true }
}

// Schema is an immutable field registry.
type Schema struct {
	name      string
	fields    *odict.Dict[*Field]
	delegates *odict.Dict[[]string]
	deps      []string
	names     []string
}

// Decl is one declaration applied while building a schema.
type Decl func(*Schema)

// baseFields are declared on every schema.
var baseFields = []string{"id", "show", "zlevel", "z"}

// NewSchema builds a schema from declarations. Later declarations override
// earlier ones with the same name. Every schema carries the base fields id,
// show, zlevel and z.
func NewSchema(name string, decls ...Decl) *Schema {
	s := &Schema{
		name:      name,
		fields:    odict.New[*Field](),
		delegates: odict.New[[]string](),
	}
	for _, base := range baseFields {
		Raw(base)(s)
	}
	for _, decl := range decls {
		if decl != nil {
			decl(s)
		}
	}
	s.names = append(s.fields.Keys(), s.delegates.Keys()...)
	return s
}

// Extends copies the fields, delegates and dependencies of bases, in order.
func Extends(bases ...*Schema) Decl {
	return func(s *Schema) {
		for _, base := range bases {
			if base == nil {
				continue
			}
			for name, f := range base.fields.All() {
				s.fields.Set(name, f)
			}
			for name, path := range base.delegates.All() {
				s.delegates.Set(name, path)
			}
			s.deps = appendUnique(s.deps, base.deps...)
		}
	}
}

// Raw declares a pass-through field.
func Raw(name string, opts ...FieldOption) Decl {
	return declare(&Field{Name: name, Mode: ModeRaw}, opts)
}

// Object declares a nested option field. A nil schema declares a free-form
// object that only carries the base fields and arbitrary extra keys.
func Object(name string, schema *Schema, opts ...FieldOption) Decl {
	return declare(&Field{Name: name, Mode: ModeObject, Schema: schema}, opts)
}

// Array declares a list of options sharing one schema.
func Array(name string, schema *Schema, opts ...FieldOption) Decl {
	return declare(&Field{Name: name, Mode: ModeArray, Schema: schema}, opts)
}

func declare(f *Field, opts []FieldOption) Decl {
	return func(s *Schema) {
		field := *f
		for _, opt := range opts {
			opt(&field)
		}
		if field.Mode != ModeRaw && field.Schema == nil {
			field.Schema = emptySchema(field.Name)
		}
		s.fields.Set(field.Name, &field)
	}
}

// Alias declares name as a delegate resolving through path.
func Alias(name string, path ...string) Decl {
	return func(s *Schema) {
		s.delegates.Set(name, slices.Clone(path))
	}
}

// DelegateAll exposes every field of the nested field target directly on
// the schema. Names get prefix prepended (with the first letter of the field
// upper-cased) and rename overrides individual names. Declared fields keep
// precedence over delegates with the same name.
func DelegateAll(target, prefix string, rename map[string]string) Decl {
	return func(s *Schema) {
		f, ok := s.fields.Get(target)
		if !ok || f.Schema == nil {
			panic(fmt.Sprintf("option: schema %q: cannot delegate to undeclared field %q", s.name, target))
		}
		for _, name := range f.Schema.fields.Keys() {
			alias := rename[name]
			if alias == "" {
				alias = prefixed(prefix, name)
			}
			s.delegates.Set(alias, []string{target, name})
		}
	}
}

// Depends records script files the schema needs at render time.
func Depends(files ...string) Decl {
	return func(s *Schema) {
		s.deps = appendUnique(s.deps, files...)
	}
}

// Name returns the schema name.
func (s *Schema) Name() string { return s.name }

// Field returns the declared field called name.
func (s *Schema) Field(name string) (*Field, bool) {
	return s.fields.Get(name)
}

// Fields returns the declared fields in declaration order.
func (s *Schema) Fields() []*Field {
	return s.fields.Values()
}

// Delegate returns the path behind a delegate name.
func (s *Schema) Delegate(name string) ([]string, bool) {
	path, ok := s.delegates.Get(name)
	return slices.Clone(path), ok
}

// Names lists every addressable name: fields first, then delegates.
func (s *Schema) Names() []string {
	return slices.Clone(s.names)
}

// Dependencies lists the script files the schema needs.
func (s *Schema) Dependencies() []string {
	return slices.Clone(s.deps)
}

// Declares reports whether name is a field or delegate, without correction.
func (s *Schema) Declares(name string) bool {
	return s.fields.Has(name) || s.delegates.Has(name)
}

// Resolve corrects name against the schema. The second result reports
// whether the corrected name is declared.
func (s *Schema) Resolve(name string) (string, bool) {
	if s.Declares(name) {
		return name, true
	}
	corrected := similar.Param(name, s.names)
	return corrected, s.Declares(corrected)
}

func emptySchema(name string) *Schema {
	return NewSchema(name)
}

func prefixed(prefix, name string) string {
	if prefix == "" || name == "" {
		return name
	}
	return prefix + strings.ToUpper(name[:1]) + name[1:]
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		if !slices.Contains(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}
