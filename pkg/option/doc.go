// Package option implements schema-driven option trees.
//
// A Schema declares the fields a configuration object accepts. A Node is a
// live instance of a schema: child nodes are created lazily on first access
// and only contribute to the encoded document once they have been used.
//
// Any mutation through Set, Opts, Add or the raw-value helpers activates the
// touched node together with every ancestor, so setting a deeply nested value
// is enough to make its whole path appear in the output:
//
//	title := option.New(schemas.Title)
//	title.MustField("textStyle").Set("color", "#333")
//
// Field names and enum values are corrected with a fuzzy matcher before
// lookup, so "colr" resolves to "color". Undeclared names fail with
// ErrNoSuchField on reads and are stored verbatim by Opts.
//
// A field runs in one of three modes. Object nodes hold named children,
// array nodes hold an ordered list of elements sharing the field's schema and
// raw nodes proxy an arbitrary value. ToArray, ToObject and ToRaw switch
// between them.
//
// Nodes are not safe for concurrent mutation.
package option
