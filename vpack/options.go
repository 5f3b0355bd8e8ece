package vpack

// KeyTranslator resolves a small-integer attribute-name key to its textual
// form. It stands in for the external "Slice key-translation service" of
// spec §4.6/§4.8. The zero value (nil Options.Translator) means no
// translated keys are accepted — every key must be a plain string.
type KeyTranslator interface {
	Translate(id uint64) (name string, ok bool)
}

// Options mirrors spec §6's configuration table. Passed by value to
// NewBuilder/Reset, matching the teacher's convention of plain option
// structs and bool parameters rather than a generic settings registry.
type Options struct {
	// BuildUnindexedArrays prefers the compact (varint) form for arrays.
	BuildUnindexedArrays bool
	// BuildUnindexedObjects prefers the compact (varint) form for objects.
	BuildUnindexedObjects bool
	// CheckAttributeUniqueness raises ErrDuplicateAttributeName during
	// cuckoo construction when two sibling keys collide by name.
	CheckAttributeUniqueness bool
	// DisallowExternals rejects External values at encode time.
	DisallowExternals bool
	// PrettyPrint is accepted for compatibility with a future Dumper; the
	// Builder itself never consults it.
	PrettyPrint bool
	// Translator resolves translated-integer keys. Nil means none are
	// accepted.
	Translator KeyTranslator
}

// DefaultOptions returns the zero-value Options: indexed (non-compact)
// compounds, no uniqueness checking, externals allowed, no translator.
func DefaultOptions() Options {
	return Options{}
}
