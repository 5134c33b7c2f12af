package types

// PropEntry is one name/value pair extracted from an object-literal body.
// Entries keep their source order; the engine never enforces name uniqueness.
type PropEntry struct {
	// Name is the property identifier. Quoted names that are not valid bare
	// identifiers are normalized to lower camel case.
	Name string `json:"name"`

	// RawValue is the unparsed text of the value expression, trimmed.
	RawValue string `json:"raw_value"`

	// Comment joins all line/block comments attached to the entry
	// (leading and inline trailing), newline-separated, with the original
	// comment markers preserved. Empty when the entry has no comments.
	Comment string `json:"comment,omitempty"`
}

// HasComment reports whether any comment text is attached to the entry.
func (e PropEntry) HasComment() bool {
	return e.Comment != ""
}

// TypeInfo is a rendered type expression plus the optionality derived from
// required/default analysis. The expression is opaque to the engine beyond
// syntactic validity.
type TypeInfo struct {
	Expr     string `json:"expr"`
	Optional bool   `json:"optional"`
}
