package types

// CallSite is a located declaration-macro invocation carrying an
// object-literal argument.
type CallSite struct {
	// ProfileID identifies the conversion profile that matched.
	ProfileID string `json:"profile_id"`

	// Macro is the call identifier, e.g. "defineProps".
	Macro string `json:"macro"`

	// Outer spans the replaceable declaration: from the binding keyword
	// when the call result is bound, otherwise from the macro identifier,
	// through the closing parenthesis of the argument list.
	Outer OffsetSpan `json:"outer"`

	// Body spans the first top-level object-literal argument, braces included.
	Body OffsetSpan `json:"body"`

	// Prefix is the raw text between the start of the line and the macro
	// identifier. It carries an existing binding keyword and name, if any.
	Prefix string `json:"prefix"`

	// BindKeyword and BindName are parsed out of Prefix ("const"/"let"/"var"
	// plus the bound identifier). Both empty when the call result is unbound.
	BindKeyword string `json:"bind_keyword,omitempty"`
	BindName    string `json:"bind_name,omitempty"`

	// Indent is the leading whitespace of the declaration's line.
	Indent string `json:"indent"`

	// Location is Outer expressed as line/column, for the diagnostic surface.
	Location Location `json:"location"`
}
