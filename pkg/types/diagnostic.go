package types

// Diagnostic codes emitted by the locator.
const (
	// CodeConvertible marks a declaration that can be rewritten to a
	// type-based one.
	CodeConvertible = "vpk.convertible"
)

// Diagnostic is a (span, message, code) tuple for the host's
// diagnostic surface.
type Diagnostic struct {
	Location Location `json:"location"`
	Message  string   `json:"message"`
	Code     string   `json:"code"`
}
