package profile

import (
	"crypto/sha1"
	"encoding/hex"
)

// Profile describes one convertible declaration-macro pattern together
// with the conventions the formatter falls back to.
type Profile struct {
	ID             string            // e.g., "vue.define-props"
	Name           string            // human-readable name
	Macro          string            // call identifier, e.g. "defineProps"
	StructuralID   string            // SHA-1 of macro (computed)
	Description    string            // optional
	Keywords       []string          // keywords for Aho-Corasick prefiltering
	BindingKeyword string            // fallback binding keyword, default "const"
	BindingName    string            // fallback binding name, default "props"
	TypeMap        map[string]string // constructor-name overrides, lower-cased keys
}

// ComputeStructuralID computes SHA-1 of the macro identifier. Conversions
// derive their own structural IDs from it, so identical call sites
// deduplicate across runs.
func (p *Profile) ComputeStructuralID() string {
	h := sha1.New()
	h.Write([]byte(p.Macro))
	return hex.EncodeToString(h.Sum(nil))
}
