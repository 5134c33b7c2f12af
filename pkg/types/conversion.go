package types

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// Conversion is one rendered call-site replacement, as persisted by the store.
type Conversion struct {
	ContentID    ContentID  `json:"content_id"`
	StructuralID string     `json:"structural_id"` // SHA-1(profile_structural_id + '\0' + content_id + '\0' + start + '\0' + end)
	ProfileID    string     `json:"profile_id"`
	Span         OffsetSpan `json:"span"`
	Replacement  string     `json:"replacement"`
}

// ComputeStructuralID computes a content-based unique ID for the conversion.
// Format: SHA-1(profile_structural_id + '\0' + content_id + '\0' + start + '\0' + end)
func (c *Conversion) ComputeStructuralID(profileStructuralID string) string {
	h := sha1.New()

	h.Write([]byte(profileStructuralID))
	h.Write([]byte{0})

	h.Write(c.ContentID[:])
	h.Write([]byte{0})

	h.Write([]byte(fmt.Sprintf("%d", c.Span.Start)))
	h.Write([]byte{0})

	h.Write([]byte(fmt.Sprintf("%d", c.Span.End)))

	return hex.EncodeToString(h.Sum(nil))
}

// Rename is a single identifier-rename edit: every occurrence of
// "<binding>.<prop>" in the surrounding text collapses to the bare prop name
// once the declaration is destructured.
type Rename struct {
	Span        OffsetSpan `json:"span"`
	Replacement string     `json:"replacement"`
}
