package types

// OffsetSpan is a character range [Start, End) - half-open interval.
// Offsets are relative to the text handed to the engine, never to an
// absolute document position.
type OffsetSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of characters covered by the span.
func (s OffsetSpan) Len() int {
	return s.End - s.Start
}

// Contains reports whether offset falls inside the span.
func (s OffsetSpan) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// SourcePoint is line:column position (1-based).
type SourcePoint struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceSpan is start-end line:column range.
type SourceSpan struct {
	Start SourcePoint `json:"start"`
	End   SourcePoint `json:"end"`
}

// Location combines character offsets and source positions.
type Location struct {
	Offset OffsetSpan `json:"offset"`
	Source SourceSpan `json:"source"`
}

// LocationFor builds a Location for the given offset span inside text.
func LocationFor(text string, span OffsetSpan) Location {
	startLine, startCol := ComputeLineColumn([]byte(text), span.Start)
	endLine, endCol := ComputeLineColumn([]byte(text), span.End)
	return Location{
		Offset: span,
		Source: SourceSpan{
			Start: SourcePoint{Line: startLine, Column: startCol},
			End:   SourcePoint{Line: endLine, Column: endCol},
		},
	}
}
