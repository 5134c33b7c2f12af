// Package infer derives a type annotation for a property entry from, in
// priority order: a generic type-parameter annotation, a declared type
// field, or the literal shape of the entry's default value.
package infer

import (
	"strings"

	"github.com/arashsheyda/vue-prop-konverter/pkg/extract"
	"github.com/arashsheyda/vue-prop-konverter/pkg/scan"
	"github.com/arashsheyda/vue-prop-konverter/pkg/types"
)

// genericKeyword names the annotation wrapper whose single type parameter
// declares the structural type of a runtime value.
const genericKeyword = "PropType"

// builtinTypeMap maps the runtime constructor families to their structural
// equivalents. Keys are lower-cased. Profiles may override entries.
var builtinTypeMap = map[string]string{
	"string":   "string",
	"number":   "number",
	"boolean":  "boolean",
	"array":    "any[]",
	"object":   "Record<string, any>",
	"function": "(...args: any[]) => any",
	"symbol":   "symbol",
	"date":     "Date",
}

// Fields carries the recognized declaration fields of an entry's value block.
type Fields struct {
	// Type is the raw text of a "type" field, empty when absent.
	Type string
	// Default is the raw text of a "default" field, empty when absent.
	Default string
	// Required reports an explicit "required: true" marker.
	Required bool
	// Block is true when the value was a balanced object literal; shorthand
	// values ("count: Number") leave it false.
	Block bool
}

// ParseFields splits an entry's value block into its declaration fields.
// Non-object values yield a zero Fields with Block false.
func ParseFields(valueBlock string) Fields {
	t := strings.TrimSpace(valueBlock)
	if len(t) < 2 || t[0] != '{' || scan.MatchBracket(t, 0, '{', '}') != len(t)-1 {
		return Fields{}
	}

	f := Fields{Block: true}
	for _, e := range extract.Entries(t) {
		switch e.Name {
		case "type":
			f.Type = e.RawValue
		case "default":
			f.Default = e.RawValue
		case "required":
			f.Required = strings.TrimSpace(e.RawValue) == "true"
		}
	}
	return f
}

// Type infers the type annotation for one entry. defaultText is the
// (normalized) default value, empty when the entry has none; valueBlock is
// the entry's full raw value. overrides extends the builtin constructor
// table.
//
// An entry is required only when the block carries an explicit
// required-true marker AND has no default: a default always wins, by
// defined precedence.
func Type(defaultText, valueBlock string, overrides map[string]string) types.TypeInfo {
	f := ParseFields(valueBlock)

	optional := true
	if f.Block && f.Required && defaultText == "" && f.Default == "" {
		optional = false
	}

	return types.TypeInfo{
		Expr:     typeExpr(defaultText, valueBlock, f, overrides),
		Optional: optional,
	}
}

func typeExpr(defaultText, valueBlock string, f Fields, overrides map[string]string) string {
	// 1. Generic type-parameter annotation anywhere in the value block.
	if inner, ok := genericAnnotation(valueBlock); ok {
		return inner
	}

	// 2. Declared type field (or the whole value, for shorthand entries).
	declared := f.Type
	if !f.Block {
		declared = strings.TrimSpace(valueBlock)
	}
	if mapped, ok := mapConstructor(declared, overrides); ok {
		return mapped
	}

	// 3. Literal shape of the default value.
	return literalShape(defaultText)
}

// genericAnnotation extracts the balanced content of the first
// PropType<...> occurrence, tolerating nested generics. Occurrences
// inside string literals do not count.
func genericAnnotation(text string) (string, bool) {
	from := 0
	for {
		idx := scan.IndexUnquotedString(text[from:], genericKeyword)
		if idx == scan.NotFound {
			return "", false
		}
		idx += from
		from = idx + len(genericKeyword)

		// Word boundary on the left.
		if idx > 0 && isWordByte(text[idx-1]) {
			continue
		}

		j := idx + len(genericKeyword)
		for j < len(text) && (text[j] == ' ' || text[j] == '\t') {
			j++
		}
		if j >= len(text) || text[j] != '<' {
			continue
		}

		end := scan.MatchBracket(text, j, '<', '>')
		if end == scan.NotFound {
			continue
		}
		return strings.TrimSpace(text[j+1 : end]), true
	}
}

// mapConstructor maps a constructor-like type name (or a bracketed list of
// them) to its structural equivalent. Unknown names do not map.
func mapConstructor(declared string, overrides map[string]string) (string, bool) {
	t := strings.TrimSpace(declared)
	if t == "" {
		return "", false
	}

	// A bracketed list maps to a union of the mapped member types.
	if t[0] == '[' && scan.MatchBracket(t, 0, '[', ']') == len(t)-1 {
		members := scan.SplitTopLevel(t[1:len(t)-1], ',')
		var mapped []string
		for _, m := range members {
			m = strings.TrimSpace(m)
			if m == "" {
				continue
			}
			got, ok := lookupConstructor(m, overrides)
			if !ok {
				return "", false
			}
			mapped = append(mapped, got)
		}
		if len(mapped) == 0 {
			return "", false
		}
		return strings.Join(mapped, " | "), true
	}

	return lookupConstructor(t, overrides)
}

func lookupConstructor(name string, overrides map[string]string) (string, bool) {
	key := strings.ToLower(name)
	if overrides != nil {
		if mapped, ok := overrides[key]; ok {
			return mapped, true
		}
	}
	mapped, ok := builtinTypeMap[key]
	return mapped, ok
}

// literalShape guesses a type from the default value's literal form,
// allowing one level of enclosing parentheses around bracket literals.
func literalShape(defaultText string) string {
	t := strings.TrimSpace(defaultText)
	if t == "" {
		return "any"
	}

	if t[0] == '(' && scan.MatchBracket(t, 0, '(', ')') == len(t)-1 {
		t = strings.TrimSpace(t[1 : len(t)-1])
		if t == "" {
			return "any"
		}
	}

	switch {
	case isQuoted(t):
		return "string"
	case t == "true" || t == "false":
		return "boolean"
	case isNumeric(t):
		return "number"
	case t[0] == '[' && scan.MatchBracket(t, 0, '[', ']') == len(t)-1:
		return "any[]"
	case t[0] == '{' && scan.MatchBracket(t, 0, '{', '}') == len(t)-1:
		return "Record<string, any>"
	default:
		return "any"
	}
}

func isQuoted(s string) bool {
	return len(s) >= 2 &&
		(s[0] == '\'' || s[0] == '"' || s[0] == '`') &&
		s[len(s)-1] == s[0]
}

func isNumeric(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	dot := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' {
			if dot || i == 0 || i == len(s)-1 {
				return false
			}
			dot = true
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isWordByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
