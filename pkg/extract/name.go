package extract

import (
	"strings"
	"unicode"
)

// CamelName normalizes a quoted property name that is not a valid bare
// identifier into lower camel case: every rune that is not a letter or
// digit becomes a word break, the first word is lower-cased and the rest
// are title-cased. Symbols and emoji are dropped, not transliterated.
//
//	"weird-key"     -> "weirdKey"
//	"super🔥 value" -> "superValue"
func CamelName(raw string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, raw)

	words := strings.Fields(mapped)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		lower := strings.ToLower(w)
		r := []rune(lower)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// isBareIdent reports whether s is usable as an unquoted property name.
func isBareIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case unicode.IsLetter(r):
		case unicode.IsDigit(r):
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
