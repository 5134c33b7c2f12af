// Package scan implements the quote- and nesting-aware linear text walks
// every other engine stage is built on. No regular expressions: boundary
// detection over partial source text has to survive brackets and commas
// living inside string literals and nested structures.
package scan

import "strings"

// NotFound is returned when a scan reaches end of input before closing.
const NotFound = -1

// MatchBracket returns the index of the close bracket matching the open
// bracket at openIndex, or NotFound when the text ends first.
//
// The scan keeps a depth counter and a single-character quote flag: inside
// a quote every character is inert except a backslash (which consumes the
// following character unconditionally) and the matching quote character.
// This one routine is used for every bracket kind, including angle brackets
// in generic annotations.
func MatchBracket(text string, openIndex int, open, close byte) int {
	if openIndex < 0 || openIndex >= len(text) || text[openIndex] != open {
		return NotFound
	}

	depth := 0
	var quote byte

	for i := openIndex; i < len(text); i++ {
		c := text[i]

		if quote != 0 {
			switch c {
			case '\\':
				i++ // escape consumes the next character
			case quote:
				quote = 0
			}
			continue
		}

		switch c {
		case '\'', '"', '`':
			quote = c
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return NotFound
}

// IndexUnquoted returns the index of the first occurrence of target that is
// not inside a string literal, or NotFound.
func IndexUnquoted(text string, target byte) int {
	var quote byte

	for i := 0; i < len(text); i++ {
		c := text[i]

		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}

		switch c {
		case '\'', '"', '`':
			quote = c
		case target:
			return i
		}
	}

	return NotFound
}

// IndexUnquotedString returns the index of the first occurrence of needle
// that starts outside a string literal, or NotFound. A needle beginning
// with a quote character never matches.
func IndexUnquotedString(text, needle string) int {
	if needle == "" {
		return NotFound
	}

	var quote byte

	for i := 0; i < len(text); i++ {
		c := text[i]

		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}

		switch c {
		case '\'', '"', '`':
			quote = c
		default:
			if c == needle[0] && strings.HasPrefix(text[i:], needle) {
				return i
			}
		}
	}

	return NotFound
}

// SplitTopLevel splits text on sep occurrences at nesting depth zero,
// outside string literals. All bracket kinds contribute to the depth so a
// separator inside a nested value never splits its enclosing item.
func SplitTopLevel(text string, sep byte) []string {
	var parts []string
	depth := 0
	var quote byte
	start := 0

	for i := 0; i < len(text); i++ {
		c := text[i]

		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}

		switch c {
		case '\'', '"', '`':
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, text[start:i])
				start = i + 1
			}
		}
	}

	parts = append(parts, text[start:])
	return parts
}
