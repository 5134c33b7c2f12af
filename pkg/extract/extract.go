// Package extract splits a bounded object-literal body into ordered
// property entries, preserving attached comments. The walk follows the
// same quote/nesting discipline as pkg/scan so commas and colons inside
// nested values never terminate an entry early.
package extract

import (
	"strings"

	"github.com/arashsheyda/vue-prop-konverter/pkg/scan"
	"github.com/arashsheyda/vue-prop-konverter/pkg/types"
)

// Entries walks an object-literal body and returns its top-level entries in
// source order. The body may be passed with or without its surrounding
// braces. Malformed entries (no colon after the name) are skipped line-wise;
// an unterminated block comment halts extraction, keeping what was parsed.
func Entries(body string) []types.PropEntry {
	src := innerBody(body)

	var entries []types.PropEntry
	i := 0

	for i < len(src) {
		// Skip whitespace and stray commas.
		for i < len(src) && (isSpace(src[i]) || src[i] == ',') {
			i++
		}
		if i >= len(src) {
			break
		}

		// Consume leading comments.
		comments, next, ok := leadingComments(src, i)
		if !ok {
			// Unterminated block comment: halt, keep prior entries.
			return entries
		}
		i = next
		if i >= len(src) {
			break
		}

		// Property name: quoted literal or bare identifier.
		name, ok, next := parseName(src, i)
		if !ok {
			i = skipLine(src, i)
			continue
		}
		i = next

		for i < len(src) && isSpace(src[i]) {
			i++
		}
		if i >= len(src) || src[i] != ':' {
			// Malformed entry: recover locally by skipping to the next line.
			i = skipLine(src, i)
			continue
		}
		i++ // colon

		value, trailing, next := parseValue(src, i)
		i = next
		comments = append(comments, trailing...)

		entries = append(entries, types.PropEntry{
			Name:     name,
			RawValue: strings.TrimSpace(value),
			Comment:  strings.Join(comments, "\n"),
		})
	}

	return entries
}

// innerBody strips surrounding braces when the body is a single balanced
// object literal.
func innerBody(body string) string {
	trimmed := strings.TrimSpace(body)
	if len(trimmed) >= 2 && trimmed[0] == '{' {
		if scan.MatchBracket(trimmed, 0, '{', '}') == len(trimmed)-1 {
			return trimmed[1 : len(trimmed)-1]
		}
	}
	return body
}

// leadingComments consumes comments and blank space before an entry.
// Returns ok=false on an unterminated block comment.
func leadingComments(src string, i int) (comments []string, next int, ok bool) {
	for i < len(src) {
		if isSpace(src[i]) {
			i++
			continue
		}
		if strings.HasPrefix(src[i:], "//") {
			end := strings.IndexByte(src[i:], '\n')
			if end == -1 {
				comments = append(comments, strings.TrimSpace(src[i:]))
				return comments, len(src), true
			}
			comments = append(comments, strings.TrimSpace(src[i:i+end]))
			i += end + 1
			continue
		}
		if strings.HasPrefix(src[i:], "/*") {
			end := strings.Index(src[i+2:], "*/")
			if end == -1 {
				return nil, len(src), false
			}
			comments = append(comments, strings.TrimSpace(src[i:i+2+end+2]))
			i += 2 + end + 2
			continue
		}
		break
	}
	return comments, i, true
}

// parseName reads a property name starting at i: either a quoted string
// literal (consumed verbatim including escapes, then normalized when it is
// not a valid bare identifier) or an identifier run.
func parseName(src string, i int) (string, bool, int) {
	c := src[i]

	if c == '\'' || c == '"' || c == '`' {
		j := i + 1
		for j < len(src) {
			if src[j] == '\\' {
				j += 2
				continue
			}
			if src[j] == c {
				raw := src[i+1 : j]
				if isBareIdent(raw) {
					return raw, true, j + 1
				}
				return CamelName(raw), true, j + 1
			}
			j++
		}
		return "", false, len(src)
	}

	j := i
	for j < len(src) && isIdentByte(src[j]) {
		j++
	}
	if j == i {
		return "", false, i
	}
	return src[i:j], true, j
}

// parseValue walks a value expression from i, tracking nesting depth and
// quote state. Inline comments met at depth zero go to the comment list
// instead of the value text. The value terminates at a depth-zero comma or
// end of input; a trailing comment on the same line as the comma is also
// attached.
func parseValue(src string, i int) (string, []string, int) {
	var b strings.Builder
	var comments []string
	depth := 0
	var quote byte

	for i < len(src) {
		c := src[i]

		if quote != 0 {
			b.WriteByte(c)
			if c == '\\' && i+1 < len(src) {
				b.WriteByte(src[i+1])
				i += 2
				continue
			}
			if c == quote {
				quote = 0
			}
			i++
			continue
		}

		switch c {
		case '\'', '"', '`':
			quote = c
			b.WriteByte(c)
			i++
		case '(', '[', '{':
			depth++
			b.WriteByte(c)
			i++
		case ')', ']', '}':
			depth--
			b.WriteByte(c)
			i++
		case '/':
			if depth == 0 && strings.HasPrefix(src[i:], "//") {
				end := strings.IndexByte(src[i:], '\n')
				if end == -1 {
					comments = append(comments, strings.TrimSpace(src[i:]))
					i = len(src)
					break
				}
				comments = append(comments, strings.TrimSpace(src[i:i+end]))
				i += end
				break
			}
			if depth == 0 && strings.HasPrefix(src[i:], "/*") {
				end := strings.Index(src[i+2:], "*/")
				if end == -1 {
					// Unterminated block comment consumes to end of input.
					comments = append(comments, strings.TrimSpace(src[i:]))
					i = len(src)
					break
				}
				comments = append(comments, strings.TrimSpace(src[i:i+2+end+2]))
				i += 2 + end + 2
				break
			}
			b.WriteByte(c)
			i++
		case ',':
			if depth == 0 {
				i++
				trailing, next := trailingComment(src, i)
				if trailing != "" {
					comments = append(comments, trailing)
					i = next
				}
				return b.String(), comments, i
			}
			b.WriteByte(c)
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String(), comments, i
}

// trailingComment captures a comment that follows the entry's terminating
// comma on the same line.
func trailingComment(src string, i int) (string, int) {
	j := i
	for j < len(src) && (src[j] == ' ' || src[j] == '\t') {
		j++
	}

	if strings.HasPrefix(src[j:], "//") {
		end := strings.IndexByte(src[j:], '\n')
		if end == -1 {
			return strings.TrimSpace(src[j:]), len(src)
		}
		return strings.TrimSpace(src[j : j+end]), j + end
	}

	if strings.HasPrefix(src[j:], "/*") {
		end := strings.Index(src[j+2:], "*/")
		if end == -1 {
			return "", i
		}
		nl := strings.IndexByte(src[j:], '\n')
		if nl != -1 && nl < 2+end+2 {
			// Block comment spills onto the next line: it leads the next entry.
			return "", i
		}
		return strings.TrimSpace(src[j : j+2+end+2]), j + 2 + end + 2
	}

	return "", i
}

func skipLine(src string, i int) int {
	nl := strings.IndexByte(src[i:], '\n')
	if nl == -1 {
		return len(src)
	}
	return i + nl + 1
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
