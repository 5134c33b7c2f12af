package normalize

import (
	"strconv"
	"strings"
)

// The literal evaluator accepts only nested combinations of numbers,
// strings, booleans, null, arrays, and string-keyed objects of the same.
// Identifiers, calls, and operators do not parse; anything executable is
// rejected so untrusted text is never evaluated.

type kind int

const (
	kindNumber kind = iota
	kindString
	kindBool
	kindNull
	kindArray
	kindObject
)

type value struct {
	kind  kind
	text  string // scalar source text; for strings, the decoded content
	items []value
	keys  []string // object keys, in source order
	vals  []value
}

// parseLiteral parses text as a pure literal. Returns ok=false on anything
// it does not fully recognize.
func parseLiteral(text string) (value, bool) {
	p := &litParser{src: text}
	p.ws()
	v, ok := p.value()
	if !ok {
		return value{}, false
	}
	p.ws()
	if p.i != len(p.src) {
		return value{}, false
	}
	return v, true
}

type litParser struct {
	src string
	i   int
}

func (p *litParser) ws() {
	for p.i < len(p.src) {
		c := p.src[p.i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			p.i++
			continue
		}
		break
	}
}

func (p *litParser) value() (value, bool) {
	if p.i >= len(p.src) {
		return value{}, false
	}

	switch c := p.src[p.i]; {
	case c == '\'' || c == '"' || c == '`':
		return p.str()
	case c == '[':
		return p.array()
	case c == '{':
		return p.object()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.number()
	default:
		if p.word("true") {
			return value{kind: kindBool, text: "true"}, true
		}
		if p.word("false") {
			return value{kind: kindBool, text: "false"}, true
		}
		if p.word("null") {
			return value{kind: kindNull, text: "null"}, true
		}
		return value{}, false
	}
}

// word consumes w when it appears at the cursor with a word boundary after.
func (p *litParser) word(w string) bool {
	if !strings.HasPrefix(p.src[p.i:], w) {
		return false
	}
	end := p.i + len(w)
	if end < len(p.src) && isWordByte(p.src[end]) {
		return false
	}
	p.i = end
	return true
}

func (p *litParser) str() (value, bool) {
	quote := p.src[p.i]
	p.i++

	var b strings.Builder
	for p.i < len(p.src) {
		c := p.src[p.i]
		if c == '\\' && p.i+1 < len(p.src) {
			next := p.src[p.i+1]
			switch next {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\\', '\'', '"', '`':
				b.WriteByte(next)
			default:
				b.WriteByte('\\')
				b.WriteByte(next)
			}
			p.i += 2
			continue
		}
		if c == quote {
			p.i++
			return value{kind: kindString, text: b.String()}, true
		}
		b.WriteByte(c)
		p.i++
	}
	return value{}, false
}

func (p *litParser) number() (value, bool) {
	start := p.i
	if p.src[p.i] == '-' {
		p.i++
	}
	digits := 0
	for p.i < len(p.src) && p.src[p.i] >= '0' && p.src[p.i] <= '9' {
		p.i++
		digits++
	}
	if digits == 0 {
		return value{}, false
	}
	if p.i < len(p.src) && p.src[p.i] == '.' {
		p.i++
		frac := 0
		for p.i < len(p.src) && p.src[p.i] >= '0' && p.src[p.i] <= '9' {
			p.i++
			frac++
		}
		if frac == 0 {
			return value{}, false
		}
	}
	return value{kind: kindNumber, text: p.src[start:p.i]}, true
}

func (p *litParser) array() (value, bool) {
	p.i++ // '['
	v := value{kind: kindArray}

	for {
		p.ws()
		if p.i >= len(p.src) {
			return value{}, false
		}
		if p.src[p.i] == ']' {
			p.i++
			return v, true
		}

		item, ok := p.value()
		if !ok {
			return value{}, false
		}
		v.items = append(v.items, item)

		p.ws()
		if p.i >= len(p.src) {
			return value{}, false
		}
		switch p.src[p.i] {
		case ',':
			p.i++
		case ']':
		default:
			return value{}, false
		}
	}
}

func (p *litParser) object() (value, bool) {
	p.i++ // '{'
	v := value{kind: kindObject}

	for {
		p.ws()
		if p.i >= len(p.src) {
			return value{}, false
		}
		if p.src[p.i] == '}' {
			p.i++
			return v, true
		}

		key, ok := p.objectKey()
		if !ok {
			return value{}, false
		}

		p.ws()
		if p.i >= len(p.src) || p.src[p.i] != ':' {
			return value{}, false
		}
		p.i++

		p.ws()
		item, ok := p.value()
		if !ok {
			return value{}, false
		}
		v.keys = append(v.keys, key)
		v.vals = append(v.vals, item)

		p.ws()
		if p.i >= len(p.src) {
			return value{}, false
		}
		switch p.src[p.i] {
		case ',':
			p.i++
		case '}':
		default:
			return value{}, false
		}
	}
}

func (p *litParser) objectKey() (string, bool) {
	c := p.src[p.i]
	if c == '\'' || c == '"' || c == '`' {
		s, ok := p.str()
		if !ok {
			return "", false
		}
		return s.text, true
	}

	start := p.i
	for p.i < len(p.src) && isWordByte(p.src[p.i]) {
		p.i++
	}
	if p.i == start {
		return "", false
	}
	return p.src[start:p.i], true
}

// render serializes a parsed literal back to canonical single-line form
// with single-quoted strings.
func render(v value) string {
	switch v.kind {
	case kindString:
		return "'" + escapeSingle(v.text) + "'"
	case kindNumber, kindBool, kindNull:
		return v.text
	case kindArray:
		if len(v.items) == 0 {
			return "[]"
		}
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = render(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case kindObject:
		if len(v.keys) == 0 {
			return "{}"
		}
		parts := make([]string, len(v.keys))
		for i, key := range v.keys {
			parts[i] = renderKey(key) + ": " + render(v.vals[i])
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	}
	return ""
}

func renderKey(key string) string {
	if isBareKey(key) {
		return key
	}
	return "'" + escapeSingle(key) + "'"
}

func isBareKey(s string) bool {
	if s == "" {
		return false
	}
	allDigits := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isWordByte(c) {
			return false
		}
		if c < '0' || c > '9' {
			allDigits = false
		}
	}
	// Integer keys stay bare; digit-first identifiers do not.
	if s[0] >= '0' && s[0] <= '9' && !allDigits {
		return false
	}
	return true
}

func escapeSingle(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// denseArray converts an object whose keys form a dense 0..n-1 integer
// range into the equivalent ordered array.
func denseArray(v value) ([]value, bool) {
	if v.kind != kindObject {
		return nil, false
	}
	if len(v.keys) == 0 {
		return nil, false
	}

	items := make([]value, len(v.keys))
	seen := make([]bool, len(v.keys))
	for i, key := range v.keys {
		n, err := strconv.Atoi(key)
		if err != nil || n < 0 || n >= len(v.keys) || seen[n] {
			return nil, false
		}
		// Reject forms like "01" that Atoi accepts.
		if strconv.Itoa(n) != key {
			return nil, false
		}
		seen[n] = true
		items[n] = v.vals[i]
	}
	return items, true
}

func isWordByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
