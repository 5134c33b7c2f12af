// Package normalize cleans a raw default-value expression: closure
// wrappers are stripped, redundant grouping parentheses removed, and
// simple literals re-rendered canonically. Every step is best-effort and
// falls back to the previous text; normalization never fails upward.
package normalize

import (
	"strings"

	"github.com/arashsheyda/vue-prop-konverter/pkg/scan"
)

// Default normalizes a raw default-value expression.
func Default(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}

	text = unwrapClosure(text)
	text = stripGroupingParens(text)

	if v, ok := parseLiteral(text); ok {
		switch v.kind {
		case kindArray:
			return render(v)
		case kindObject:
			if items, ok := denseArray(v); ok {
				return render(value{kind: kindArray, items: items})
			}
			// Non-dense object literals stay textually as-is.
		}
	}

	return text
}

// unwrapClosure strips a no-argument closure wrapper, keeping the returned
// expression. Handles arrow functions with expression or block bodies and
// anonymous function expressions. Anything else passes through untouched.
func unwrapClosure(text string) string {
	if body, ok := arrowBody(text); ok {
		return body
	}
	if body, ok := functionBody(text); ok {
		return body
	}
	return text
}

// arrowBody unwraps "() => expr" and "() => { return expr }".
func arrowBody(text string) (string, bool) {
	if !strings.HasPrefix(text, "(") {
		return "", false
	}
	close := scan.MatchBracket(text, 0, '(', ')')
	if close == scan.NotFound || strings.TrimSpace(text[1:close]) != "" {
		return "", false
	}

	i := close + 1
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	if !strings.HasPrefix(text[i:], "=>") {
		return "", false
	}

	body := strings.TrimSpace(text[i+2:])
	if body == "" {
		return "", false
	}

	if body[0] == '{' && scan.MatchBracket(body, 0, '{', '}') == len(body)-1 {
		return returnedExpr(body[1 : len(body)-1])
	}
	return body, true
}

// functionBody unwraps "function () { return expr }".
func functionBody(text string) (string, bool) {
	if !strings.HasPrefix(text, "function") {
		return "", false
	}
	i := len("function")
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	if i >= len(text) || text[i] != '(' {
		return "", false
	}
	close := scan.MatchBracket(text, i, '(', ')')
	if close == scan.NotFound || strings.TrimSpace(text[i+1:close]) != "" {
		return "", false
	}

	i = close + 1
	for i < len(text) && (text[i] == ' ' || text[i] == '\t' || text[i] == '\n') {
		i++
	}
	if i >= len(text) || text[i] != '{' {
		return "", false
	}
	end := scan.MatchBracket(text, i, '{', '}')
	if end != len(text)-1 {
		return "", false
	}
	return returnedExpr(text[i+1 : end])
}

// returnedExpr extracts the expression of a block body consisting of a
// single return statement.
func returnedExpr(block string) (string, bool) {
	body := strings.TrimSpace(block)
	if !strings.HasPrefix(body, "return") {
		return "", false
	}
	rest := body[len("return"):]
	if rest != "" && isWordByte(rest[0]) {
		return "", false
	}
	expr := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest), ";"))
	if expr == "" {
		return "", false
	}
	return expr, true
}

// stripGroupingParens drops redundant outer parentheses whose interior is
// a brace- or bracket-literal.
func stripGroupingParens(text string) string {
	for strings.HasPrefix(text, "(") &&
		scan.MatchBracket(text, 0, '(', ')') == len(text)-1 {
		inner := strings.TrimSpace(text[1 : len(text)-1])
		if inner == "" || (inner[0] != '{' && inner[0] != '[') {
			break
		}
		text = inner
	}
	return text
}
