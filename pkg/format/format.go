// Package format renders the replacement text for a converted call site:
// a structural type block and a binding block. Layout switches between
// single-line and multi-line on a length/arity threshold.
package format

import (
	"strings"

	"github.com/arashsheyda/vue-prop-konverter/pkg/types"
)

// DefaultLineWidth is the single-line rendering threshold.
const DefaultLineWidth = 60

// indentStep is appended to the call site's indentation for block members.
const indentStep = "  "

// Entry is one property prepared for rendering.
type Entry struct {
	Name    string
	Type    types.TypeInfo
	Comment string // original comment text, newline-joined
	Default string // normalized default, empty when none
}

// Options control rendering conventions. Zero values fall back to the
// profile conventions carried by the caller.
type Options struct {
	LineWidth      int    // single-line threshold, default DefaultLineWidth
	BindingKeyword string // used when the call site has no binding keyword
	BindingName    string // used when the call site has no bound name
}

// Render builds the full replacement text for a call site: the binding
// block on the left, the macro call with its type block on the right.
func Render(site types.CallSite, entries []Entry, opts Options) string {
	if opts.LineWidth <= 0 {
		opts.LineWidth = DefaultLineWidth
	}
	if opts.BindingKeyword == "" {
		opts.BindingKeyword = "const"
	}
	if opts.BindingName == "" {
		opts.BindingName = "props"
	}

	keyword := site.BindKeyword
	if keyword == "" {
		keyword = opts.BindingKeyword
	}

	typeBlock := renderTypeBlock(site, entries, opts)
	binding := renderBinding(site, entries, opts, keyword)

	return binding + site.Macro + "<" + typeBlock + ">()"
}

// HasDefaults reports whether any entry carries a default value.
func HasDefaults(entries []Entry) bool {
	for _, e := range entries {
		if e.Default != "" {
			return true
		}
	}
	return false
}

// renderTypeBlock renders the structural type: one line per entry with the
// optional marker applied and comments re-attached.
func renderTypeBlock(site types.CallSite, entries []Entry, opts Options) string {
	if len(entries) == 0 {
		return "{}"
	}

	lines := make([]string, len(entries))
	hasComment := false
	for i, e := range entries {
		marker := ""
		if e.Type.Optional {
			marker = "?"
		}
		lines[i] = e.Name + marker + ": " + e.Type.Expr
		if e.Comment != "" {
			hasComment = true
		}
	}

	single := "{ " + strings.Join(lines, ", ") + " }"
	if len(entries) == 1 && !hasComment && len(single) <= opts.LineWidth {
		return single
	}

	base := site.Indent
	member := base + indentStep

	var b strings.Builder
	b.WriteString("{\n")
	for i, e := range entries {
		if e.Comment != "" {
			for j, line := range strings.Split(e.Comment, "\n") {
				if i == 0 && j == 0 {
					// The very first comment line keeps its original column.
					b.WriteString(line)
				} else {
					b.WriteString(member)
					b.WriteString(strings.TrimSpace(line))
				}
				b.WriteByte('\n')
			}
		}
		b.WriteString(member)
		b.WriteString(lines[i])
		b.WriteByte('\n')
	}
	b.WriteString(base)
	b.WriteString("}")
	return b.String()
}

// renderBinding renders the left-hand side of the declaration. Without
// defaults the whole call result is bound to a single name; with at least
// one default every entry name is listed in a destructuring pattern,
// defaulted entries carrying "= value" parts.
func renderBinding(site types.CallSite, entries []Entry, opts Options, keyword string) string {
	if !HasDefaults(entries) {
		name := site.BindName
		if name == "" {
			name = opts.BindingName
		}
		return keyword + " " + name + " = "
	}

	parts := make([]string, len(entries))
	for i, e := range entries {
		if e.Default != "" {
			parts[i] = e.Name + " = " + e.Default
		} else {
			parts[i] = e.Name
		}
	}

	single := keyword + " { " + strings.Join(parts, ", ") + " } = "
	if len(entries) <= 1 && len(single) <= opts.LineWidth {
		return single
	}

	base := site.Indent
	member := base + indentStep

	var b strings.Builder
	b.WriteString(keyword)
	b.WriteString(" {\n")
	for _, part := range parts {
		b.WriteString(member)
		b.WriteString(part)
		b.WriteString(",\n")
	}
	b.WriteString(base)
	b.WriteString("} = ")
	return b.String()
}
