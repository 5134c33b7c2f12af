// Package convert runs the full rewrite pipeline: locate, extract, infer,
// normalize, format. Every stage is a pure function of its input text; the
// package holds no state between invocations.
package convert

import (
	"sort"
	"strings"

	"github.com/arashsheyda/vue-prop-konverter/pkg/extract"
	"github.com/arashsheyda/vue-prop-konverter/pkg/format"
	"github.com/arashsheyda/vue-prop-konverter/pkg/infer"
	"github.com/arashsheyda/vue-prop-konverter/pkg/locate"
	"github.com/arashsheyda/vue-prop-konverter/pkg/normalize"
	"github.com/arashsheyda/vue-prop-konverter/pkg/types"
)

// Options tune the rendered output.
type Options struct {
	// LineWidth is the single-line layout threshold (default 60).
	LineWidth int
	// BindingKeyword overrides the profile fallback binding keyword.
	BindingKeyword string
	// BindingName overrides the profile fallback binding name.
	BindingName string
}

// Result is one fully rendered call-site conversion.
type Result struct {
	Site        types.CallSite `json:"site"`
	Replacement string         `json:"replacement"`

	// Renames lists every "<binding>.<prop>" occurrence outside the
	// replaced span. Only populated when the rewrite destructures the
	// binding (i.e. some entry has a default).
	Renames []types.Rename `json:"renames,omitempty"`
}

// Results computes one Result per call site located in text, in source
// order. An empty slice means no valid call site was found.
func Results(l *locate.Locator, text string, opts Options) []Result {
	sites := l.CallSites(text)
	results := make([]Result, 0, len(sites))
	for _, site := range sites {
		results = append(results, resultFor(l, text, site, opts))
	}
	return results
}

// First rewrites the first call site and returns the full text, with the
// site's binding-access renames applied in the same pass. The input is
// returned unchanged when no valid call site exists: a no-op, not an
// error.
func First(l *locate.Locator, text string, opts Options) string {
	sites := l.CallSites(text)
	if len(sites) == 0 {
		return text
	}
	r := resultFor(l, text, sites[0], opts)
	return Apply(text, r, true)
}

// All rewrites every call site together with its binding-access renames.
// Each pass relocates on the rewritten text, last site first, so rename
// edits from one site never invalidate another site's spans. Converted
// declarations no longer match the macro pattern, so the loop terminates.
func All(l *locate.Locator, text string, opts Options) string {
	for {
		sites := l.CallSites(text)
		if len(sites) == 0 {
			return text
		}
		r := resultFor(l, text, sites[len(sites)-1], opts)
		out := Apply(text, r, true)
		if out == text {
			return out
		}
		text = out
	}
}

// Apply substitutes a result's replacement into text. With withRenames the
// binding-access renames are applied in the same pass, as a single atomic
// substitution.
func Apply(text string, r Result, withRenames bool) string {
	type edit struct {
		span types.OffsetSpan
		repl string
	}

	edits := []edit{{span: r.Site.Outer, repl: r.Replacement}}
	if withRenames {
		for _, rn := range r.Renames {
			edits = append(edits, edit{span: rn.Span, repl: rn.Replacement})
		}
	}

	sort.Slice(edits, func(i, j int) bool {
		return edits[i].span.Start > edits[j].span.Start
	})

	for _, e := range edits {
		if e.span.Start < 0 || e.span.End > len(text) {
			continue
		}
		text = text[:e.span.Start] + e.repl + text[e.span.End:]
	}
	return text
}

// resultFor renders one located call site.
func resultFor(l *locate.Locator, text string, site types.CallSite, opts Options) Result {
	prof := l.Profile(site.ProfileID)

	var typeMap map[string]string
	fopts := format.Options{
		LineWidth:      opts.LineWidth,
		BindingKeyword: opts.BindingKeyword,
		BindingName:    opts.BindingName,
	}
	if prof != nil {
		typeMap = prof.TypeMap
		if fopts.BindingKeyword == "" {
			fopts.BindingKeyword = prof.BindingKeyword
		}
		if fopts.BindingName == "" {
			fopts.BindingName = prof.BindingName
		}
	}

	body := text[site.Body.Start:site.Body.End]
	props := extract.Entries(body)

	entries := make([]format.Entry, 0, len(props))
	for _, p := range props {
		fields := infer.ParseFields(p.RawValue)
		def := normalize.Default(fields.Default)
		entries = append(entries, format.Entry{
			Name:    p.Name,
			Type:    infer.Type(def, p.RawValue, typeMap),
			Comment: p.Comment,
			Default: def,
		})
	}

	r := Result{
		Site:        site,
		Replacement: format.Render(site, entries, fopts),
	}

	if site.BindName != "" && format.HasDefaults(entries) {
		r.Renames = bindingRenames(text, site, entries)
	}

	return r
}

// bindingRenames finds every "<binding>.<prop>" access outside the replaced
// span; after the destructure the bare prop name is the local binding.
func bindingRenames(text string, site types.CallSite, entries []format.Entry) []types.Rename {
	var renames []types.Rename

	for _, e := range entries {
		needle := site.BindName + "." + e.Name
		from := 0
		for {
			idx := strings.Index(text[from:], needle)
			if idx == -1 {
				break
			}
			idx += from
			from = idx + len(needle)

			end := idx + len(needle)
			if site.Outer.Contains(idx) {
				continue
			}
			if idx > 0 && (isWordByte(text[idx-1]) || text[idx-1] == '.') {
				continue
			}
			if end < len(text) && isWordByte(text[end]) {
				continue
			}

			renames = append(renames, types.Rename{
				Span:        types.OffsetSpan{Start: idx, End: end},
				Replacement: e.Name,
			})
		}
	}

	sort.Slice(renames, func(i, j int) bool {
		return renames[i].Span.Start < renames[j].Span.Start
	})
	return renames
}

func isWordByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
