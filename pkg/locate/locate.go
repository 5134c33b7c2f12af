// Package locate finds declaration-macro call sites in source text. The
// macro occurrence itself is pattern-matched; every boundary after that
// (argument list, object body) comes from the balanced scanner, never from
// a pattern, so nested literals and brackets inside strings cannot break
// the bounds.
package locate

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/arashsheyda/vue-prop-konverter/pkg/profile"
	"github.com/arashsheyda/vue-prop-konverter/pkg/scan"
	"github.com/arashsheyda/vue-prop-konverter/pkg/types"
)

// Locator scans text for call sites of its loaded profiles.
type Locator struct {
	profiles  []*profile.Profile
	prefilter *Prefilter
	patterns  map[string]*regexp2.Regexp // keyed by profile ID
}

// New creates a locator for the given profiles.
func New(profiles ...*profile.Profile) (*Locator, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("no profiles provided")
	}

	l := &Locator{
		profiles:  profiles,
		prefilter: NewPrefilter(profiles),
		patterns:  make(map[string]*regexp2.Regexp),
	}

	for _, p := range profiles {
		pattern := macroPattern(p.Macro)

		// Try RE2 mode first (safer, no backtracking)
		re, err := regexp2.Compile(pattern, regexp2.RE2|regexp2.Multiline)
		if err != nil {
			re, err = regexp2.Compile(pattern, regexp2.None)
			if err != nil {
				return nil, fmt.Errorf("failed to compile pattern %q for profile %s: %w", pattern, p.ID, err)
			}
		}
		// Timeout guards against pathological inputs
		re.MatchTimeout = 5 * time.Second
		l.patterns[p.ID] = re
	}

	return l, nil
}

// NewBuiltin creates a locator loaded with the built-in profiles.
func NewBuiltin() (*Locator, error) {
	profiles, err := profile.NewLoader().LoadBuiltinProfiles()
	if err != nil {
		return nil, fmt.Errorf("loading builtin profiles: %w", err)
	}
	return New(profiles...)
}

// macroPattern builds the call-pattern regex for a macro identifier: the
// call, optionally preceded by a variable-binding prefix.
func macroPattern(macro string) string {
	escaped := regexp2.Escape(macro)
	return `(?:\b(const|let|var)\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*=\s*)?\b` + escaped + `\s*\(`
}

// Profiles returns the loaded profiles.
func (l *Locator) Profiles() []*profile.Profile {
	return l.profiles
}

// Profile returns the loaded profile with the given ID, or nil.
func (l *Locator) Profile(id string) *profile.Profile {
	for _, p := range l.profiles {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// CallSites finds every valid call site in text, in source order.
// Candidates whose argument list or object body cannot be bounded are
// discarded, not reported.
func (l *Locator) CallSites(text string) []types.CallSite {
	var sites []types.CallSite

	for _, p := range l.prefilter.Filter([]byte(text)) {
		re := l.patterns[p.ID]
		if re == nil {
			continue
		}

		m, err := re.FindStringMatch(text)
		if err != nil {
			continue
		}
		for m != nil {
			if site, ok := l.boundSite(text, p, m); ok {
				sites = append(sites, site)
			}
			m, err = re.FindNextMatch(m)
			if err != nil {
				break
			}
		}
	}

	sort.SliceStable(sites, func(i, j int) bool {
		return sites[i].Outer.Start < sites[j].Outer.Start
	})
	return sites
}

// Diagnostics reports one diagnostic per located call site, for the host's
// squiggle surface.
func (l *Locator) Diagnostics(text string) []types.Diagnostic {
	sites := l.CallSites(text)
	diags := make([]types.Diagnostic, 0, len(sites))
	for _, site := range sites {
		diags = append(diags, types.Diagnostic{
			Location: site.Location,
			Message:  fmt.Sprintf("%s object literal can be converted to a type-based declaration", site.Macro),
			Code:     types.CodeConvertible,
		})
	}
	return diags
}

// boundSite bounds one pattern match into a full call site using the
// balanced scanner. Returns ok=false when any sub-scan fails.
func (l *Locator) boundSite(text string, p *profile.Profile, m *regexp2.Match) (types.CallSite, bool) {
	// The pattern ends with the opening parenthesis.
	openParen := m.Index + m.Length - 1
	if openParen >= len(text) || text[openParen] != '(' {
		return types.CallSite{}, false
	}

	closeParen := scan.MatchBracket(text, openParen, '(', ')')
	if closeParen == scan.NotFound {
		return types.CallSite{}, false
	}

	// First top-level object literal inside the argument list.
	args := text[openParen+1 : closeParen]
	braceRel := scan.IndexUnquoted(args, '{')
	if braceRel == scan.NotFound {
		return types.CallSite{}, false
	}
	openBrace := openParen + 1 + braceRel

	closeBrace := scan.MatchBracket(text, openBrace, '{', '}')
	if closeBrace == scan.NotFound || closeBrace > closeParen {
		return types.CallSite{}, false
	}

	macroRel := strings.LastIndex(text[m.Index:openParen+1], p.Macro)
	if macroRel == -1 {
		return types.CallSite{}, false
	}
	macroStart := m.Index + macroRel

	var bindKeyword, bindName string
	if g := m.GroupByNumber(1); g != nil && len(g.Captures) > 0 {
		bindKeyword = g.Captures[0].String()
	}
	if g := m.GroupByNumber(2); g != nil && len(g.Captures) > 0 {
		bindName = g.Captures[0].String()
	}

	lineStart := strings.LastIndexByte(text[:m.Index], '\n') + 1
	indentEnd := lineStart
	for indentEnd < len(text) && (text[indentEnd] == ' ' || text[indentEnd] == '\t') {
		indentEnd++
	}

	outer := types.OffsetSpan{Start: m.Index, End: closeParen + 1}

	return types.CallSite{
		ProfileID:   p.ID,
		Macro:       p.Macro,
		Outer:       outer,
		Body:        types.OffsetSpan{Start: openBrace, End: closeBrace + 1},
		Prefix:      text[lineStart:macroStart],
		BindKeyword: bindKeyword,
		BindName:    bindName,
		Indent:      text[lineStart:indentEnd],
		Location:    types.LocationFor(text, outer),
	}, true
}
