package locate

import (
	"github.com/cloudflare/ahocorasick"

	"github.com/arashsheyda/vue-prop-konverter/pkg/profile"
)

// Prefilter uses Aho-Corasick for efficient keyword matching: texts without
// any profile keyword skip the pattern pass entirely.
type Prefilter struct {
	matcher           *ahocorasick.Matcher
	keywords          []string                      // keyword at each index
	keywordProfiles   map[string][]*profile.Profile // keyword -> profiles needing it
	noKeywordProfiles []*profile.Profile            // profiles without keywords (always checked)
}

// NewPrefilter creates a prefilter from profiles.
func NewPrefilter(profiles []*profile.Profile) *Prefilter {
	pf := &Prefilter{
		keywordProfiles:   make(map[string][]*profile.Profile),
		noKeywordProfiles: make([]*profile.Profile, 0),
	}

	keywordSet := make(map[string]bool)
	for _, p := range profiles {
		if len(p.Keywords) == 0 {
			pf.noKeywordProfiles = append(pf.noKeywordProfiles, p)
			continue
		}
		for _, keyword := range p.Keywords {
			if !keywordSet[keyword] {
				keywordSet[keyword] = true
				pf.keywords = append(pf.keywords, keyword)
			}
			pf.keywordProfiles[keyword] = append(pf.keywordProfiles[keyword], p)
		}
	}

	if len(pf.keywords) > 0 {
		pf.matcher = ahocorasick.NewStringMatcher(pf.keywords)
	}

	return pf
}

// Filter returns profiles that might match content (keywords found OR no
// keywords defined).
func (pf *Prefilter) Filter(content []byte) []*profile.Profile {
	result := make([]*profile.Profile, 0, len(pf.noKeywordProfiles))
	result = append(result, pf.noKeywordProfiles...)

	if pf.matcher == nil {
		return result
	}

	hits := pf.matcher.Match(content)

	seen := make(map[*profile.Profile]bool)
	for _, p := range pf.noKeywordProfiles {
		seen[p] = true
	}

	for _, hit := range hits {
		keyword := pf.keywords[hit]
		for _, p := range pf.keywordProfiles[keyword] {
			if !seen[p] {
				seen[p] = true
				result = append(result, p)
			}
		}
	}

	return result
}
