// Package konverter rewrites object-literal prop declarations into
// type-based ones.
//
// The engine takes a span of source text and produces either the original
// text (no match) or a replacement in which the declaration's object
// literal becomes a structural type and its defaults move into a
// destructuring binding.
//
// # Basic Usage
//
// Create a converter with the builtin profiles and convert text:
//
//	conv, err := konverter.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out := conv.Convert(`const props = defineProps({ count: { type: Number, default: 0 } })`)
//
// When no call site is found, Convert returns its input unchanged.
//
// # Diagnostics
//
// Hosts that render squiggles can ask for the located call sites without
// converting:
//
//	for _, d := range conv.Diagnostics(text) {
//	    fmt.Printf("%d:%d %s\n", d.Location.Source.Start.Line, d.Location.Source.Start.Column, d.Message)
//	}
package konverter

import (
	"fmt"
	"os"

	"github.com/arashsheyda/vue-prop-konverter/pkg/convert"
	"github.com/arashsheyda/vue-prop-konverter/pkg/locate"
	"github.com/arashsheyda/vue-prop-konverter/pkg/profile"
	"github.com/arashsheyda/vue-prop-konverter/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/arashsheyda/vue-prop-konverter"
// without subpackages.
type (
	// CallSite is a located declaration with an object-literal argument.
	CallSite = types.CallSite

	// PropEntry is one extracted name/value pair.
	PropEntry = types.PropEntry

	// Diagnostic is a (span, message, code) tuple for the host surface.
	Diagnostic = types.Diagnostic

	// Location describes where a call site sits within the input text.
	Location = types.Location

	// Rename is one binding-access rename edit.
	Rename = types.Rename

	// Profile describes a convertible macro pattern.
	Profile = profile.Profile

	// Result is one rendered call-site conversion.
	Result = convert.Result
)

// Converter locates and rewrites prop declarations. It is stateless across
// calls and safe for concurrent use.
type Converter struct {
	locator *locate.Locator
	config  *converterConfig
}

// converterConfig holds converter configuration.
type converterConfig struct {
	profiles    []*profile.Profile
	lineWidth   int
	bindingName string
}

// Option configures a Converter.
type Option func(*converterConfig)

// WithProfiles uses custom conversion profiles instead of the builtins.
func WithProfiles(profiles []*Profile) Option {
	return func(c *converterConfig) {
		c.profiles = profiles
	}
}

// WithLineWidth sets the single-line layout threshold.
// Default is 60 characters.
func WithLineWidth(width int) Option {
	return func(c *converterConfig) {
		c.lineWidth = width
	}
}

// WithBindingName sets the fallback binding name used when the source has
// none. Default comes from the matching profile.
func WithBindingName(name string) Option {
	return func(c *converterConfig) {
		c.bindingName = name
	}
}

// New creates a Converter with the given options. By default it loads the
// builtin profiles.
func New(opts ...Option) (*Converter, error) {
	config := &converterConfig{}
	for _, opt := range opts {
		opt(config)
	}

	if config.profiles == nil {
		profiles, err := profile.NewLoader().LoadBuiltinProfiles()
		if err != nil {
			return nil, fmt.Errorf("loading builtin profiles: %w", err)
		}
		config.profiles = profiles
	}

	locator, err := locate.New(config.profiles...)
	if err != nil {
		return nil, fmt.Errorf("creating locator: %w", err)
	}

	return &Converter{
		locator: locator,
		config:  config,
	}, nil
}

// Convert rewrites the first call site found in text and returns the full
// text. When the rewrite destructures the binding, the site's
// binding-access renames are applied in the same pass, so surviving
// "props.x" reads become bare "x" reads. The input is returned unchanged
// when no valid call site exists.
func (c *Converter) Convert(text string) string {
	return convert.First(c.locator, text, c.options())
}

// ConvertAll rewrites every call site found in text, renames included.
func (c *Converter) ConvertAll(text string) string {
	return convert.All(c.locator, text, c.options())
}

// ConvertFile reads path and converts every call site in its content.
func (c *Converter) ConvertFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	return c.ConvertAll(string(content)), nil
}

// Results returns the detailed conversion for every call site, including
// rename spans for the apply-edit collaborator.
func (c *Converter) Results(text string) []Result {
	return convert.Results(c.locator, text, c.options())
}

// Apply substitutes one result into text, optionally together with its
// binding-access renames, as a single pass.
func (c *Converter) Apply(text string, r Result, withRenames bool) string {
	return convert.Apply(text, r, withRenames)
}

// Locate finds every valid call site in text, in source order.
func (c *Converter) Locate(text string) []CallSite {
	return c.locator.CallSites(text)
}

// Diagnostics reports one diagnostic per located call site.
func (c *Converter) Diagnostics(text string) []Diagnostic {
	return c.locator.Diagnostics(text)
}

// Profiles returns the loaded conversion profiles.
func (c *Converter) Profiles() []*Profile {
	return c.locator.Profiles()
}

// ProfileCount returns the number of loaded profiles.
func (c *Converter) ProfileCount() int {
	return len(c.locator.Profiles())
}

func (c *Converter) options() convert.Options {
	return convert.Options{
		LineWidth:   c.config.lineWidth,
		BindingName: c.config.bindingName,
	}
}

// LoadProfilesFromFile loads conversion profiles from a YAML file.
// Use this with WithProfiles to target custom macro names.
func LoadProfilesFromFile(path string) ([]*Profile, error) {
	return profile.NewLoader().LoadProfileFile(path)
}
