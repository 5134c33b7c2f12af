package profile

import "embed"

// builtinProfilesFS embeds the built-in conversion profiles.
//
//go:embed profiles/*.yml
var builtinProfilesFS embed.FS
