package profile

// yamlProfile is the intermediate struct for parsing the profile YAML
// format. Maps YAML fields to the Profile structure.
type yamlProfile struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Macro       string            `yaml:"macro"`
	Description string            `yaml:"description,omitempty"`
	Keywords    []string          `yaml:"keywords,omitempty"`
	Binding     yamlBinding       `yaml:"binding,omitempty"`
	TypeMap     map[string]string `yaml:"type_map,omitempty"`
}

// yamlBinding carries the fallback binding conventions of a profile.
type yamlBinding struct {
	Keyword string `yaml:"keyword,omitempty"`
	Name    string `yaml:"name,omitempty"`
}

// yamlProfilesFile represents the top-level structure of a profiles YAML
// file: a "profiles" array.
type yamlProfilesFile struct {
	Profiles []yamlProfile `yaml:"profiles"`
}
