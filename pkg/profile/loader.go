package profile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles loading conversion profiles from YAML files.
type Loader struct {
	fs fs.FS // embedded filesystem for built-in profiles
}

// NewLoader creates a loader with built-in profiles from the embedded
// filesystem.
func NewLoader() *Loader {
	return &Loader{fs: builtinProfilesFS}
}

// NewLoaderWithFS creates a loader with a custom filesystem.
func NewLoaderWithFS(fsys fs.FS) *Loader {
	return &Loader{fs: fsys}
}

// LoadProfiles loads all profiles from YAML bytes.
func (l *Loader) LoadProfiles(data []byte) ([]*Profile, error) {
	var yamlFile yamlProfilesFile
	if err := yaml.Unmarshal(data, &yamlFile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(yamlFile.Profiles) == 0 {
		return nil, fmt.Errorf("no profiles found in YAML")
	}

	profiles := make([]*Profile, 0, len(yamlFile.Profiles))
	for _, yp := range yamlFile.Profiles {
		p, err := convertYAMLProfile(yp)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// LoadProfileFile loads profiles from a YAML file path.
func (l *Loader) LoadProfileFile(path string) ([]*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return l.LoadProfiles(data)
}

// LoadBuiltinProfiles loads all built-in profiles from the embedded
// filesystem.
func (l *Loader) LoadBuiltinProfiles() ([]*Profile, error) {
	var profiles []*Profile

	err := fs.WalkDir(l.fs, "profiles", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(l.fs, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		var yamlFile yamlProfilesFile
		if err := yaml.Unmarshal(data, &yamlFile); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		for _, yp := range yamlFile.Profiles {
			p, err := convertYAMLProfile(yp)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			profiles = append(profiles, p)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return profiles, nil
}

// convertYAMLProfile converts yamlProfile to Profile, applying defaults
// and computing the StructuralID.
func convertYAMLProfile(yp yamlProfile) (*Profile, error) {
	if yp.Macro == "" {
		return nil, fmt.Errorf("profile %q has no macro", yp.ID)
	}

	p := &Profile{
		ID:             yp.ID,
		Name:           yp.Name,
		Macro:          yp.Macro,
		Description:    yp.Description,
		Keywords:       yp.Keywords,
		BindingKeyword: yp.Binding.Keyword,
		BindingName:    yp.Binding.Name,
	}

	if len(p.Keywords) == 0 {
		p.Keywords = []string{p.Macro}
	}
	if p.BindingKeyword == "" {
		p.BindingKeyword = "const"
	}
	if p.BindingName == "" {
		p.BindingName = "props"
	}
	if len(yp.TypeMap) > 0 {
		p.TypeMap = make(map[string]string, len(yp.TypeMap))
		for k, v := range yp.TypeMap {
			p.TypeMap[strings.ToLower(k)] = v
		}
	}

	p.StructuralID = p.ComputeStructuralID()
	return p, nil
}
