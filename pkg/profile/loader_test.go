package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltinProfiles(t *testing.T) {
	profiles, err := NewLoader().LoadBuiltinProfiles()
	require.NoError(t, err)
	require.NotEmpty(t, profiles)

	var vue *Profile
	for _, p := range profiles {
		if p.ID == "vue.define-props" {
			vue = p
		}
	}
	require.NotNil(t, vue, "builtin vue profile missing")

	assert.Equal(t, "defineProps", vue.Macro)
	assert.Equal(t, "const", vue.BindingKeyword)
	assert.Equal(t, "props", vue.BindingName)
	assert.NotEmpty(t, vue.Keywords)
	assert.Len(t, vue.StructuralID, 40)
}

func TestLoadProfiles_Defaults(t *testing.T) {
	yaml := `
profiles:
  - id: test.minimal
    macro: declareOptions
`
	profiles, err := NewLoader().LoadProfiles([]byte(yaml))
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	p := profiles[0]
	assert.Equal(t, "declareOptions", p.Macro)
	assert.Equal(t, []string{"declareOptions"}, p.Keywords)
	assert.Equal(t, "const", p.BindingKeyword)
	assert.Equal(t, "props", p.BindingName)
	assert.Equal(t, p.ComputeStructuralID(), p.StructuralID)
}

func TestLoadProfiles_FullFields(t *testing.T) {
	yaml := `
profiles:
  - id: test.full
    name: Full Profile
    macro: defineOptions
    description: a test profile
    keywords:
      - defineOptions
      - options
    binding:
      keyword: let
      name: opts
    type_map:
      BigInt: bigint
`
	profiles, err := NewLoader().LoadProfiles([]byte(yaml))
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	p := profiles[0]
	assert.Equal(t, "Full Profile", p.Name)
	assert.Equal(t, []string{"defineOptions", "options"}, p.Keywords)
	assert.Equal(t, "let", p.BindingKeyword)
	assert.Equal(t, "opts", p.BindingName)
	// Type map keys are lower-cased on load.
	assert.Equal(t, "bigint", p.TypeMap["bigint"])
}

func TestLoadProfiles_MissingMacro(t *testing.T) {
	yaml := `
profiles:
  - id: test.broken
`
	_, err := NewLoader().LoadProfiles([]byte(yaml))
	assert.Error(t, err)
}

func TestLoadProfiles_Empty(t *testing.T) {
	_, err := NewLoader().LoadProfiles([]byte(`profiles: []`))
	assert.Error(t, err)

	_, err = NewLoader().LoadProfiles([]byte(`not yaml: [`))
	assert.Error(t, err)
}

func TestLoadProfileFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	content := `
profiles:
  - id: test.file
    macro: defineEmits
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	profiles, err := NewLoader().LoadProfileFile(path)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "defineEmits", profiles[0].Macro)
}

func TestLoadProfileFile_Missing(t *testing.T) {
	_, err := NewLoader().LoadProfileFile("/nonexistent/profiles.yml")
	assert.Error(t, err)
}

func TestComputeStructuralID_TracksMacro(t *testing.T) {
	a := &Profile{Macro: "defineProps"}
	b := &Profile{Macro: "declareProps"}
	assert.NotEqual(t, a.ComputeStructuralID(), b.ComputeStructuralID())
	assert.Equal(t, a.ComputeStructuralID(), (&Profile{Macro: "defineProps"}).ComputeStructuralID())
}
