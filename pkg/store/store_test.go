package store

import (
	"path/filepath"
	"testing"

	"github.com/arashsheyda/vue-prop-konverter/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends returns a fresh store of each backend kind.
func backends(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := New(Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)

	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": sqlite,
	}
}

func sampleConversion(content, profile string, start int) *types.Conversion {
	c := &types.Conversion{
		ContentID:   types.ComputeContentID([]byte(content)),
		ProfileID:   profile,
		Span:        types.OffsetSpan{Start: start, End: start + 40},
		Replacement: "const props = defineProps<{ msg?: string }>()",
	}
	c.StructuralID = c.ComputeStructuralID("profile-structural-id")
	return c
}

func TestNew_Routing(t *testing.T) {
	s, err := New(Config{Path: ":memory:"})
	require.NoError(t, err)
	defer s.Close()
	assert.IsType(t, &MemoryStore{}, s)

	s, err = New(Config{Path: filepath.Join(t.TempDir(), "x.db")})
	require.NoError(t, err)
	defer s.Close()
	assert.IsType(t, &SQLiteStore{}, s)

	_, err = New(Config{})
	assert.Error(t, err)
}

func TestStore_ContentRoundTrip(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close()

			id := types.ComputeContentID([]byte("file content"))

			exists, err := s.ContentExists(id)
			require.NoError(t, err)
			assert.False(t, exists)

			require.NoError(t, s.AddContent(id, "src/App.vue", 12))

			exists, err = s.ContentExists(id)
			require.NoError(t, err)
			assert.True(t, exists)

			path, err := s.GetContentPath(id)
			require.NoError(t, err)
			assert.Equal(t, "src/App.vue", path)
		})
	}
}

func TestStore_AddContentIdempotent(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close()

			id := types.ComputeContentID([]byte("dup"))
			require.NoError(t, s.AddContent(id, "first.vue", 3))
			require.NoError(t, s.AddContent(id, "second.vue", 3))

			// First write wins.
			path, err := s.GetContentPath(id)
			require.NoError(t, err)
			assert.Equal(t, "first.vue", path)
		})
	}
}

func TestStore_GetContentPath_Missing(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close()

			_, err := s.GetContentPath(types.ComputeContentID([]byte("absent")))
			assert.Error(t, err)
		})
	}
}

func TestStore_ConversionRoundTrip(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close()

			c := sampleConversion("doc", "vue.define-props", 10)

			exists, err := s.ConversionExists(c.StructuralID)
			require.NoError(t, err)
			assert.False(t, exists)

			require.NoError(t, s.AddConversion(c))

			exists, err = s.ConversionExists(c.StructuralID)
			require.NoError(t, err)
			assert.True(t, exists)

			got, err := s.GetConversions(c.ContentID)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, c.StructuralID, got[0].StructuralID)
			assert.Equal(t, c.ContentID, got[0].ContentID)
			assert.Equal(t, c.ProfileID, got[0].ProfileID)
			assert.Equal(t, c.Span, got[0].Span)
			assert.Equal(t, c.Replacement, got[0].Replacement)
		})
	}
}

func TestStore_ConversionDeduplicated(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close()

			c := sampleConversion("doc", "vue.define-props", 10)
			require.NoError(t, s.AddConversion(c))
			require.NoError(t, s.AddConversion(c))

			all, err := s.GetAllConversions()
			require.NoError(t, err)
			assert.Len(t, all, 1)
		})
	}
}

func TestStore_GetConversionsFiltersByContent(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close()

			a := sampleConversion("doc-a", "vue.define-props", 0)
			b := sampleConversion("doc-b", "vue.define-props", 0)
			require.NoError(t, s.AddConversion(a))
			require.NoError(t, s.AddConversion(b))

			got, err := s.GetConversions(a.ContentID)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, a.ContentID, got[0].ContentID)

			all, err := s.GetAllConversions()
			require.NoError(t, err)
			assert.Len(t, all, 2)
		})
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	s, err := New(Config{Path: path})
	require.NoError(t, err)

	c := sampleConversion("doc", "vue.define-props", 5)
	require.NoError(t, s.AddContent(c.ContentID, "App.vue", 100))
	require.NoError(t, s.AddConversion(c))
	require.NoError(t, s.Close())

	s, err = New(Config{Path: path})
	require.NoError(t, err)
	defer s.Close()

	exists, err := s.ContentExists(c.ContentID)
	require.NoError(t, err)
	assert.True(t, exists)

	all, err := s.GetAllConversions()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, c.Replacement, all[0].Replacement)
}
