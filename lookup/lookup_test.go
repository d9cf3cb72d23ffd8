package lookup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srappel/oimkit/errors"
)

func TestLookup(t *testing.T) {
	table := Default()

	tests := []struct {
		name     string
		category Category
		code     string
		expected string
		found    bool
		wantErr  bool
	}{
		{
			name:     "known production code",
			category: CategoryProduction,
			code:     "2",
			expected: "colored",
			found:    true,
		},
		{
			name:     "known prime meridian code",
			category: CategoryPrimeMeridian,
			code:     "0",
			expected: "Greenwich",
			found:    true,
		},
		{
			name:     "known projection code",
			category: CategoryProjection,
			code:     "4",
			expected: "UTM",
			found:    true,
		},
		{
			name:     "known iso type code",
			category: CategoryISOType,
			code:     "3",
			expected: "set",
			found:    true,
		},
		{
			name:     "unknown code is tolerated",
			category: CategoryProduction,
			code:     "42",
			found:    false,
		},
		{
			name:     "empty code is tolerated",
			category: CategoryProjection,
			code:     "",
			found:    false,
		},
		{
			name:     "undeclared category fails",
			category: Category("paper_stock"),
			code:     "1",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, found, err := table.Lookup(tt.category, tt.code)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrUnknownCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, label)
		})
	}
}

func TestCategories(t *testing.T) {
	cats := Default().Categories()
	assert.Equal(t, []Category{
		CategoryISOType,
		CategoryPrimeMeridian,
		CategoryProduction,
		CategoryProjection,
	}, cats)
}

func TestLoad(t *testing.T) {
	t.Run("overlays file entries on defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lookup.yaml")
		content := "production:\n  \"3\": \"photocopy (positive)\"\n  \"10\": \"blueline print\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		table, err := Load(path)
		require.NoError(t, err)

		// Overridden entry
		label, found, err := table.Lookup(CategoryProduction, "3")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "photocopy (positive)", label)

		// New entry
		label, found, err = table.Lookup(CategoryProduction, "10")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "blueline print", label)

		// Untouched default in another category
		label, found, err = table.Lookup(CategoryProjection, "1")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "polyconic", label)
	})

	t.Run("load does not mutate defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lookup.yaml")
		require.NoError(t, os.WriteFile(path, []byte("production:\n  \"0\": \"changed\"\n"), 0644))

		_, err := Load(path)
		require.NoError(t, err)

		label, found, err := Default().Lookup(CategoryProduction, "0")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "uncolored", label)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrResourceNotFound)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("production: [not: a: map"), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrMalformedInput)
	})

	t.Run("unknown category in file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cat.yaml")
		require.NoError(t, os.WriteFile(path, []byte("paper_stock:\n  \"1\": \"vellum\"\n"), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrUnknownCategory)
	})
}
