package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/randomwords/internal/config"
	"github.com/at-ishikawa/randomwords/internal/dictionary"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir)

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)

	info, err := os.Stat(filepath.Join(tmpDir, "dictionaries"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	loader, err := config.NewConfigLoader(got)
	require.NoError(t, err)
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "dictionaries"), cfg.Dictionaries.UserDirectory)
	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, filepath.Join(tmpDir, "randomwords.db"), cfg.Database.Path)
	assert.Equal(t, 2, cfg.ParagraphLength)
}

func TestCreateDictionary(t *testing.T) {
	tests := []struct {
		name         string
		opts         []DictionaryOption
		wantTriggers []string
		wantNouns    []string
		wantErr      error
	}{
		{
			name:         "defaults",
			wantTriggers: []string{"pirate"},
			wantNouns:    []string{"apple", "banana"},
		},
		{
			name: "custom triggers and words",
			opts: []DictionaryOption{
				WithTriggers("pirate", "arr"),
				WithWords("nouns-singular", "parrot"),
			},
			wantTriggers: []string{"pirate", "arr"},
			wantNouns:    []string{"parrot"},
		},
		{
			name:    "empty required file",
			opts:    []DictionaryOption{WithWords("verbs-singular")},
			wantErr: dictionary.ErrEmptyCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dictionariesDir := t.TempDir()
			dir := CreateDictionary(t, dictionariesDir, "pirate", tt.opts...)
			assert.Equal(t, filepath.Join(dictionariesDir, "pirate"), dir)

			got, err := dictionary.NewCatalog(dictionariesDir).Load("pirate")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTriggers, got.Info().Triggers)
			assert.Equal(t, tt.wantNouns, got.Words(dictionary.Nouns))
			assert.Equal(t, "Test dictionary pirate", got.Info().Description)
			assert.Len(t, got.ExtendedTerminators(), 1)
		})
	}
}
