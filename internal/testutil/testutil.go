// Package testutil provides shared test helpers for creating config files and dictionary fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// SetupTestConfig creates a config file using a SQLite database and a user dictionary
// directory inside tmpDir. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dictionariesDir := filepath.Join(tmpDir, "dictionaries")
	require.NoError(t, os.MkdirAll(dictionariesDir, 0755))

	configContent := fmt.Sprintf(`source: english
length: short
paragraph_length: 2
dictionaries:
  user_directory: %s
database:
  driver: sqlite
  path: %s
`,
		dictionariesDir,
		filepath.Join(tmpDir, "randomwords.db"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// DictionaryOption configures optional fields when creating a dictionary fixture.
type DictionaryOption func(*dictionaryConfig)

type dictionaryConfig struct {
	description string
	triggers    []string
	files       map[string][]string
}

// WithDescription sets the description written to config.yml.
func WithDescription(description string) DictionaryOption {
	return func(cfg *dictionaryConfig) {
		cfg.description = description
	}
}

// WithTriggers sets the triggers written to config.yml.
func WithTriggers(triggers ...string) DictionaryOption {
	return func(cfg *dictionaryConfig) {
		cfg.triggers = triggers
	}
}

// WithWords replaces the lines of one word file, for example "nouns-singular".
// No words leaves the file empty.
func WithWords(stem string, words ...string) DictionaryOption {
	return func(cfg *dictionaryConfig) {
		cfg.files[stem+".txt"] = words
	}
}

// CreateDictionary writes a small but complete dictionary source named name under
// dictionariesDir and returns its directory.
func CreateDictionary(t *testing.T, dictionariesDir, name string, opts ...DictionaryOption) string {
	t.Helper()

	cfg := dictionaryConfig{
		description: "Test dictionary " + name,
		triggers:    []string{name},
		files: map[string][]string{
			"nouns-singular.txt":            {"apple", "banana"},
			"nouns-plural.txt":              {"apples", "bananas"},
			"verbs-singular.txt":            {"runs", "sleeps"},
			"verbs-plural.txt":              {"run", "sleep"},
			"verbs-passive.txt":             {"eaten"},
			"adverbs.txt":                   {"quickly", "slowly"},
			"adjectives.txt":                {"old", "red"},
			"articles-singular.txt":         {"the", "a"},
			"articles-plural.txt":           {"some", "the"},
			"prepositions.txt":              {"with", "under"},
			"clauses.txt":                   {"when it rains"},
			"conjunctions-coordinating.txt": {"and", "but"},
			"conjunctions-subordinate.txt":  {"because", "while"},
			"phrases.txt":                   {"in the end"},
			"terminators.txt":               {",.", ",?", "", ",…"},
			"names.txt":                     {"Ada", "", "Lovelace", "", "Grace Hopper"},
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	dir := filepath.Join(dictionariesDir, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	for file, lines := range cfg.files {
		content := strings.Join(lines, "\n")
		if len(lines) > 0 {
			content += "\n"
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0644))
	}

	writeYamlFile(t, filepath.Join(dir, "config.yml"), map[string]any{
		"name":        name,
		"description": cfg.description,
		"triggers":    cfg.triggers,
	})
	writeYamlFile(t, filepath.Join(dir, "numbers.yml"), map[string]string{
		"digits": "zero one two three four five six seven eight nine",
		"teens":  "ten eleven twelve thirteen fourteen fifteen sixteen seventeen eighteen nineteen",
		"tens":   "twenty thirty forty fifty sixty seventy eighty ninety",
		"places": "one ten hundred thousand million",
	})
	return dir
}

func writeYamlFile(t *testing.T, path string, value any) {
	t.Helper()

	content, err := yaml.Marshal(value)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, content, 0644))
}
