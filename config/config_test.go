package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "caesar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "words.txt", cfg.WordList)
	assert.Equal(t, "story.txt", cfg.Story)
	assert.Equal(t, SourceFile, cfg.Dictionary.Source)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
word_list: data/words.txt
story: data/story.txt
dictionary:
  source: sql
  driver: sqlite
  dsn: file:words.db
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/words.txt", cfg.WordList)
	assert.Equal(t, "data/story.txt", cfg.Story)
	assert.Equal(t, SourceSQL, cfg.Dictionary.Source)
	assert.Equal(t, "sqlite", cfg.Dictionary.Driver)
	assert.Equal(t, "file:words.db", cfg.Dictionary.DSN)
	assert.Equal(t, "SELECT word FROM words", cfg.Dictionary.Query, "unset keys keep their defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestEnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, "word_list: from-yaml.txt\n")
	t.Setenv("CAESAR_WORDLIST", "from-env.txt")
	t.Setenv("CAESAR_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env.txt", cfg.WordList)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadErrors(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		_, err := Load(writeConfig(t, "word_list: [unterminated\n"))
		assert.Error(t, err)
	})

	t.Run("Unknown source", func(t *testing.T) {
		_, err := Load(writeConfig(t, "dictionary:\n  source: ldap\n"))
		assert.ErrorContains(t, err, "unknown dictionary source")
	})

	t.Run("SQL without DSN", func(t *testing.T) {
		_, err := Load(writeConfig(t, "dictionary:\n  source: sql\n"))
		assert.ErrorContains(t, err, "dsn")
	})
}
