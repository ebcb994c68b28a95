package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Dictionary sources.
const (
	SourceFile = "file"
	SourceSQL  = "sql"
)

// Config holds the resources the cipher tools load at startup.
type Config struct {
	// WordList is the word list file used when Dictionary.Source is "file".
	WordList string `yaml:"word_list" env:"CAESAR_WORDLIST"`
	// Story is the ciphertext decrypted by the story command.
	Story string `yaml:"story" env:"CAESAR_STORY"`

	Dictionary DictionaryConfig `yaml:"dictionary"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// DictionaryConfig selects where words are loaded from.
type DictionaryConfig struct {
	Source string `yaml:"source" env:"CAESAR_DICT_SOURCE"` // file, sql
	Driver string `yaml:"driver" env:"CAESAR_DICT_DRIVER"` // postgres, sqlite
	DSN    string `yaml:"dsn" env:"CAESAR_DICT_DSN"`
	Query  string `yaml:"query" env:"CAESAR_DICT_QUERY"`
}

type LoggingConfig struct {
	Level       string `yaml:"level" env:"CAESAR_LOG_LEVEL"`
	Development bool   `yaml:"development" env:"CAESAR_LOG_DEVELOPMENT"`
}

func DefaultConfig() *Config {
	return &Config{
		WordList: "words.txt",
		Story:    "story.txt",
		Dictionary: DictionaryConfig{
			Source: SourceFile,
			Driver: "postgres",
			Query:  "SELECT word FROM words",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load starts from the defaults, applies the YAML file at path if one is
// given, then environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the dictionary source is usable.
func (c *Config) Validate() error {
	switch c.Dictionary.Source {
	case SourceFile:
		if c.WordList == "" {
			return errors.New("word_list is required for the file dictionary source")
		}
	case SourceSQL:
		if c.Dictionary.Driver == "" || c.Dictionary.DSN == "" {
			return errors.New("dictionary driver and dsn are required for the sql source")
		}
	default:
		return fmt.Errorf("unknown dictionary source %q", c.Dictionary.Source)
	}
	return nil
}
