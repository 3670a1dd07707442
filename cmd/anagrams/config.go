package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/milden6/anagram"
)

// config is the TOML file read by --config. Keys left out of the file keep
// their default values.
type config struct {
	Words         string `toml:"words"`
	DefaultLength int    `toml:"default_length"`
	MaxLength     int    `toml:"max_length"`
	MinAnagrams   int    `toml:"min_anagrams"`
	FallbackWord  string `toml:"fallback_word"`
}

func defaultConfig() config {
	opts := anagram.DefaultOptions()
	return config{
		DefaultLength: opts.DefaultLength,
		MaxLength:     opts.MaxLength,
		MinAnagrams:   opts.MinAnagrams,
		FallbackWord:  opts.FallbackWord,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

func (c config) options() []anagram.Option {
	return []anagram.Option{
		anagram.WithDefaultLength(c.DefaultLength),
		anagram.WithMaxLength(c.MaxLength),
		anagram.WithMinAnagrams(c.MinAnagrams),
		anagram.WithFallbackWord(c.FallbackWord),
	}
}
