package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"
)

type Config struct {
	Input struct {
		Path      string `json:"path" yaml:"path" toml:"path"`
		Type      string `json:"type" yaml:"type" toml:"type"` // csv|jsonl|parquet (default csv)
		HasHeader bool   `json:"has_header" yaml:"has_header" toml:"has_header"`
		Delimiter string `json:"delimiter" yaml:"delimiter" toml:"delimiter"`
	} `json:"input" yaml:"input" toml:"input"`
	Output struct {
		Path    string `json:"path" yaml:"path" toml:"path"`
		Schema  string `json:"schema" yaml:"schema" toml:"schema"`
		Table   string `json:"table" yaml:"table" toml:"table"`
		Replace bool   `json:"replace" yaml:"replace" toml:"replace"`
	} `json:"output" yaml:"output" toml:"output"`
	Profile bool `json:"profile" yaml:"profile" toml:"profile"`
}

// LoadConfig reads a config file, choosing the decoder by extension
// (.toml, .yaml/.yml, anything else JSON).
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse toml config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse yaml config: %w", err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse json config: %w", err)
		}
	}
	return &cfg, nil
}
