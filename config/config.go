package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../tools/schema-generator

// Default values applied by WithDefaults.
const (
	DefaultDetailLevel       = "summary"
	DefaultToolResultPreview = 200
	DefaultOutputDir         = "llm_convos"
	DefaultTitle             = "Claude Code Conversation"
)

// ExportConfig defines settings for transcript conversion and export.
type ExportConfig struct {
	// DetailLevel controls the verbosity of tool calls in the document.
	// "summary" (default): one short line per tool call.
	// "full": also shows previews of written and edited text.
	DetailLevel string `yaml:"detail_level,omitempty"`

	// ToolResultPreview is how many characters of each tool result are kept.
	// 0 (default): 200 characters.
	ToolResultPreview int `yaml:"tool_result_preview,omitempty"`

	// OutputDir is the directory, relative to the project root, that export
	// writes documents into. Defaults to "llm_convos".
	OutputDir string `yaml:"output_dir,omitempty"`

	// ProjectsDir overrides where Claude Code conversation folders live.
	// Defaults to ~/.claude/projects.
	ProjectsDir string `yaml:"projects_dir,omitempty"`

	// Title is the heading of every generated document.
	Title string `yaml:"title,omitempty"`
}

// Config is the top-level configuration structure for agexport.
type Config struct {
	Export ExportConfig `yaml:"export,omitempty"`
}

// WithDefaults fills unset fields.
func (c Config) WithDefaults() Config {
	if c.Export.DetailLevel == "" {
		c.Export.DetailLevel = DefaultDetailLevel
	}
	if c.Export.ToolResultPreview <= 0 {
		c.Export.ToolResultPreview = DefaultToolResultPreview
	}
	if c.Export.OutputDir == "" {
		c.Export.OutputDir = DefaultOutputDir
	}
	if c.Export.Title == "" {
		c.Export.Title = DefaultTitle
	}
	return c
}

// Validate rejects values the converter cannot honour.
func (c Config) Validate() error {
	switch c.Export.DetailLevel {
	case "", "summary", "full":
	default:
		return fmt.Errorf("invalid detail_level %q: expected 'summary' or 'full'", c.Export.DetailLevel)
	}
	if c.Export.ToolResultPreview < 0 {
		return fmt.Errorf("invalid tool_result_preview %d: must not be negative", c.Export.ToolResultPreview)
	}
	return nil
}

// LoadFile reads a standalone YAML config file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
