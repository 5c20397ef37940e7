// Package config loads and validates the YAML configuration for the do
// task-runner CLI: the logging section controls the console facade, the
// tasks section lists the commands the runner executes.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/isabella232/dotnet-do/logging"
)

const (
	// Default logging settings
	defaultLogLevel = "information"

	// Default task settings
	defaultTaskCategory = "TASK"
	defaultTaskTimeout  = 30 * time.Minute
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Tasks   []TaskConfig  `yaml:"tasks"`
}

// LoggingConfig defines logging behavior settings
type LoggingConfig struct {
	// Level sets the minimum log level. Valid values: trace, debug,
	// information, warning, error, critical, none
	Level string `yaml:"level"`

	// Categories overrides the minimum level per category name,
	// e.g. {"BUILD": "debug"}
	Categories map[string]string `yaml:"categories"`
}

// TaskConfig defines a single task for the runner
type TaskConfig struct {
	// Name is the human-readable task description shown on start/stop lines
	Name string `yaml:"name"`

	// Category labels the task's log lines; defaults to "TASK"
	Category string `yaml:"category"`

	// Command is the executable to run
	Command string `yaml:"command"`

	// Args are the command's arguments
	Args []string `yaml:"args"`

	// Dir is the working directory; empty means the current directory
	Dir string `yaml:"dir"`

	// Timeout bounds the task's runtime
	Timeout time.Duration `yaml:"timeout"`
}

// LoadConfig reads, parses and validates the config file at path, applying
// defaults to unset fields.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate performs basic validation on the configuration
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging level: %w", err)
	}
	for category, level := range c.Logging.Categories {
		if category == "" {
			return fmt.Errorf("logging category name must not be empty")
		}
		if _, err := logging.ParseLevel(level); err != nil {
			return fmt.Errorf("logging category %q: %w", category, err)
		}
	}
	for i, task := range c.Tasks {
		if task.Name == "" {
			return fmt.Errorf("task %d: name is required", i)
		}
		if task.Command == "" {
			return fmt.Errorf("task %q: command is required", task.Name)
		}
		if task.Timeout < 0 {
			return fmt.Errorf("task %q: timeout must not be negative", task.Name)
		}
	}
	return nil
}

// SetDefaults sets reasonable default values for optional fields
func (c *Config) SetDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	for i := range c.Tasks {
		if c.Tasks[i].Category == "" {
			c.Tasks[i].Category = defaultTaskCategory
		}
		if c.Tasks[i].Timeout == 0 {
			c.Tasks[i].Timeout = defaultTaskTimeout
		}
	}
}

// Filter builds the level predicate shared by all loggers: a category logs
// at a level when the level is at or above the category's configured
// minimum, falling back to the base level for categories without an
// override. Call after Validate; unparseable levels disable the category.
func (c *LoggingConfig) Filter() logging.Filter {
	base, err := logging.ParseLevel(c.Level)
	if err != nil {
		base = logging.LevelNone
	}
	overrides := make(map[string]logging.Level, len(c.Categories))
	for category, level := range c.Categories {
		parsed, err := logging.ParseLevel(level)
		if err != nil {
			parsed = logging.LevelNone
		}
		overrides[category] = parsed
	}

	return func(category string, level logging.Level) bool {
		if level == logging.LevelNone {
			return false
		}
		minimum := base
		if override, ok := overrides[category]; ok {
			minimum = override
		}
		return level >= minimum
	}
}
