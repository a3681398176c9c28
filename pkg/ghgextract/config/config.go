// Package config loads run configuration from built-in defaults, an optional
// YAML file and the environment, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Backend names accepted by Config.Backend.
const (
	BackendDocAI     = "docai"
	BackendDocAIJSON = "docai-json"
	BackendLocal     = "local"
	BackendXLSX      = "xlsx"
)

// Config holds all run configuration.
type Config struct {
	// InputDir is the root of the <sector>/<company> report tree.
	InputDir string `yaml:"input_dir" env:"GHG_INPUT_DIR"`

	// Backend selects the table-detection backend (default: docai)
	Backend string `yaml:"backend" env:"GHG_BACKEND" default:"docai"`

	// Keywords make a table row relevant (default: scope 1, scope 2, scope 3)
	Keywords []string `yaml:"keywords" env:"GHG_KEYWORDS" default:"scope 1,scope 2,scope 3"`

	// Mode is the extraction variant, basic or standard (default: standard)
	Mode string `yaml:"mode" env:"GHG_MODE" default:"standard"`

	// Workers is the number of documents processed concurrently (default: 1)
	Workers int `yaml:"workers" env:"GHG_WORKERS" default:"1"`

	// Sectors is the allow-list used by the clean filter.
	Sectors []string `yaml:"sectors" env:"GHG_SECTORS"`

	DocAI   DocAIConfig   `yaml:"docai"`
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
}

// DocAIConfig holds Document AI processor settings.
type DocAIConfig struct {
	ProjectID   string `yaml:"project_id" env:"DOCAI_PROJECT_ID"`
	ProcessorID string `yaml:"processor_id" env:"DOCAI_PROCESSOR_ID"`

	// Location is the processor location (default: us)
	Location string `yaml:"location" env:"DOCAI_LOCATION" default:"us"`

	// MaxPages rejects larger PDFs before upload (default: 15)
	MaxPages int `yaml:"max_pages" env:"DOCAI_MAX_PAGES" default:"15"`

	// Timeout bounds one processing request (default: 2m)
	Timeout time.Duration `yaml:"timeout" env:"DOCAI_TIMEOUT" default:"2m"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `yaml:"level" env:"LOG_LEVEL" default:"info"`

	// Format is the log output format: text or json (default: text)
	Format string `yaml:"format" env:"LOG_FORMAT" default:"text"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Addr is the listen address (default: :8080)
	Addr string `yaml:"addr" env:"SERVER_ADDR" default:":8080"`

	// ShutdownTimeout bounds graceful shutdown (default: 10s)
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	switch c.Backend {
	case BackendDocAI:
		if c.DocAI.ProjectID == "" {
			errs = append(errs, "docai.project_id is required for the docai backend")
		}
		if c.DocAI.ProcessorID == "" {
			errs = append(errs, "docai.processor_id is required for the docai backend")
		}
	case BackendDocAIJSON, BackendLocal, BackendXLSX:
	default:
		errs = append(errs, fmt.Sprintf("backend (%q) must be one of: docai, docai-json, local, xlsx", c.Backend))
	}

	if c.Mode != "basic" && c.Mode != "standard" {
		errs = append(errs, fmt.Sprintf("mode (%q) must be one of: basic, standard", c.Mode))
	}
	if c.Workers <= 0 {
		errs = append(errs, "workers must be positive")
	}
	if c.DocAI.MaxPages < 0 {
		errs = append(errs, "docai.max_pages must be non-negative")
	}
	if c.DocAI.Timeout < 0 {
		errs = append(errs, "docai.timeout must be non-negative")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("logging.level (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("logging.format (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
