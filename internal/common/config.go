package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the page object configuration
type Config struct {
	Driver   DriverConfig   `toml:"driver"`
	Locators LocatorsConfig `toml:"locators"`
	Logging  LoggingConfig  `toml:"logging"`
}

// DriverConfig controls how the automation driver reaches the workbench
type DriverConfig struct {
	RemoteURL    string `toml:"remote_url" validate:"omitempty,url"`    // DevTools endpoint of a running workbench, e.g. "ws://127.0.0.1:9222"; empty launches a local browser
	WorkbenchURL string `toml:"workbench_url" validate:"omitempty,url"` // Page to open after connecting; empty keeps the current page
	Headless     bool   `toml:"headless"`                               // Only used when launching a local browser
	DisableGPU   bool   `toml:"disable_gpu"`
	NoSandbox    bool   `toml:"no_sandbox"`
	WindowWidth  int    `toml:"window_width" validate:"gte=0"`
	WindowHeight int    `toml:"window_height" validate:"gte=0"`
	ImplicitWait string `toml:"implicit_wait"` // How long a lookup waits for an element to appear, e.g. "2s" (default: "0s" = fail immediately)
}

// LocatorsConfig points at an optional locator override file
type LocatorsConfig struct {
	File string `toml:"file"` // TOML or YAML file merged over the default locators
}

// LoggingConfig controls the arbor logger
type LoggingConfig struct {
	Level      string   `toml:"level" validate:"oneof=trace debug info warn error"` // "debug", "info", "warn", "error"
	Output     []string `toml:"output" validate:"dive,oneof=stdout console file"`   // "stdout", "file"
	TimeFormat string   `toml:"time_format"`                                        // Time format for logs (default: "15:04:05")
	File       string   `toml:"file"`                                               // Log file path used by the "file" output
	Format     string   `toml:"format" validate:"oneof=logfmt json"`                // File output format: "logfmt" or "json"
}

// FileOutput reports whether the "file" output is enabled
func (l LoggingConfig) FileOutput() bool {
	return l.hasOutput("file")
}

// ConsoleOutput reports whether the "stdout" or "console" output is enabled
func (l LoggingConfig) ConsoleOutput() bool {
	return l.hasOutput("stdout") || l.hasOutput("console")
}

func (l LoggingConfig) hasOutput(name string) bool {
	for _, output := range l.Output {
		if output == name {
			return true
		}
	}
	return false
}

// NewDefaultConfig creates a configuration with default values
func NewDefaultConfig() *Config {
	return &Config{
		Driver: DriverConfig{
			Headless:     true,
			DisableGPU:   true,
			NoSandbox:    false,
			WindowWidth:  1920,
			WindowHeight: 1080,
			ImplicitWait: "0s", // No implicit wait: a missing element fails the call at once
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05",
			File:       filepath.Join("logs", "pageobjects.log"),
			Format:     "logfmt",
		},
	}
}

// LoadFromFiles loads configuration with priority: default -> file1 -> file2 -> ... -> env
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		// Unmarshal merges into the existing values
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	// Driver configuration
	if remoteURL := os.Getenv("PAGEOBJECTS_DRIVER_REMOTE_URL"); remoteURL != "" {
		config.Driver.RemoteURL = remoteURL
	}
	if workbenchURL := os.Getenv("PAGEOBJECTS_DRIVER_WORKBENCH_URL"); workbenchURL != "" {
		config.Driver.WorkbenchURL = workbenchURL
	}
	if headless := os.Getenv("PAGEOBJECTS_DRIVER_HEADLESS"); headless != "" {
		if h, err := strconv.ParseBool(headless); err == nil {
			config.Driver.Headless = h
		}
	}
	if noSandbox := os.Getenv("PAGEOBJECTS_DRIVER_NO_SANDBOX"); noSandbox != "" {
		if ns, err := strconv.ParseBool(noSandbox); err == nil {
			config.Driver.NoSandbox = ns
		}
	}
	if implicitWait := os.Getenv("PAGEOBJECTS_DRIVER_IMPLICIT_WAIT"); implicitWait != "" {
		config.Driver.ImplicitWait = implicitWait
	}

	// Locators configuration
	if file := os.Getenv("PAGEOBJECTS_LOCATORS_FILE"); file != "" {
		config.Locators.File = file
	}

	// Logging configuration
	if level := os.Getenv("PAGEOBJECTS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if file := os.Getenv("PAGEOBJECTS_LOG_FILE"); file != "" {
		config.Logging.File = file
	}
	if format := os.Getenv("PAGEOBJECTS_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
	if output := os.Getenv("PAGEOBJECTS_LOG_OUTPUT"); output != "" {
		// Split comma-separated output types
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if _, err := c.Driver.ImplicitWaitDuration(); err != nil {
		return err
	}
	if c.Logging.FileOutput() && c.Logging.File == "" {
		return fmt.Errorf("logging.file is required when the file output is enabled")
	}
	return nil
}

// ImplicitWaitDuration parses the implicit wait. An empty value means no wait.
func (d DriverConfig) ImplicitWaitDuration() (time.Duration, error) {
	if d.ImplicitWait == "" {
		return 0, nil
	}
	wait, err := time.ParseDuration(d.ImplicitWait)
	if err != nil {
		return 0, fmt.Errorf("invalid implicit_wait %q: %w", d.ImplicitWait, err)
	}
	if wait < 0 {
		return 0, fmt.Errorf("implicit_wait must not be negative, got %s", wait)
	}
	return wait, nil
}
