package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the configuration file read when no path is given.
const DefaultFile = "pokerhands.hcl"

// Config is the complete pokerhands configuration
type Config struct {
	Log     *LogSettings     `hcl:"log,block"`
	Harness *HarnessSettings `hcl:"harness,block"`
	Output  *OutputSettings  `hcl:"output,block"`
}

// LogSettings controls logging
type LogSettings struct {
	Level string `hcl:"level,optional"`
}

// HarnessSettings controls how case files are checked
type HarnessSettings struct {
	Workers       int  `hcl:"workers,optional"`
	StopOnFailure bool `hcl:"stop_on_failure,optional"`
}

// OutputSettings controls terminal rendering
type OutputSettings struct {
	Color   *bool `hcl:"color,optional"`
	Explain *bool `hcl:"explain,optional"`
}

// Default returns the default configuration
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults for anything left unset.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	if c.Harness == nil {
		c.Harness = &HarnessSettings{}
	}
	if c.Harness.Workers == 0 {
		c.Harness.Workers = runtime.GOMAXPROCS(0)
	}

	if c.Output == nil {
		c.Output = &OutputSettings{}
	}
	if c.Output.Color == nil {
		c.Output.Color = boolPtr(true)
	}
	if c.Output.Explain == nil {
		c.Output.Explain = boolPtr(true)
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if c.Harness.Workers < 1 {
		return fmt.Errorf("invalid worker count: %d", c.Harness.Workers)
	}
	return nil
}

// LogLevel returns the configured level, falling back to info.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func boolPtr(b bool) *bool {
	return &b
}
