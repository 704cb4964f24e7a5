package app

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/FranGuam/remote-id-encoder-decoder/internal/remoteid"
)

// Default configuration constants
const (
	DefaultLogLevel = "info"
	DefaultFormat   = FormatText
	DefaultColor    = false
	DefaultLogUTC   = true
)

// DefaultPackTypes is the Pack layout used when none is configured
var DefaultPackTypes = []string{"basic-id", "location", "system"}

// Output formats
const (
	FormatText = "text" // Hex for encoded data, labelled fields for decoded data
	FormatYAML = "yaml"
	FormatHex  = "hex"
)

// Config holds application configuration
type Config struct {
	ConfigFile  string
	LogLevel    string
	Verbose     bool
	Format      string
	Color       bool
	PackTypes   []string
	ShowVersion bool

	// Scan frame log, disabled when LogDir is empty
	LogDir       string
	LogRotateUTC bool
	KeepDays     int
}

// DefaultConfig returns a configuration with every default applied
func DefaultConfig() Config {
	return Config{
		LogLevel:     DefaultLogLevel,
		Format:       DefaultFormat,
		Color:        DefaultColor,
		PackTypes:    append([]string(nil), DefaultPackTypes...),
		LogRotateUTC: DefaultLogUTC,
	}
}

// FileConfig is the layout of the TOML configuration file
type FileConfig struct {
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
	Output struct {
		Format string `toml:"format"`
		Color  bool   `toml:"color"`
	} `toml:"output"`
	Encode struct {
		Pack []string `toml:"pack"`
	} `toml:"encode"`
	Scan struct {
		LogDir   string `toml:"log_dir"`
		UTC      bool   `toml:"utc"`
		KeepDays int    `toml:"keep_days"`
	} `toml:"scan"`
}

// Config file keys, also the names of the flags that override them
const (
	KeyLogLevel = "log-level"
	KeyFormat   = "format"
	KeyColor    = "color"
	KeyPack     = "pack"
	KeyLogDir   = "log-dir"
	KeyUTC      = "utc"
	KeyKeepDays = "keep-days"
)

// MergeFile applies the settings of a TOML file to c. Keys the file does not
// set, and keys for which isExplicit reports true, are left alone.
func (c *Config) MergeFile(path string, isExplicit func(key string) bool) error {
	var fc FileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q in config file %s", undecoded[0].String(), path)
	}

	if isExplicit == nil {
		isExplicit = func(string) bool { return false }
	}

	if meta.IsDefined("log", "level") && !isExplicit(KeyLogLevel) {
		c.LogLevel = fc.Log.Level
	}
	if meta.IsDefined("output", "format") && !isExplicit(KeyFormat) {
		c.Format = fc.Output.Format
	}
	if meta.IsDefined("output", "color") && !isExplicit(KeyColor) {
		c.Color = fc.Output.Color
	}
	if meta.IsDefined("encode", "pack") && !isExplicit(KeyPack) {
		c.PackTypes = fc.Encode.Pack
	}
	if meta.IsDefined("scan", "log_dir") && !isExplicit(KeyLogDir) {
		c.LogDir = fc.Scan.LogDir
	}
	if meta.IsDefined("scan", "utc") && !isExplicit(KeyUTC) {
		c.LogRotateUTC = fc.Scan.UTC
	}
	if meta.IsDefined("scan", "keep_days") && !isExplicit(KeyKeepDays) {
		c.KeepDays = fc.Scan.KeepDays
	}

	return nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}

	switch c.Format {
	case FormatText, FormatYAML, FormatHex:
	default:
		return fmt.Errorf("unknown output format %q (want text, yaml or hex)", c.Format)
	}

	if _, err := c.MessageTypes(); err != nil {
		return err
	}
	if c.KeepDays < 0 {
		return fmt.Errorf("keep-days must not be negative")
	}
	return nil
}

// Level returns the logrus level selected by LogLevel and Verbose
func (c *Config) Level() (logrus.Level, error) {
	if c.Verbose {
		return logrus.DebugLevel, nil
	}
	if c.LogLevel == "" {
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid log level: %w", err)
	}
	return level, nil
}

// MessageTypes parses PackTypes
func (c *Config) MessageTypes() ([]remoteid.MessageType, error) {
	types := make([]remoteid.MessageType, 0, len(c.PackTypes))
	for _, name := range c.PackTypes {
		for _, part := range strings.Split(name, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			t, err := remoteid.ParseMessageType(part)
			if err != nil {
				return nil, err
			}
			types = append(types, t)
		}
	}
	return types, nil
}
