package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/nmeilick/durflex"
	"github.com/urfave/cli/v2"
)

// Config holds the application configuration
type Config struct {
	Defaults *DefaultsConfig `hcl:"defaults,block"`
	Log      *LogConfig      `hcl:"log,block"`
	Store    *StoreConfig    `hcl:"store,block"`
}

const (
	// AppName is the main application name
	AppName = "durflex"

	// EmbeddedPath names the embedded configuration in messages
	EmbeddedPath = "<embedded>"
)

// getConfigLocations returns all standard locations where config files are searched
func getConfigLocations() []string {
	var locations []string

	// Get executable path to check for config in same directory
	execPath, err := os.Executable()
	if err == nil {
		execDir := filepath.Dir(execPath)
		locations = append(locations, filepath.Join(execDir, AppName+".hcl"))
	}

	// XDG paths for Linux, appropriate equivalents for Windows and macOS
	userConfigFile, err := xdg.ConfigFile(AppName + ".hcl")
	if err == nil {
		locations = append(locations, userConfigFile)
	}

	userConfigDir, err := xdg.ConfigFile(AppName)
	if err == nil {
		locations = append(locations, filepath.Join(userConfigDir, "config.hcl"))
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		locations = append(locations,
			filepath.Join(homeDir, "."+AppName, "config.hcl"),
			filepath.Join(homeDir, "."+AppName+".hcl"),
		)
	}

	// System-wide locations (OS-specific)
	switch runtime.GOOS {
	case "windows":
		programData := os.Getenv("ProgramData")
		if programData != "" {
			locations = append(locations,
				filepath.Join(programData, AppName, "config.hcl"),
			)
		}
	case "darwin":
		locations = append(locations,
			"/Library/Application Support/"+AppName+"/config.hcl",
			"/etc/"+AppName+"/config.hcl",
			"/etc/"+AppName+".hcl",
		)
	default:
		locations = append(locations,
			"/etc/"+AppName+"/config.hcl",
			"/etc/"+AppName+".hcl",
		)
	}

	return locations
}

// FindConfigFile looks for the configuration file in standard locations
func FindConfigFile() string {
	for _, loc := range getConfigLocations() {
		if stat, err := os.Stat(loc); err == nil && stat.Mode().IsRegular() {
			return loc
		}
	}

	return ""
}

// Decode parses HCL source and normalizes the result. The filename is only
// used in diagnostics.
func Decode(filename string, src []byte) (*Config, error) {
	cfg := &Config{}
	if err := hclsimple.Decode(filename, src, nil, cfg); err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	if err := cfg.Normalize(); err != nil {
		return nil, fmt.Errorf("config has problems: %s: %w", filename, err)
	}
	return cfg, nil
}

// LoadFile loads and normalizes the configuration at path
func LoadFile(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Decode(path, src)
}

// LoadConfig loads the configuration from the specified file, a standard location or an embedded default
func LoadConfig(c *cli.Context) (*Config, string, error) {
	path := c.String("config")
	if path == "" {
		path = FindConfigFile()
	}

	if path == "" {
		if len(durflex.EmbeddedConfig) > 5 {
			cfg, err := Decode("embedded_config.hcl", durflex.EmbeddedConfig)
			return cfg, EmbeddedPath, err
		}

		lines := []string{"configuration not found. The following locations where checked"}
		for _, loc := range getConfigLocations() {
			lines = append(lines, "  - "+loc)
		}
		lines = append(lines, "  - <embedded config>")
		return nil, "", errors.New(strings.Join(lines, "\n"))
	}

	cfg, err := LoadFile(path)
	return cfg, path, err
}

// Normalize fills in missing blocks and validates all of them
func (cfg *Config) Normalize() error {
	if cfg.Defaults == nil {
		cfg.Defaults = DefaultDefaultsConfig()
	}
	if cfg.Log == nil {
		cfg.Log = DefaultLogConfig()
	}
	if cfg.Store == nil {
		cfg.Store = DefaultStoreConfig()
	}

	if err := cfg.Defaults.Normalize(); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	if err := cfg.Log.Normalize(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := cfg.Store.Normalize(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}

// SampleConfig returns a commented sample configuration file
func SampleConfig() string {
	return strings.Join([]string{
		"# durflex configuration",
		"",
		DefaultsSampleConfig(),
		"",
		LogSampleConfig(),
		"",
		StoreSampleConfig(),
		"",
	}, "\n")
}
