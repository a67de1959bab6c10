// Package config provides configuration management for the tripreport
// CLI. Precedence (highest to lowest): flags > env vars > config file >
// defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds all CLI configuration options.
type Config struct {
	// SiteLevel selects whether trip roots contain site directories.
	SiteLevel bool `koanf:"site_level"`
	// Strict turns a non-empty aggregate issue set into a non-zero exit.
	Strict bool `koanf:"strict"`
	// Title overrides the HTML report title.
	Title string `koanf:"title"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
	// NoColor disables styled console output.
	NoColor bool `koanf:"no_color"`
}

const envPrefix = "TRIPREPORT_"

var configFileUsed string

// GetConfigFileUsed returns the path of the config file that was loaded,
// or empty when none was found.
func GetConfigFileUsed() string { return configFileUsed }

// findConfigFile finds the config file to use.
// Priority: explicit path > tripreport.yaml > tripreport.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"tripreport.yaml", "tripreport.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load layers defaults, an optional config file, TRIPREPORT_ environment
// variables and explicitly-set CLI flags into a Config.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"site_level": true,
		"strict":     false,
		"title":      "",
		"verbose":    false,
		"no_color":   false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment variables: TRIPREPORT_SITE_LEVEL -> site_level
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}
