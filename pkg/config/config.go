// Package config loads the resolution engine's configuration. It is read
// once at startup; the engine never watches or reloads it.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config is the full configuration surface of the drop pipeline.
type Config struct {
	// ProjectRoot is the directory the path normalizer rewrites against.
	// Defaults to the HIP environment variable, like the host does.
	ProjectRoot string `mapstructure:"project_root"`
	// ProjectVar is the variable name substituted for ProjectRoot,
	// without the dollar sign.
	ProjectVar string `mapstructure:"project_var"`
	// CaseInsensitiveRoot compares the root prefix ignoring case, for
	// case-insensitive filesystems.
	CaseInsensitiveRoot bool `mapstructure:"case_insensitive_root"`
	// AdaptHops bounds how far up the network hierarchy resolution may
	// look for a supporting container.
	AdaptHops int `mapstructure:"adapt_hops"`
	// FileSpacing is the horizontal gap between root nodes of a
	// multi-file drop.
	FileSpacing float64 `mapstructure:"file_spacing"`
	// ChainSpacing is the grid step between nodes of one chain.
	ChainSpacing float64 `mapstructure:"chain_spacing"`
	// DetectSequences rewrites trailing frame numbers to $F expressions.
	DetectSequences bool `mapstructure:"detect_sequences"`
	// ExtensionOverrides optionally points at a YAML extension table
	// layered over the built-in one.
	ExtensionOverrides string `mapstructure:"extension_overrides"`
}

const envPrefix = "NODEDROP"

// Load reads configuration from an optional file plus NODEDROP_* env
// variables over built-in defaults. An empty path means "nodedrop.yaml
// in the working directory, if present"; a non-empty path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("project_root", os.Getenv("HIP"))
	v.SetDefault("project_var", "HIP")
	v.SetDefault("case_insensitive_root", false)
	v.SetDefault("adapt_hops", 1)
	v.SetDefault("file_spacing", 3.0)
	v.SetDefault("chain_spacing", 1.0)
	v.SetDefault("detect_sequences", true)
	v.SetDefault("extension_overrides", "")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("nodedrop")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.AdaptHops < 0 {
		return Config{}, fmt.Errorf("adapt_hops must be >= 0, got %d", cfg.AdaptHops)
	}
	return cfg, nil
}

// Default returns the built-in configuration without touching any file.
func Default() Config {
	return Config{
		ProjectRoot:     os.Getenv("HIP"),
		ProjectVar:      "HIP",
		AdaptHops:       1,
		FileSpacing:     3.0,
		ChainSpacing:    1.0,
		DetectSequences: true,
	}
}
