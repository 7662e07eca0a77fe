// Package config loads barrelgen settings from defaults, an optional
// barrelgen.yaml in the registry root, BARRELGEN_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	m "github.com/mouse-blink/barrelgen/internal/model"
)

const (
	// ConfigFileName is the config file looked up in the registry root, without extension.
	ConfigFileName = "barrelgen"
	// EnvPrefix prefixes every environment override, e.g. BARRELGEN_STAGING_DIR.
	EnvPrefix = "BARRELGEN"
)

// Config holds the settings of a registry build.
type Config struct {
	Root        string `mapstructure:"root"`
	StagingDir  string `mapstructure:"staging_dir"`
	IndexFile   string `mapstructure:"index_file"`
	Extension   string `mapstructure:"extension"`
	RewriteMode string `mapstructure:"rewrite_mode"`
	Verbose     bool   `mapstructure:"verbose"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Root:        ".",
		StagingDir:  "__registry__",
		IndexFile:   "index.ts",
		Extension:   ".ts",
		RewriteMode: string(m.RewriteTextual),
	}
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"staging-dir": "staging_dir",
	"index":       "index_file",
	"ext":         "extension",
	"rewrite":     "rewrite_mode",
	"verbose":     "verbose",
}

// LoadOptions controls where Load looks for values.
type LoadOptions struct {
	// Root is the registry root given on the command line, if any.
	Root string
	// ConfigFile forces a specific config file instead of the lookup in Root.
	ConfigFile string
	// Flags are bound by name; only flags the user changed take precedence.
	Flags *pflag.FlagSet
}

// Load resolves the configuration and validates it.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("root", defaults.Root)
	v.SetDefault("staging_dir", defaults.StagingDir)
	v.SetDefault("index_file", defaults.IndexFile)
	v.SetDefault("extension", defaults.Extension)
	v.SetDefault("rewrite_mode", defaults.RewriteMode)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}

			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	if err := readConfigFile(v, opts); err != nil {
		return nil, err
	}

	if opts.Root != "" {
		v.Set("root", opts.Root)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfigFile(v *viper.Viper, opts LoadOptions) error {
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)

		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}

		return nil
	}

	searchDir := opts.Root
	if searchDir == "" {
		searchDir = "."
	}

	v.SetConfigName(ConfigFileName)
	v.AddConfigPath(searchDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}

// Validate rejects settings the pipeline cannot honour.
func (c Config) Validate() error {
	if c.Root == "" {
		return errors.New("root must not be empty")
	}

	if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 {
		return fmt.Errorf("extension %q must start with a dot", c.Extension)
	}

	if c.IndexFile == "" || filepath.Base(c.IndexFile) != c.IndexFile {
		return fmt.Errorf("index file %q must be a plain file name", c.IndexFile)
	}

	if !strings.HasSuffix(c.IndexFile, c.Extension) {
		return fmt.Errorf("index file %q must end with %q", c.IndexFile, c.Extension)
	}

	if c.StagingDir == "" || c.StagingDir == "." || c.StagingDir == ".." ||
		filepath.IsAbs(c.StagingDir) || filepath.Base(c.StagingDir) != c.StagingDir {
		return fmt.Errorf("staging dir %q must be a single directory name inside the root", c.StagingDir)
	}

	if c.StagingDir == c.IndexFile || strings.HasSuffix(c.StagingDir, c.Extension) {
		return fmt.Errorf("staging dir %q must not look like a module file ending in %q", c.StagingDir, c.Extension)
	}

	if !m.RewriteMode(c.RewriteMode).Valid() {
		return fmt.Errorf("unknown rewrite mode %q (want %q or %q)", c.RewriteMode, m.RewriteTextual, m.RewriteScoped)
	}

	return nil
}
