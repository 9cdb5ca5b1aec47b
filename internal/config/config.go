// Package config handles run configuration for bibdem.
//
// Defaults are overridden by an optional YAML config file, which in turn is
// overridden by BIBDEM_* environment variables. The CLI loads a local .env
// file before reading the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Reports holds the file names of the four reconciliation reports, written
// into the results directory.
type Reports struct {
	CatalogUnique string `yaml:"catalog_unique,omitempty" json:"catalog_unique"`
	TaggedUnique  string `yaml:"tagged_unique,omitempty" json:"tagged_unique"`
	Intersection  string `yaml:"intersection,omitempty" json:"intersection"`
	Difference    string `yaml:"difference,omitempty" json:"difference"`
}

// Config represents configuration stored in ~/.config/bibdem/config.yml.
type Config struct {
	// CatalogFile is the default TriCat export to reconcile.
	CatalogFile string `yaml:"catalog_file,omitempty" json:"catalog_file"`
	// TaggedFile is the default RIS export to reconcile.
	TaggedFile string `yaml:"tagged_file,omitempty" json:"tagged_file"`
	// ResultsDir is where report files are written.
	ResultsDir string  `yaml:"results_dir,omitempty" json:"results_dir"`
	Reports    Reports `yaml:"reports,omitempty" json:"reports"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "bibdem"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
)

// Environment variable overrides.
const (
	EnvCatalogFile = "BIBDEM_CATALOG_FILE"
	EnvTaggedFile  = "BIBDEM_TAGGED_FILE"
	EnvResultsDir  = "BIBDEM_RESULTS_DIR"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		CatalogFile: "gesammelte.txt",
		TaggedFile:  "neu_tib_gvk_swb.txt",
		ResultsDir:  "results",
		Reports: Reports{
			CatalogUnique: "tricat_unique.txt",
			TaggedUnique:  "bibl_unique.txt",
			Intersection:  "intersection.txt",
			Difference:    "difference.txt",
		},
	}
}

// Path returns the path to the config file. Respects XDG_CONFIG_HOME,
// defaults to ~/.config/bibdem/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load builds the effective configuration: defaults, overlaid with the config
// file at Path() when it exists, overlaid with environment variables.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom is Load with an explicit config file path, for tests and the
// config command. A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No config file; defaults apply.
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overlays BIBDEM_* environment variables onto the config.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvCatalogFile); v != "" {
		cfg.CatalogFile = v
	}
	if v := os.Getenv(EnvTaggedFile); v != "" {
		cfg.TaggedFile = v
	}
	if v := os.Getenv(EnvResultsDir); v != "" {
		cfg.ResultsDir = v
	}
}

// ReportPath returns the path of a report file inside the results directory.
func (c *Config) ReportPath(name string) string {
	return filepath.Join(c.ResultsDir, name)
}
