package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

// DefaultPath is read when no configuration file is named explicitly.
const DefaultPath = "logo.yaml"

// Formats lists the AST dump formats the CLI understands.
var Formats = []string{"sexpr", "repr", "yaml"}

type Config struct {
	Format   string `yaml:"Format" toml:"format"`
	LogLevel string `yaml:"LogLevel" toml:"log_level"`
	Trace    bool   `yaml:"Trace" toml:"trace"`
}

func Default() Config {
	return Config{
		Format:   "sexpr",
		LogLevel: "WARNING",
	}
}

// Load reads path over the defaults. Files ending in .toml are decoded as
// TOML, anything else as YAML.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("error reading %s: %w", path, err)
		}
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error reading %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// LoadDefault is Load for DefaultPath, except that a missing file is not an
// error.
func LoadDefault() (Config, error) {
	if _, err := os.Stat(DefaultPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(DefaultPath)
}

func (c Config) Validate() error {
	for _, f := range Formats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q, expected one of %s", c.Format, strings.Join(Formats, ", "))
}

func (c Config) Write(path string) error {
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	return nil
}
