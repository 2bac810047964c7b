package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectConfig is the optional curse.yaml project file, read by
// LoadProjectConfig.
type ProjectConfig struct {
	// Entry names the project's entry source file. cmd/cursec does not
	// read it: the file to compile is always the one given on the
	// command line.
	Entry string `yaml:"entry"`
	// WarningsAsErrors is parsed but not read: every diagnostic the
	// compiler reports already fails the build.
	WarningsAsErrors bool `yaml:"warningsAsErrors"`
	// Color controls ANSI diagnostic rendering: "auto", "always", "never".
	Color string `yaml:"color"`
}

// DefaultProjectConfig returns the configuration used when no curse.yaml
// is present.
func DefaultProjectConfig() ProjectConfig {
	return ProjectConfig{Color: "auto"}
}

// LoadProjectConfig reads and parses a curse.yaml file at path. A missing
// file is not an error; the defaults are returned instead.
func LoadProjectConfig(path string) (ProjectConfig, error) {
	cfg := DefaultProjectConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	return cfg, nil
}
