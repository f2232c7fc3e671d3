// Package config provides the configuration loader for kick.
package config

import (
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/kick/internal/core/domain"
	"go.trai.ch/kick/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up when none is given.
const DefaultFilename = "kick.yaml"

// Kickfile represents the structure of the kick.yaml configuration file.
type Kickfile struct {
	Version      string   `yaml:"version"`
	SourceSuffix string   `yaml:"source_suffix"`
	Compile      []string `yaml:"compile"`
	Build        []string `yaml:"build"`
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration at path. A missing file yields
// domain.DefaultSettings. Fields left out of the file keep their defaults.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return settings, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var kickfile Kickfile
	if err := yaml.Unmarshal(data, &kickfile); err != nil {
		return nil, errors.Join(domain.ErrInvalidConfig,
			zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path))
	}

	if kickfile.Version != "" && kickfile.Version != "1" {
		l.logger.Warn("unknown config version " + kickfile.Version + ", reading it as version 1")
	}

	if kickfile.SourceSuffix != "" {
		settings.SourceSuffix = kickfile.SourceSuffix
	}
	if len(kickfile.Compile) > 0 {
		settings.Toolchain = domain.Toolchain{Template: kickfile.Compile}
	}
	if len(kickfile.Build) > 0 {
		settings.Build = domain.NewCommand(kickfile.Build...)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}
