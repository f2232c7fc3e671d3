package domain

import (
	"errors"
	"strings"

	"go.trai.ch/zerr"
)

// Settings is the resolved bootstrap configuration.
type Settings struct {
	SourceSuffix string
	Toolchain    Toolchain
	Build        Command
}

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() *Settings {
	return &Settings{
		SourceSuffix: ".go",
		Toolchain: Toolchain{
			Template: []string{"go", "build", "-o", OutputPlaceholder, SourcePlaceholder},
		},
		Build: NewCommand("go", "build", "./..."),
	}
}

// Validate checks that the settings can drive a rebuild and a project build.
func (s *Settings) Validate() error {
	if !strings.HasPrefix(s.SourceSuffix, ".") || len(s.SourceSuffix) < 2 {
		return errors.Join(ErrInvalidConfig,
			zerr.With(zerr.New("source suffix must start with a dot"), "source_suffix", s.SourceSuffix))
	}
	if !s.Toolchain.Complete() {
		return errors.Join(ErrInvalidConfig,
			zerr.With(zerr.New("compile command must reference {source} and {output}"),
				"compile", strings.Join(s.Toolchain.Template, " ")))
	}
	if s.Build.Empty() {
		return errors.Join(ErrInvalidConfig, zerr.New("build command is empty"))
	}
	return nil
}
