package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kick/internal/app"
)

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		setupConfig  func(tmpDir string)
		args         []string
		expectedExit int
	}{
		{
			name:         "Version",
			setupConfig:  func(string) {},
			args:         []string{"kick", "version"},
			expectedExit: 0,
		},
		{
			// The test binary has no source file next to it in the temp dir
			name:         "Missing source file",
			setupConfig:  func(string) {},
			args:         []string{"kick", "check"},
			expectedExit: 1,
		},
		{
			name: "Invalid config",
			setupConfig: func(tmpDir string) {
				err := os.WriteFile(tmpDir+"/kick.yaml", []byte(`source_suffix: "go"`), 0o600)
				if err != nil {
					t.Fatalf("failed to write config: %v", err)
				}
			},
			args:         []string{"kick", "check"},
			expectedExit: 1,
		},
		{
			name:         "Unknown flag",
			setupConfig:  func(string) {},
			args:         []string{"kick", "--no-such-flag"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			tt.setupConfig(tmpDir)

			// Change to tmpDir for relative path resolution
			originalWd, _ := os.Getwd()
			err := os.Chdir(tmpDir)
			if err != nil {
				t.Fatalf("failed to chdir: %v", err)
			}
			defer func() {
				_ = os.Chdir(originalWd)
			}()

			os.Args = tt.args

			exitCode := run(func(a *app.App) {
				a.WithOutput(&bytes.Buffer{}, &bytes.Buffer{})
			})
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}
