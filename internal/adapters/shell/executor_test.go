package shell_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kick/internal/adapters/shell"
	"go.trai.ch/kick/internal/core/domain"
)

func TestExecutor_Execute_Output(t *testing.T) {
	var stdout, stderr bytes.Buffer
	executor := shell.NewExecutor()

	cmd := domain.NewCommand("sh", "-c", "echo line1; echo line2; echo oops >&2")
	err := executor.Execute(context.Background(), cmd, &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "line1\nline2\n", stdout.String())
	assert.Equal(t, "oops\n", stderr.String())
}

func TestExecutor_Execute_Blocks(t *testing.T) {
	tmpDir := t.TempDir()
	marker := filepath.Join(tmpDir, "done")
	executor := shell.NewExecutor()

	cmd := domain.NewCommand("sh", "-c", `sleep 0.1; touch "$0"`, marker)
	require.NoError(t, executor.Execute(context.Background(), cmd, &bytes.Buffer{}, &bytes.Buffer{}))

	assert.FileExists(t, marker)
}

func TestExecutor_Execute_InvalidCommand(t *testing.T) {
	executor := shell.NewExecutor()

	cmd := domain.NewCommand("nonexistent-command-xyz123")
	err := executor.Execute(context.Background(), cmd, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCommandStart))
	assert.False(t, errors.Is(err, domain.ErrCommandFailed))
}

func TestExecutor_Execute_NotExecutable(t *testing.T) {
	tmpDir := t.TempDir()
	script := filepath.Join(tmpDir, "build")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nexit 0\n"), 0o600))

	err := shell.NewExecutor().Execute(context.Background(), domain.NewCommand(script), &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCommandStart))
}

func TestExecutor_Execute_CommandFailure(t *testing.T) {
	executor := shell.NewExecutor()

	cmd := domain.NewCommand("sh", "-c", "exit 42")
	err := executor.Execute(context.Background(), cmd, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCommandFailed))
	assert.False(t, errors.Is(err, domain.ErrCommandStart))
	assert.True(t, strings.Contains(err.Error(), "command failed"))
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	executor := shell.NewExecutor()

	err := executor.Execute(context.Background(), domain.NewCommand(), &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCommandStart))
}

func TestExecutor_Execute_AbsolutePath(t *testing.T) {
	tmpDir := t.TempDir()
	script := filepath.Join(tmpDir, "build")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho \"$1\"\n"), 0o700))

	var stdout bytes.Buffer
	err := shell.NewExecutor().Execute(context.Background(), domain.NewCommand(script, "hello"), &stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "hello\n", stdout.String())
}
