package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kick/internal/adapters/logger"
	"go.trai.ch/kick/internal/core/domain"
	"go.trai.ch/zerr"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(fn func()) (string, error) {
	originalStderr := os.Stderr

	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stderr = w

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	if err := w.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	output := <-done

	if err := r.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	os.Stderr = originalStderr

	return output, nil
}

func TestNew_WritesToStderr(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	output, err := captureStderr(func() {
		// Create the logger inside the capture function so it uses the redirected stderr
		lg := logger.New()
		lg.Info("Rebuilding build system")
	})
	require.NoError(t, err)

	assert.Equal(t, "Rebuilding build system\n", output)
}

func TestLogger_Levels(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)

	lg.Info("some message")
	lg.Warn("some warning")
	lg.Error(os.ErrPermission)

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "some message", lines[0])
	assert.Equal(t, "! some warning", lines[1])
	assert.Equal(t, "✗ Error: permission denied", lines[2])
}

func TestLogger_ErrorNil(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)
	lg.SetJSON(true)

	lg.Error(errors.Join(domain.ErrBackupOperation, zerr.New("disk full")))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Contains(t, record["error"], "backup operation failed")
}

func TestLogger_SetOutputKeepsFormat(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&first)
	lg.SetJSON(true)
	lg.SetOutput(&second)

	lg.Info("hello")

	assert.Empty(t, first.String())
	assert.True(t, strings.HasPrefix(second.String(), "{"))
}

func TestFormatError(t *testing.T) {
	err := errors.Join(domain.ErrCommandFailed, zerr.Wrap(os.ErrNotExist, "compiler exited"))

	out := logger.FormatError(err)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "Error: command failed", lines[0])
	assert.Equal(t, "  Caused by:", lines[2])
	assert.Contains(t, out, "compiler exited")
}

func TestFormatError_Plain(t *testing.T) {
	assert.Equal(t, "Error: permission denied", logger.FormatError(os.ErrPermission))
}
