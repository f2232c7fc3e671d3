package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kick/cmd/kick/commands"
	"go.trai.ch/kick/internal/adapters/telemetry"
	"go.trai.ch/kick/internal/app"
	"go.trai.ch/kick/internal/core/domain"
	"go.trai.ch/kick/internal/core/ports/mocks"
	"go.trai.ch/kick/internal/engine/bootstrap"
	"go.uber.org/mock/gomock"
)

type cliMocks struct {
	loader   *mocks.MockConfigLoader
	resolver *mocks.MockIdentityResolver
	oracle   *mocks.MockModTimeOracle
	files    *mocks.MockFileSystem
	executor *mocks.MockExecutor
}

func newCLI(t *testing.T) (*commands.CLI, *cliMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &cliMocks{
		loader:   mocks.NewMockConfigLoader(ctrl),
		resolver: mocks.NewMockIdentityResolver(ctrl),
		oracle:   mocks.NewMockModTimeOracle(ctrl),
		files:    mocks.NewMockFileSystem(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
	}
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	orch := bootstrap.NewOrchestrator(m.oracle, m.files, m.executor, telemetry.NewNoOp(), mockLogger)
	a := app.New(m.loader, m.resolver, orch, m.executor, mockLogger).
		WithOutput(&bytes.Buffer{}, &bytes.Buffer{})
	return commands.New(a), m
}

func TestRoot_BuildsWhenFresh(t *testing.T) {
	cli, m := newCLI(t)

	// 1. Config is read from the flag value
	m.loader.EXPECT().Load("custom.yaml").Return(domain.DefaultSettings(), nil).Times(1)
	// 2. Identity is resolved once
	m.resolver.EXPECT().Resolve().Return("build", nil).Times(1)
	// 3. Binary newer than source
	m.oracle.EXPECT().ModTime("build").Return(int64(100), nil)
	m.oracle.EXPECT().ModTime("build.go").Return(int64(50), nil)
	// 4. Project build runs once
	m.executor.EXPECT().
		Execute(gomock.Any(), domain.NewCommand("go", "build", "./..."), gomock.Any(), gomock.Any()).
		Return(nil).Times(1)

	cli.SetArgs([]string{"-c", "custom.yaml"})

	require.NoError(t, cli.Execute(context.Background()))
}

func TestRoot_ReexecGetsOriginalArgs(t *testing.T) {
	cli, m := newCLI(t)

	m.loader.EXPECT().Load("custom.yaml").Return(domain.DefaultSettings(), nil)
	m.resolver.EXPECT().Resolve().Return("build", nil)
	m.oracle.EXPECT().ModTime("build").Return(int64(50), nil)
	m.oracle.EXPECT().ModTime("build.go").Return(int64(100), nil)
	m.files.EXPECT().Copy("build", "build.old").Return(nil)
	m.executor.EXPECT().
		Execute(gomock.Any(), domain.NewCommand("go", "build", "-o", "build.new", "build.go"), gomock.Any(), gomock.Any()).
		Return(nil)
	m.files.EXPECT().Rename("build.new", "build").Return(nil)
	m.files.EXPECT().Remove("build.old").Return(nil)
	m.executor.EXPECT().
		Execute(gomock.Any(), domain.NewCommand("./build", "-c", "custom.yaml"), gomock.Any(), gomock.Any()).
		Return(nil).Times(1)

	cli.SetArgs([]string{"-c", "custom.yaml"})

	require.NoError(t, cli.Execute(context.Background()))
}

func TestCheck_ReportsStale(t *testing.T) {
	cli, m := newCLI(t)

	m.loader.EXPECT().Load("kick.yaml").Return(domain.DefaultSettings(), nil)
	m.resolver.EXPECT().Resolve().Return("build", nil)
	m.oracle.EXPECT().ModTime("build").Return(int64(50), nil)
	m.oracle.EXPECT().ModTime("build.go").Return(int64(50), nil)

	cli.SetArgs([]string{"check"})

	require.NoError(t, cli.Execute(context.Background()))
}

func TestRoot_RejectsPositionalArgs(t *testing.T) {
	cli, _ := newCLI(t)

	cli.SetArgs([]string{"unexpected"})

	assert.Error(t, cli.Execute(context.Background()))
}

func TestRoot_Help(t *testing.T) {
	cli, _ := newCLI(t)

	cli.SetArgs([]string{"--help"})

	// Cobra handles help automatically
	assert.NoError(t, cli.Execute(context.Background()))
}
