package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kick/internal/adapters/telemetry/progrock"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
	assert.Empty(t, recorder.Stages())
}

func TestRecorder_Stages(t *testing.T) {
	recorder := progrock.New()
	ctx := context.Background()

	_, backup := recorder.Record(ctx, "backup")
	backup.Log("copying build to build.old")
	backup.Complete(nil)

	_, compile := recorder.Record(ctx, "recompile")
	compile.Log("go build -o build.new build.go")
	compile.Complete(errors.New("compiler exited with status 1"))

	stages := recorder.Stages()
	require.Len(t, stages, 2)

	assert.Equal(t, "backup", stages[0].Name)
	assert.Equal(t, []string{"copying build to build.old"}, stages[0].Lines)
	assert.True(t, stages[0].Done)
	assert.False(t, stages[0].Failed())

	assert.Equal(t, "recompile", stages[1].Name)
	assert.Equal(t, []string{"go build -o build.new build.go"}, stages[1].Lines)
	assert.True(t, stages[1].Failed())
	assert.Equal(t, "compiler exited with status 1", stages[1].Err)

	assert.NoError(t, recorder.Close())
	assert.Len(t, recorder.Stages(), 2, "journal stays readable after close")
}
