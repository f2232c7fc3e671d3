package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kick/internal/core/ports"
	"go.trai.ch/kick/internal/engine/bootstrap"
	_ "go.trai.ch/kick/internal/wiring"
)

// TestGraftResolvesNodes ensures every node the bootstrap needs is registered
// and its dependencies resolve.
func TestGraftResolvesNodes(t *testing.T) {
	ctx := context.Background()

	orch, _, err := graft.ExecuteFor[*bootstrap.Orchestrator](ctx)
	require.NoError(t, err)
	require.NotNil(t, orch)

	loader, _, err := graft.ExecuteFor[ports.ConfigLoader](ctx)
	require.NoError(t, err)
	require.NotNil(t, loader)

	resolver, _, err := graft.ExecuteFor[ports.IdentityResolver](ctx)
	require.NoError(t, err)
	require.NotNil(t, resolver)
}
