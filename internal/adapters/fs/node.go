package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kick/internal/core/ports"
)

const (
	OracleNodeID     graft.ID = "adapter.fs.oracle"
	IdentityNodeID   graft.ID = "adapter.fs.identity"
	FileSystemNodeID graft.ID = "adapter.fs.filesystem"
)

func init() {
	graft.Register(graft.Node[ports.ModTimeOracle]{
		ID:        OracleNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModTimeOracle, error) {
			return NewModTimeOracle(), nil
		},
	})

	graft.Register(graft.Node[ports.IdentityResolver]{
		ID:        IdentityNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IdentityResolver, error) {
			return NewIdentityResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.FileSystem]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileSystem, error) {
			return NewFileSystem(), nil
		},
	})
}
