package bootstrap

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kick/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kick/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kick/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kick/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kick/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.bootstrap"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.OracleNodeID,
			fs.FileSystemNodeID,
			shell.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			oracle, err := graft.Dep[ports.ModTimeOracle](ctx)
			if err != nil {
				return nil, err
			}

			files, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewOrchestrator(oracle, files, executor, telemetry, log), nil
		},
	})
}
