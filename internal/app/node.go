package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kick/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/kick/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/kick/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/kick/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"go.trai.ch/kick/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/kick/internal/core/ports"
	"go.trai.ch/kick/internal/engine/bootstrap"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.IdentityNodeID,
			bootstrap.NodeID,
			shell.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log, telemetry), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.IdentityResolver](ctx)
	if err != nil {
		return nil, err
	}

	orchestrator, err := graft.Dep[*bootstrap.Orchestrator](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, resolver, orchestrator, executor, log), nil
}
