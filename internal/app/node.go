package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/foundryhq/cbe/internal/adapters/logger"    //nolint:depguard // wired in app layer
	"github.com/foundryhq/cbe/internal/adapters/runner"    //nolint:depguard // wired in app layer
	"github.com/foundryhq/cbe/internal/adapters/statcache" //nolint:depguard // wired in app layer
	"github.com/foundryhq/cbe/internal/core/ports"
)

// NodeID is the unique identifier for the App Graft node.
const NodeID graft.ID = "app.main"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			logger.ProgressNodeID,
			statcache.NodeID,
			runner.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			stat, err := graft.Dep[ports.Stater](ctx)
			if err != nil {
				return nil, err
			}
			run, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			progress, err := graft.Dep[*logger.Progress](ctx)
			if err != nil {
				return nil, err
			}
			return New(log, stat, run, progress), nil
		},
	})
}
