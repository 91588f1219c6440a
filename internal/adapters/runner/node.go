package runner

import (
	"context"
	"os"

	"github.com/grindlemire/graft"

	"github.com/foundryhq/cbe/internal/core/ports"
)

// NodeID is the unique identifier for the process runner Graft node.
const NodeID graft.ID = "adapter.runner"

func init() {
	graft.Register(graft.Node[ports.ProcessRunner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(context.Context) (ports.ProcessRunner, error) {
			return New(os.Stdout, os.Stderr), nil
		},
	})
}
