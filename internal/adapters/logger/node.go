package logger

import (
	"context"
	"os"

	"github.com/grindlemire/graft"

	"github.com/foundryhq/cbe/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

// ProgressNodeID is the unique identifier for the progress-writer Graft node.
const ProgressNodeID graft.ID = "adapter.progress"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[*Progress]{
		ID:        ProgressNodeID,
		Cacheable: true,
		Run: func(context.Context) (*Progress, error) {
			return NewProgress(os.Stdout), nil
		},
	})
}
