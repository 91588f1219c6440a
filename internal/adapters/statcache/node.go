package statcache

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/foundryhq/cbe/internal/core/ports"
)

// NodeID is the unique identifier for the StatCache Graft node.
const NodeID graft.ID = "adapter.statcache"

func init() {
	graft.Register(graft.Node[ports.Stater]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(context.Context) (ports.Stater, error) {
			return New(), nil
		},
	})
}
