// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/foundryhq/cbe/internal/adapters/logger"
	_ "github.com/foundryhq/cbe/internal/adapters/runner"
	_ "github.com/foundryhq/cbe/internal/adapters/statcache"
	// Register the app node.
	_ "github.com/foundryhq/cbe/internal/app"
)
