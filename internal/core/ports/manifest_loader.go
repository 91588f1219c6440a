// Package ports defines the interfaces the core consumes: everything
// spec.md §1 calls an "external collaborator" (manifest lexing, the
// sub-process runner, graph emitters) is given a concrete adapter, but
// the core only ever depends on these interfaces.
package ports

import "github.com/foundryhq/cbe/internal/core/domain"

// ManifestLoader parses a build manifest into a graph and its
// definitions. Implementations own the textual lexing spec.md keeps
// out of the core's scope.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	Load(path string) (*domain.BuildGraph, domain.Definitions, error)
}
