package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateProducer is returned when two steps declare the same output.
	ErrDuplicateProducer = zerr.New("duplicate producer for output")

	// ErrCycleDetected is returned when the build graph contains a directed cycle,
	// whether found by topological sort or inferred from a scheduler stall.
	ErrCycleDetected = zerr.New("cycle detected in build graph")

	// ErrUnknownTool is returned when a step names a tool outside the closed
	// cc/cxx/ld/ar/sld enumeration.
	ErrUnknownTool = zerr.New("unknown tool kind")

	// ErrManifestMalformed is returned by the manifest loader for a line it
	// cannot parse.
	ErrManifestMalformed = zerr.New("malformed manifest line")

	// ErrManifestNotFound is returned when the manifest file does not exist.
	ErrManifestNotFound = zerr.New("build manifest does not exist")

	// ErrManifestIsSymlink is returned when the manifest path is a symlink,
	// which this engine refuses to follow (its target could change mid-build).
	ErrManifestIsSymlink = zerr.New("build manifest must not be a symlink")

	// ErrStepFailed is returned when a step's tool invocation exits non-zero.
	ErrStepFailed = zerr.New("step failed")

	// ErrSpawnFailed is returned when the process runner could not start the child.
	ErrSpawnFailed = zerr.New("failed to spawn step process")

	// ErrBuildFailed is the aggregate error execute() reports when any step failed.
	ErrBuildFailed = zerr.New("build failed")

	// ErrTargetNotFound reports a target path that is not a node in the graph.
	// No function in this module returns it.
	ErrTargetNotFound = zerr.New("target not found in build graph")
)
