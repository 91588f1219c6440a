// Package manifest implements the line-based manifest lexer described in
// spec.md §4.1/§9: one directive per line, CRLF tolerated, "#" comments,
// blank lines ignored.
package manifest

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/foundryhq/cbe/internal/core/domain"
	"github.com/foundryhq/cbe/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileLoader implements ports.ManifestLoader by reading a manifest file
// from disk.
type FileLoader struct{}

var _ ports.ManifestLoader = FileLoader{}

// Load reads the manifest at path and returns the build graph it
// describes together with any DEF variables.
func (FileLoader) Load(path string) (*domain.BuildGraph, domain.Definitions, error) {
	return Load(path)
}

// Load is the free function form of FileLoader.Load, used directly by
// callers that don't need the ports.ManifestLoader indirection (e.g. the
// CLI's --graph and --compdb subcommands, which never invoke a builder).
func Load(path string) (*domain.BuildGraph, domain.Definitions, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, zerr.With(domain.ErrManifestNotFound, "path", path)
		}
		return nil, nil, zerr.Wrap(err, "failed to stat manifest")
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return nil, nil, zerr.With(domain.ErrManifestIsSymlink, "path", path)
	}

	f, err := os.Open(path) //nolint:gosec // path is a build-time argument, not untrusted input
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to open manifest")
	}
	defer f.Close()

	graph := domain.NewBuildGraph()
	defs := make(domain.Definitions)

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := parseLine(graph, defs, line); err != nil {
			return nil, nil, zerr.With(zerr.Wrap(err, "malformed manifest line"), "line", strconv.Itoa(lineNo))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, zerr.Wrap(err, "failed to read manifest")
	}

	return graph, defs, nil
}

func parseLine(graph *domain.BuildGraph, defs domain.Definitions, line string) error {
	if rest, ok := strings.CutPrefix(line, "DEF|"); ok {
		key, value, ok := strings.Cut(rest, "|")
		if !ok {
			return zerr.With(domain.ErrManifestMalformed, "reason", "DEF directive missing value")
		}
		defs[key] = value
		return nil
	}
	return parseStepLine(graph, line)
}

// parseStepLine parses "<tool>|<comma-separated inputs>|<output>". Only
// the first two pipes are delimiters; everything after the second pipe
// is the output path verbatim.
func parseStepLine(graph *domain.BuildGraph, line string) error {
	toolToken, rest, ok := strings.Cut(line, "|")
	if !ok {
		return zerr.With(domain.ErrManifestMalformed, "reason", "missing '|' after tool token")
	}
	inputsToken, output, ok := strings.Cut(rest, "|")
	if !ok {
		return zerr.With(domain.ErrManifestMalformed, "reason", "missing output field")
	}
	if output == "" {
		return zerr.With(domain.ErrManifestMalformed, "reason", "empty output path")
	}

	kind, ok := domain.ParseToolKind(toolToken)
	if !ok {
		return zerr.With(domain.ErrUnknownTool, "tool", toolToken)
	}

	step := domain.BuildStep{Tool: kind, Output: domain.NewPath(output)}
	for _, tok := range strings.Split(inputsToken, ",") {
		if tok == "" {
			continue
		}
		if opaque, ok := strings.CutPrefix(tok, "!"); ok {
			step.OpaqueInputs = append(step.OpaqueInputs, domain.NewPath(opaque))
			continue
		}
		step.ParsedInputs = append(step.ParsedInputs, domain.NewPath(tok))
	}

	_, err := graph.AddStep(step)
	return err
}
