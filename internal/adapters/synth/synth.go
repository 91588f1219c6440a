// Package synth implements CommandSynth (spec.md §4.4): given a build
// step and its definitions, assemble the argv that invokes the tool.
package synth

import (
	"os"
	"strings"

	"github.com/foundryhq/cbe/internal/core/domain"
)

// responseFileThreshold is the parsed-input count above which ld
// switches from an inline argv to a spilled response file.
const responseFileThreshold = 50

// Synth assembles the argv for step under defs. manifestPath is
// consulted for ld's response-file reuse rule: an existing "<output>.rsp"
// newer than the manifest is reused as-is rather than rewritten.
type Synth struct {
	ManifestPath domain.Path
}

// New returns a Synth that resolves ld response-file freshness against
// manifestPath.
func New(manifestPath domain.Path) *Synth {
	return &Synth{ManifestPath: manifestPath}
}

// Build returns the argv for step.
func (s *Synth) Build(step domain.BuildStep, defs domain.Definitions) ([]string, error) {
	output := step.Output.String()
	switch step.Tool {
	case domain.ToolCC:
		return s.buildCompile(defs.Get("cc"), defs.Get("cflags"), step.ParsedInputs, output), nil
	case domain.ToolCXX:
		return s.buildCompile(defs.Get("cxx"), defs.Get("cxxflags"), step.ParsedInputs, output), nil
	case domain.ToolLD:
		return s.buildLink(defs, step.ParsedInputs, output)
	case domain.ToolAR:
		return s.buildArchive(step.ParsedInputs, output), nil
	case domain.ToolSLD:
		return s.buildSharedLink(defs, step.ParsedInputs, output), nil
	default:
		return nil, domain.ErrUnknownTool
	}
}

func (s *Synth) buildCompile(compiler, flags string, inputs []domain.Path, output string) []string {
	argv := split(compiler)
	argv = append(argv, split(flags)...)
	argv = append(argv, "-MMD", "-MF", output+".d", "-c")
	argv = append(argv, pathStrings(inputs)...)
	argv = append(argv, "-o", output)
	return argv
}

func (s *Synth) buildLink(defs domain.Definitions, inputs []domain.Path, output string) ([]string, error) {
	linkInputs, err := s.linkInputs(inputs, output)
	if err != nil {
		return nil, err
	}
	argv := split(defs.Get("cxx"))
	argv = append(argv, linkInputs...)
	argv = append(argv, "-o", output)
	argv = append(argv, split(defs.Get("ldflags"))...)
	argv = append(argv, split(defs.Get("ldlibs"))...)
	return argv, nil
}

// linkInputs implements the response-file spill rule: reuse a fresher
// pre-existing "<output>.rsp", spill when there are more than
// responseFileThreshold inputs, otherwise inline.
func (s *Synth) linkInputs(inputs []domain.Path, output string) ([]string, error) {
	rspPath := output + ".rsp"

	if info, err := os.Stat(rspPath); err == nil {
		manifestInfo, mErr := os.Stat(s.ManifestPath.String())
		if mErr == nil && info.ModTime().After(manifestInfo.ModTime()) {
			return []string{"@" + rspPath}, nil
		}
	}

	if len(inputs) > responseFileThreshold {
		var b strings.Builder
		for _, in := range inputs {
			b.WriteString(in.String())
			b.WriteByte('\n')
		}
		if err := os.WriteFile(rspPath, []byte(b.String()), 0o644); err != nil {
			return nil, err
		}
		return []string{"@" + rspPath}, nil
	}

	return pathStrings(inputs), nil
}

func (s *Synth) buildArchive(inputs []domain.Path, output string) []string {
	argv := []string{"ar", "rcs", output}
	return append(argv, pathStrings(inputs)...)
}

func (s *Synth) buildSharedLink(defs domain.Definitions, inputs []domain.Path, output string) []string {
	argv := split(defs.Get("cxx"))
	argv = append(argv, "-shared")
	argv = append(argv, pathStrings(inputs)...)
	argv = append(argv, "-o", output)
	return argv
}

// split tokenises s on ASCII spaces, discarding empty tokens.
func split(s string) []string {
	fields := strings.Split(s, " ")
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func pathStrings(paths []domain.Path) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.String()
	}
	return out
}
