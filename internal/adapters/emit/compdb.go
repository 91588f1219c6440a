package emit

import (
	"encoding/json"
	"io"

	"github.com/foundryhq/cbe/internal/core/domain"
)

// compDBEntry is one element of a JSON compilation database
// (spec.md §6): directory is the absolute cwd the tool was invoked
// from, arguments is the synthesised argv, file is the step's first
// parsed input.
type compDBEntry struct {
	Directory string   `json:"directory"`
	Arguments []string `json:"arguments"`
	File      string   `json:"file"`
	Output    string   `json:"output"`
}

// synthesizer produces the argv for a step; internal/adapters/synth.Synth
// satisfies this.
type synthesizer interface {
	Build(step domain.BuildStep, defs domain.Definitions) ([]string, error)
}

// CompDB writes a JSON compilation database for every cc/cxx step in
// graph that has at least one parsed input to w. Steps of any other
// tool kind, and cc/cxx steps with no parsed input, are omitted.
func CompDB(w io.Writer, graph *domain.BuildGraph, defs domain.Definitions, s synthesizer, directory string) error {
	entries := make([]compDBEntry, 0, len(graph.Steps()))
	for _, step := range graph.Steps() {
		if step.Tool != domain.ToolCC && step.Tool != domain.ToolCXX {
			continue
		}
		if len(step.ParsedInputs) == 0 {
			continue
		}
		argv, err := s.Build(step, defs)
		if err != nil {
			return err
		}
		entries = append(entries, compDBEntry{
			Directory: directory,
			Arguments: argv,
			File:      step.ParsedInputs[0].String(),
			Output:    step.Output.String(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
