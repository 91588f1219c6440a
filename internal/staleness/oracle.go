// Package staleness implements the StalenessOracle: the predicate that
// decides whether a step's output is out of date relative to its
// inputs and the manifest itself (spec.md §4.3).
package staleness

import (
	"time"

	"github.com/foundryhq/cbe/internal/core/domain"
	"github.com/foundryhq/cbe/internal/core/ports"
)

// Oracle decides whether a step needs to be rebuilt. All filesystem
// lookups go through a ports.Stater so the decision is memoised and
// side-effect free from the oracle's point of view.
type Oracle struct {
	stat         ports.Stater
	manifestPath domain.Path
}

// New returns an Oracle that additionally treats manifestPath as an
// implicit input of every step (spec.md rule 2: a manifest edit
// invalidates all outputs).
func New(stat ports.Stater, manifestPath domain.Path) *Oracle {
	return &Oracle{stat: stat, manifestPath: manifestPath}
}

// NeedsRebuild implements the five staleness predicates of spec.md
// §4.3 in order, short-circuiting on the first one that fires. The
// comparison is >=, not >, so same-second edits conservatively trigger
// a rebuild.
func (o *Oracle) NeedsRebuild(step domain.BuildStep) bool {
	outTime, err := o.stat.ModTime(step.Output)
	if err != nil {
		return true // rule 1: output does not exist (or is unreadable)
	}

	if o.changedSince(o.manifestPath, outTime) {
		return true // rule 2: manifest is newer than the output
	}
	if o.anyChangedSince(step.DepfileInputs, outTime) {
		return true // rule 3
	}
	if o.anyChangedSince(step.OpaqueInputs, outTime) {
		return true // rule 4
	}
	if o.anyChangedSince(step.ParsedInputs, outTime) {
		return true // rule 5
	}
	return false
}

// changedSince reports whether input's mtime is >= outTime. A missing
// or erroring input is treated fail-safe as "changed" (the Stater
// returns the error; it is absorbed here and callers only see the
// boolean effect of it).
func (o *Oracle) changedSince(input domain.Path, outTime time.Time) bool {
	inTime, err := o.stat.ModTime(input)
	if err != nil {
		return true
	}
	return !inTime.Before(outTime)
}

func (o *Oracle) anyChangedSince(inputs []domain.Path, outTime time.Time) bool {
	for _, in := range inputs {
		if o.changedSince(in, outTime) {
			return true
		}
	}
	return false
}
