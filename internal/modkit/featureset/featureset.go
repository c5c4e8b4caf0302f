// Package featureset resolves a requested set of feature modules against a
// dependency table, producing the full closure in dependency order along with
// structured warnings and problems
package featureset

import "fmt"

// Feature identifies a feature module by name
type Feature string

// Table maps each known feature to the features it depends on
// a feature with no dependencies maps to an empty (or nil) slice
type Table map[Feature][]Feature

// ProblemKind classifies resolution problems
type ProblemKind uint8

const (
	// ProblemUnknown marks a requested or required feature missing from the table
	ProblemUnknown ProblemKind = iota

	// ProblemCycle marks a dependency cycle in the table
	ProblemCycle
)

// Problem is a structured resolution diagnostic
type Problem struct {
	Kind    ProblemKind
	Feature Feature

	// Cycle holds the dependency path for ProblemCycle, ending at the
	// feature that closes the loop
	Cycle []Feature
}

// String renders the problem for logs
func (p Problem) String() string {
	switch p.Kind {
	case ProblemCycle:
		return fmt.Sprintf("dependency cycle through %q: %v", p.Feature, p.Cycle)
	default:
		return fmt.Sprintf("unknown module %q", p.Feature)
	}
}

// Warning records a feature pulled in as a dependency rather than requested
type Warning struct {
	Feature    Feature
	RequiredBy Feature
}

// String renders the warning for logs
func (w Warning) String() string {
	return fmt.Sprintf("auto-added dependency %q required by %q", w.Feature, w.RequiredBy)
}

// Resolution is the result of resolving a request against a table
type Resolution struct {
	// Features is the dependency closure in dependency order
	// every feature appears after all of its dependencies, exactly once
	Features []Feature

	// Warnings lists features added beyond the explicit request
	Warnings []Warning

	// Problems lists unknown features and cycles; non-empty means Failed
	Problems []Problem
}

// Failed reports whether resolution hit any problem
func (r Resolution) Failed() bool { return len(r.Problems) > 0 }

// Has reports whether f is part of the resolved set
func (r Resolution) Has(f Feature) bool {
	for _, have := range r.Features {
		if have == f {
			return true
		}
	}
	return false
}

// AutoAdded returns resolved features that were not in the original request
func (r Resolution) AutoAdded(requested []Feature) []Feature {
	asked := make(map[Feature]bool, len(requested))
	for _, f := range requested {
		asked[f] = true
	}
	var out []Feature
	for _, f := range r.Features {
		if !asked[f] {
			out = append(out, f)
		}
	}
	return out
}

// frame is one entry on the explicit traversal stack
type frame struct {
	feature Feature
	next    int
}

// Resolve walks the dependency table from the requested features and returns
// the closure in dependency order. Traversal uses an explicit stack so deep
// chains cannot exhaust the goroutine stack. Unknown features are reported
// once per identifier; cycles are reported with the offending path
func Resolve(table Table, requested []Feature) Resolution {
	var res Resolution

	validated := make(map[Feature]bool, len(table))
	reported := make(map[Feature]bool)
	onStack := make(map[Feature]bool)

	var stack []frame

	// push validates f before putting it on the stack
	// returns false when f should not be traversed (done, unknown, or cyclic)
	push := func(f Feature) bool {
		if validated[f] {
			return false
		}
		if _, known := table[f]; !known {
			if !reported[f] {
				reported[f] = true
				res.Problems = append(res.Problems, Problem{Kind: ProblemUnknown, Feature: f})
			}
			return false
		}
		if onStack[f] {
			cycle := make([]Feature, 0, len(stack)+1)
			start := 0
			for i, fr := range stack {
				if fr.feature == f {
					start = i
					break
				}
			}
			for _, fr := range stack[start:] {
				cycle = append(cycle, fr.feature)
			}
			cycle = append(cycle, f)
			res.Problems = append(res.Problems, Problem{Kind: ProblemCycle, Feature: f, Cycle: cycle})
			return false
		}
		onStack[f] = true
		stack = append(stack, frame{feature: f})
		return true
	}

	for _, root := range requested {
		if !push(root) {
			continue
		}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			deps := table[top.feature]
			if top.next < len(deps) {
				dep := deps[top.next]
				top.next++
				push(dep)
				continue
			}

			// all dependencies emitted, emit the feature itself
			f := top.feature
			stack = stack[:len(stack)-1]
			delete(onStack, f)
			validated[f] = true
			res.Features = append(res.Features, f)

			if len(stack) > 0 {
				res.Warnings = append(res.Warnings, Warning{
					Feature:    f,
					RequiredBy: stack[len(stack)-1].feature,
				})
			}
		}
	}

	return res
}
