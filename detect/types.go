// Package detect: options, result types, and sentinel errors.
package detect

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNilMatrix is returned if a nil matrix pointer is passed to Detect.
var ErrNilMatrix = errors.New("detect: matrix is nil")

// Option configures Detect behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing a detection run.
type Options struct {
	// Validation controls boundary validation (core.Validate) before
	// the run. Enabled by default; disabling it reproduces the
	// permissive legacy behavior where malformed input yields
	// best-effort results instead of an error.
	Validation bool

	// OnRound is called at the start of each round (1-based).
	OnRound func(round int)

	// OnAdmit is called after a process is admitted in a round.
	OnAdmit func(id string, round int)
}

// DefaultOptions returns Options with validation enabled and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Validation: true,
		OnRound:    func(int) {},
		OnAdmit:    func(string, int) {},
	}
}

// WithoutValidation skips core.Validate: unknown resource IDs, negative
// quantities, and over-allocation are then taken at face value.
func WithoutValidation() Option {
	return func(o *Options) { o.Validation = false }
}

// WithOnRound registers a callback fired when a round begins.
func WithOnRound(fn func(round int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// WithOnAdmit registers a callback fired after each admission.
func WithOnAdmit(fn func(id string, round int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAdmit = fn
		}
	}
}

// Step is one recorded state transition of the run.
type Step struct {
	// Description is the human-readable explanation of this step. The
	// wording is fixed; consumers parse and display it verbatim.
	Description string

	// Remaining lists the process IDs not yet finished, in matrix order.
	Remaining []string

	// Available is a full snapshot of the working availability map
	// right after this step's effect.
	Available map[string]int

	// Processed holds the (at most one) process ID admitted this round;
	// empty for the initial and terminal steps.
	Processed []string
}

// Result is the outcome of one detection run. All fields are freshly
// allocated and owned by the caller.
type Result struct {
	// Deadlocked lists stuck process IDs in matrix order; empty
	// (non-nil) when the snapshot is safe.
	Deadlocked []string

	// SafeSequence is the admission order, or nil when deadlocked.
	SafeSequence []string

	// Steps is the full trace; never empty, the first element is the
	// initial availability snapshot.
	Steps []Step
}

// Safe reports whether the run found a safe completion order.
func (r *Result) Safe() bool { return len(r.Deadlocked) == 0 }

// String renders the step-by-step explanation the way the interactive
// frontends print it. Availability is sorted by resource ID so the
// output is deterministic.
func (r *Result) String() string {
	var b strings.Builder
	if r.Safe() {
		fmt.Fprintf(&b, "No deadlock. Safe sequence: %s\n", strings.Join(r.SafeSequence, " → "))
	} else {
		fmt.Fprintf(&b, "DEADLOCK DETECTED! Processes involved: %s\n", strings.Join(r.Deadlocked, ", "))
	}
	for i, step := range r.Steps {
		fmt.Fprintf(&b, "\nStep %d: %s\n", i+1, step.Description)
		if len(step.Processed) > 0 {
			fmt.Fprintf(&b, "Processed: %s\n", strings.Join(step.Processed, ", "))
		}
		fmt.Fprintf(&b, "Available resources: %s\n", formatAvailable(step.Available))
		if len(step.Remaining) > 0 {
			fmt.Fprintf(&b, "Remaining processes: %s\n", strings.Join(step.Remaining, ", "))
		}
	}

	return b.String()
}

// formatAvailable renders an availability map as "R1=0, R2=1", sorted.
func formatAvailable(avail map[string]int) string {
	ids := make([]string, 0, len(avail))
	for id := range avail {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%s=%d", id, avail[id])
	}

	return strings.Join(parts, ", ")
}
