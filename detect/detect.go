package detect

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridlock/core"
)

// Fixed step wording. Consumers display and parse these verbatim; do
// not reword without versioning the trace format.
const (
	descInitial     = "Initial available resources"
	descAdmitted    = "Process %s can be executed with the available resources."
	descSatisfiable = " Its resource requests can be satisfied."
	descReleases    = " After completion, %s releases its resources."
	descDeadlock    = "No process can be satisfied with the available resources. Deadlock detected involving processes: %s"
	descSafe        = "All processes have been executed successfully. System is in a safe state. Safe sequence: %s"

	// sequenceSeparator joins the safe sequence in the success step.
	sequenceSeparator = " → "
)

// run encapsulates the mutable state of one detection pass.
type run struct {
	matrix    *core.AllocationMatrix // private deep copy, never the caller's
	opts      Options
	available map[string]int // working availability, mutated on release
	finished  map[string]struct{}
	order     []string // all process IDs in matrix order
	safe      []string // admission order so far
	steps     []Step
}

// Detect runs the safety/deadlock algorithm on m and returns the full
// result with its step trace.
//
// Returns ErrNilMatrix for a nil matrix and a core.ErrInvalidMatrix
// wrapped sentinel when default validation rejects the input; a
// detected deadlock is a regular Result, never an error.
//
// Complexity: O(N²·R); at most N rounds for N processes.
func Detect(m *core.AllocationMatrix, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Validation {
		if err := core.Validate(m); err != nil {
			return nil, err
		}
	}

	// Work on a private value-semantics copy; the caller's matrix must
	// come back bit-for-bit unchanged.
	work := m.Clone()
	n := len(work.Processes)
	r := &run{
		matrix:    work,
		opts:      o,
		available: core.AvailabilityMap(work),
		finished:  make(map[string]struct{}, n),
		order:     work.ProcessIDs(),
		safe:      make([]string, 0, n),
		steps:     make([]Step, 0, n+2),
	}
	r.record(descInitial, r.remaining(), nil)

	return r.loop(), nil
}

// loop drives rounds until every process finished or none could.
func (r *run) loop() *Result {
	for round := 1; ; round++ {
		r.opts.OnRound(round)
		if r.admitOne(round) {
			continue
		}
		if len(r.finished) < len(r.order) {
			return r.deadlocked()
		}

		return r.completed()
	}
}

// admitOne scans processes in matrix order and admits the first
// unfinished one whose positive requests fit the availability.
// Exactly one admission per call; reports whether one happened.
func (r *run) admitOne(round int) bool {
	for _, p := range r.matrix.Processes {
		if _, done := r.finished[p.ID]; done {
			continue
		}
		if !r.executable(p) {
			continue
		}

		r.finished[p.ID] = struct{}{}
		r.safe = append(r.safe, p.ID)
		r.release(p)
		r.opts.OnAdmit(p.ID, round)

		desc := fmt.Sprintf(descAdmitted, p.ID)
		if p.HasPositiveRequest() {
			desc += descSatisfiable
		}
		desc += fmt.Sprintf(descReleases, p.ID)
		r.record(desc, r.remaining(), []string{p.ID})

		return true
	}

	return false
}

// executable reports whether every strictly positive requested amount
// of p fits inside the current availability. Entries absent from the
// request map, or present with a value ≤ 0, impose no constraint; a
// positive request for an ID the availability map does not know reads
// as available 0 and blocks.
func (r *run) executable(p core.Process) bool {
	for id, want := range p.Request {
		if want <= 0 {
			continue
		}
		if want > r.available[id] {
			return false
		}
	}

	return true
}

// release adds p's entire allocation back into availability. Amounts
// are added regardless of sign, and IDs unknown to the availability map
// gain an entry; with default validation neither case can occur.
func (r *run) release(p core.Process) {
	for id, held := range p.Allocation {
		r.available[id] += held
	}
}

// remaining returns the unfinished process IDs in matrix order.
func (r *run) remaining() []string {
	out := make([]string, 0, len(r.order)-len(r.finished))
	for _, id := range r.order {
		if _, done := r.finished[id]; !done {
			out = append(out, id)
		}
	}

	return out
}

// record appends a step carrying a fresh snapshot of the availability.
func (r *run) record(desc string, remaining, processed []string) {
	snapshot := make(map[string]int, len(r.available))
	for id, n := range r.available {
		snapshot[id] = n
	}
	r.steps = append(r.steps, Step{
		Description: desc,
		Remaining:   remaining,
		Available:   snapshot,
		Processed:   processed,
	})
}

// deadlocked finalizes a run in which a full round admitted nothing
// while unfinished processes remain. SafeSequence stays nil: the
// deadlock is the answer, not a failure.
func (r *run) deadlocked() *Result {
	stuck := r.remaining()
	r.record(fmt.Sprintf(descDeadlock, strings.Join(stuck, ", ")), stuck, nil)

	return &Result{
		Deadlocked:   stuck,
		SafeSequence: nil,
		Steps:        r.steps,
	}
}

// completed finalizes a safe run. The success step is omitted only when
// the run produced no admission steps at all (an empty process list).
func (r *run) completed() *Result {
	if len(r.steps) > 1 {
		r.record(fmt.Sprintf(descSafe, strings.Join(r.safe, sequenceSeparator)), nil, nil)
	}

	return &Result{
		Deadlocked:   []string{},
		SafeSequence: r.safe,
		Steps:        r.steps,
	}
}
