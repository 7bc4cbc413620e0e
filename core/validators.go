// File: validators.go
//
// Purpose:
//   - Single canonical source of truth for the matrix invariants.
//   - Return wrapped sentinel errors (ErrInvalidMatrix base) so call
//     sites can match with errors.Is at any wrapping depth.
//   - No panics: malformed input is a caller error, reported as a value.
//
// The original tool this module reimplements tolerated malformed input
// silently; Validate is the explicit boundary that replaces that
// permissiveness. detect.Detect applies it by default and offers
// WithoutValidation to reproduce the tolerant behavior.

package core

import "fmt"

// Validate checks the full invariant set of an AllocationMatrix:
//
//  1. matrix is non-nil;
//  2. process and resource IDs are non-empty and unique, and the two
//     namespaces are disjoint;
//  3. resource totals, allocations, and requests are non-negative;
//  4. every mapped resource ID names a resource of the matrix;
//  5. per resource, allocations summed over processes stay ≤ Total.
//
// The first violation found is returned, wrapped with enough context
// to locate it. Checks run in the fixed order above.
// Complexity: O(N·R).
func Validate(m *AllocationMatrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if err := validateIDs(m); err != nil {
		return err
	}
	if err := validateQuantities(m); err != nil {
		return err
	}

	return validateTotals(m)
}

// validateIDs checks emptiness, uniqueness, and namespace disjointness.
func validateIDs(m *AllocationMatrix) error {
	resources := make(map[string]struct{}, len(m.Resources))
	for _, r := range m.Resources {
		if r.ID == "" {
			return ErrEmptyResourceID
		}
		if _, dup := resources[r.ID]; dup {
			return fmt.Errorf("resource %q: %w", r.ID, ErrDuplicateResourceID)
		}
		resources[r.ID] = struct{}{}
	}

	processes := make(map[string]struct{}, len(m.Processes))
	for _, p := range m.Processes {
		if p.ID == "" {
			return ErrEmptyProcessID
		}
		if _, dup := processes[p.ID]; dup {
			return fmt.Errorf("process %q: %w", p.ID, ErrDuplicateProcessID)
		}
		if _, clash := resources[p.ID]; clash {
			return fmt.Errorf("id %q: %w", p.ID, ErrIDCollision)
		}
		processes[p.ID] = struct{}{}
	}

	return nil
}

// validateQuantities checks sign and resource membership of every
// mapped amount, and the sign of every total.
func validateQuantities(m *AllocationMatrix) error {
	known := make(map[string]struct{}, len(m.Resources))
	for _, r := range m.Resources {
		if r.Total < 0 {
			return fmt.Errorf("resource %q total %d: %w", r.ID, r.Total, ErrNegativeQuantity)
		}
		known[r.ID] = struct{}{}
	}

	check := func(pid, kind string, amounts map[string]int) error {
		for id, n := range amounts {
			if _, ok := known[id]; !ok {
				return fmt.Errorf("process %q %s of %q: %w", pid, kind, id, ErrUnknownResource)
			}
			if n < 0 {
				return fmt.Errorf("process %q %s of %q is %d: %w", pid, kind, id, n, ErrNegativeQuantity)
			}
		}

		return nil
	}

	for _, p := range m.Processes {
		if err := check(p.ID, "allocation", p.Allocation); err != nil {
			return err
		}
		if err := check(p.ID, "request", p.Request); err != nil {
			return err
		}
	}

	return nil
}

// validateTotals checks that no resource is allocated beyond its total.
// Assumes validateQuantities passed (no unknown IDs remain).
func validateTotals(m *AllocationMatrix) error {
	held := make(map[string]int, len(m.Resources))
	for _, p := range m.Processes {
		for id, n := range p.Allocation {
			held[id] += n
		}
	}
	for _, r := range m.Resources {
		if held[r.ID] > r.Total {
			return fmt.Errorf("resource %q: %d allocated of %d total: %w",
				r.ID, held[r.ID], r.Total, ErrOverAllocated)
		}
	}

	return nil
}
