package detect_test

import (
	"testing"

	"github.com/katalvlaran/gridlock/core"
	"github.com/katalvlaran/gridlock/detect"
	"github.com/stretchr/testify/require"
)

// deadlockMatrix: P1 holds R1 and wants R2; P2 holds R2 and wants R1.
// One instance of each. Classic circular wait.
func deadlockMatrix() *core.AllocationMatrix {
	p1 := core.NewProcess("P1")
	p1.Allocation["R1"] = 1
	p1.Allocation["R2"] = 0
	p1.Request["R1"] = 0
	p1.Request["R2"] = 1

	p2 := core.NewProcess("P2")
	p2.Allocation["R1"] = 0
	p2.Allocation["R2"] = 1
	p2.Request["R1"] = 1
	p2.Request["R2"] = 0

	return &core.AllocationMatrix{
		Processes: []core.Process{p1, p2},
		Resources: []core.Resource{core.NewResource("R1", 1), core.NewResource("R2", 1)},
	}
}

// safeMatrix extends deadlockMatrix with P3 (holds one R2, requests
// nothing) and a second R2 instance, which unknots the circular wait.
func safeMatrix() *core.AllocationMatrix {
	m := deadlockMatrix()
	m.Resources[1] = core.NewResource("R2", 2)

	p3 := core.NewProcess("P3")
	p3.Allocation["R1"] = 0
	p3.Allocation["R2"] = 1
	p3.Request["R1"] = 0
	p3.Request["R2"] = 0
	m.Processes = append(m.Processes, p3)

	return m
}

func TestDetect_NilMatrix(t *testing.T) {
	_, err := detect.Detect(nil)
	require.ErrorIs(t, err, detect.ErrNilMatrix)
}

func TestDetect_Deadlock(t *testing.T) {
	res, err := detect.Detect(deadlockMatrix())
	require.NoError(t, err)

	require.False(t, res.Safe())
	require.Equal(t, []string{"P1", "P2"}, res.Deadlocked)
	require.Nil(t, res.SafeSequence)

	require.Len(t, res.Steps, 2)

	initial := res.Steps[0]
	require.Equal(t, "Initial available resources", initial.Description)
	require.Equal(t, []string{"P1", "P2"}, initial.Remaining)
	require.Equal(t, map[string]int{"R1": 0, "R2": 0}, initial.Available)
	require.Empty(t, initial.Processed)

	final := res.Steps[1]
	require.Equal(t,
		"No process can be satisfied with the available resources. Deadlock detected involving processes: P1, P2",
		final.Description)
	require.Equal(t, []string{"P1", "P2"}, final.Remaining)
	require.Equal(t, map[string]int{"R1": 0, "R2": 0}, final.Available)
	require.Empty(t, final.Processed)
}

func TestDetect_SafeSequence(t *testing.T) {
	res, err := detect.Detect(safeMatrix())
	require.NoError(t, err)

	require.True(t, res.Safe())
	require.Empty(t, res.Deadlocked)
	require.NotNil(t, res.Deadlocked)
	require.Equal(t, []string{"P3", "P1", "P2"}, res.SafeSequence)

	require.Len(t, res.Steps, 5)

	require.Equal(t, "Initial available resources", res.Steps[0].Description)
	require.Equal(t, map[string]int{"R1": 0, "R2": 0}, res.Steps[0].Available)

	// P3 requests nothing positive, so no "requests can be satisfied" clause.
	require.Equal(t,
		"Process P3 can be executed with the available resources. After completion, P3 releases its resources.",
		res.Steps[1].Description)
	require.Equal(t, []string{"P3"}, res.Steps[1].Processed)
	require.Equal(t, []string{"P1", "P2"}, res.Steps[1].Remaining)
	require.Equal(t, map[string]int{"R1": 0, "R2": 1}, res.Steps[1].Available)

	require.Equal(t,
		"Process P1 can be executed with the available resources. Its resource requests can be satisfied. After completion, P1 releases its resources.",
		res.Steps[2].Description)
	require.Equal(t, []string{"P2"}, res.Steps[2].Remaining)
	require.Equal(t, map[string]int{"R1": 1, "R2": 1}, res.Steps[2].Available)

	require.Equal(t,
		"Process P2 can be executed with the available resources. Its resource requests can be satisfied. After completion, P2 releases its resources.",
		res.Steps[3].Description)
	require.Empty(t, res.Steps[3].Remaining)
	require.Equal(t, map[string]int{"R1": 1, "R2": 2}, res.Steps[3].Available)

	require.Equal(t,
		"All processes have been executed successfully. System is in a safe state. Safe sequence: P3 → P1 → P2",
		res.Steps[4].Description)
	require.Empty(t, res.Steps[4].Remaining)
	require.Empty(t, res.Steps[4].Processed)
}

// Every process ID ends up in exactly one of SafeSequence/Deadlocked.
func TestDetect_Coverage(t *testing.T) {
	for name, m := range map[string]*core.AllocationMatrix{
		"deadlock": deadlockMatrix(),
		"safe":     safeMatrix(),
	} {
		res, err := detect.Detect(m)
		require.NoError(t, err, name)

		seen := make(map[string]int)
		for _, id := range res.SafeSequence {
			seen[id]++
		}
		for _, id := range res.Deadlocked {
			seen[id]++
		}
		for _, id := range m.ProcessIDs() {
			require.Equal(t, 1, seen[id], "%s: process %s", name, id)
		}
		require.Len(t, seen, len(m.Processes), name)
	}
}

func TestDetect_DoesNotMutateInput(t *testing.T) {
	m := safeMatrix()
	before := m.Clone()

	_, err := detect.Detect(m)
	require.NoError(t, err)
	require.Equal(t, before, m)
}

func TestDetect_Idempotent(t *testing.T) {
	m := safeMatrix()
	first, err := detect.Detect(m)
	require.NoError(t, err)
	second, err := detect.Detect(m)
	require.NoError(t, err)
	require.Equal(t, first, second)

	d1, err := detect.Detect(deadlockMatrix())
	require.NoError(t, err)
	d2, err := detect.Detect(deadlockMatrix())
	require.NoError(t, err)
	require.Equal(t, d1, d2)
}

// Within one run, per-resource availability never decreases across steps.
func TestDetect_MonotonicRelease(t *testing.T) {
	res, err := detect.Detect(safeMatrix())
	require.NoError(t, err)

	for i := 1; i < len(res.Steps); i++ {
		for id, prev := range res.Steps[i-1].Available {
			require.GreaterOrEqual(t, res.Steps[i].Available[id], prev,
				"step %d resource %s", i, id)
		}
	}
}

func TestDetect_RoundBound(t *testing.T) {
	m := safeMatrix()
	rounds := 0
	admissions := 0
	res, err := detect.Detect(m,
		detect.WithOnRound(func(int) { rounds++ }),
		detect.WithOnAdmit(func(string, int) { admissions++ }),
	)
	require.NoError(t, err)
	require.Equal(t, len(m.Processes), admissions)
	// One trailing round observes completion.
	require.LessOrEqual(t, rounds, len(m.Processes)+1)
	require.Len(t, res.Steps, admissions+2)
}

func TestDetect_HookOrder(t *testing.T) {
	var admitted []string
	var atRound []int
	_, err := detect.Detect(safeMatrix(),
		detect.WithOnAdmit(func(id string, round int) {
			admitted = append(admitted, id)
			atRound = append(atRound, round)
		}),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"P3", "P1", "P2"}, admitted)
	require.Equal(t, []int{1, 2, 3}, atRound)
}

func TestDetect_EmptyMatrix(t *testing.T) {
	res, err := detect.Detect(&core.AllocationMatrix{})
	require.NoError(t, err)

	require.True(t, res.Safe())
	require.NotNil(t, res.SafeSequence)
	require.Empty(t, res.SafeSequence)
	// Only the initial snapshot: no admissions means no success step.
	require.Len(t, res.Steps, 1)
	require.Equal(t, "Initial available resources", res.Steps[0].Description)
}

func TestDetect_ResourcesOnlyNoProcesses(t *testing.T) {
	m := &core.AllocationMatrix{
		Resources: []core.Resource{core.NewResource("R1", 3)},
	}
	res, err := detect.Detect(m)
	require.NoError(t, err)
	require.Len(t, res.Steps, 1)
	require.Equal(t, map[string]int{"R1": 3}, res.Steps[0].Available)
}

func TestDetect_ValidationRejectsByDefault(t *testing.T) {
	m := deadlockMatrix()
	m.Processes[0].Allocation["ghost"] = 1

	_, err := detect.Detect(m)
	require.ErrorIs(t, err, core.ErrUnknownResource)
	require.ErrorIs(t, err, core.ErrInvalidMatrix)
}

// Permissive mode reproduces the legacy semantics exactly: a positive
// request for an unknown resource reads as available 0 and blocks, and
// released unknown allocations create fresh availability entries.
func TestDetect_WithoutValidation_UnknownIDs(t *testing.T) {
	p1 := core.NewProcess("P1")
	p1.Request["ghost"] = 1
	p2 := core.NewProcess("P2")
	p2.Allocation["phantom"] = 2

	m := &core.AllocationMatrix{
		Processes: []core.Process{p1, p2},
		Resources: []core.Resource{core.NewResource("R1", 1)},
	}

	res, err := detect.Detect(m, detect.WithoutValidation())
	require.NoError(t, err)

	// P1 blocks forever on the unknown resource; P2 finishes first and
	// its phantom release enters the availability snapshots.
	require.Equal(t, []string{"P1"}, res.Deadlocked)
	require.Nil(t, res.SafeSequence)
	require.Equal(t, []string{"P2"}, res.Steps[1].Processed)
	require.Equal(t, map[string]int{"R1": 1, "phantom": 2}, res.Steps[1].Available)
}

// A negative requested amount never blocks admission.
func TestDetect_WithoutValidation_NegativeRequest(t *testing.T) {
	p := core.NewProcess("P1")
	p.Request["R1"] = -5

	m := &core.AllocationMatrix{
		Processes: []core.Process{p},
		Resources: []core.Resource{core.NewResource("R1", 0)},
	}

	res, err := detect.Detect(m, detect.WithoutValidation())
	require.NoError(t, err)
	require.True(t, res.Safe())
	require.Equal(t, []string{"P1"}, res.SafeSequence)
	// No positive request, so the satisfiable clause must be absent.
	require.Equal(t,
		"Process P1 can be executed with the available resources. After completion, P1 releases its resources.",
		res.Steps[1].Description)
}

func TestDetect_SingleProcessHoldingEverything(t *testing.T) {
	p := core.NewProcess("P1")
	p.Allocation["R1"] = 2
	p.Request["R1"] = 0

	m := &core.AllocationMatrix{
		Processes: []core.Process{p},
		Resources: []core.Resource{core.NewResource("R1", 2)},
	}

	res, err := detect.Detect(m)
	require.NoError(t, err)
	require.Equal(t, []string{"P1"}, res.SafeSequence)
	require.Equal(t, map[string]int{"R1": 0}, res.Steps[0].Available)
	require.Equal(t, map[string]int{"R1": 2}, res.Steps[1].Available)
}

// Two concurrent runs against one shared matrix must not interfere:
// neither mutates the input.
func TestDetect_ConcurrentRunsOnSharedMatrix(t *testing.T) {
	m := safeMatrix()
	before := m.Clone()

	type outcome struct {
		res *detect.Result
		err error
	}
	results := make(chan outcome, 2)
	for i := 0; i < 2; i++ {
		go func() {
			res, err := detect.Detect(m)
			results <- outcome{res, err}
		}()
	}

	var first *detect.Result
	for i := 0; i < 2; i++ {
		out := <-results
		require.NoError(t, out.err)
		if first == nil {
			first = out.res
		} else {
			require.Equal(t, first, out.res)
		}
	}
	require.Equal(t, before, m)
}
