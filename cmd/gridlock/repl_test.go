package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/gridlock/manager"
	"github.com/stretchr/testify/require"
)

// runScript feeds newline-separated commands to a fresh shell and
// returns everything it printed.
func runScript(t *testing.T, script string) string {
	t.Helper()

	var out bytes.Buffer
	r := newREPL(manager.New(), &out, strings.NewReader(script))
	require.NoError(t, r.run())

	return out.String()
}

func TestREPL_BuildAndDetectSafe(t *testing.T) {
	out := runScript(t, strings.Join([]string{
		"add-resource r1",
		"add-resource r2 2",
		"add-process p1",
		"add-process p2",
		"add-process p3",
		"update-allocation p1 r1 1",
		"update-allocation p2 r2 1",
		"update-allocation p3 r2 1",
		"update-request p1 r2 1",
		"update-request p2 r1 1",
		"detect",
		"exit",
	}, "\n"))

	require.Contains(t, out, "Resource R1 added with 1 instance(s)")
	require.Contains(t, out, "Process P1 added")
	require.Contains(t, out, "Updated allocation: P1 allocated 1 of R1")
	require.Contains(t, out, "No deadlock detected.")
	require.Contains(t, out, "Safe sequence: P3 → P1 → P2")
	require.Contains(t, out, "Initial available resources")
	require.Contains(t, out, "Exiting...")
}

func TestREPL_DeadlockAndGraphHighlight(t *testing.T) {
	out := runScript(t, strings.Join([]string{
		"add-resource r1",
		"add-resource r2",
		"add-process p1",
		"add-process p2",
		"update-allocation p1 r1 1",
		"update-allocation p2 r2 1",
		"update-request p1 r2 1",
		"update-request p2 r1 1",
		"detect",
		"graph",
		"exit",
	}, "\n"))

	require.Contains(t, out, "DEADLOCK DETECTED! Processes involved: P1, P2")
	require.Contains(t, out, "Deadlock detected involving processes: P1, P2")
	require.Contains(t, out, "[deadlocked]")
	require.Contains(t, out, "allocation: R1 → P1 (1)")
	require.Contains(t, out, "request: P1 → R2 (1)")
}

func TestREPL_AllocationClampReported(t *testing.T) {
	out := runScript(t, strings.Join([]string{
		"add-resource r1 2",
		"add-process p1",
		"update-allocation p1 r1 9",
		"exit",
	}, "\n"))

	require.Contains(t, out, "Updated allocation: P1 allocated 2 of R1")
}

func TestREPL_EmptyMatrixGuards(t *testing.T) {
	out := runScript(t, "show-matrix\ndetect\nexit\n")
	require.Contains(t, out, "No processes or resources defined yet")
}

func TestREPL_LoadExampleAndClear(t *testing.T) {
	out := runScript(t, "load-example\nclear\nshow-matrix\nexit\n")
	require.Contains(t, out, "Loaded sample example")
	require.Contains(t, out, "Cleared all processes and resources")
	require.Contains(t, out, "No processes or resources defined yet")
}

func TestREPL_UnknownCommand(t *testing.T) {
	out := runScript(t, "frobnicate\nexit\n")
	require.Contains(t, out, "Unknown command: frobnicate")
}
