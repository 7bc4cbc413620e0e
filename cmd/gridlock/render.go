package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridlock/core"
	"github.com/katalvlaran/gridlock/detect"
	"github.com/katalvlaran/gridlock/ragraph"
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	styleHeader   = lipgloss.NewStyle().Bold(true)
	styleMuted    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	styleSafe     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	styleDeadlock = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	styleBox      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// renderMatrix prints the allocation and request matrices side by side
// plus the derived availability, in matrix order.
func renderMatrix(m *core.AllocationMatrix) string {
	var b strings.Builder

	rids := m.ResourceIDs()
	header := []string{"Process"}
	for _, section := range []string{"A", "R"} {
		for _, rid := range rids {
			header = append(header, section+":"+rid)
		}
	}

	rows := [][]string{header}
	for _, p := range m.Processes {
		row := []string{p.ID}
		for _, rid := range rids {
			row = append(row, fmt.Sprintf("%d", p.Allocation[rid]))
		}
		for _, rid := range rids {
			row = append(row, fmt.Sprintf("%d", p.Request[rid]))
		}
		rows = append(rows, row)
	}

	b.WriteString(styleHeader.Render("Allocation (A) / Request (R) matrix"))
	b.WriteString("\n")
	b.WriteString(styleBox.Render(renderTable(rows)))
	b.WriteString("\n")

	b.WriteString(styleHeader.Render("Available resources"))
	b.WriteString("\n")
	for _, r := range core.AvailableResources(m) {
		b.WriteString(fmt.Sprintf("  %s: %d of %d\n", r.ID, r.Available, r.Total))
	}

	return b.String()
}

// renderTable aligns rows into fixed-width columns.
func renderTable(rows [][]string) string {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		lines = append(lines, strings.Join(cells, "  "))
	}

	return strings.Join(lines, "\n")
}

// renderResult prints the verdict and the step-by-step explanation.
func renderResult(res *detect.Result) string {
	var b strings.Builder

	if res.Safe() {
		b.WriteString(styleSafe.Render("No deadlock detected."))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Safe sequence: %s\n", strings.Join(res.SafeSequence, " → ")))
	} else {
		b.WriteString(styleDeadlock.Render(
			fmt.Sprintf("DEADLOCK DETECTED! Processes involved: %s", strings.Join(res.Deadlocked, ", "))))
		b.WriteString("\n")
	}

	b.WriteString(styleHeader.Render("\nStep-by-step explanation:"))
	b.WriteString("\n")
	for i, step := range res.Steps {
		b.WriteString(fmt.Sprintf("\nStep %d: %s\n", i+1, step.Description))
		if len(step.Processed) > 0 {
			b.WriteString(fmt.Sprintf("Processed: %s\n", strings.Join(step.Processed, ", ")))
		}
		b.WriteString(fmt.Sprintf("Available resources: %s\n", formatAvailable(step.Available)))
		if len(step.Remaining) > 0 {
			b.WriteString(fmt.Sprintf("Remaining processes: %s\n", strings.Join(step.Remaining, ", ")))
		}
	}

	return b.String()
}

// renderGraph lists nodes and edges; nodes present in deadlocked (from
// the last detection) are highlighted. The intersection happens here,
// in presentation — ragraph itself never reads detection output.
func renderGraph(g *ragraph.Graph, deadlocked map[string]struct{}) string {
	var b strings.Builder

	b.WriteString(styleHeader.Render("Nodes:"))
	b.WriteString("\n")
	for _, n := range g.Nodes {
		label := n.ID
		if n.Kind == ragraph.NodeKindResource {
			label = fmt.Sprintf("%s (%d instance(s))", n.ID, n.Instances)
		}
		if _, stuck := deadlocked[n.ID]; stuck {
			label = styleDeadlock.Render(label + "  [deadlocked]")
		}
		b.WriteString(fmt.Sprintf("  [%s] %s\n", n.Kind, label))
	}

	b.WriteString(styleHeader.Render("Edges:"))
	b.WriteString("\n")
	for _, e := range g.Edges {
		b.WriteString(fmt.Sprintf("  %s: %s → %s (%d)\n", e.Kind, e.From, e.To, e.Amount))
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
