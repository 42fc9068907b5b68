// Package output renders snapshot state as tables for the list commands.
package output

import (
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/yourusername/hyprnavi/internal/snapshot"
)

// PrintWindowsTable prints windows in a table format
func PrintWindowsTable(windows []snapshot.Window) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Address", "Workspace", "Monitor", "Geometry", "Floating", "Focused")

	sort.Slice(windows, func(i, j int) bool {
		return snapshot.AddressLess(windows[i].Address, windows[j].Address)
	})

	for _, w := range windows {
		table.Append(
			w.Address,
			fmt.Sprintf("%d", w.WorkspaceID),
			fmt.Sprintf("%d", w.MonitorID),
			fmt.Sprintf("%dx%d+%d+%d", w.Geometry.Width, w.Geometry.Height, w.Geometry.X, w.Geometry.Y),
			mark(w.Floating),
			mark(w.Focused),
		)
	}

	table.Render()
}

// PrintMonitorsTable prints monitors in a table format
func PrintMonitorsTable(monitors []snapshot.Monitor) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Position", "Size", "Active WS", "Workspaces")

	sort.Slice(monitors, func(i, j int) bool {
		return monitors[i].ID < monitors[j].ID
	})

	for _, m := range monitors {
		table.Append(
			fmt.Sprintf("%d", m.ID),
			m.Name,
			fmt.Sprintf("%d,%d", m.X, m.Y),
			fmt.Sprintf("%dx%d", m.Width, m.Height),
			fmt.Sprintf("%d", m.ActiveWorkspaceID),
			formatIntSlice(m.Workspaces),
		)
	}

	table.Render()
}

// PrintWorkspacesTable prints workspaces in a table format
func PrintWorkspacesTable(workspaces []snapshot.Workspace) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Monitor", "Index")

	sort.Slice(workspaces, func(i, j int) bool {
		return workspaces[i].ID < workspaces[j].ID
	})

	for _, ws := range workspaces {
		table.Append(
			fmt.Sprintf("%d", ws.ID),
			fmt.Sprintf("%d", ws.MonitorID),
			fmt.Sprintf("%d", ws.Index),
		)
	}

	table.Render()
}

func mark(b bool) string {
	if b {
		return "✓"
	}
	return ""
}

func formatIntSlice(values []int) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%d", v)
	}
	return out
}
