package snapshot

import (
	"sort"

	"github.com/yourusername/hyprnavi/internal/types"
)

// Window is an immutable view of one Hyprland client.
type Window struct {
	Address     string     `json:"address"`
	Geometry    types.Rect `json:"geometry"`
	WorkspaceID int        `json:"workspaceId"`
	MonitorID   int        `json:"monitorId"`
	Floating    bool       `json:"floating"`
	Focused     bool       `json:"focused"`
}

// Monitor is an immutable view of one output.
// Reserved follows Hyprland ordering: top, bottom, right, left.
type Monitor struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	X                 int    `json:"x"`
	Y                 int    `json:"y"`
	Width             int    `json:"width"`
	Height            int    `json:"height"`
	Reserved          [4]int `json:"reserved"`
	ActiveWorkspaceID int    `json:"activeWorkspaceId"`
	// Workspaces is the ordered (ascending id) list of workspaces the
	// monitor currently hosts. Populated by Build.
	Workspaces []int `json:"workspaces"`
}

// Bounds returns the monitor rectangle.
func (m Monitor) Bounds() types.Rect {
	return types.Rect{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height}
}

// Workspace is an immutable view of one workspace.
// Index is the position within its monitor's ordered workspace list.
type Workspace struct {
	ID        int `json:"id"`
	MonitorID int `json:"monitorId"`
	Index     int `json:"index"`
}

// Snapshot is a read-only capture of window manager state for one decision.
type Snapshot struct {
	Windows    []Window    `json:"windows"`
	Monitors   []Monitor   `json:"monitors"`
	Workspaces []Workspace `json:"workspaces"`
}

// Focused returns the focused window, if any.
func (s *Snapshot) Focused() (Window, bool) {
	for _, w := range s.Windows {
		if w.Focused {
			return w, true
		}
	}
	return Window{}, false
}

// MonitorByID looks up a monitor by id.
func (s *Snapshot) MonitorByID(id int) (Monitor, bool) {
	for _, m := range s.Monitors {
		if m.ID == id {
			return m, true
		}
	}
	return Monitor{}, false
}

// WorkspaceByID looks up a workspace by id.
func (s *Snapshot) WorkspaceByID(id int) (Workspace, bool) {
	for _, ws := range s.Workspaces {
		if ws.ID == id {
			return ws, true
		}
	}
	return Workspace{}, false
}

// WindowsOn returns all windows on the given workspace.
func (s *Snapshot) WindowsOn(workspaceID int) []Window {
	var out []Window
	for _, w := range s.Windows {
		if w.WorkspaceID == workspaceID {
			out = append(out, w)
		}
	}
	return out
}

// indexWorkspaces orders each monitor's workspace list by ascending id and
// assigns every workspace its index within that list.
func indexWorkspaces(monitors []Monitor, workspaces []Workspace) {
	byMonitor := make(map[int][]int)
	for _, ws := range workspaces {
		byMonitor[ws.MonitorID] = append(byMonitor[ws.MonitorID], ws.ID)
	}
	for id := range byMonitor {
		sort.Ints(byMonitor[id])
	}
	for i := range monitors {
		monitors[i].Workspaces = byMonitor[monitors[i].ID]
	}
	for i := range workspaces {
		list := byMonitor[workspaces[i].MonitorID]
		for idx, id := range list {
			if id == workspaces[i].ID {
				workspaces[i].Index = idx
				break
			}
		}
	}
}

// AddressLess orders window addresses numerically: Hyprland addresses are
// hex strings without leading zeros, so shorter strings sort first.
func AddressLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
