// Package ordering resolves workspace and monitor adjacency for a
// direction: workspaces by their position in the monitor's ordered list,
// monitors by spatial position.
package ordering

import (
	"github.com/yourusername/hyprnavi/internal/snapshot"
	"github.com/yourusername/hyprnavi/internal/types"
)

// AdjacentWorkspace returns the workspace adjacent to the current one
// along its monitor's ordered list. Left/up steps backward, right/down
// forward. Without noWrap the index wraps modulo the list length; with it
// an out-of-range step returns false. Landing on the current workspace
// (single-entry list) also returns false.
func AdjacentWorkspace(snap *snapshot.Snapshot, current snapshot.Workspace, dir types.Direction, noWrap bool) (int, bool) {
	mon, ok := snap.MonitorByID(current.MonitorID)
	if !ok || len(mon.Workspaces) == 0 {
		return 0, false
	}

	n := len(mon.Workspaces)
	idx := current.Index + dir.Sign()
	if noWrap {
		if idx < 0 || idx >= n {
			return 0, false
		}
	} else {
		idx = (idx%n + n) % n
	}

	target := mon.Workspaces[idx]
	if target == current.ID {
		return 0, false
	}
	return target, true
}

// AdjacentMonitor returns the monitor spatially adjacent to the current
// one in the given direction. Candidates lie strictly beyond the current
// monitor's position on the direction's axis; the nearest wins, ties
// break by lowest perpendicular coordinate, then by lowest id. Monitor
// adjacency never wraps.
func AdjacentMonitor(snap *snapshot.Snapshot, current snapshot.Monitor, dir types.Direction) (snapshot.Monitor, bool) {
	var best snapshot.Monitor
	bestDist := -1
	bestPerp := 0

	for _, m := range snap.Monitors {
		if m.ID == current.ID {
			continue
		}

		var dist, perp int
		switch dir.Axis() {
		case types.Horizontal:
			dist = (m.X - current.X) * dir.Sign()
			perp = m.Y
		default:
			dist = (m.Y - current.Y) * dir.Sign()
			perp = m.X
		}
		if dist <= 0 {
			continue
		}

		if bestDist < 0 || dist < bestDist ||
			(dist == bestDist && perp < bestPerp) ||
			(dist == bestDist && perp == bestPerp && m.ID < best.ID) {
			best = m
			bestDist = dist
			bestPerp = perp
		}
	}

	if bestDist < 0 {
		return snapshot.Monitor{}, false
	}
	return best, true
}
