package geometry

import (
	"github.com/yourusername/hyprnavi/internal/snapshot"
	"github.com/yourusername/hyprnavi/internal/types"
)

// Scope restricts neighbor candidates beyond the default same-workspace
// rule. A nil scope admits every candidate. Layout plugins supply scopes
// that the resolver treats as opaque filters.
type Scope func(snapshot.Window) bool

// FindNeighbor returns the nearest window neighbor of the focused window
// in the given direction, or false when none exists.
//
// Candidates share the focused window's workspace and floating state and
// lie strictly beyond its center along the direction's axis. Center-point
// comparison tolerates partially overlapping windows. The nearest by
// axis distance wins; ties break by maximal perpendicular overlap, then
// by lowest address.
func FindNeighbor(snap *snapshot.Snapshot, focused snapshot.Window, dir types.Direction, scope Scope) (snapshot.Window, bool) {
	center := focused.Geometry.Center()

	var best snapshot.Window
	bestDist := -1
	bestOverlap := -1

	for _, w := range snap.WindowsOn(focused.WorkspaceID) {
		if w.Address == focused.Address {
			continue
		}
		// Floating and tiled windows never navigate into each other.
		if w.Floating != focused.Floating {
			continue
		}
		if scope != nil && !scope(w) {
			continue
		}

		c := w.Geometry.Center()
		var dist, overlap int
		switch dir.Axis() {
		case types.Horizontal:
			dist = (c.X - center.X) * dir.Sign()
			overlap = focused.Geometry.OverlapY(w.Geometry)
		default:
			dist = (c.Y - center.Y) * dir.Sign()
			overlap = focused.Geometry.OverlapX(w.Geometry)
		}
		if dist <= 0 {
			continue
		}

		if bestDist < 0 || dist < bestDist ||
			(dist == bestDist && overlap > bestOverlap) ||
			(dist == bestDist && overlap == bestOverlap && snapshot.AddressLess(w.Address, best.Address)) {
			best = w
			bestDist = dist
			bestOverlap = overlap
		}
	}

	if bestDist < 0 {
		return snapshot.Window{}, false
	}
	return best, true
}

// ExtremeWindow returns the tiled window nearest the given edge of a
// workspace: for DirLeft the leftmost window, for DirDown the bottommost,
// and so on. Ties break by lowest address. Returns false for workspaces
// without tiled windows.
func ExtremeWindow(snap *snapshot.Snapshot, workspaceID int, edge types.Direction) (snapshot.Window, bool) {
	var best snapshot.Window
	bestCoord := 0
	found := false

	for _, w := range snap.WindowsOn(workspaceID) {
		if w.Floating {
			continue
		}

		var coord int
		switch edge {
		case types.DirLeft:
			coord = w.Geometry.X
		case types.DirRight:
			coord = w.Geometry.Right()
		case types.DirUp:
			coord = w.Geometry.Y
		default:
			coord = w.Geometry.Bottom()
		}
		// Moving toward positive coordinates means the extreme is maximal.
		signed := coord * edge.Sign()

		if !found || signed > bestCoord ||
			(signed == bestCoord && snapshot.AddressLess(w.Address, best.Address)) {
			best = w
			bestCoord = signed
			found = true
		}
	}
	return best, found
}
