// Package edge classifies whether the focused window sits at the edge of
// its layout in a given direction.
//
// Two strategies exist: pixel mode compares window boundaries against the
// monitor's usable area, position mode asks whether any further window
// exists along the axis. Position mode is the only strategy that works for
// scrolling layouts where windows can be fully off-screen.
package edge

import (
	"github.com/yourusername/hyprnavi/internal/geometry"
	"github.com/yourusername/hyprnavi/internal/snapshot"
	"github.com/yourusername/hyprnavi/internal/types"
)

// Pixel reports whether the window boundary is within tolerance pixels of
// the monitor's usable boundary in the given direction. The usable area
// excludes reserved regions (bars) and the outer gap. A window at or past
// the boundary counts as at the edge.
func Pixel(w snapshot.Window, mon snapshot.Monitor, dir types.Direction, tolerance, gap int) bool {
	reserved := mon.Reserved
	g := w.Geometry

	switch dir {
	case types.DirLeft:
		return g.X-(mon.X+reserved[3]+gap) <= tolerance
	case types.DirRight:
		return (mon.X+mon.Width-reserved[2]-gap)-g.Right() <= tolerance
	case types.DirUp:
		return g.Y-(mon.Y+reserved[0]+gap) <= tolerance
	default:
		return (mon.Y+mon.Height-reserved[1]-gap)-g.Bottom() <= tolerance
	}
}

// pixelFloating is Pixel against the monitor's full bounds. Floating
// windows ignore reserved areas and gaps.
func pixelFloating(w snapshot.Window, mon snapshot.Monitor, dir types.Direction, tolerance int) bool {
	bare := mon
	bare.Reserved = [4]int{}
	return Pixel(w, bare, dir, tolerance, 0)
}

// Position reports the edge condition by absence of a further in-scope
// window along the axis. A window with no peers at all is at every edge.
func Position(snap *snapshot.Snapshot, w snapshot.Window, dir types.Direction, scope geometry.Scope) bool {
	_, ok := geometry.FindNeighbor(snap, w, dir, scope)
	return !ok
}

// AtEdge selects the strategy from the flags and classifies the focused
// window. Floating windows always use pixel mode against the monitor's
// full bounds; position mode has no meaning without tiled peers.
func AtEdge(snap *snapshot.Snapshot, w snapshot.Window, mon snapshot.Monitor, dir types.Direction, positionMode bool, tolerance, gap int, scope geometry.Scope) bool {
	if w.Floating {
		return pixelFloating(w, mon, dir, tolerance)
	}
	if positionMode {
		return Position(snap, w, dir, scope)
	}
	return Pixel(w, mon, dir, tolerance, gap)
}
