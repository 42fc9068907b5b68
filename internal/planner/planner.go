// Package planner turns one snapshot, direction, and flag set into
// exactly one Action. It performs no side effects; the dispatch package
// maps the Action to a compositor command.
package planner

import (
	"fmt"

	"github.com/yourusername/hyprnavi/internal/edge"
	"github.com/yourusername/hyprnavi/internal/geometry"
	"github.com/yourusername/hyprnavi/internal/ordering"
	"github.com/yourusername/hyprnavi/internal/plugin"
	"github.com/yourusername/hyprnavi/internal/snapshot"
	"github.com/yourusername/hyprnavi/internal/types"
)

// Flags are the user-selected behavior toggles for one invocation.
type Flags struct {
	Swap            bool
	Monitor         bool
	Position        bool
	NoWrap          bool
	BorderTolerance int
}

// Plan decides the single action for this invocation. The snapshot must
// have passed validation; gaps is the compositor's outer gap used by
// pixel-mode edge detection.
func Plan(snap *snapshot.Snapshot, dir types.Direction, flags Flags, caps plugin.Capabilities, gaps int) (Action, error) {
	focused, ok := snap.Focused()
	if !ok {
		return Action{}, snapshot.ErrNoFocusedWindow
	}
	mon, ok := snap.MonitorByID(focused.MonitorID)
	if !ok {
		return Action{}, fmt.Errorf("%w: focused window on unknown monitor %d",
			snapshot.ErrMalformedSnapshot, focused.MonitorID)
	}
	ws, ok := snap.WorkspaceByID(focused.WorkspaceID)
	if !ok {
		return Action{}, fmt.Errorf("%w: focused window on unknown workspace %d",
			snapshot.ErrMalformedSnapshot, focused.WorkspaceID)
	}

	var scope geometry.Scope
	columnMode := flags.Position && caps.ColumnMove != nil
	if columnMode {
		scope = caps.ColumnMove.Scope(focused, dir)
	}

	atEdge := edge.AtEdge(snap, focused, mon, dir, flags.Position, flags.BorderTolerance, gaps, scope)
	neighbor, hasNeighbor := geometry.FindNeighbor(snap, focused, dir, scope)

	if !atEdge && hasNeighbor {
		if !flags.Swap {
			return Action{Kind: FocusWindow, Direction: dir, Window: neighbor.Address}, nil
		}
		if columnMode {
			// The scroller layout owns in-workspace movement.
			return Action{Kind: DelegateToPlugin, Direction: dir,
				Command: caps.ColumnMove.BuildMove(dir)}, nil
		}
		return Action{Kind: SwapWindow, Direction: dir, Window: neighbor.Address}, nil
	}

	if flags.Swap {
		return planSwapAtEdge(snap, focused, mon, ws, dir, flags, caps, columnMode)
	}
	return planFocusAtEdge(snap, mon, ws, dir, flags, caps)
}

// planSwapAtEdge decides where the focused window itself moves once it is
// at the edge.
func planSwapAtEdge(snap *snapshot.Snapshot, focused snapshot.Window, mon snapshot.Monitor, ws snapshot.Workspace, dir types.Direction, flags Flags, caps plugin.Capabilities, columnMode bool) (Action, error) {
	if columnMode {
		// Column promotion outranks monitor crossing: only a window with
		// no column left to promote into may leave the monitor.
		if flags.Monitor && caps.ColumnMove.IsAloneInColumn(snap, focused) {
			if target, ok := ordering.AdjacentMonitor(snap, mon, dir); ok {
				return Action{Kind: MoveWindowToMonitor, Direction: dir, Monitor: target.Name}, nil
			}
			return Action{Kind: NoOp, Direction: dir, Reason: "no adjacent monitor"}, nil
		}
		return Action{Kind: DelegateToPlugin, Direction: dir,
			Command: caps.ColumnMove.BuildMove(dir)}, nil
	}

	if flags.Monitor {
		if target, ok := ordering.AdjacentMonitor(snap, mon, dir); ok {
			return Action{Kind: MoveWindowToMonitor, Direction: dir, Monitor: target.Name}, nil
		}
		return Action{Kind: NoOp, Direction: dir, Reason: "no adjacent monitor"}, nil
	}

	if target, ok := ordering.AdjacentWorkspace(snap, ws, dir, flags.NoWrap); ok {
		return Action{Kind: MoveWindowToWorkspace, Direction: dir, WorkspaceID: target}, nil
	}
	return Action{Kind: NoOp, Direction: dir, Reason: "no adjacent workspace"}, nil
}

// planFocusAtEdge decides where focus crosses once the focused window is
// at the edge.
func planFocusAtEdge(snap *snapshot.Snapshot, mon snapshot.Monitor, ws snapshot.Workspace, dir types.Direction, flags Flags, caps plugin.Capabilities) (Action, error) {
	if flags.Monitor {
		if caps.WorkspaceFocus != nil {
			// The plugin defines per-monitor workspace topology; its
			// dispatcher replaces the generic monitor switch.
			return Action{Kind: DelegateToPlugin, Direction: dir,
				Command: caps.WorkspaceFocus.BuildFocus(dir)}, nil
		}
		if target, ok := ordering.AdjacentMonitor(snap, mon, dir); ok {
			return Action{Kind: FocusMonitor, Direction: dir, Monitor: target.Name}, nil
		}
		return Action{Kind: NoOp, Direction: dir, Reason: "no adjacent monitor"}, nil
	}

	target, ok := ordering.AdjacentWorkspace(snap, ws, dir, flags.NoWrap)
	if !ok {
		return Action{Kind: NoOp, Direction: dir, Reason: "no adjacent workspace"}, nil
	}

	// Entering a workspace from one side lands on the window at the
	// opposite extreme, when one exists.
	opposite := dir
	switch dir {
	case types.DirLeft:
		opposite = types.DirRight
	case types.DirRight:
		opposite = types.DirLeft
	case types.DirUp:
		opposite = types.DirDown
	case types.DirDown:
		opposite = types.DirUp
	}
	if w, ok := geometry.ExtremeWindow(snap, target, opposite); ok {
		return Action{Kind: FocusWindow, Direction: dir, Window: w.Address}, nil
	}
	return Action{Kind: FocusWorkspace, Direction: dir, WorkspaceID: target}, nil
}
