// Package plugin interprets the set of loaded Hyprland layout plugins
// into navigation capabilities. The probe itself is external; this
// package only maps plugin names to the overrides the planner understands
// and caches the result per Hyprland session.
package plugin

import (
	"context"
	"fmt"

	"github.com/yourusername/hyprnavi/internal/geometry"
	"github.com/yourusername/hyprnavi/internal/snapshot"
	"github.com/yourusername/hyprnavi/internal/types"
)

// Plugin names recognized by hyprnavi.
const (
	scrollerPlugin = "hyprscrolling"
	splitWSPlugin  = "split-monitor-workspaces"
)

// Probe is the external capability query returning loaded plugin names.
type Probe interface {
	Plugins(ctx context.Context) ([]string, error)
}

// Capabilities holds the detected plugin overrides. A nil field means the
// corresponding plugin is not loaded and the generic path applies.
type Capabilities struct {
	ColumnMove     *ColumnAwareMove
	WorkspaceFocus *PerMonitorWorkspaceFocus
}

// FromNames maps loaded plugin names to capabilities.
func FromNames(names []string) Capabilities {
	var caps Capabilities
	for _, name := range names {
		switch name {
		case scrollerPlugin:
			caps.ColumnMove = &ColumnAwareMove{}
		case splitWSPlugin:
			caps.WorkspaceFocus = &PerMonitorWorkspaceFocus{}
		}
	}
	return caps
}

// Detect queries the probe for loaded plugins, using the per-session
// cache when available. Probe failures yield empty capabilities so
// navigation falls back to the generic path.
func Detect(ctx context.Context, probe Probe) Capabilities {
	if path, ok := cachePath(); ok {
		if caps, ok := readCache(path); ok {
			return caps
		}
		names, err := probe.Plugins(ctx)
		if err != nil {
			return Capabilities{}
		}
		caps := FromNames(names)
		writeCache(path, caps)
		return caps
	}

	names, err := probe.Plugins(ctx)
	if err != nil {
		return Capabilities{}
	}
	return FromNames(names)
}

// ColumnAwareMove is the hyprscrolling override: windows live in columns
// that share an x position, and the plugin owns window movement inside
// and between columns.
type ColumnAwareMove struct{}

// BuildMove returns the plugin dispatcher command that moves the focused
// window in the given direction.
func (ColumnAwareMove) BuildMove(dir types.Direction) string {
	return fmt.Sprintf("layoutmsg movewindowto %s", dir.Char())
}

// IsAloneInColumn reports whether no other tiled window on the same
// workspace shares the window's column. A window alone in its column has
// nothing left to promote into.
func (ColumnAwareMove) IsAloneInColumn(snap *snapshot.Snapshot, w snapshot.Window) bool {
	for _, other := range snap.WindowsOn(w.WorkspaceID) {
		if other.Address == w.Address || other.Floating {
			continue
		}
		if other.Geometry.X == w.Geometry.X {
			return false
		}
	}
	return true
}

// Scope returns the candidate filter for neighbor resolution under this
// plugin. Vertical navigation is confined to the window's own column;
// horizontal navigation keeps the full workspace scope.
func (ColumnAwareMove) Scope(w snapshot.Window, dir types.Direction) geometry.Scope {
	if dir.Axis() != types.Vertical {
		return nil
	}
	column := w.Geometry.X
	return func(other snapshot.Window) bool {
		return other.Geometry.X == column
	}
}

// PerMonitorWorkspaceFocus is the split-monitor-workspaces override: the
// plugin defines workspace topology per monitor, including wrapping, so
// its dispatcher replaces the generic workspace switch.
type PerMonitorWorkspaceFocus struct{}

// BuildFocus returns the plugin dispatcher command that switches to the
// adjacent workspace in the given direction.
func (PerMonitorWorkspaceFocus) BuildFocus(dir types.Direction) string {
	if dir.Forward() {
		return "split-workspace +1"
	}
	return "split-workspace -1"
}
