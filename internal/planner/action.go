package planner

import (
	"fmt"

	"github.com/yourusername/hyprnavi/internal/types"
)

// ActionKind enumerates every decision the planner can produce. Exactly
// one action comes out of each invocation; the dispatch mapping handles
// every kind.
type ActionKind int

const (
	FocusWindow ActionKind = iota
	SwapWindow
	FocusWorkspace
	FocusMonitor
	MoveWindowToWorkspace
	MoveWindowToMonitor
	DelegateToPlugin
	NoOp
)

// String returns the kind name for logs and JSON output.
func (k ActionKind) String() string {
	switch k {
	case FocusWindow:
		return "focus-window"
	case SwapWindow:
		return "swap-window"
	case FocusWorkspace:
		return "focus-workspace"
	case FocusMonitor:
		return "focus-monitor"
	case MoveWindowToWorkspace:
		return "move-to-workspace"
	case MoveWindowToMonitor:
		return "move-to-monitor"
	case DelegateToPlugin:
		return "delegate-to-plugin"
	case NoOp:
		return "no-op"
	default:
		return "unknown"
	}
}

// MarshalText makes ActionKind render as its name in JSON output.
func (k ActionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Action is the planner's single decision. Only the fields relevant to
// the kind are set: Window for focus/swap targets, WorkspaceID and
// Monitor for moves and switches, Command for plugin delegation, Reason
// for no-ops.
type Action struct {
	Kind        ActionKind      `json:"kind"`
	Direction   types.Direction `json:"direction"`
	Window      string          `json:"window,omitempty"`
	WorkspaceID int             `json:"workspaceId,omitempty"`
	Monitor     string          `json:"monitor,omitempty"`
	Command     string          `json:"command,omitempty"`
	Reason      string          `json:"reason,omitempty"`
}

// String summarizes the action for logs.
func (a Action) String() string {
	switch a.Kind {
	case FocusWindow, SwapWindow:
		return fmt.Sprintf("%s %s", a.Kind, a.Window)
	case FocusWorkspace, MoveWindowToWorkspace:
		return fmt.Sprintf("%s %d", a.Kind, a.WorkspaceID)
	case FocusMonitor, MoveWindowToMonitor:
		return fmt.Sprintf("%s %s", a.Kind, a.Monitor)
	case DelegateToPlugin:
		return fmt.Sprintf("%s %q", a.Kind, a.Command)
	default:
		return fmt.Sprintf("%s (%s)", a.Kind, a.Reason)
	}
}
