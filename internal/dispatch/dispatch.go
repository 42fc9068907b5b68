// Package dispatch maps planner actions onto Hyprland dispatcher
// commands and hands them to the command sink.
package dispatch

import (
	"context"
	"fmt"

	"github.com/yourusername/hyprnavi/internal/logging"
	"github.com/yourusername/hyprnavi/internal/planner"
)

// Sink issues one dispatcher command to the compositor.
type Sink interface {
	Dispatch(ctx context.Context, command string) error
}

// Command returns the dispatcher command for an action. The mapping is
// total over action kinds; NoOp is the one kind that emits nothing and
// returns false.
func Command(a planner.Action) (string, bool) {
	switch a.Kind {
	case planner.FocusWindow:
		return fmt.Sprintf("focuswindow address:%s", a.Window), true
	case planner.SwapWindow:
		// Hyprland's swap dispatcher is directional; the action's Window
		// field records which neighbor the swap resolves to.
		return fmt.Sprintf("swapwindow %s", a.Direction.Char()), true
	case planner.FocusWorkspace:
		return fmt.Sprintf("workspace %d", a.WorkspaceID), true
	case planner.FocusMonitor:
		return fmt.Sprintf("focusmonitor %s", a.Monitor), true
	case planner.MoveWindowToWorkspace:
		return fmt.Sprintf("movetoworkspace %d", a.WorkspaceID), true
	case planner.MoveWindowToMonitor:
		return fmt.Sprintf("movewindow mon:%s", a.Monitor), true
	case planner.DelegateToPlugin:
		return a.Command, true
	default:
		return "", false
	}
}

// Execute emits the action's command through the sink. A NoOp succeeds
// without touching the sink.
func Execute(ctx context.Context, sink Sink, a planner.Action) error {
	cmd, ok := Command(a)
	if !ok {
		logging.Info().Str("action", a.String()).Str("reason", a.Reason).Msg("nothing to do")
		return nil
	}

	logging.Info().Str("action", a.String()).Str("command", cmd).Msg("dispatching")
	if err := sink.Dispatch(ctx, cmd); err != nil {
		return fmt.Errorf("dispatch %q: %w", cmd, err)
	}
	return nil
}
