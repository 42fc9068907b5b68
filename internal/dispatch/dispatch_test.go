package dispatch

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/yourusername/hyprnavi/internal/logging"
	"github.com/yourusername/hyprnavi/internal/planner"
	"github.com/yourusername/hyprnavi/internal/types"
)

func TestMain(m *testing.M) {
	logging.Logger = zerolog.New(io.Discard)
	m.Run()
}

type recordingSink struct {
	commands []string
	err      error
}

func (s *recordingSink) Dispatch(ctx context.Context, command string) error {
	s.commands = append(s.commands, command)
	return s.err
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name   string
		action planner.Action
		want   string
		ok     bool
	}{
		{
			name:   "focus window",
			action: planner.Action{Kind: planner.FocusWindow, Window: "0x55a1"},
			want:   "focuswindow address:0x55a1",
			ok:     true,
		},
		{
			name:   "swap window is directional",
			action: planner.Action{Kind: planner.SwapWindow, Direction: types.DirLeft, Window: "0x55a1"},
			want:   "swapwindow l",
			ok:     true,
		},
		{
			name:   "focus workspace",
			action: planner.Action{Kind: planner.FocusWorkspace, WorkspaceID: 3},
			want:   "workspace 3",
			ok:     true,
		},
		{
			name:   "focus monitor",
			action: planner.Action{Kind: planner.FocusMonitor, Monitor: "DP-2"},
			want:   "focusmonitor DP-2",
			ok:     true,
		},
		{
			name:   "move to workspace",
			action: planner.Action{Kind: planner.MoveWindowToWorkspace, WorkspaceID: 5},
			want:   "movetoworkspace 5",
			ok:     true,
		},
		{
			name:   "move to monitor",
			action: planner.Action{Kind: planner.MoveWindowToMonitor, Monitor: "HDMI-A-1"},
			want:   "movewindow mon:HDMI-A-1",
			ok:     true,
		},
		{
			name:   "plugin command passes through",
			action: planner.Action{Kind: planner.DelegateToPlugin, Command: "layoutmsg movewindowto r"},
			want:   "layoutmsg movewindowto r",
			ok:     true,
		},
		{
			name:   "no-op emits nothing",
			action: planner.Action{Kind: planner.NoOp, Reason: "no adjacent workspace"},
			want:   "",
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Command(tt.action)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Command() = %q, %v; want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestExecute(t *testing.T) {
	sink := &recordingSink{}
	action := planner.Action{Kind: planner.FocusWindow, Window: "0x1"}

	if err := Execute(context.Background(), sink, action); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(sink.commands) != 1 || sink.commands[0] != "focuswindow address:0x1" {
		t.Errorf("dispatched %v", sink.commands)
	}
}

func TestExecuteNoOpSkipsSink(t *testing.T) {
	sink := &recordingSink{err: errors.New("must not be called")}
	action := planner.Action{Kind: planner.NoOp, Reason: "no adjacent monitor"}

	if err := Execute(context.Background(), sink, action); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(sink.commands) != 0 {
		t.Errorf("no-op reached the sink: %v", sink.commands)
	}
}

func TestExecuteWrapsSinkError(t *testing.T) {
	sinkErr := errors.New("socket closed")
	sink := &recordingSink{err: sinkErr}
	action := planner.Action{Kind: planner.FocusWorkspace, WorkspaceID: 2}

	err := Execute(context.Background(), sink, action)
	if !errors.Is(err, sinkErr) {
		t.Errorf("expected wrapped sink error, got %v", err)
	}
}
