package plugin

import (
	"context"
	"errors"
	"testing"

	"github.com/yourusername/hyprnavi/internal/snapshot"
	"github.com/yourusername/hyprnavi/internal/types"
)

type fakeProbe struct {
	names []string
	err   error
}

func (f *fakeProbe) Plugins(ctx context.Context) ([]string, error) {
	return f.names, f.err
}

func TestFromNames(t *testing.T) {
	caps := FromNames([]string{"hyprscrolling", "split-monitor-workspaces", "hyprbars"})
	if caps.ColumnMove == nil {
		t.Error("hyprscrolling should enable column-aware move")
	}
	if caps.WorkspaceFocus == nil {
		t.Error("split-monitor-workspaces should enable per-monitor workspace focus")
	}

	empty := FromNames([]string{"hyprbars"})
	if empty.ColumnMove != nil || empty.WorkspaceFocus != nil {
		t.Error("unrelated plugins should yield no capabilities")
	}
}

func TestDetectProbeFailure(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")

	caps := Detect(context.Background(), &fakeProbe{err: errors.New("no socket")})
	if caps.ColumnMove != nil || caps.WorkspaceFocus != nil {
		t.Error("probe failure should fall back to empty capabilities")
	}
}

func TestDetectUsesCache(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", dir)
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "testsig")

	// First detect probes and writes the cache.
	caps := Detect(context.Background(), &fakeProbe{names: []string{"hyprscrolling"}})
	if caps.ColumnMove == nil {
		t.Fatal("expected column capability from probe")
	}

	// Second detect must not reach the probe.
	caps = Detect(context.Background(), &fakeProbe{err: errors.New("probe must not run")})
	if caps.ColumnMove == nil {
		t.Error("expected column capability from cache")
	}
	if caps.WorkspaceFocus != nil {
		t.Error("cache should not invent capabilities")
	}
}

func TestCacheRoundTrip(t *testing.T) {
	tests := []Capabilities{
		{},
		{ColumnMove: &ColumnAwareMove{}},
		{WorkspaceFocus: &PerMonitorWorkspaceFocus{}},
		{ColumnMove: &ColumnAwareMove{}, WorkspaceFocus: &PerMonitorWorkspaceFocus{}},
	}
	for _, caps := range tests {
		got := parseCache(encodeCache(caps))
		if (got.ColumnMove != nil) != (caps.ColumnMove != nil) {
			t.Errorf("column capability lost in round trip: %q", encodeCache(caps))
		}
		if (got.WorkspaceFocus != nil) != (caps.WorkspaceFocus != nil) {
			t.Errorf("workspace capability lost in round trip: %q", encodeCache(caps))
		}
	}
}

func TestBuildMove(t *testing.T) {
	var cm ColumnAwareMove
	if got := cm.BuildMove(types.DirRight); got != "layoutmsg movewindowto r" {
		t.Errorf("BuildMove = %q", got)
	}
	if got := cm.BuildMove(types.DirUp); got != "layoutmsg movewindowto u" {
		t.Errorf("BuildMove = %q", got)
	}
}

func TestBuildFocus(t *testing.T) {
	var wf PerMonitorWorkspaceFocus
	if got := wf.BuildFocus(types.DirRight); got != "split-workspace +1" {
		t.Errorf("BuildFocus right = %q", got)
	}
	if got := wf.BuildFocus(types.DirLeft); got != "split-workspace -1" {
		t.Errorf("BuildFocus left = %q", got)
	}
	if got := wf.BuildFocus(types.DirUp); got != "split-workspace -1" {
		t.Errorf("BuildFocus up = %q", got)
	}
}

func columnSnapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Windows: []snapshot.Window{
			{Address: "0x1", Geometry: types.Rect{X: 0, Y: 0, Width: 800, Height: 540}, WorkspaceID: 1, Focused: true},
			{Address: "0x2", Geometry: types.Rect{X: 0, Y: 540, Width: 800, Height: 540}, WorkspaceID: 1},
			{Address: "0x3", Geometry: types.Rect{X: 800, Y: 0, Width: 800, Height: 1080}, WorkspaceID: 1},
		},
		Workspaces: []snapshot.Workspace{{ID: 1}},
		Monitors:   []snapshot.Monitor{{ID: 0}},
	}
}

func TestIsAloneInColumn(t *testing.T) {
	snap := columnSnapshot()
	var cm ColumnAwareMove

	if cm.IsAloneInColumn(snap, snap.Windows[0]) {
		t.Error("0x1 shares its column with 0x2")
	}
	if !cm.IsAloneInColumn(snap, snap.Windows[2]) {
		t.Error("0x3 is alone in its column")
	}
}

func TestColumnScope(t *testing.T) {
	snap := columnSnapshot()
	var cm ColumnAwareMove
	focused := snap.Windows[0]

	scope := cm.Scope(focused, types.DirDown)
	if scope == nil {
		t.Fatal("vertical navigation should be column-scoped")
	}
	if !scope(snap.Windows[1]) {
		t.Error("same-column window should be in scope")
	}
	if scope(snap.Windows[2]) {
		t.Error("other-column window should be out of scope")
	}

	if cm.Scope(focused, types.DirRight) != nil {
		t.Error("horizontal navigation should keep the full workspace scope")
	}
}
