package snapshot

import (
	"context"
	"errors"
	"fmt"
)

// Validation failures. All are fatal for the invocation.
var (
	// ErrNoFocusedWindow means the snapshot holds zero or multiple focused windows.
	ErrNoFocusedWindow = errors.New("no focused window")
	// ErrEmptySnapshot means no monitors or workspaces are present.
	ErrEmptySnapshot = errors.New("empty snapshot")
	// ErrMalformedSnapshot means a referential invariant is violated.
	ErrMalformedSnapshot = errors.New("malformed snapshot")
)

// Source provides raw window manager state. Implemented by the Hyprland
// IPC client; tests substitute fixtures.
type Source interface {
	Clients(ctx context.Context) ([]Window, error)
	Monitors(ctx context.Context) ([]Monitor, error)
	Workspaces(ctx context.Context) ([]Workspace, error)
}

// Build fetches one read-only snapshot from the source and validates it.
// Special workspaces (id <= 0) and windows on them are excluded.
func Build(ctx context.Context, src Source) (*Snapshot, error) {
	clients, err := src.Clients(ctx)
	if err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}
	monitors, err := src.Monitors(ctx)
	if err != nil {
		return nil, fmt.Errorf("query monitors: %w", err)
	}
	workspaces, err := src.Workspaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("query workspaces: %w", err)
	}

	snap := &Snapshot{Monitors: monitors}
	for _, ws := range workspaces {
		if ws.ID <= 0 {
			continue
		}
		snap.Workspaces = append(snap.Workspaces, ws)
	}
	for _, w := range clients {
		if w.WorkspaceID <= 0 {
			continue
		}
		snap.Windows = append(snap.Windows, w)
	}

	indexWorkspaces(snap.Monitors, snap.Workspaces)

	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return snap, nil
}

// Validate enforces the snapshot invariants: at least one monitor and
// workspace, exactly one focused window, and intact references.
func (s *Snapshot) Validate() error {
	if len(s.Monitors) == 0 || len(s.Workspaces) == 0 {
		return ErrEmptySnapshot
	}

	focused := 0
	for _, w := range s.Windows {
		if w.Focused {
			focused++
		}
	}
	if focused != 1 {
		return fmt.Errorf("%w: found %d", ErrNoFocusedWindow, focused)
	}

	for _, w := range s.Windows {
		if _, ok := s.WorkspaceByID(w.WorkspaceID); !ok {
			return fmt.Errorf("%w: window %s references unknown workspace %d",
				ErrMalformedSnapshot, w.Address, w.WorkspaceID)
		}
		if _, ok := s.MonitorByID(w.MonitorID); !ok {
			return fmt.Errorf("%w: window %s references unknown monitor %d",
				ErrMalformedSnapshot, w.Address, w.MonitorID)
		}
	}
	for _, ws := range s.Workspaces {
		if _, ok := s.MonitorByID(ws.MonitorID); !ok {
			return fmt.Errorf("%w: workspace %d references unknown monitor %d",
				ErrMalformedSnapshot, ws.ID, ws.MonitorID)
		}
	}
	return nil
}
