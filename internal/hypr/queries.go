package hypr

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yourusername/hyprnavi/internal/snapshot"
	"github.com/yourusername/hyprnavi/internal/types"
)

// Clients returns all windows.
func (c *Client) Clients(ctx context.Context) ([]snapshot.Window, error) {
	data, err := c.request(ctx, "j/clients")
	if err != nil {
		return nil, err
	}
	var raw []struct {
		Address   string `json:"address"`
		At        []int  `json:"at"`
		Size      []int  `json:"size"`
		Workspace struct {
			ID int `json:"id"`
		} `json:"workspace"`
		Monitor        int  `json:"monitor"`
		Floating       bool `json:"floating"`
		Focused        bool `json:"focused"`
		FocusHistoryID int  `json:"focusHistoryID"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}
	windows := make([]snapshot.Window, 0, len(raw))
	for _, cl := range raw {
		rect := types.Rect{}
		if len(cl.At) == 2 {
			rect.X = cl.At[0]
			rect.Y = cl.At[1]
		}
		if len(cl.Size) == 2 {
			rect.Width = cl.Size[0]
			rect.Height = cl.Size[1]
		}
		// Older Hyprland versions omit the focused field; focus history
		// position zero identifies the active client there.
		focused := cl.Focused || cl.FocusHistoryID == 0
		windows = append(windows, snapshot.Window{
			Address:     cl.Address,
			Geometry:    rect,
			WorkspaceID: cl.Workspace.ID,
			MonitorID:   cl.Monitor,
			Floating:    cl.Floating,
			Focused:     focused,
		})
	}
	return windows, nil
}

// Monitors returns all outputs.
func (c *Client) Monitors(ctx context.Context) ([]snapshot.Monitor, error) {
	data, err := c.request(ctx, "j/monitors")
	if err != nil {
		return nil, err
	}
	var raw []struct {
		ID              int    `json:"id"`
		Name            string `json:"name"`
		X               int    `json:"x"`
		Y               int    `json:"y"`
		Width           int    `json:"width"`
		Height          int    `json:"height"`
		Reserved        []int  `json:"reserved"`
		ActiveWorkspace struct {
			ID int `json:"id"`
		} `json:"activeWorkspace"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode monitors: %w", err)
	}
	monitors := make([]snapshot.Monitor, 0, len(raw))
	for _, m := range raw {
		mon := snapshot.Monitor{
			ID:                m.ID,
			Name:              m.Name,
			X:                 m.X,
			Y:                 m.Y,
			Width:             m.Width,
			Height:            m.Height,
			ActiveWorkspaceID: m.ActiveWorkspace.ID,
		}
		if len(m.Reserved) == 4 {
			copy(mon.Reserved[:], m.Reserved)
		}
		monitors = append(monitors, mon)
	}
	return monitors, nil
}

// Workspaces returns all workspaces.
func (c *Client) Workspaces(ctx context.Context) ([]snapshot.Workspace, error) {
	data, err := c.request(ctx, "j/workspaces")
	if err != nil {
		return nil, err
	}
	var raw []struct {
		ID        int `json:"id"`
		MonitorID int `json:"monitorID"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode workspaces: %w", err)
	}
	workspaces := make([]snapshot.Workspace, 0, len(raw))
	for _, ws := range raw {
		workspaces = append(workspaces, snapshot.Workspace{
			ID:        ws.ID,
			MonitorID: ws.MonitorID,
		})
	}
	return workspaces, nil
}

// Plugins returns the names of currently loaded layout plugins.
func (c *Client) Plugins(ctx context.Context) ([]string, error) {
	data, err := c.request(ctx, "j/plugin list")
	if err != nil {
		return nil, err
	}
	var raw []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode plugin list: %w", err)
	}
	names := make([]string, 0, len(raw))
	for _, p := range raw {
		names = append(names, p.Name)
	}
	return names, nil
}

// GapsOut returns the outer gap size from the Hyprland config.
func (c *Client) GapsOut(ctx context.Context) (int, error) {
	data, err := c.request(ctx, "j/getoption general:gaps_out")
	if err != nil {
		return 0, err
	}
	var payload struct {
		Int    int     `json:"int"`
		Float  float64 `json:"float"`
		Custom string  `json:"custom"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return 0, fmt.Errorf("decode gaps_out: %w", err)
	}
	if payload.Int != 0 {
		return payload.Int, nil
	}
	if payload.Float != 0 {
		return int(payload.Float), nil
	}
	// Newer versions report per-edge gaps as a custom string; the first
	// field is the top gap, which hyprnavi treats as uniform.
	var gap int
	if _, err := fmt.Sscanf(payload.Custom, "%d", &gap); err == nil {
		return gap, nil
	}
	return 0, nil
}
