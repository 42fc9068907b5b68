package plugin

import (
	"fmt"
	"os"
	"strings"
)

// Cache tokens kept short and stable across versions.
const (
	cacheScroller = "scroller"
	cacheSplitWS  = "splitws"
)

// cachePath returns the per-session cache file in the runtime dir (tmpfs),
// keyed by the Hyprland instance signature so a compositor restart
// invalidates it. Returns false outside a Hyprland session.
func cachePath() (string, bool) {
	sig := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")
	if sig == "" {
		return "", false
	}
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		runtimeDir = "/tmp"
	}
	return fmt.Sprintf("%s/hyprnavi-%s", runtimeDir, sig), true
}

func readCache(path string) (Capabilities, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Capabilities{}, false
	}
	return parseCache(string(data)), true
}

func parseCache(data string) Capabilities {
	var caps Capabilities
	for _, part := range strings.Split(data, ",") {
		switch strings.TrimSpace(part) {
		case cacheScroller:
			caps.ColumnMove = &ColumnAwareMove{}
		case cacheSplitWS:
			caps.WorkspaceFocus = &PerMonitorWorkspaceFocus{}
		}
	}
	return caps
}

func encodeCache(caps Capabilities) string {
	var parts []string
	if caps.ColumnMove != nil {
		parts = append(parts, cacheScroller)
	}
	if caps.WorkspaceFocus != nil {
		parts = append(parts, cacheSplitWS)
	}
	return strings.Join(parts, ",")
}

func writeCache(path string, caps Capabilities) {
	// Best effort; a failed write only costs the next probe.
	_ = os.WriteFile(path, []byte(encodeCache(caps)), 0644)
}
