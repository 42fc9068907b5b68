package hypr

import (
	"context"
	"fmt"
	"strings"
)

// Dispatch issues a single dispatcher command, e.g. "focuswindow address:0x...".
func (c *Client) Dispatch(ctx context.Context, command string) error {
	resp, err := c.request(ctx, "dispatch "+command)
	if err != nil {
		return err
	}
	if reply := strings.TrimSpace(string(resp)); reply != "ok" {
		return fmt.Errorf("dispatch %q rejected: %s", command, reply)
	}
	return nil
}

// DispatchBatch issues several dispatcher commands in one exchange using
// Hyprland's begin/commit framing. Single commands skip the framing.
func (c *Client) DispatchBatch(ctx context.Context, commands []string) error {
	if len(commands) == 0 {
		return nil
	}
	if len(commands) == 1 {
		return c.Dispatch(ctx, commands[0])
	}

	var b strings.Builder
	b.WriteString("[[BATCH]]")
	for _, cmd := range commands {
		b.WriteString("dispatch ")
		b.WriteString(cmd)
		b.WriteString(";")
	}
	resp, err := c.request(ctx, b.String())
	if err != nil {
		return err
	}
	if reply := strings.TrimSpace(string(resp)); !strings.Contains(reply, "ok") {
		return fmt.Errorf("batch dispatch rejected: %s", reply)
	}
	return nil
}
