package hypr

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/yourusername/hyprnavi/internal/snapshot"
)

const DefaultTimeout = 5 * time.Second

// Client speaks the Hyprland request socket. Each call is a one-shot
// connect/request/response exchange with a bounded timeout.
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a client for the given socket path. An empty path
// resolves the socket from the Hyprland instance environment on first use.
func NewClient(socketPath string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		socketPath: socketPath,
		timeout:    timeout,
	}
}

// SocketPath resolves the Hyprland request socket from the environment.
func SocketPath() (string, error) {
	sig := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")
	if sig == "" {
		return "", fmt.Errorf("HYPRLAND_INSTANCE_SIGNATURE not set")
	}
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		return "", fmt.Errorf("XDG_RUNTIME_DIR not set")
	}
	return filepath.Join(runtimeDir, "hypr", sig, ".socket.sock"), nil
}

// request sends one command and reads the full response.
func (c *Client) request(ctx context.Context, command string) ([]byte, error) {
	path := c.socketPath
	if path == "" {
		var err error
		path, err = SocketPath()
		if err != nil {
			return nil, err
		}
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, fmt.Errorf("connect to hyprland socket %s: %w", path, err)
	}
	defer conn.Close()

	deadline, _ := ctx.Deadline()
	if err := conn.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("set socket deadline: %w", err)
	}

	if _, err := conn.Write([]byte(command)); err != nil {
		return nil, fmt.Errorf("write request %q: %w", command, err)
	}

	data, err := io.ReadAll(conn)
	if err != nil {
		return nil, fmt.Errorf("read response for %q: %w", command, err)
	}
	return data, nil
}

var _ snapshot.Source = (*Client)(nil)
