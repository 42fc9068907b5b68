package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/yourusername/hyprnavi/internal/config"
	"github.com/yourusername/hyprnavi/internal/dispatch"
	"github.com/yourusername/hyprnavi/internal/hypr"
	"github.com/yourusername/hyprnavi/internal/logging"
	"github.com/yourusername/hyprnavi/internal/output"
	"github.com/yourusername/hyprnavi/internal/planner"
	"github.com/yourusername/hyprnavi/internal/plugin"
	"github.com/yourusername/hyprnavi/internal/snapshot"
	"github.com/yourusername/hyprnavi/internal/types"
)

var (
	socketPath string
	configPath string
	timeout    time.Duration
	jsonOutput bool
	noColor    bool
	debugMode  bool

	// Navigation flags, shared by the four direction commands.
	swapFlag     bool
	monitorFlag  bool
	positionFlag bool
	noWrapFlag   bool
	borderSize   int

	errorColor = color.New(color.FgRed, color.Bold)
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "hyprnavi",
	Short: "Smart directional navigation for Hyprland",
	Long: `Hyprnavi navigates between windows, workspaces, and monitors through
a single directional interface. At the edge of the current layout it
crosses to the adjacent workspace or monitor, and it integrates with the
hyprscrolling and split-monitor-workspaces plugins when they are loaded.`,
	Version: "0.1.0",
}

// rightCmd navigates right
var rightCmd = &cobra.Command{
	Use:   "r",
	Short: "Focus (or move) toward the right",
	Long:  `Focuses the next window to the right. At the edge, switches to the next workspace or monitor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNavigate(cmd, types.DirRight)
	},
}

// leftCmd navigates left
var leftCmd = &cobra.Command{
	Use:   "l",
	Short: "Focus (or move) toward the left",
	Long:  `Focuses the next window to the left. At the edge, switches to the previous workspace or monitor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNavigate(cmd, types.DirLeft)
	},
}

// upCmd navigates up
var upCmd = &cobra.Command{
	Use:   "u",
	Short: "Focus (or move) upward",
	Long:  `Focuses the next window above. At the edge, switches to the previous workspace or monitor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNavigate(cmd, types.DirUp)
	},
}

// downCmd navigates down
var downCmd = &cobra.Command{
	Use:   "d",
	Short: "Focus (or move) downward",
	Long:  `Focuses the next window below. At the edge, switches to the next workspace or monitor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNavigate(cmd, types.DirDown)
	},
}

// listCmd is the parent command for list subcommands
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List windows, monitors, or workspaces",
	Long:  `Lists components of the current Hyprland state in a table format.`,
}

// listWindowsCmd lists all windows
var listWindowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List all windows",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := getSnapshot()
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(snap.Windows)
		}
		output.PrintWindowsTable(snap.Windows)
		fmt.Printf("\nTotal: %d windows\n", len(snap.Windows))
		return nil
	},
}

// listMonitorsCmd lists all monitors
var listMonitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List all monitors",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := getSnapshot()
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(snap.Monitors)
		}
		output.PrintMonitorsTable(snap.Monitors)
		fmt.Printf("\nTotal: %d monitors\n", len(snap.Monitors))
		return nil
	},
}

// listWorkspacesCmd lists all workspaces
var listWorkspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List all workspaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := getSnapshot()
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(snap.Workspaces)
		}
		output.PrintWorkspacesTable(snap.Workspaces)
		fmt.Printf("\nTotal: %d workspaces\n", len(snap.Workspaces))
		return nil
	},
}

// runNavigate runs one navigation decision end to end: snapshot, plan,
// dispatch.
func runNavigate(cmd *cobra.Command, dir types.Direction) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		printError(fmt.Sprintf("Failed to load config: %v", err))
		return err
	}
	if cfg.Settings.Debug {
		logging.SetDebug(true)
	}

	flags := planner.Flags{
		Swap:            swapFlag,
		Monitor:         monitorFlag,
		Position:        positionFlag,
		NoWrap:          noWrapFlag || cfg.Settings.NoWrap,
		BorderTolerance: borderSize,
	}
	if !cmd.Flags().Changed("bordersize") {
		flags.BorderTolerance = cfg.Settings.BorderSize
	}

	socket := socketPath
	if socket == "" {
		socket = cfg.Settings.Socket
	}
	clientTimeout := timeout
	if clientTimeout == 0 {
		clientTimeout = cfg.Timeout()
	}
	c := hypr.NewClient(socket, clientTimeout)
	ctx := context.Background()

	snap, err := snapshot.Build(ctx, c)
	if err != nil {
		printError(fmt.Sprintf("Failed to get state: %v", err))
		return err
	}

	gaps := 0
	if !flags.Position {
		// Pixel-mode edge detection accounts for outer gaps; a failed
		// lookup just means zero gap.
		if g, err := c.GapsOut(ctx); err == nil {
			gaps = g
		} else {
			logging.Warn().Err(err).Msg("gaps_out lookup failed")
		}
	}

	caps := plugin.Detect(ctx, c)

	action, err := planner.Plan(snap, dir, flags, caps, gaps)
	if err != nil {
		printError(fmt.Sprintf("Failed to plan navigation: %v", err))
		return err
	}
	logging.Debug().
		Str("direction", dir.String()).
		Str("action", action.String()).
		Msg("planned")

	if jsonOutput {
		if err := printJSON(action); err != nil {
			return err
		}
	}

	if err := dispatch.Execute(ctx, c, action); err != nil {
		printError(fmt.Sprintf("Failed to dispatch: %v", err))
		return err
	}
	return nil
}

// getSnapshot fetches and validates the current state for list commands.
func getSnapshot() (*snapshot.Snapshot, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		printError(fmt.Sprintf("Failed to load config: %v", err))
		return nil, err
	}

	socket := socketPath
	if socket == "" {
		socket = cfg.Settings.Socket
	}
	clientTimeout := timeout
	if clientTimeout == 0 {
		clientTimeout = cfg.Timeout()
	}
	c := hypr.NewClient(socket, clientTimeout)

	snap, err := snapshot.Build(context.Background(), c)
	if err != nil {
		printError(fmt.Sprintf("Failed to get state: %v", err))
		return nil, err
	}
	return snap, nil
}

// addNavFlags registers the shared navigation flags on a direction command.
func addNavFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&swapFlag, "swap", "s", false, "swap/move the window instead of focusing")
	cmd.Flags().BoolVarP(&monitorFlag, "monitor", "m", false, "cross to the adjacent monitor at the edge")
	cmd.Flags().BoolVarP(&positionFlag, "position", "p", false, "use position-based edge detection (scrolling layouts)")
	cmd.Flags().BoolVarP(&noWrapFlag, "no-wrap", "n", false, "do not wrap around at the last workspace")
	cmd.Flags().IntVarP(&borderSize, "bordersize", "b", 0, "window border size for boundary detection")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", "", "Hyprland request socket path (default: from instance signature)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: ~/.config/hyprnavi/config.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "socket request timeout (default: from config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	for _, cmd := range []*cobra.Command{rightCmd, leftCmd, upCmd, downCmd} {
		addNavFlags(cmd)
		rootCmd.AddCommand(cmd)
	}

	listCmd.AddCommand(listWindowsCmd)
	listCmd.AddCommand(listMonitorsCmd)
	listCmd.AddCommand(listWorkspacesCmd)
	rootCmd.AddCommand(listCmd)

	// Disable color if requested, enable debug logging if requested
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
		if debugMode {
			logging.SetDebug(true)
		}
	})
}

func main() {
	// Initialize logging
	logging.Init()
	defer logging.Close()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Helper functions

func printJSON(data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printError(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, "Error:", msg)
	} else {
		errorColor.Fprint(os.Stderr, "✗ Error: ")
		fmt.Fprintln(os.Stderr, msg)
	}
}
