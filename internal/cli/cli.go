package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/taskchain/pkg/buildinfo"
	"github.com/matzehuels/taskchain/pkg/plan"
	"github.com/matzehuels/taskchain/pkg/schedule"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "taskchain"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance that logs to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Taskchain orders dependent tasks",
		Long:         `Taskchain reads a plan of tasks and their dependencies, rejects dependencies that would form a cycle, and prints a deterministic execution order grouped into tiers of tasks that can run in parallel.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.Logger.Debug("starting "+appName, buildinfo.KeyVals()...)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.sortCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.tiersCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Helpers
// =============================================================================

// loadPlan reads the plan at path and builds its board. Rejected
// dependencies are logged as warnings; they do not fail the load.
func (c *CLI) loadPlan(path string) (*plan.Result, error) {
	prog := newProgress(c.Logger)

	f, err := plan.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load plan %s: %w", path, err)
	}
	res, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("build plan %s: %w", path, err)
	}
	for _, r := range res.Rejected {
		c.Logger.Warn("dependency rejected", "from", r.From, "to", r.To, "err", r.Err)
	}

	c.Logger.Debug("built board",
		"tasks", res.Board.Len(),
		"edges", res.Board.Graph().EdgeCount(),
		"rejected", len(res.Rejected))
	prog.done(fmt.Sprintf("Loaded %d tasks", res.Board.Len()))
	return res, nil
}

func (c *CLI) newScheduler() *schedule.Scheduler {
	return schedule.New(schedule.WithLogger(c.Logger))
}
