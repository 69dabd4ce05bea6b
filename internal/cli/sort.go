package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/taskchain/pkg/graph"
	"github.com/matzehuels/taskchain/pkg/task"
)

// sortCommand creates the sort command for printing tasks in execution order.
func (c *CLI) sortCommand() *cobra.Command {
	var (
		readyOnly bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "sort [plan.toml]",
		Short: "Print tasks in execution order",
		Long: `Print tasks in execution order.

The plan's tasks are ranked with a tiered topological sort: tasks without
dependencies come first, and within a tier the tasks most others are waiting
on come earlier. Tasks are listed by priority (the highest rank among their
dependencies), then by rank.

Tasks in the first tier are marked ready. Use --ready to list only tasks
whose state is Ready after scheduling. Use --json to print the scheduled
board as node-link JSON instead of a table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSort(cmd.Context(), cmd.OutOrStdout(), args[0], readyOnly, asJSON)
		},
	}

	cmd.Flags().BoolVar(&readyOnly, "ready", false, "only list tasks that are ready")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print node-link JSON")

	return cmd
}

func (c *CLI) runSort(ctx context.Context, w io.Writer, path string, readyOnly, asJSON bool) error {
	logger := loggerFromContext(ctx)

	res, err := c.loadPlan(path)
	if err != nil {
		return err
	}

	q := c.newScheduler().Sort(res.Board)
	tasks := q.Drain()
	if readyOnly {
		ready := tasks[:0]
		for _, t := range tasks {
			if t.State() == task.Ready {
				ready = append(ready, t)
			}
		}
		logger.Debug("filtered ready tasks", "ready", len(ready), "total", len(tasks))
		tasks = ready
	}

	if asJSON {
		g := graph.FromBoard(res.Board, tasks, func(id task.ID) string {
			k, _ := res.Key(id)
			return k
		})
		g.Title = res.Title
		return graph.Write(g, w)
	}

	if res.Title != "" {
		fmt.Fprintln(w, StyleTitle.Render(res.Title))
	}
	if len(tasks) == 0 {
		printInfo(w, "No tasks to schedule")
		return nil
	}
	fmt.Fprintln(w, renderTaskTable(newTaskRows(res, tasks)))
	if n := len(res.Rejected); n > 0 {
		printWarning(w, "%d dependencies rejected; run '%s check %s' for details", n, appName, path)
	}
	return nil
}
