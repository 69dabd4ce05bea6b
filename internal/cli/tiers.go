package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/taskchain/pkg/schedule"
)

// tiersCommand creates the tiers command for printing scheduling tiers.
func (c *CLI) tiersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tiers [plan.toml]",
		Short: "Print tasks grouped by scheduling tier",
		Long: `Print tasks grouped by scheduling tier.

Tier 0 holds every task without dependencies. Each following tier holds the
tasks whose dependencies are all in earlier tiers, so the tasks of one tier
can run in parallel. Within a tier, tasks are listed in rank order together
with the number of unscheduled tasks that were waiting on them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTiers(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}

	return cmd
}

func (c *CLI) runTiers(ctx context.Context, w io.Writer, path string) error {
	logger := loggerFromContext(ctx)

	res, err := c.loadPlan(path)
	if err != nil {
		return err
	}

	as := schedule.Rank(res.Board.Graph())
	tier := -1
	for _, a := range as {
		if a.Tier != tier {
			tier = a.Tier
			if tier > 0 {
				printNewline(w)
			}
			fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Tier %d", tier)))
		}
		key, _ := res.Key(a.Node)
		name := res.Board.Task(a.Node).Name()
		fmt.Fprintf(w, "  %s %s  %s\n",
			StyleNumber.Render(fmt.Sprintf("%3d", a.Rank)),
			StyleValue.Render(key),
			StyleDim.Render(fmt.Sprintf("%s, %d waiting", name, a.Dependants)))
	}
	if len(as) == 0 {
		printInfo(w, "No tasks")
	}
	logger.Debug("printed tiers", "tiers", tier+1)
	return nil
}
