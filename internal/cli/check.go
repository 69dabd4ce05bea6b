package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/taskchain/pkg/dag/transform"
	apperr "github.com/matzehuels/taskchain/pkg/errors"
	"github.com/matzehuels/taskchain/pkg/schedule"
)

// checkCommand creates the check command for reporting plan problems.
func (c *CLI) checkCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [plan.toml]",
		Short: "Report rejected and redundant dependencies",
		Long: `Report rejected and redundant dependencies.

A dependency is rejected when it would close a cycle or repeats an existing
dependency. Rejected dependencies are dropped, the rest of the plan is still
scheduled.

A dependency is redundant when it is already implied through another
dependency (a -> c is redundant if a -> b and b -> c). Redundant dependencies
are harmless; they are listed so the plan can be simplified.

With --strict, any rejected dependency makes the command fail.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), cmd.OutOrStdout(), args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail if any dependency is rejected")

	return cmd
}

func (c *CLI) runCheck(ctx context.Context, w io.Writer, path string, strict bool) error {
	logger := loggerFromContext(ctx)

	res, err := c.loadPlan(path)
	if err != nil {
		return err
	}
	g := res.Board.Graph()

	printKeyValue(w, "Tasks", strconv.Itoa(res.Board.Len()))
	printKeyValue(w, "Dependencies", strconv.Itoa(g.EdgeCount()))
	printKeyValue(w, "Tiers", strconv.Itoa(len(schedule.Tiers(schedule.Rank(g)))))
	printNewline(w)

	if len(res.Rejected) == 0 {
		printSuccess(w, "No rejected dependencies")
	} else {
		printWarning(w, "%d rejected dependencies", len(res.Rejected))
		for _, r := range res.Rejected {
			printDependency(w, r.From, r.To, reason(r.Err))
		}
	}

	redundant := transform.RedundantEdges(g)
	logger.Debug("transitive reduction", "redundant", len(redundant))
	if len(redundant) == 0 {
		printSuccess(w, "No redundant dependencies")
	} else {
		printWarning(w, "%d redundant dependencies", len(redundant))
		for _, e := range redundant {
			from, _ := res.Key(e.From)
			to, _ := res.Key(e.To)
			printDependency(w, from, to, "implied")
		}
	}

	if strict && len(res.Rejected) > 0 {
		printError(w, "Plan has rejected dependencies")
		return apperr.New(apperr.ErrCodeInvalidPlan, "%d dependencies rejected in %s", len(res.Rejected), path)
	}
	return nil
}

// reason describes why a dependency was rejected.
func reason(err error) string {
	switch apperr.GetCode(err) {
	case apperr.ErrCodeCycle:
		return "would create a cycle"
	case apperr.ErrCodeDuplicateEdge:
		return "duplicate"
	case apperr.ErrCodeUnknownTask:
		return "unknown task"
	}
	return fmt.Sprint(err)
}
