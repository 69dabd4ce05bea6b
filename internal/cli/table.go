package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/taskchain/pkg/plan"
	"github.com/matzehuels/taskchain/pkg/task"
)

// taskRow is one line of the sort table.
type taskRow struct {
	Rank      int
	Priority  int
	Key       string
	Name      string
	State     task.State
	DependsOn []string
}

// newTaskRows converts scheduled tasks to table rows, resolving IDs back to
// plan keys.
func newTaskRows(res *plan.Result, tasks []*task.Task) []taskRow {
	rows := make([]taskRow, 0, len(tasks))
	for _, t := range tasks {
		key, _ := res.Key(t.ID())
		row := taskRow{
			Rank:     t.Rank(),
			Priority: t.Priority(),
			Key:      key,
			Name:     t.Name(),
			State:    t.State(),
		}
		for _, dep := range res.Board.Dependencies(t.ID()) {
			k, _ := res.Key(dep.ID())
			row.DependsOn = append(row.DependsOn, k)
		}
		rows = append(rows, row)
	}
	return rows
}

// renderTaskTable renders rows in the order given.
func renderTaskTable(rows []taskRow) string {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		deps := "—"
		if len(r.DependsOn) > 0 {
			deps = strings.Join(r.DependsOn, ", ")
		}
		name := r.Name
		if r.Key != "" && r.Key != r.Name {
			name += " (" + r.Key + ")"
		}
		cells[i] = []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Rank),
			strconv.Itoa(r.Priority),
			name,
			r.State.String(),
			deps,
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Rank", "Priority", "Task", "State", "Depends on").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			switch col {
			case 0:
				return base.Foreground(colorDim)
			case 1, 2:
				return base.Foreground(colorCyan)
			case 4:
				if row >= 0 && row < len(rows) {
					return stateStyles[rows[row].State].Padding(0, 1)
				}
			}
			return base
		})

	return t.Render()
}
