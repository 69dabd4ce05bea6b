package schedule

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/taskchain/pkg/observability"
	"github.com/matzehuels/taskchain/pkg/queue"
	"github.com/matzehuels/taskchain/pkg/task"
)

// Scheduler writes scheduling results onto the tasks of a board.
//
// A Scheduler holds no per-pass state; one instance can sort any number of
// boards, though a single board must not be sorted concurrently.
type Scheduler struct {
	Logger *log.Logger
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the logger used for per-tier debug output.
func WithLogger(l *log.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.Logger = l
		}
	}
}

// New creates a scheduler. Without options it logs to log.Default().
func New(opts ...Option) *Scheduler {
	s := &Scheduler{Logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sort ranks every task on b and returns them in a queue ordered by
// priority, then rank.
//
// Each task's rank and priority are overwritten. Tasks in the first tier
// are marked ready; tasks in later tiers have the ready flag cleared. Other
// flags are left alone. The dependency graph is not modified.
func (s *Scheduler) Sort(b *task.Board) *queue.Queue[*task.Task] {
	start := time.Now()
	hooks := observability.Schedule()
	hooks.OnSortStart(b.Len())

	q := queue.New(task.Compare)
	as := Rank(b.Graph())

	tier, size := 0, 0
	flush := func() {
		if size == 0 {
			return
		}
		hooks.OnTier(tier, size)
		s.Logger.Debug("resolved tier", "tier", tier, "tasks", size)
	}

	for _, a := range as {
		if a.Tier != tier {
			flush()
			tier, size = a.Tier, 0
		}
		size++

		t := b.Task(a.Node)
		if t == nil {
			continue
		}
		t.Assign(a.Rank, a.Priority)
		if a.Tier == 0 {
			t.SetReady()
		} else {
			t.ClearReady()
		}
		q.Offer(t)
	}
	flush()

	tiers := 0
	if len(as) > 0 {
		tiers = as[len(as)-1].Tier + 1
	}
	elapsed := time.Since(start)
	hooks.OnSortComplete(len(as), tiers, elapsed)
	s.Logger.Debug("sorted tasks", "tasks", len(as), "tiers", tiers, "duration", elapsed)
	return q
}

// Sort ranks the tasks on b with a default Scheduler.
func Sort(b *task.Board) *queue.Queue[*task.Task] {
	return New().Sort(b)
}
