package plan

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/taskchain/pkg/dag"
	apperr "github.com/matzehuels/taskchain/pkg/errors"
	"github.com/matzehuels/taskchain/pkg/task"
)

// File is a decoded plan file.
type File struct {
	Title string  `toml:"title"`
	Tasks []Entry `toml:"task"`
}

// Entry declares one task. Key identifies the task inside the file; Name
// is what gets displayed and defaults to the board's automatic name.
type Entry struct {
	Key       string   `toml:"key"`
	Name      string   `toml:"name"`
	X         float64  `toml:"x"`
	Y         float64  `toml:"y"`
	State     string   `toml:"state"`
	DependsOn []string `toml:"depends_on"`
}

// Decode reads a plan from r. Unknown keys are an error so that typos such
// as "depends-on" do not silently drop dependencies.
func Decode(r io.Reader) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidPlan, err, "malformed plan")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, apperr.New(apperr.ErrCodeInvalidPlan, "unknown plan keys: %s", strings.Join(keys, ", "))
	}
	return &f, nil
}

// Load reads, decodes and validates the plan at path.
func Load(path string) (*File, error) {
	if err := apperr.ValidatePath(path); err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "plan file not found: %s", path)
		}
		return nil, fmt.Errorf("open plan: %w", err)
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks keys, names, states and dependency references.
//
// Self-dependencies and repeated dependencies are not validation errors;
// the board rejects them during Build and they are reported as rejections.
func (f *File) Validate() error {
	seen := make(map[string]bool, len(f.Tasks))
	for i, e := range f.Tasks {
		if err := apperr.ValidateKey(e.Key); err != nil {
			return fmt.Errorf("task #%d: %w", i+1, err)
		}
		if seen[e.Key] {
			return apperr.New(apperr.ErrCodeInvalidPlan, "duplicate task key %q", e.Key)
		}
		seen[e.Key] = true

		if e.Name != "" {
			if err := apperr.ValidateTaskName(e.Name); err != nil {
				return fmt.Errorf("task %q: %w", e.Key, err)
			}
		}
		if _, err := task.ParseState(e.State); err != nil {
			return fmt.Errorf("task %q: %w", e.Key, err)
		}
	}
	for _, e := range f.Tasks {
		for _, dep := range e.DependsOn {
			if !seen[dep] {
				return apperr.New(apperr.ErrCodeUnknownTask, "task %q depends on undeclared task %q", e.Key, dep)
			}
		}
	}
	return nil
}

// Rejection is a dependency the board refused to record.
type Rejection struct {
	From, To string
	Err      error
}

// Result is a board built from a plan.
type Result struct {
	Title    string
	Board    *task.Board
	Keys     map[string]task.ID
	Rejected []Rejection

	keys map[task.ID]string
}

// Key returns the plan key of the task with the given ID.
func (r *Result) Key(id task.ID) (string, bool) {
	k, ok := r.keys[id]
	return k, ok
}

// Build validates f and replays it onto a fresh board: tasks are created in
// file order, then dependencies are connected in file order. Dependencies
// the board rejects (cycles, duplicates) are collected in Result.Rejected
// and do not fail the build.
func (f *File) Build() (*Result, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		Title: f.Title,
		Board: task.NewBoard(),
		Keys:  make(map[string]task.ID, len(f.Tasks)),
		keys:  make(map[task.ID]string, len(f.Tasks)),
	}
	for _, e := range f.Tasks {
		t := res.Board.NewTask(task.Position{X: e.X, Y: e.Y})
		if e.Name != "" {
			t.SetName(e.Name)
		}
		state, _ := task.ParseState(e.State)
		t.Transition(state)
		res.Keys[e.Key] = t.ID()
		res.keys[t.ID()] = e.Key
	}

	for _, e := range f.Tasks {
		from := res.Keys[e.Key]
		for _, dep := range e.DependsOn {
			if _, err := res.Board.Connect(from, res.Keys[dep]); err != nil {
				res.Rejected = append(res.Rejected, Rejection{From: e.Key, To: dep, Err: classify(err, e.Key, dep)})
			}
		}
	}
	return res, nil
}

func classify(err error, from, to string) error {
	switch {
	case errors.Is(err, dag.ErrCycle):
		return apperr.Wrap(apperr.ErrCodeCycle, err, "%s -> %s", from, to)
	case errors.Is(err, dag.ErrDuplicateEdge):
		return apperr.Wrap(apperr.ErrCodeDuplicateEdge, err, "%s -> %s", from, to)
	case errors.Is(err, task.ErrUnknownTask):
		return apperr.Wrap(apperr.ErrCodeUnknownTask, err, "%s -> %s", from, to)
	}
	return apperr.Wrap(apperr.ErrCodeInternal, err, "%s -> %s", from, to)
}
