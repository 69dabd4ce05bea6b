package task_test

import (
	"errors"
	"fmt"

	"github.com/matzehuels/taskchain/pkg/dag"
	"github.com/matzehuels/taskchain/pkg/task"
)

func ExampleBoard() {
	b := task.NewBoard()
	deploy := b.NewTask(task.Position{})
	build := b.NewTask(task.Position{X: 120})
	deploy.SetName("Deploy")
	build.SetName("Build")

	_, _ = b.Connect(deploy.ID(), build.ID())
	_, err := b.Connect(build.ID(), deploy.ID())

	fmt.Println("cycle rejected:", errors.Is(err, dag.ErrCycle))
	for _, dep := range b.Dependencies(deploy.ID()) {
		fmt.Println("Deploy waits for", dep.Name())
	}
	// Output:
	// cycle rejected: true
	// Deploy waits for Build
}

func ExampleTask_State() {
	t := task.New(task.Position{})
	t.SetReady()
	t.SetAssigned()
	fmt.Println(t.State())

	t.Transition(task.Complete)
	fmt.Println(t.State(), t.AvailableStates())
	// Output:
	// Assigned
	// Complete [Assigned Ready]
}
