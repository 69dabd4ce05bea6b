// Package plan loads task boards from TOML plan files.
//
// A plan declares tasks by key and lists, for each task, the keys it
// depends on:
//
//	title = "Release"
//
//	[[task]]
//	key = "test"
//	state = "ready"
//
//	[[task]]
//	key = "build"
//	name = "Build binaries"
//	depends_on = ["test"]
//
// [File.Build] replays the plan onto a fresh [task.Board] the way an editor
// would: create every task, then connect dependencies one at a time. The
// board's cycle and duplicate checks apply; refused dependencies are
// reported in [Result.Rejected] rather than failing the whole plan.
//
// Plans are input only. Nothing in this package writes a board back to disk.
package plan
