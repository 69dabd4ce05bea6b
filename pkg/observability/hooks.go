// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about board edits and scheduling passes.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Graph and scheduling operations are synchronous and never block, so hook
// methods take no context. Implementations must return quickly; they run
// inline with the mutation or sort that triggered them.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGraphHooks(&myGraphHooks{})
//	    observability.SetScheduleHooks(&myScheduleHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Schedule().OnSortStart(board.Len())
//	// ... peel tiers ...
//	observability.Schedule().OnSortComplete(board.Len(), tiers, time.Since(start))
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Graph Hooks
// =============================================================================

// GraphHooks receives events from task board mutations.
// Task identifiers are passed in their string form.
type GraphHooks interface {
	// Task events
	OnTaskAdded(id string)
	OnTaskRemoved(id string)

	// Edge events
	OnEdgeInserted(from, to string)
	OnEdgeRejected(from, to string, err error)
}

// =============================================================================
// Schedule Hooks
// =============================================================================

// ScheduleHooks receives events from scheduling passes.
type ScheduleHooks interface {
	// OnSortStart records the start of a pass over taskCount tasks.
	OnSortStart(taskCount int)

	// OnTier records that tier index (0-based) resolved size tasks.
	OnTier(index, size int)

	// OnSortComplete records a finished pass.
	OnSortComplete(taskCount, tierCount int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGraphHooks is a no-op implementation of GraphHooks.
type NoopGraphHooks struct{}

func (NoopGraphHooks) OnTaskAdded(string)                   {}
func (NoopGraphHooks) OnTaskRemoved(string)                 {}
func (NoopGraphHooks) OnEdgeInserted(string, string)        {}
func (NoopGraphHooks) OnEdgeRejected(string, string, error) {}

// NoopScheduleHooks is a no-op implementation of ScheduleHooks.
type NoopScheduleHooks struct{}

func (NoopScheduleHooks) OnSortStart(int)                        {}
func (NoopScheduleHooks) OnTier(int, int)                        {}
func (NoopScheduleHooks) OnSortComplete(int, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	graphHooks    GraphHooks    = NoopGraphHooks{}
	scheduleHooks ScheduleHooks = NoopScheduleHooks{}
	hooksMu       sync.RWMutex
)

// SetGraphHooks registers custom graph hooks.
// This should be called once at application startup before any board is edited.
func SetGraphHooks(h GraphHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		graphHooks = h
	}
}

// SetScheduleHooks registers custom schedule hooks.
// This should be called once at application startup before any scheduling pass.
func SetScheduleHooks(h ScheduleHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		scheduleHooks = h
	}
}

// Graph returns the registered graph hooks.
func Graph() GraphHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return graphHooks
}

// Schedule returns the registered schedule hooks.
func Schedule() ScheduleHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return scheduleHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	graphHooks = NoopGraphHooks{}
	scheduleHooks = NoopScheduleHooks{}
}
