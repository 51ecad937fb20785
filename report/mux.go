package report

import (
	"sync"

	"github.com/sodatea/berry/pretty"
)

// Progress multiplexer: one consumption goroutine per registered source,
// latest-value-wins per source, no queueing. The stream mutex decides the
// relative order in which different sources' updates land; any single
// source's updates are observed in production order.

type progressState struct {
	fraction float64
	title    string
}

// ProgressHandle pairs the completion signal of a registered source with an
// independent cancellation handle.
type ProgressHandle struct {
	owner *Stream
	done  chan struct{}
	once  sync.Once
}

// Done is closed when the source channel has been fully drained.
func (it *ProgressHandle) Done() <-chan struct{} {
	return it.done
}

// Stop detaches the reporter's interest in the source and removes its row.
// It does not cancel the underlying production; the consumption loop keeps
// draining the channel but ignores further values. Stop is idempotent.
func (it *ProgressHandle) Stop() {
	it.owner.detach(it)
}

// StartProgress registers a progress source and begins consuming it. The
// row appears immediately at fraction zero and disappears when the source
// is exhausted or stopped.
func (it *Stream) StartProgress(source <-chan Progress) *ProgressHandle {
	handle := &ProgressHandle{owner: it, done: make(chan struct{})}

	it.mu.Lock()
	it.states[handle] = progressState{}
	it.order = append(it.order, handle)
	if len(it.order) == 1 && it.fancyLocked() {
		pretty.HideCursor()
	}
	it.redrawLocked()
	it.armClockLocked()
	it.mu.Unlock()

	go func() {
		for snapshot := range source {
			it.observe(handle, snapshot)
		}
		it.detach(handle)
		handle.once.Do(func() { close(handle.done) })
	}()

	return handle
}

func (it *Stream) observe(handle *ProgressHandle, snapshot Progress) {
	it.mu.Lock()
	defer it.mu.Unlock()

	current, registered := it.states[handle]
	if !registered {
		return
	}
	next := progressState{fraction: clampFraction(snapshot.Fraction), title: snapshot.Title}
	if next == current {
		return
	}
	it.states[handle] = next
	it.redrawLocked()
}

func (it *Stream) detach(handle *ProgressHandle) {
	it.mu.Lock()
	defer it.mu.Unlock()

	if _, registered := it.states[handle]; !registered {
		return
	}
	delete(it.states, handle)
	for at, candidate := range it.order {
		if candidate == handle {
			it.order = append(it.order[:at], it.order[at+1:]...)
			break
		}
	}
	it.redrawLocked()
	if len(it.order) == 0 {
		it.stopClockLocked()
		pretty.ShowCursor()
	}
}

// ActiveSources returns how many progress sources are currently tracked.
func (it *Stream) ActiveSources() int {
	it.mu.Lock()
	defer it.mu.Unlock()
	return len(it.order)
}

func clampFraction(fraction float64) float64 {
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}
