// Package logbuf provides a bounded sliding window over diagnostic lines.
// The reporter uses it to collapse high-frequency low-value notices into a
// fixed number of terminal rows instead of letting them scroll.
package logbuf

import "sync"

// Window is a thread-safe sliding window with a fixed capacity. Pushing past
// capacity evicts the oldest lines so the settled size never exceeds it.
type Window struct {
	lines    []string
	capacity int
	mu       sync.RWMutex
}

// NewWindow creates a window holding at most capacity lines. Capacities
// below one are raised to one.
func NewWindow(capacity int) *Window {
	if capacity < 1 {
		capacity = 1
	}
	return &Window{
		lines:    make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Capacity returns the fixed maximum size of the window.
func (it *Window) Capacity() int {
	return it.capacity
}

// Push appends a line and evicts from the front if the window overflowed.
// It returns the number of lines evicted (zero while the window still has
// room).
func (it *Window) Push(line string) int {
	it.mu.Lock()
	defer it.mu.Unlock()

	it.lines = append(it.lines, line)
	evicted := len(it.lines) - it.capacity
	if evicted > 0 {
		it.lines = it.lines[evicted:]
		return evicted
	}
	return 0
}

// Snapshot returns a copy of the retained lines, oldest first.
func (it *Window) Snapshot() []string {
	it.mu.RLock()
	defer it.mu.RUnlock()

	result := make([]string, len(it.lines))
	copy(result, it.lines)
	return result
}

// Len returns the number of retained lines.
func (it *Window) Len() int {
	it.mu.RLock()
	defer it.mu.RUnlock()
	return len(it.lines)
}

// Reset discards all retained lines.
func (it *Window) Reset() {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.lines = it.lines[:0]
}
