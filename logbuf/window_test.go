package logbuf

import (
	"fmt"
	"testing"
)

func TestWindowKeepsAtMostCapacityLines(t *testing.T) {
	window := NewWindow(5)

	for i := 0; i < 5; i++ {
		if evicted := window.Push(fmt.Sprintf("line %d", i)); evicted != 0 {
			t.Errorf("Push %d should not evict, got %d", i, evicted)
		}
	}
	if window.Len() != 5 {
		t.Fatalf("Expected 5 retained lines, got %d", window.Len())
	}

	for i := 5; i < 8; i++ {
		if evicted := window.Push(fmt.Sprintf("line %d", i)); evicted != 1 {
			t.Errorf("Push %d should evict exactly one line, got %d", i, evicted)
		}
	}

	lines := window.Snapshot()
	if len(lines) != 5 {
		t.Fatalf("Expected 5 retained lines after overflow, got %d", len(lines))
	}
	if lines[0] != "line 3" || lines[4] != "line 7" {
		t.Errorf("Oldest lines should be dropped, got %v", lines)
	}
}

func TestWindowReset(t *testing.T) {
	window := NewWindow(3)
	window.Push("one")
	window.Push("two")
	window.Reset()

	if window.Len() != 0 {
		t.Errorf("Expected empty window after reset, got %d lines", window.Len())
	}
	if window.Capacity() != 3 {
		t.Errorf("Reset should not change capacity, got %d", window.Capacity())
	}
}

func TestWindowMinimumCapacity(t *testing.T) {
	window := NewWindow(0)
	if window.Capacity() != 1 {
		t.Errorf("Expected capacity raised to 1, got %d", window.Capacity())
	}
	window.Push("a")
	if evicted := window.Push("b"); evicted != 1 {
		t.Errorf("Expected one eviction, got %d", evicted)
	}
}
