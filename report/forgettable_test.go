package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sodatea/berry/message"
	"github.com/sodatea/berry/pretty"
)

func newForgetfulStream(out *bytes.Buffer, capacity int) *Stream {
	return New(Options{
		Out:                 out,
		IncludeFooter:       true,
		IncludeInfos:        true,
		IncludeWarnings:     true,
		EnableProgressBars:  true,
		Style:               pretty.BarStyle{Name: "test", Filled: "#", Empty: ".", Size: 80},
		Columns:             120,
		ForgettableCapacity: capacity,
		FrameInterval:       time.Hour,
		SpinInterval:        time.Hour,
	})
}

func TestForgettableLinesPrintNormallyUntilCapacity(t *testing.T) {
	out := &bytes.Buffer{}
	sut := newForgetfulStream(out, 3)

	for i := 0; i < 3; i++ {
		sut.ReportInfo(message.FetchNotCached, "fetch %d", i)
	}

	written := out.String()
	if strings.Contains(written, "\x1b[") {
		t.Errorf("No erasing expected below capacity, got %q", written)
	}
	if got := strings.Count(written, "\n"); got != 3 {
		t.Errorf("Expected 3 plain lines, got %d in %q", got, written)
	}
}

func TestOverflowRewritesTheRetainedWindowAsOneBlock(t *testing.T) {
	out := &bytes.Buffer{}
	capacity := 5
	sut := newForgetfulStream(out, capacity)

	for i := 0; i < capacity; i++ {
		sut.ReportInfo(message.FetchNotCached, "fetch %d", i)
	}

	out.Reset()
	for i := capacity; i < capacity+3; i++ {
		sut.ReportInfo(message.FetchNotCached, "fetch %d", i)
	}
	written := out.String()

	// Each overflow erases the previously printed window and rewrites
	// exactly the retained lines; nothing scrolls.
	if got := strings.Count(written, "\x1b[5A\x1b[0J"); got != 3 {
		t.Errorf("Expected 3 block erases of 5 rows, got %d in %q", got, written)
	}
	sut.mu.Lock()
	retained := sut.forgettable.Snapshot()
	shown := sut.forgettableShown
	sut.mu.Unlock()
	if len(retained) != capacity {
		t.Fatalf("Expected %d retained lines, got %d", capacity, len(retained))
	}
	if shown != capacity {
		t.Errorf("Expected %d lines on screen, got %d", capacity, shown)
	}
	if !strings.Contains(retained[0], "fetch 3") || !strings.Contains(retained[4], "fetch 7") {
		t.Errorf("Oldest three lines should be gone, got %v", retained)
	}

	// The final rewrite ends with the 5 retained lines, oldest first.
	lines := strings.Split(strings.TrimRight(written, "\n"), "\n")
	tail := lines[len(lines)-capacity:]
	for i, line := range tail {
		expected := []string{"fetch 3", "fetch 4", "fetch 5", "fetch 6", "fetch 7"}[i]
		if !strings.Contains(line, expected) {
			t.Errorf("Block line %d should contain %q, got %q", i, expected, line)
		}
	}
}

func TestOrdinaryEventDiscardsForgettableHistory(t *testing.T) {
	out := &bytes.Buffer{}
	sut := newForgetfulStream(out, 3)

	for i := 0; i < 3; i++ {
		sut.ReportInfo(message.FetchNotCached, "fetch %d", i)
	}

	out.Reset()
	sut.ReportInfo(message.Unnamed, "resolution done")

	// The pending history is dropped without being reprinted.
	written := out.String()
	if strings.Contains(written, "fetch") {
		t.Errorf("History must not be reprinted, got %q", written)
	}
	sut.mu.Lock()
	pending, shown := sut.forgettable.Len(), sut.forgettableShown
	sut.mu.Unlock()
	if pending != 0 || shown != 0 {
		t.Errorf("Expected history discarded, pending=%d shown=%d", pending, shown)
	}

	// The next forgettable line starts a fresh window printed normally.
	out.Reset()
	sut.ReportInfo(message.FetchNotCached, "fetch fresh")
	if strings.Contains(out.String(), "\x1b[") {
		t.Errorf("Fresh window should print plainly, got %q", out.String())
	}
}

func TestForgettableEventsWithProgressRowsLive(t *testing.T) {
	out := &bytes.Buffer{}
	sut := newForgetfulStream(out, 2)

	source := make(chan Progress)
	handle := sut.StartProgress(source)
	source <- Progress{Fraction: 0.5}
	source <- Progress{Fraction: 0.5} // fence

	sut.ReportInfo(message.FetchNotCached, "fetch a")
	sut.ReportInfo(message.FetchNotCached, "fetch b")
	out.Reset()
	sut.ReportInfo(message.FetchNotCached, "fetch c")

	written := out.String()
	// Overflow with one live row: erase the row, erase the two shown
	// lines, rewrite the window, then redraw the row below it.
	if !strings.HasPrefix(written, "\x1b[1A\x1b[0J\x1b[2A\x1b[0J") {
		t.Errorf("Expected row erase then window erase, got %q", written)
	}
	lines := strings.Split(strings.TrimRight(written, "\n"), "\n")
	last := lines[len(lines)-1]
	if !strings.Contains(last, "#") {
		t.Errorf("Progress row should be redrawn last, got %q", last)
	}

	close(source)
	<-handle.Done()
}

func TestStructuredModeNeverCollapses(t *testing.T) {
	out := &bytes.Buffer{}
	sut := New(Options{
		Out:                 out,
		Structured:          true,
		IncludeFooter:       true,
		ForgettableCapacity: 2,
	})

	for i := 0; i < 5; i++ {
		sut.ReportInfo(message.FetchNotCached, "fetch %d", i)
	}

	written := out.String()
	if strings.Contains(written, "\x1b[") {
		t.Errorf("Structured mode must not emit control sequences, got %q", written)
	}
	if got := strings.Count(written, "\n"); got != 5 {
		t.Errorf("Expected 5 records, got %d", got)
	}
}
