package report

import (
	"fmt"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/sodatea/berry/message"
	"github.com/sodatea/berry/pretty"
)

// Redraw controller. Invariant: after every write the cursor sits directly
// below the last drawn progress row (column start when there are none), and
// rows always equals the number of rows currently on the terminal. Callers
// hold the stream mutex.

// Width of the fixed "➤ BR0000: ⠋ " prefix in terminal cells.
const progressPrefixWidth = 12

func (it *Stream) eraseLocked() {
	if it.rows == 0 {
		return
	}
	fmt.Fprint(it.opts.Out, pretty.CursorUp(it.rows)+pretty.EraseBelow())
	it.rows = 0
}

func (it *Stream) drawLocked() {
	if !it.fancyLocked() || len(it.order) == 0 {
		return
	}
	shown := len(it.order)
	if budget := it.opts.Rows - 1; budget > 0 && shown > budget {
		shown = budget
	}
	spinner := it.frames[it.frame]
	marker := it.styleLocked(it.marker, sevInfo.styleName())
	label := message.Unnamed.Label()
	for _, handle := range it.order[:shown] {
		state := it.states[handle]
		bar := formatBar(it.opts.Style, it.columns, state.fraction)
		fmt.Fprintf(it.opts.Out, "%s %s: %s %s\n", marker, label, spinner, bar)
	}
	it.rows = shown
}

func (it *Stream) redrawLocked() {
	it.redraws++
	it.eraseLocked()
	it.drawLocked()
}

// writeLineLocked performs one ordinary erase-write-redraw cycle.
func (it *Stream) writeLineLocked(line string) {
	it.eraseLocked()
	fmt.Fprintln(it.opts.Out, it.truncateLocked(line))
	it.drawLocked()
}

// truncateLocked caps a line at the terminal width while rows are live, so a
// wrapped line can never break the erase arithmetic. ANSI sequences do not
// count towards the width.
func (it *Stream) truncateLocked(line string) string {
	if !it.fancyLocked() {
		return line
	}
	return ansi.Truncate(line, it.columns, "")
}

// Animation clock: a single timer slot, re-armed from its own callback only
// while sources remain. The spinner glyph advances on a coarser threshold
// than the redraw cadence.

func (it *Stream) armClockLocked() {
	if it.clock != nil || !it.fancyLocked() || len(it.order) == 0 {
		return
	}
	it.clock = time.AfterFunc(it.opts.FrameInterval, it.tick)
}

func (it *Stream) stopClockLocked() {
	if it.clock != nil {
		it.clock.Stop()
		it.clock = nil
	}
}

func (it *Stream) tick() {
	it.mu.Lock()
	defer it.mu.Unlock()

	it.clock = nil
	if len(it.order) == 0 || !it.fancyLocked() {
		return
	}
	now := time.Now()
	if now.Sub(it.lastSpin) >= it.opts.SpinInterval {
		it.frame = (it.frame + 1) % len(it.frames)
		it.lastSpin = now
	}
	it.redrawLocked()
	it.clock = time.AfterFunc(it.opts.FrameInterval, it.tick)
}
