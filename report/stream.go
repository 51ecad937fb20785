package report

import (
	"fmt"
	"sync"
	"time"

	"github.com/sodatea/berry/common"
	"github.com/sodatea/berry/logbuf"
	"github.com/sodatea/berry/message"
	"github.com/sodatea/berry/pretty"
)

const defaultForgettableCapacity = 5

type severity int

const (
	sevInfo severity = iota
	sevWarning
	sevError
)

func (it severity) String() string {
	switch it {
	case sevWarning:
		return "warning"
	case sevError:
		return "error"
	default:
		return "info"
	}
}

func (it severity) styleName() string {
	switch it {
	case sevWarning:
		return pretty.StyleWarning
	case sevError:
		return pretty.StyleError
	default:
		return pretty.StyleInfo
	}
}

// Stream is the terminal implementation of Reporter. One mutex serializes
// every event, progress update and timer tick, so all terminal mutation is
// single-writer and the erase/redraw invariant cannot be violated by
// interleaving.
type Stream struct {
	mu   sync.Mutex
	opts Options

	started   time.Time
	indent    int
	finalized bool

	marker  string
	columns int

	cacheHits   int
	cacheMisses int
	warnings    int
	errors      int
	reported    map[error]bool

	order  []*ProgressHandle
	states map[*ProgressHandle]progressState

	rows     int
	frame    int
	frames   []string
	lastSpin time.Time
	clock    *time.Timer
	redraws  int

	forgettable      *logbuf.Window
	forgettableShown int
}

// New creates a Stream from the given options, filling unset fields with
// their defaults.
func New(opts Options) *Stream {
	if opts.Out == nil {
		opts.Out = DefaultOptions().Out
	}
	if opts.Style.Size == 0 {
		opts.Style = pretty.DefaultBarStyle()
	}
	if opts.Columns <= 0 {
		opts.Columns = pretty.TerminalWidth()
	}
	if opts.Rows <= 0 {
		opts.Rows = pretty.TerminalHeight()
	}
	if opts.ForgettableCapacity <= 0 {
		opts.ForgettableCapacity = defaultForgettableCapacity
	}
	if opts.ForgettableNames == nil {
		opts.ForgettableNames = message.Forgettable()
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = 16 * time.Millisecond
	}
	if opts.SpinInterval <= 0 {
		opts.SpinInterval = 80 * time.Millisecond
	}
	marker := ">"
	if pretty.Iconic {
		marker = "➤"
	}
	return &Stream{
		opts:        opts,
		started:     time.Now(),
		marker:      marker,
		columns:     opts.Columns,
		reported:    make(map[error]bool),
		states:      make(map[*ProgressHandle]progressState),
		frames:      pretty.SpinnerFrames(),
		forgettable: logbuf.NewWindow(opts.ForgettableCapacity),
	}
}

func (it *Stream) ReportInfo(name message.Name, form string, details ...interface{}) {
	text := fmt.Sprintf(form, details...)
	it.mu.Lock()
	defer it.mu.Unlock()

	if it.opts.Structured {
		it.emitRecordLocked(sevInfo, name, text)
		return
	}
	if !it.opts.IncludeInfos {
		return
	}
	if it.opts.ForgettableNames[name] && it.fancyLocked() {
		it.forgetfulLocked(sevInfo, name, text)
		return
	}
	it.resetForgettableLocked()
	it.writeLineLocked(it.formatLineLocked(sevInfo, name, text))
}

func (it *Stream) ReportWarning(name message.Name, form string, details ...interface{}) {
	text := fmt.Sprintf(form, details...)
	it.mu.Lock()
	defer it.mu.Unlock()

	it.warnings++
	if it.opts.Structured {
		it.emitRecordLocked(sevWarning, name, text)
		return
	}
	if !it.opts.IncludeWarnings {
		return
	}
	it.resetForgettableLocked()
	it.writeLineLocked(it.formatLineLocked(sevWarning, name, text))
}

func (it *Stream) ReportError(name message.Name, form string, details ...interface{}) {
	text := fmt.Sprintf(form, details...)
	it.mu.Lock()
	defer it.mu.Unlock()

	it.errors++
	if it.opts.Structured {
		it.emitRecordLocked(sevError, name, text)
		return
	}
	// Errors are displayed regardless of suppression flags.
	it.resetForgettableLocked()
	it.writeLineLocked(it.formatLineLocked(sevError, name, text))
}

// ReportErrorOnce reports a captured failure as exactly one error event.
// Reporting the same failure again, for example when it unwinds through
// nested sections, neither re-displays it nor bumps the error counter.
func (it *Stream) ReportErrorOnce(failure error) {
	if failure == nil {
		return
	}
	it.mu.Lock()
	if it.reported[failure] {
		it.mu.Unlock()
		return
	}
	it.reported[failure] = true
	it.mu.Unlock()
	it.ReportError(message.Exception, "%s", failure.Error())
}

func (it *Stream) ReportCacheHit(locator Locator) {
	it.mu.Lock()
	it.cacheHits++
	it.mu.Unlock()
}

func (it *Stream) ReportCacheMiss(locator Locator) {
	it.mu.Lock()
	it.cacheMisses++
	it.mu.Unlock()
}

// Section runs scope as a timed, indented operation. Its failure — an error
// return or a panic — is reported once and then handed back to the caller:
// errors are returned, panics resume unwinding.
func (it *Stream) Section(name message.Name, text string, scope func() error) (err error) {
	watch := common.Stopwatch("Section %q lasted", text)
	it.ReportInfo(name, "┌ %s", text)
	it.mu.Lock()
	it.indent++
	it.mu.Unlock()

	defer func() {
		it.mu.Lock()
		it.indent--
		it.mu.Unlock()

		recovered := recover()
		if recovered != nil {
			it.ReportErrorOnce(asFailure(recovered))
		}
		if it.opts.EnableTimers {
			it.ReportInfo(name, "└ Completed in %s", formatTimeSpan(time.Duration(watch.Debug())))
		} else {
			it.ReportInfo(name, "└ Completed")
		}
		if recovered != nil {
			panic(recovered)
		}
	}()

	err = scope()
	if err != nil {
		it.ReportErrorOnce(err)
	}
	return err
}

// Finalize emits the summary footer. It never fails, does not cancel still
// running progress sources, and later calls are no-ops.
func (it *Stream) Finalize() {
	it.mu.Lock()
	defer it.mu.Unlock()

	if it.finalized {
		return
	}
	it.finalized = true
	it.stopClockLocked()
	if len(it.order) > 0 {
		pretty.ShowCursor()
	}
	if !it.opts.IncludeFooter {
		return
	}

	outcome := sevInfo
	status := "Done"
	if it.errors > 0 {
		outcome, status = sevError, "Failed with errors"
	} else if it.warnings > 0 {
		outcome, status = sevWarning, "Done with warnings"
	}
	if cache := cachePhrase(it.cacheHits, it.cacheMisses); cache != "" {
		status += " with " + cache
	}
	if it.opts.EnableTimers {
		status += " in " + formatTimeSpan(time.Since(it.started))
	}

	if it.opts.Structured {
		it.emitRecordLocked(outcome, message.Unnamed, status)
		return
	}
	it.resetForgettableLocked()
	it.writeLineLocked(it.formatLineLocked(outcome, message.Unnamed, status))
}

func (it *Stream) HasErrors() bool {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.errors > 0
}

// ExitCode is 1 once any error has been reported, and stays 1 no matter how
// many operations succeed afterwards.
func (it *Stream) ExitCode() int {
	if it.HasErrors() {
		return 1
	}
	return 0
}

// Counters returns the current cache hit, cache miss, warning and error
// counts.
func (it *Stream) Counters() (hits, misses, warnings, errors int) {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.cacheHits, it.cacheMisses, it.warnings, it.errors
}

// SetProgressBars toggles progress row rendering mid-session. Turning it off
// erases any drawn rows first; source tracking and counters are unaffected.
func (it *Stream) SetProgressBars(enabled bool) {
	it.mu.Lock()
	defer it.mu.Unlock()

	if enabled == it.opts.EnableProgressBars {
		return
	}
	if !enabled {
		it.eraseLocked()
		it.stopClockLocked()
		pretty.ShowCursor()
	}
	it.opts.EnableProgressBars = enabled
	if enabled {
		if len(it.order) > 0 {
			pretty.HideCursor()
		}
		it.drawLocked()
		it.armClockLocked()
	}
}

// fancyLocked reports whether the redraw controller is active at all.
func (it *Stream) fancyLocked() bool {
	return it.opts.EnableProgressBars && !it.opts.Structured
}

func (it *Stream) resetForgettableLocked() {
	it.forgettable.Reset()
	it.forgettableShown = 0
}

// forgetfulLocked routes one collapsible info line. While the window has
// room the line prints normally; past capacity the retained window is
// rewritten in place as one block, erasing what was printed before.
func (it *Stream) forgetfulLocked(sev severity, name message.Name, text string) {
	line := it.formatLineLocked(sev, name, text)
	evicted := it.forgettable.Push(line)
	if evicted == 0 {
		it.writeLineLocked(line)
		it.forgettableShown++
		return
	}

	it.eraseLocked()
	if it.forgettableShown > 0 {
		fmt.Fprint(it.opts.Out, pretty.CursorUp(it.forgettableShown)+pretty.EraseBelow())
	}
	kept := it.forgettable.Snapshot()
	for _, retained := range kept {
		fmt.Fprintln(it.opts.Out, it.truncateLocked(retained))
	}
	it.forgettableShown = len(kept)
	it.drawLocked()
}

func asFailure(recovered interface{}) error {
	if failure, ok := recovered.(error); ok {
		return failure
	}
	return fmt.Errorf("panic: %v", recovered)
}
