// Package report implements the streaming diagnostics and progress engine:
// classified info/warning/error events, timed sections, concurrently live
// progress rows multiplexed into one redrawn terminal block, and an optional
// line-oriented JSON encoding for machine consumption.
package report

import (
	"io"
	"os"
	"time"

	"github.com/sodatea/berry/message"
	"github.com/sodatea/berry/pretty"
	"github.com/sodatea/berry/xviper"
)

// Locator identifies the subject of a cache hit or miss. The reporter only
// counts them, it never inspects one.
type Locator interface{}

// Progress is one snapshot from a progress source. Fraction is clamped to
// [0, 1] on arrival; Title is optional.
type Progress struct {
	Fraction float64
	Title    string
}

// Reporter is the full event surface exposed to the host tool.
type Reporter interface {
	ReportInfo(name message.Name, form string, details ...interface{})
	ReportWarning(name message.Name, form string, details ...interface{})
	ReportError(name message.Name, form string, details ...interface{})
	ReportErrorOnce(failure error)
	ReportCacheHit(locator Locator)
	ReportCacheMiss(locator Locator)
	StartProgress(source <-chan Progress) *ProgressHandle
	Section(name message.Name, text string, scope func() error) error
	Finalize()
	HasErrors() bool
	ExitCode() int
}

// Options selects the output mode and features of a Stream. The zero value
// is not useful on its own; start from DefaultOptions or fill the fields
// explicitly (tests do the latter with a bytes.Buffer sink).
type Options struct {
	Out             io.Writer
	Structured      bool
	IncludeFooter   bool
	IncludeInfos    bool
	IncludeWarnings bool
	EnableColors    bool
	EnableTimers    bool

	EnableProgressBars bool
	Style              pretty.BarStyle
	Columns            int
	// Rows caps the drawn block below the terminal height. A block as tall
	// as the screen would scroll on draw and corrupt the erase arithmetic.
	Rows                int
	ForgettableCapacity int
	ForgettableNames    map[message.Name]bool

	// Animation cadence. Zero values select the defaults (16ms frames,
	// 80ms spinner rotation); tests stretch these to keep output stable.
	FrameInterval time.Duration
	SpinInterval  time.Duration
}

// DefaultOptions derives the recognized options from the persisted
// configuration and the one-time terminal setup.
func DefaultOptions() Options {
	structured := xviper.JsonOutput()
	plainText := !structured

	style := pretty.DefaultBarStyle()
	if name := xviper.ProgressBarStyle(); name != "" {
		style = pretty.LookupBarStyle(name)
	}

	return Options{
		Out:                 os.Stdout,
		Structured:          structured,
		IncludeFooter:       true,
		IncludeInfos:        plainText,
		IncludeWarnings:     plainText,
		EnableColors:        xviper.EnableColors() && !pretty.Colorless,
		EnableTimers:        xviper.EnableTimers(),
		EnableProgressBars:  xviper.EnableProgressBars() && pretty.Interactive && !structured,
		Style:               style,
		ForgettableCapacity: defaultForgettableCapacity,
		ForgettableNames:    message.Forgettable(),
	}
}
