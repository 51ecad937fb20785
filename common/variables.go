package common

import (
	"fmt"
	"time"
)

var (
	LogLinenumbers bool
	LogHides       []string

	silentFlag bool
	debugFlag  bool
	traceFlag  bool

	// When is the startup timestamp, shared so derived values like random
	// seeds stay stable within one run.
	When = time.Now().Unix()
)

func DefineVerbosity(silent, debug, trace bool) {
	silentFlag = silent
	debugFlag = debug
	traceFlag = trace
}

func Silent() bool {
	return silentFlag
}

func DebugFlag() bool {
	return debugFlag || traceFlag
}

func TraceFlag() bool {
	return traceFlag
}

type Duration time.Duration

func (it Duration) Seconds() float64 {
	return float64(it) / float64(time.Second)
}

func (it Duration) String() string {
	return fmt.Sprintf("%5.3fs", it.Seconds())
}

// Stopwatch measures elapsed time from a fixed starting point.
type stopwatch struct {
	message string
	started time.Time
}

func Stopwatch(format string, details ...interface{}) *stopwatch {
	return &stopwatch{
		message: fmt.Sprintf(format, details...),
		started: time.Now(),
	}
}

func (it *stopwatch) Elapsed() Duration {
	return Duration(time.Since(it.started))
}

func (it *stopwatch) Debug() Duration {
	elapsed := it.Elapsed()
	Debug("%s %s", it.message, elapsed)
	return elapsed
}

func (it *stopwatch) Report() Duration {
	elapsed := it.Elapsed()
	Log("%s %s", it.message, elapsed)
	return elapsed
}
