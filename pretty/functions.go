package pretty

import (
	"fmt"
	"os"

	"github.com/sodatea/berry/common"
)

// Ok prints a green "OK." marker and returns nil, so commands can end with
// `return pretty.Ok()`.
func Ok() error {
	Success("OK.")
	return nil
}

// Exit prints the given message and terminates the process with the given
// exit code, after pending log lines have been flushed.
func Exit(code int, format string, rest ...interface{}) {
	message := fmt.Sprintf(format, rest...)
	if code == 0 {
		Success(message)
	} else {
		Error(message)
	}
	common.WaitLogs()
	os.Exit(code)
}

// Guard exits with the given code and message unless the condition holds.
func Guard(condition bool, code int, format string, rest ...interface{}) {
	if !condition {
		Exit(code, format, rest...)
	}
}
