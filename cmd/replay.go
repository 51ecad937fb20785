package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/sodatea/berry/common"
	"github.com/sodatea/berry/message"
	"github.com/sodatea/berry/pretty"
	"github.com/sodatea/berry/report"
)

// replayScript walks scenario lines, recursing into section scopes.
// Returns the index of the line after the consumed range.
func replayScript(reporter report.Reporter, lines []string, from int) (int, error) {
	at := from
	for at < len(lines) {
		words, err := shlex.Split(lines[at])
		if err != nil {
			return at, fmt.Errorf("line %d: %w", at+1, err)
		}
		at++
		if len(words) == 0 {
			continue
		}
		switch words[0] {
		case "info", "warning", "error":
			name, text, err := replayEvent(words)
			if err != nil {
				return at, err
			}
			switch words[0] {
			case "info":
				reporter.ReportInfo(name, "%s", text)
			case "warning":
				reporter.ReportWarning(name, "%s", text)
			case "error":
				reporter.ReportError(name, "%s", text)
			}
		case "hit":
			reporter.ReportCacheHit(strings.Join(words[1:], " "))
		case "miss":
			reporter.ReportCacheMiss(strings.Join(words[1:], " "))
		case "progress":
			if err := replayProgress(reporter, words); err != nil {
				return at, err
			}
		case "sleep":
			millis, err := replayNumber(words, 1)
			if err != nil {
				return at, err
			}
			time.Sleep(time.Duration(millis) * time.Millisecond)
		case "section":
			name, text, err := replayEvent(words)
			if err != nil {
				return at, err
			}
			err = reporter.Section(name, text, func() error {
				var inner error
				at, inner = replayScript(reporter, lines, at)
				return inner
			})
			if err != nil {
				return at, err
			}
		case "end":
			return at, nil
		default:
			return at, fmt.Errorf("line %d: unknown directive %q", at, words[0])
		}
	}
	return at, nil
}

func replayEvent(words []string) (message.Name, string, error) {
	if len(words) < 3 {
		return message.Unnamed, "", fmt.Errorf("%s needs a code and a text", words[0])
	}
	code, err := strconv.Atoi(words[1])
	if err != nil {
		return message.Unnamed, "", fmt.Errorf("%s code %q is not a number", words[0], words[1])
	}
	return message.Name(code), strings.Join(words[2:], " "), nil
}

func replayNumber(words []string, index int) (int, error) {
	if len(words) <= index {
		return 0, fmt.Errorf("%s needs a number", words[0])
	}
	return strconv.Atoi(words[index])
}

func replayProgress(reporter report.Reporter, words []string) error {
	steps, err := replayNumber(words, 1)
	if err != nil {
		return err
	}
	title := strings.Join(words[2:], " ")
	source := make(chan report.Progress)
	handle := reporter.StartProgress(source)
	for step := 0; step <= steps; step++ {
		source <- report.Progress{
			Fraction: float64(step) / float64(steps),
			Title:    title,
		}
		time.Sleep(25 * time.Millisecond)
	}
	close(source)
	<-handle.Done()
	return nil
}

func replayLines(filename string) ([]string, error) {
	handle, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer handle.Close()
	lines := []string{}
	scanner := bufio.NewScanner(handle)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

var replayCmd = &cobra.Command{
	Use:   "replay <scenario>",
	Short: "Drive the reporter from a scenario script.",
	Long: `Drive the reporter from a scenario script. Each line is one directive:

  info <code> <text>      report an informational event
  warning <code> <text>   report a warning
  error <code> <text>     report an error
  hit <locator>           count a cache hit
  miss <locator>          count a cache miss
  progress <steps> <title> run one progress source to completion
  sleep <millis>          pause the replay
  section <code> <title>  open a nested section, closed by "end"

Lines starting with "#" are comments.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		watch := common.Stopwatch("Replay of %q lasted", args[0])
		lines, err := replayLines(args[0])
		pretty.Guard(err == nil, 2, "Could not read scenario %q, reason: %v", args[0], err)

		opts := report.DefaultOptions()
		opts.IncludeFooter = !noFooterFlag
		reporter := report.New(opts)

		_, err = replayScript(reporter, lines, 0)
		if err != nil {
			common.Error("replay", err)
		}
		reporter.Finalize()
		watch.Debug()
		common.WaitLogs()
		os.Exit(reporter.ExitCode())
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
