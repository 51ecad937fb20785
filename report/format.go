package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sodatea/berry/message"
	"github.com/sodatea/berry/pretty"
)

// indentGlyph is repeated once per indent level in front of the text.
const indentGlyph = "│ "

func (it *Stream) styleLocked(text, styleName string) string {
	if !it.opts.EnableColors {
		return text
	}
	return pretty.Format(text, styleName)
}

func (it *Stream) indentLocked() string {
	return strings.Repeat(indentGlyph, it.indent)
}

func (it *Stream) formatLineLocked(sev severity, name message.Name, text string) string {
	marker := it.styleLocked(it.marker, sev.styleName())
	return fmt.Sprintf("%s %s: %s%s", marker, name.Label(), it.indentLocked(), text)
}

// formatBar renders the two-glyph fill bar for one row.
func formatBar(style pretty.BarStyle, columns int, fraction float64) string {
	width := barWidth(style, columns)
	filled := int(math.Floor(fraction * float64(width)))
	if filled > width {
		filled = width
	}
	return strings.Repeat(style.Filled, filled) + strings.Repeat(style.Empty, width-filled)
}

// barWidth scales the style's baseline size to the room actually available,
// against an 80 column baseline.
func barWidth(style pretty.BarStyle, columns int) int {
	available := columns - progressPrefixWidth
	if available > 80 {
		available = 80
	}
	if available < 8 {
		available = 8
	}
	width := style.Size * available / 80
	if width < 1 {
		width = 1
	}
	return width
}

// formatTimeSpan renders elapsed time as seconds under one minute, minutes
// otherwise, both with two decimals.
func formatTimeSpan(elapsed time.Duration) string {
	milliseconds := elapsed.Milliseconds()
	if milliseconds < 60_000 {
		return fmt.Sprintf("%0.2fs", float64(milliseconds)/1000)
	}
	return fmt.Sprintf("%0.2fm", float64(milliseconds)/60_000)
}

// cachePhrase words the cache hit/miss counts, singular and plural forms
// joined with a comma when both are present.
func cachePhrase(hits, misses int) string {
	parts := make([]string, 0, 2)
	switch {
	case hits > 1:
		parts = append(parts, fmt.Sprintf("%d packages were already cached", hits))
	case hits == 1:
		parts = append(parts, "one package was already cached")
	}
	switch {
	case misses > 1:
		parts = append(parts, fmt.Sprintf("%d had to be fetched", misses))
	case misses == 1:
		parts = append(parts, "one had to be fetched")
	}
	return strings.Join(parts, ", ")
}
