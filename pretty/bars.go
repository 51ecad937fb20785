package pretty

import (
	"sort"
	"time"

	"github.com/sodatea/berry/common"
)

// BarStyle describes how a progress row is filled: one glyph for the done
// portion, one for the remainder, and a baseline size against an 80 column
// terminal.
type BarStyle struct {
	Name   string
	Filled string
	Empty  string
	Size   int
}

// seasonalStyle pairs a BarStyle with the single day of the year it is the
// default for.
type seasonalStyle struct {
	style BarStyle
	day   int
	month time.Month
}

var (
	barStyles map[string]BarStyle

	seasonalStyles = []seasonalStyle{
		{BarStyle{Name: "shamrock", Filled: "🍀", Empty: "🌱", Size: 40}, 17, time.March},
		{BarStyle{Name: "mane", Filled: "🦁", Empty: "🌴", Size: 40}, 19, time.July},
		{BarStyle{Name: "lantern", Filled: "🎃", Empty: "🦇", Size: 40}, 31, time.October},
		{BarStyle{Name: "hogfather", Filled: "🎉", Empty: "🎊", Size: 40}, 25, time.December},
	}

	defaultBarStyle = BarStyle{Name: "default", Filled: "█", Empty: "░", Size: 80}
	asciiBarStyle   = BarStyle{Name: "ascii", Filled: "=", Empty: "-", Size: 80}

	resolvedDefault BarStyle
)

func setupBarStyles() {
	barStyles = map[string]BarStyle{
		defaultBarStyle.Name: defaultBarStyle,
		asciiBarStyle.Name:   asciiBarStyle,
	}
	for _, seasonal := range seasonalStyles {
		barStyles[seasonal.style.Name] = seasonal.style
	}
	resolvedDefault = resolveDefaultBarStyle(time.Now())
	common.Trace("Default progress style resolved: %s", resolvedDefault.Name)
}

// resolveDefaultBarStyle picks the seasonal style matching the given day, or
// the plain default. Called once during Setup so the selection is an explicit
// value afterwards, not ambient state.
func resolveDefaultBarStyle(now time.Time) BarStyle {
	if !Iconic {
		return asciiBarStyle
	}
	for _, seasonal := range seasonalStyles {
		if now.Day() == seasonal.day && now.Month() == seasonal.month {
			return seasonal.style
		}
	}
	return defaultBarStyle
}

// DefaultBarStyle returns the style resolved during Setup.
func DefaultBarStyle() BarStyle {
	if resolvedDefault.Size == 0 {
		return defaultBarStyle
	}
	return resolvedDefault
}

// LookupBarStyle finds a registered style by name, falling back to the
// resolved default for unknown names.
func LookupBarStyle(name string) BarStyle {
	if style, ok := barStyles[name]; ok {
		return style
	}
	return DefaultBarStyle()
}

// BarStyleNames lists the registered style names in sorted order.
func BarStyleNames() []string {
	if barStyles == nil {
		setupBarStyles()
	}
	names := make([]string, 0, len(barStyles))
	for name := range barStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterBarStyle adds or replaces a named style. Used by the settings
// package to install user-defined styles from the settings file.
func RegisterBarStyle(style BarStyle) {
	if style.Name == "" || style.Size <= 0 {
		return
	}
	if barStyles == nil {
		setupBarStyles()
	}
	barStyles[style.Name] = style
}

// SpinnerFrames returns the liveness glyph cycle: Braille frames on capable
// terminals, a plain ASCII cycle otherwise.
func SpinnerFrames() []string {
	if Interactive && Iconic {
		return []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	}
	return []string{"|", "/", "-", "\\"}
}
