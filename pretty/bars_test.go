package pretty

import (
	"testing"
	"time"
)

func TestSeasonalDefaultSelection(t *testing.T) {
	iconic := Iconic
	Iconic = true
	defer func() { Iconic = iconic }()
	setupBarStyles()

	plain := resolveDefaultBarStyle(time.Date(2026, time.April, 2, 12, 0, 0, 0, time.UTC))
	if plain.Name != "default" {
		t.Errorf("Expected default style on an ordinary day, got %s", plain.Name)
	}

	seasonal := resolveDefaultBarStyle(time.Date(2026, time.March, 17, 12, 0, 0, 0, time.UTC))
	if seasonal.Name != "shamrock" {
		t.Errorf("Expected shamrock on March 17, got %s", seasonal.Name)
	}

	Iconic = false
	ascii := resolveDefaultBarStyle(time.Date(2026, time.March, 17, 12, 0, 0, 0, time.UTC))
	if ascii.Name != "ascii" {
		t.Errorf("Expected ascii fallback without icon support, got %s", ascii.Name)
	}
}

func TestLookupBarStyleFallsBack(t *testing.T) {
	setupBarStyles()

	if got := LookupBarStyle("default").Filled; got != "█" {
		t.Errorf("Expected block glyph, got %q", got)
	}
	unknown := LookupBarStyle("no-such-style")
	if unknown.Size == 0 {
		t.Error("Unknown names must fall back to a usable style")
	}
}

func TestRegisterBarStyle(t *testing.T) {
	setupBarStyles()

	RegisterBarStyle(BarStyle{Name: "dots", Filled: "o", Empty: " ", Size: 20})
	if got := LookupBarStyle("dots").Size; got != 20 {
		t.Errorf("Expected registered style, got size %d", got)
	}

	// Broken styles are ignored.
	RegisterBarStyle(BarStyle{Name: "", Filled: "x", Empty: "y", Size: 10})
	RegisterBarStyle(BarStyle{Name: "zero", Filled: "x", Empty: "y", Size: 0})
	if _, ok := barStyles["zero"]; ok {
		t.Error("Zero-size style should not register")
	}
}

func TestSpinnerFramesFallBackToAscii(t *testing.T) {
	interactive := Interactive
	Interactive = false
	defer func() { Interactive = interactive }()

	frames := SpinnerFrames()
	if len(frames) != 4 || frames[0] != "|" {
		t.Errorf("Expected ASCII frames on non-interactive output, got %v", frames)
	}
}
