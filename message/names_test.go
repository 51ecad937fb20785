package message

import "testing"

func TestLabelIsZeroPadded(t *testing.T) {
	if got := Unnamed.Label(); got != "BR0000" {
		t.Errorf("Expected BR0000, got %s", got)
	}
	if got := FetchNotCached.Label(); got != "BR0013" {
		t.Errorf("Expected BR0013, got %s", got)
	}
	if got := DeprecatedPackage.Label(); got != "BR0061" {
		t.Errorf("Expected BR0061, got %s", got)
	}
}

func TestTitles(t *testing.T) {
	if got := FetchNotCached.Title(); got != "FETCH_NOT_CACHED" {
		t.Errorf("Expected FETCH_NOT_CACHED, got %s", got)
	}
	if got := Name(9999).Title(); got != "UNKNOWN" {
		t.Errorf("Expected UNKNOWN for unlisted codes, got %s", got)
	}
}

func TestForgettableDefaults(t *testing.T) {
	forgettable := Forgettable()
	if !forgettable[FetchNotCached] || !forgettable[UnusedCacheEntry] {
		t.Error("Cache noise codes should be forgettable by default")
	}
	if forgettable[DeprecatedPackage] {
		t.Error("Deprecations are not forgettable")
	}
}
