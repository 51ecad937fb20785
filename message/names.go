// Package message enumerates the stable diagnostic codes used by the
// reporter. Codes are part of the output contract: once published they keep
// their numeric value so log consumers can match on them.
package message

import "fmt"

// Name is a stable numeric diagnostic code.
type Name int

const (
	Unnamed              Name = 0
	Exception            Name = 1
	ResolutionStep       Name = 2
	FetchStep            Name = 3
	LinkStep             Name = 4
	FetchNotCached       Name = 13
	RemoteInvalid        Name = 17
	UnusedCacheEntry     Name = 19
	CacheChecksumMissing Name = 21
	NetworkError         Name = 35
	AuthorizationError   Name = 41
	DeprecatedPackage    Name = 61
)

var titles = map[Name]string{
	Unnamed:              "UNNAMED",
	Exception:            "EXCEPTION",
	ResolutionStep:       "RESOLUTION_STEP",
	FetchStep:            "FETCH_STEP",
	LinkStep:             "LINK_STEP",
	FetchNotCached:       "FETCH_NOT_CACHED",
	RemoteInvalid:        "REMOTE_INVALID",
	UnusedCacheEntry:     "UNUSED_CACHE_ENTRY",
	CacheChecksumMissing: "CACHE_CHECKSUM_MISSING",
	NetworkError:         "NETWORK_ERROR",
	AuthorizationError:   "AUTHORIZATION_ERROR",
	DeprecatedPackage:    "DEPRECATED_PACKAGE",
}

// Label renders the code in its wire form: a fixed tag plus the number
// zero-padded to four digits, e.g. BR0013.
func (it Name) Label() string {
	return fmt.Sprintf("BR%04d", int(it))
}

// Title returns the symbolic name of the code, or UNKNOWN for codes this
// build does not know about.
func (it Name) Title() string {
	if title, ok := titles[it]; ok {
		return title
	}
	return "UNKNOWN"
}

// Forgettable returns the default set of codes whose lines are safe to
// collapse into a sliding window instead of scrolling the terminal.
func Forgettable() map[Name]bool {
	return map[Name]bool{
		FetchNotCached:   true,
		UnusedCacheEntry: true,
	}
}
