// Package shared provides common utility functions used across multiple
// packages in the wingetctl codebase.
package shared

import (
	"fmt"
	"strings"
)

// TruncationMarker is the single ellipsis rune winget appends to a value
// that does not fit its column width.
const TruncationMarker = "…"

// oemTruncationMarker is what the ellipsis looks like when winget's UTF-8
// output is read back through the OEM code page: the three bytes of U+2026
// decoded as three separate characters.
const oemTruncationMarker = "ΓÇª"

// NormalizeTruncation rewrites the mangled three-character form of the
// truncation marker back to the single ellipsis rune. Offsets computed
// against a header line only stay aligned with the data rows when every
// line has been normalized the same way.
func NormalizeTruncation(line string) string {
	return strings.ReplaceAll(line, oemTruncationMarker, TruncationMarker)
}

// StripTruncation removes the truncation marker, in either form, from a
// free-text filter value. A truncated Id copied out of a previous listing
// would otherwise never match anything.
func StripTruncation(value string) string {
	value = NormalizeTruncation(value)
	return strings.ReplaceAll(value, TruncationMarker, "")
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
