package core

import (
	"strings"

	debversion "github.com/knqyf263/go-deb-version"

	"wingetctl/internal/types"
)

// CompareVersions orders two winget display versions. Debian version
// semantics handle the usual dotted-numeric forms, including epoch-like and
// tilde suffixes; when either side does not parse, plain string comparison
// is the fallback. Display versions are loosely typed, so this is a
// best-effort ordering, not a validation.
func CompareVersions(a, b string) int {
	parsedA, errA := debversion.NewVersion(strings.TrimSpace(a))
	parsedB, errB := debversion.NewVersion(strings.TrimSpace(b))
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	return parsedA.Compare(parsedB)
}

// UpdateAvailable reports whether a listed package's Available column names
// a version newer than the installed one. winget occasionally reports an
// Available equal to the installed version; that is not an update.
func UpdateAvailable(record types.PackageRecord) bool {
	if record.Available == "" {
		return false
	}
	if record.Version == "" {
		return true
	}
	return CompareVersions(record.Available, record.Version) > 0
}
