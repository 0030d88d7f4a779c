package app

import "wingetctl/internal/types"

type SearchRequest struct {
	Filter types.PackageFilter
}

type SearchResult struct {
	Packages []types.PackageRecord
}

type ListRequest struct {
	Filter types.PackageFilter

	// UpdatesOnly keeps only packages whose Available column names a newer
	// version than the installed one.
	UpdatesOnly bool
}

type ListResult struct {
	Packages []types.PackageRecord
}

// Outcome is the result of a mutating operation's pre-check plus execution.
// Pre-check failures are reported here instead of raised, so a scripted
// caller can branch on the outcome.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeNotFound  Outcome = "not-found"
	OutcomeAmbiguous Outcome = "ambiguous"
	OutcomeUpToDate  Outcome = "up-to-date"
	OutcomeFailed    Outcome = "failed"
)

// OperationResult reports one install/uninstall/upgrade attempt.
type OperationResult struct {
	Outcome Outcome
	Message string

	// Package is the uniquely resolved target, when resolution ran and
	// found exactly one match.
	Package types.PackageRecord

	// Candidates holds the competing matches on an ambiguous outcome.
	Candidates []types.PackageRecord

	// Output is winget's own stdout from the mutating command.
	Output []string
}

type InstallRequest struct {
	Filter  types.PackageFilter
	Options types.InstallOptions
}

type UninstallRequest struct {
	Filter  types.PackageFilter
	Options types.UninstallOptions
}

type UpgradeRequest struct {
	Filter  types.PackageFilter
	Options types.UpgradeOptions
}

type SourcesResult struct {
	Sources []types.SourceRecord
}

type ManifestNewRequest struct {
	// BasePath optionally names an existing manifest to merge the provided
	// fields over.
	BasePath string

	// InstallerPath optionally names a local installer file whose SHA256
	// fills any installer entry that lacks one.
	InstallerPath string

	Manifest   types.Manifest
	OutputPath string
}

type ManifestNewResult struct {
	Path     string
	Manifest types.Manifest
}

type ManifestValidateRequest struct {
	Path string
}

type ManifestValidateResult struct {
	Identifier string
	Version    string
}
