package types

// Scope selects whether an install targets the current user or the machine.
type Scope string

const (
	ScopeUser    Scope = "user"
	ScopeMachine Scope = "machine"
)

// PackageFilter carries the optional matchers winget accepts when locating
// packages. Empty fields contribute nothing to the built command line.
// winget matches most of these by substring unless Exact is set, which is
// why mutating operations pre-check for a unique match before acting.
type PackageFilter struct {
	// Query is the free-text positional query.
	Query string

	ID      string
	Name    string
	Moniker string
	Tag     string
	Command string

	// Source restricts matching to one configured source.
	Source string

	// Exact requests exact-string matching instead of substring matching.
	Exact bool

	// Count limits how many rows winget prints. Zero means unset; negative
	// values are rejected.
	Count int

	// Locale selects the display locale for search output.
	Locale string

	// AcceptSourceAgreements suppresses the interactive source-agreement
	// prompt, which would otherwise stall a captured run.
	AcceptSourceAgreements bool
}

// InstallOptions are the install-specific switches passed through to winget.
type InstallOptions struct {
	// ManifestPath installs from a local manifest file instead of a
	// resolved package. When set, the filter is not used at all.
	ManifestPath string

	Version  string
	Scope    Scope
	Location string
	LogPath  string

	// Override replaces the installer's default arguments wholesale.
	Override string

	Force                   bool
	Silent                  bool
	AcceptPackageAgreements bool
	AcceptSourceAgreements  bool
}

// UninstallOptions are the uninstall-specific switches.
type UninstallOptions struct {
	ManifestPath string

	Version string
	LogPath string

	Force                  bool
	Silent                 bool
	AcceptSourceAgreements bool
}

// UpgradeOptions are the upgrade-specific switches.
type UpgradeOptions struct {
	ManifestPath string

	// All upgrades every package with a known newer version; the filter is
	// ignored when set.
	All bool

	Version  string
	Scope    Scope
	Location string
	LogPath  string
	Override string

	Force                   bool
	Silent                  bool
	AcceptPackageAgreements bool
	AcceptSourceAgreements  bool
}
