package core

import (
	"strconv"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"wingetctl/internal/shared"
	"wingetctl/internal/types"
)

// Argument builders translate a structured filter into the exact command
// line winget expects. They are pure functions: every present field appends
// one flag (plus its value) in a fixed order, booleans append only the flag
// token, and absent fields append nothing. Free-text matchers have the
// truncation marker stripped first, mirroring the parser's normalization.
// Anything beyond shape validation is winget's job.

// SearchArgs builds the argument list for `winget search`.
func SearchArgs(filter types.PackageFilter) ([]string, error) {
	args, err := appendMatchArgs([]string{"search"}, filter)
	if err != nil {
		return nil, err
	}
	if filter.Locale != "" {
		args = append(args, "--locale", filter.Locale)
	}
	if filter.AcceptSourceAgreements {
		args = append(args, "--accept-source-agreements")
	}
	return args, nil
}

// ListArgs builds the argument list for `winget list`, which reports
// installed packages together with any known newer version.
func ListArgs(filter types.PackageFilter) ([]string, error) {
	args, err := appendMatchArgs([]string{"list"}, filter)
	if err != nil {
		return nil, err
	}
	if filter.AcceptSourceAgreements {
		args = append(args, "--accept-source-agreements")
	}
	return args, nil
}

// InstallArgs builds the argument list for `winget install`. The filter is
// expected to already identify a unique package; with a manifest path the
// filter is ignored entirely.
func InstallArgs(filter types.PackageFilter, opts types.InstallOptions) ([]string, error) {
	args := []string{"install"}
	if opts.ManifestPath != "" {
		args = append(args, "--manifest", opts.ManifestPath)
	} else {
		var err error
		args, err = appendMatchArgs(args, filter)
		if err != nil {
			return nil, err
		}
	}
	if opts.Version != "" {
		args = append(args, "--version", shared.StripTruncation(opts.Version))
	}
	if opts.Scope != "" {
		args = append(args, "--scope", string(opts.Scope))
	}
	if opts.Location != "" {
		args = append(args, "--location", opts.Location)
	}
	if opts.LogPath != "" {
		args = append(args, "--log", opts.LogPath)
	}
	if opts.Override != "" {
		args = append(args, "--override", opts.Override)
	}
	if opts.Silent {
		args = append(args, "--silent")
	}
	if opts.Force {
		args = append(args, "--force")
	}
	if opts.AcceptPackageAgreements {
		args = append(args, "--accept-package-agreements")
	}
	if opts.AcceptSourceAgreements {
		args = append(args, "--accept-source-agreements")
	}
	return args, nil
}

// UninstallArgs builds the argument list for `winget uninstall`.
func UninstallArgs(filter types.PackageFilter, opts types.UninstallOptions) ([]string, error) {
	args := []string{"uninstall"}
	if opts.ManifestPath != "" {
		args = append(args, "--manifest", opts.ManifestPath)
	} else {
		var err error
		args, err = appendMatchArgs(args, filter)
		if err != nil {
			return nil, err
		}
	}
	if opts.Version != "" {
		args = append(args, "--version", shared.StripTruncation(opts.Version))
	}
	if opts.LogPath != "" {
		args = append(args, "--log", opts.LogPath)
	}
	if opts.Silent {
		args = append(args, "--silent")
	}
	if opts.Force {
		args = append(args, "--force")
	}
	if opts.AcceptSourceAgreements {
		args = append(args, "--accept-source-agreements")
	}
	return args, nil
}

// UpgradeArgs builds the argument list for `winget upgrade`. With All set
// the filter is ignored and every upgradable package is targeted.
func UpgradeArgs(filter types.PackageFilter, opts types.UpgradeOptions) ([]string, error) {
	args := []string{"upgrade"}
	switch {
	case opts.ManifestPath != "":
		args = append(args, "--manifest", opts.ManifestPath)
	case opts.All:
		args = append(args, "--all")
	default:
		var err error
		args, err = appendMatchArgs(args, filter)
		if err != nil {
			return nil, err
		}
	}
	if opts.Version != "" {
		args = append(args, "--version", shared.StripTruncation(opts.Version))
	}
	if opts.Scope != "" {
		args = append(args, "--scope", string(opts.Scope))
	}
	if opts.Location != "" {
		args = append(args, "--location", opts.Location)
	}
	if opts.LogPath != "" {
		args = append(args, "--log", opts.LogPath)
	}
	if opts.Override != "" {
		args = append(args, "--override", opts.Override)
	}
	if opts.Silent {
		args = append(args, "--silent")
	}
	if opts.Force {
		args = append(args, "--force")
	}
	if opts.AcceptPackageAgreements {
		args = append(args, "--accept-package-agreements")
	}
	if opts.AcceptSourceAgreements {
		args = append(args, "--accept-source-agreements")
	}
	return args, nil
}

// SourceExportArgs builds the argument list for `winget source export`,
// the structured alternative to the table output.
func SourceExportArgs() []string {
	return []string{"source", "export"}
}

// appendMatchArgs appends the shared matcher flags in their fixed order:
// positional query, --id, --name, --moniker, --tag, --command, --source,
// --exact, --count.
func appendMatchArgs(args []string, filter types.PackageFilter) ([]string, error) {
	if filter.Count < 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("count must be positive")
	}
	if query := shared.StripTruncation(filter.Query); query != "" {
		args = append(args, query)
	}
	if id := shared.StripTruncation(filter.ID); id != "" {
		args = append(args, "--id", id)
	}
	if name := shared.StripTruncation(filter.Name); name != "" {
		args = append(args, "--name", name)
	}
	if moniker := shared.StripTruncation(filter.Moniker); moniker != "" {
		args = append(args, "--moniker", moniker)
	}
	if tag := shared.StripTruncation(filter.Tag); tag != "" {
		args = append(args, "--tag", tag)
	}
	if command := shared.StripTruncation(filter.Command); command != "" {
		args = append(args, "--command", command)
	}
	if filter.Source != "" {
		args = append(args, "--source", filter.Source)
	}
	if filter.Exact {
		args = append(args, "--exact")
	}
	if filter.Count > 0 {
		args = append(args, "--count", strconv.Itoa(filter.Count))
	}
	return args, nil
}
