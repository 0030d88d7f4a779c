package cli

import (
	"context"

	"github.com/spf13/cobra"

	"wingetctl/internal/app"
	"wingetctl/internal/types"
)

type installOptions struct {
	filterOptions
	Manifest                string
	Version                 string
	Scope                   string
	Location                string
	Log                     string
	Override                string
	Force                   bool
	Silent                  bool
	AcceptPackageAgreements bool
}

func newInstallCommand() *cobra.Command {
	opts := installOptions{}
	cmd := &cobra.Command{
		Use:   "install [query]",
		Short: "Install a package after resolving it to a unique match",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd.Context(), args, opts)
		},
	}
	addFilterFlags(cmd, &opts.filterOptions, false)
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Install from a local manifest file instead of a source")
	cmd.Flags().StringVar(&opts.Version, "pkg-version", "", "Install a specific version")
	cmd.Flags().StringVar(&opts.Scope, "scope", "", "Install scope (user or machine)")
	cmd.Flags().StringVar(&opts.Location, "location", "", "Install location")
	cmd.Flags().StringVar(&opts.Log, "log", "", "winget log file path")
	cmd.Flags().StringVar(&opts.Override, "override", "", "Override the installer arguments")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Force the installer to run")
	cmd.Flags().BoolVar(&opts.Silent, "silent", false, "Request silent installation")
	cmd.Flags().BoolVar(&opts.AcceptPackageAgreements, "accept-package-agreements", false, "Accept all package agreements without prompting")
	return cmd
}

func runInstall(ctx context.Context, args []string, opts installOptions) error {
	service := newAppService()
	result, err := service.Install(ctx, app.InstallRequest{
		Filter: opts.toFilter(args),
		Options: types.InstallOptions{
			ManifestPath:            opts.Manifest,
			Version:                 opts.Version,
			Scope:                   types.Scope(opts.Scope),
			Location:                opts.Location,
			LogPath:                 opts.Log,
			Override:                opts.Override,
			Force:                   opts.Force,
			Silent:                  opts.Silent,
			AcceptPackageAgreements: opts.AcceptPackageAgreements,
			AcceptSourceAgreements:  opts.AcceptSourceAgreements,
		},
	})
	if err != nil {
		return err
	}
	return reportOperation(result)
}
