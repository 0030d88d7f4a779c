package cli

import (
	"context"

	"github.com/spf13/cobra"

	"wingetctl/internal/app"
	"wingetctl/internal/types"
)

type upgradeOptions struct {
	filterOptions
	Manifest                string
	All                     bool
	Version                 string
	Scope                   string
	Location                string
	Log                     string
	Override                string
	Force                   bool
	Silent                  bool
	AcceptPackageAgreements bool
}

func newUpgradeCommand() *cobra.Command {
	opts := upgradeOptions{}
	cmd := &cobra.Command{
		Use:   "upgrade [query]",
		Short: "Upgrade a package, or everything with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpgrade(cmd.Context(), args, opts)
		},
	}
	addFilterFlags(cmd, &opts.filterOptions, false)
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Upgrade from a local manifest file")
	cmd.Flags().BoolVar(&opts.All, "all", false, "Upgrade every package with a known newer version")
	cmd.Flags().StringVar(&opts.Version, "pkg-version", "", "Upgrade to a specific version")
	cmd.Flags().StringVar(&opts.Scope, "scope", "", "Install scope (user or machine)")
	cmd.Flags().StringVar(&opts.Location, "location", "", "Install location")
	cmd.Flags().StringVar(&opts.Log, "log", "", "winget log file path")
	cmd.Flags().StringVar(&opts.Override, "override", "", "Override the installer arguments")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Force the upgrade")
	cmd.Flags().BoolVar(&opts.Silent, "silent", false, "Request silent upgrade")
	cmd.Flags().BoolVar(&opts.AcceptPackageAgreements, "accept-package-agreements", false, "Accept all package agreements without prompting")
	return cmd
}

func runUpgrade(ctx context.Context, args []string, opts upgradeOptions) error {
	service := newAppService()
	result, err := service.Upgrade(ctx, app.UpgradeRequest{
		Filter: opts.toFilter(args),
		Options: types.UpgradeOptions{
			ManifestPath:            opts.Manifest,
			All:                     opts.All,
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
