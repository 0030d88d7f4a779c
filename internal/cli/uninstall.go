package cli

import (
	"context"

	"github.com/spf13/cobra"

	"wingetctl/internal/app"
	"wingetctl/internal/types"
)

type uninstallOptions struct {
	filterOptions
	Manifest string
	Version  string
	Log      string
	Force    bool
	Silent   bool
}

func newUninstallCommand() *cobra.Command {
	opts := uninstallOptions{}
	cmd := &cobra.Command{
		Use:   "uninstall [query]",
		Short: "Uninstall a package after resolving it to a unique match",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUninstall(cmd.Context(), args, opts)
		},
	}
	addFilterFlags(cmd, &opts.filterOptions, false)
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Uninstall the package a local manifest describes")
	cmd.Flags().StringVar(&opts.Version, "pkg-version", "", "Uninstall a specific version")
	cmd.Flags().StringVar(&opts.Log, "log", "", "winget log file path")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Force removal")
	cmd.Flags().BoolVar(&opts.Silent, "silent", false, "Request silent removal")
	return cmd
}

func runUninstall(ctx context.Context, args []string, opts uninstallOptions) error {
	service := newAppService()
	result, err := service.Uninstall(ctx, app.UninstallRequest{
		Filter: opts.toFilter(args),
		Options: types.UninstallOptions{
			ManifestPath:           opts.Manifest,
			Version:                opts.Version,
			LogPath:                opts.Log,
			Force:                  opts.Force,
			Silent:                 opts.Silent,
			AcceptSourceAgreements: opts.AcceptSourceAgreements,
		},
	})
	if err != nil {
		return err
	}
	return reportOperation(result)
}
