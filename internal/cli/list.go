package cli

import (
	"context"

	"github.com/spf13/cobra"

	"wingetctl/internal/app"
)

type listOptions struct {
	filterOptions
	UpdatesOnly bool
}

func newListCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List installed packages",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), args, opts)
		},
	}
	addFilterFlags(cmd, &opts.filterOptions, false)
	cmd.Flags().BoolVar(&opts.UpdatesOnly, "updates", false, "Only packages with a newer version available")
	return cmd
}

func runList(ctx context.Context, args []string, opts listOptions) error {
	service := newAppService()
	result, err := service.List(ctx, app.ListRequest{
		Filter:      opts.toFilter(args),
		UpdatesOnly: opts.UpdatesOnly,
	})
	if err != nil {
		return err
	}
	printPackages(result.Packages)
	return nil
}
