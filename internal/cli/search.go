package cli

import (
	"context"

	"github.com/spf13/cobra"

	"wingetctl/internal/app"
)

func newSearchCommand() *cobra.Command {
	opts := filterOptions{}
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search packages across winget sources",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), args, opts)
		},
	}
	addFilterFlags(cmd, &opts, true)
	return cmd
}

func runSearch(ctx context.Context, args []string, opts filterOptions) error {
	service := newAppService()
	result, err := service.Search(ctx, app.SearchRequest{Filter: opts.toFilter(args)})
	if err != nil {
		return err
	}
	printPackages(result.Packages)
	return nil
}
