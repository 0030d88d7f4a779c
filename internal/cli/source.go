package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSourceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "source",
		Short: "Inspect configured winget sources",
	}
	cmd.AddCommand(newSourceListCommand())
	return cmd
}

func newSourceListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured sources",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSourceList(cmd.Context())
		},
	}
}

func runSourceList(ctx context.Context) error {
	service := newAppService()
	result, err := service.Sources(ctx)
	if err != nil {
		return err
	}
	if len(result.Sources) == 0 {
		fmt.Println("no sources configured")
		return nil
	}
	for _, source := range result.Sources {
		fmt.Printf("%s\t%s\t%s\n", source.Name, source.Type, source.Argument)
	}
	return nil
}
