package cli

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"wingetctl/internal/app"
	"wingetctl/internal/types"
)

// filterOptions mirrors types.PackageFilter as cobra flags. The positional
// query argument is handled per command.
type filterOptions struct {
	ID      string
	Name    string
	Moniker string
	Tag     string
	Command string
	Source  string
	Exact   bool
	Count   int
	Locale  string

	AcceptSourceAgreements bool
}

func addFilterFlags(cmd *cobra.Command, opts *filterOptions, withLocale bool) {
	cmd.Flags().StringVar(&opts.ID, "id", "", "Match the package identifier")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Match the package name")
	cmd.Flags().StringVar(&opts.Moniker, "moniker", "", "Match the package moniker")
	cmd.Flags().StringVar(&opts.Tag, "tag", "", "Match a package tag")
	cmd.Flags().StringVar(&opts.Command, "command", "", "Match a command the package provides")
	cmd.Flags().StringVar(&opts.Source, "source", "", "Restrict matching to one source")
	cmd.Flags().BoolVar(&opts.Exact, "exact", false, "Use exact matching instead of substring matching")
	cmd.Flags().IntVar(&opts.Count, "count", 0, "Limit the number of results")
	if withLocale {
		cmd.Flags().StringVar(&opts.Locale, "locale", "", "Display locale for results")
	}
	cmd.Flags().BoolVar(&opts.AcceptSourceAgreements, "accept-source-agreements", false, "Accept all source agreements without prompting")
}

func (o filterOptions) toFilter(args []string) types.PackageFilter {
	filter := types.PackageFilter{
		ID:                     o.ID,
		Name:                   o.Name,
		Moniker:                o.Moniker,
		Tag:                    o.Tag,
		Command:                o.Command,
		Source:                 o.Source,
		Exact:                  o.Exact,
		Count:                  o.Count,
		Locale:                 o.Locale,
		AcceptSourceAgreements: o.AcceptSourceAgreements,
	}
	if len(args) > 0 {
		filter.Query = args[0]
	}
	return filter
}

// printPackages writes one line per record; absent fields print as "-".
func printPackages(records []types.PackageRecord) {
	if len(records) == 0 {
		fmt.Println("no packages found")
		return
	}
	for _, record := range records {
		line := fmt.Sprintf("%s\t%s\t%s", orDash(record.Name), orDash(record.ID), orDash(record.Version))
		if record.Available != "" {
			line += "\t-> " + record.Available
		}
		if record.Source != "" {
			line += "\t[" + record.Source + "]"
		}
		fmt.Println(line)
	}
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

// reportOperation prints the outcome of a mutating operation and converts
// halted outcomes into errors so the process exit code reflects them.
func reportOperation(result app.OperationResult) error {
	switch result.Outcome {
	case app.OutcomeCompleted:
		if result.Package.ID != "" {
			fmt.Printf("%s: %s %s\n", result.Message, result.Package.Name, result.Package.ID)
		} else {
			fmt.Println(result.Message)
		}
		return nil
	case app.OutcomeUpToDate:
		fmt.Printf("%s: %s %s\n", result.Message, result.Package.Name, result.Package.Version)
		return nil
	case app.OutcomeNotFound:
		fmt.Println(result.Message)
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(result.Message)
	case app.OutcomeAmbiguous:
		fmt.Println(result.Message)
		printPackages(result.Candidates)
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(result.Message)
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(result.Message)
	}
}
