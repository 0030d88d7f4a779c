package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wingetctl/internal/app"
	"wingetctl/internal/types"
)

type manifestNewOptions struct {
	Base          string
	Installer     string
	Output        string
	ID            string
	Version       string
	Name          string
	Publisher     string
	License       string
	Description   string
	Moniker       string
	Tags          []string
	InstallerType string
	Architecture  string
	InstallerURL  string
	InstallerSHA  string
}

func newManifestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Author and validate winget package manifests",
	}
	cmd.AddCommand(newManifestNewCommand())
	cmd.AddCommand(newManifestValidateCommand())
	return cmd
}

func newManifestNewCommand() *cobra.Command {
	opts := manifestNewOptions{}
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Write a singleton manifest from the given fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runManifestNew(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.Base, "base", "", "Existing manifest to merge the given fields over")
	cmd.Flags().StringVar(&opts.Installer, "installer", "", "Local installer file to hash for InstallerSha256")
	cmd.Flags().StringVar(&opts.Output, "output", "manifest.yaml", "Output manifest path")
	cmd.Flags().StringVar(&opts.ID, "id", "", "PackageIdentifier")
	cmd.Flags().StringVar(&opts.Version, "pkg-version", "", "PackageVersion")
	cmd.Flags().StringVar(&opts.Name, "name", "", "PackageName")
	cmd.Flags().StringVar(&opts.Publisher, "publisher", "", "Publisher")
	cmd.Flags().StringVar(&opts.License, "license", "", "License")
	cmd.Flags().StringVar(&opts.Description, "description", "", "ShortDescription")
	cmd.Flags().StringVar(&opts.Moniker, "moniker", "", "Moniker")
	cmd.Flags().StringSliceVar(&opts.Tags, "tag", nil, "Tags")
	cmd.Flags().StringVar(&opts.InstallerType, "installer-type", "", "InstallerType (msi, exe, msix, ...)")
	cmd.Flags().StringVar(&opts.Architecture, "arch", "x64", "Installer architecture")
	cmd.Flags().StringVar(&opts.InstallerURL, "url", "", "InstallerUrl")
	cmd.Flags().StringVar(&opts.InstallerSHA, "sha256", "", "InstallerSha256 (computed from --installer when empty)")
	return cmd
}

func runManifestNew(ctx context.Context, opts manifestNewOptions) error {
	manifest := types.Manifest{
		PackageIdentifier: opts.ID,
		PackageVersion:    opts.Version,
		PackageName:       opts.Name,
		Publisher:         opts.Publisher,
		License:           opts.License,
		ShortDescription:  opts.Description,
		Moniker:           opts.Moniker,
		Tags:              opts.Tags,
		InstallerType:     opts.InstallerType,
	}
	if opts.InstallerURL != "" || opts.InstallerSHA != "" {
		manifest.Installers = []types.Installer{{
			Architecture:    opts.Architecture,
			InstallerURL:    opts.InstallerURL,
			InstallerSHA256: opts.InstallerSHA,
		}}
	}

	service := newAppService()
	result, err := service.ManifestNew(ctx, app.ManifestNewRequest{
		BasePath:      opts.Base,
		InstallerPath: opts.Installer,
		Manifest:      manifest,
		OutputPath:    opts.Output,
	})
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (%s %s)\n", result.Path, result.Manifest.PackageIdentifier, result.Manifest.PackageVersion)
	return nil
}

func newManifestValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <manifest>",
		Short: "Validate a manifest against the singleton schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runManifestValidate(cmd.Context(), args[0])
		},
	}
}

func runManifestValidate(ctx context.Context, path string) error {
	service := newAppService()
	result, err := service.ManifestValidate(ctx, app.ManifestValidateRequest{Path: path})
	if err != nil {
		return err
	}
	fmt.Printf("valid: %s %s\n", result.Identifier, result.Version)
	return nil
}
