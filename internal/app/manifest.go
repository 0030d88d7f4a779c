package app

import (
	"context"

	"wingetctl/internal/core"
)

// ManifestNew assembles a manifest from the provided fields, optionally
// merged over an existing file, fills missing installer digests from a
// local installer file, validates the result, and writes it out.
func (s Service) ManifestNew(ctx context.Context, req ManifestNewRequest) (ManifestNewResult, error) {
	manifest := req.Manifest
	if req.BasePath != "" {
		existing, err := s.Manifests.Read(req.BasePath)
		if err != nil {
			return ManifestNewResult{}, err
		}
		manifest = core.MergeManifest(existing, manifest)
	}
	manifest = core.ApplyManifestDefaults(manifest)

	if req.InstallerPath != "" {
		digest, err := s.Manifests.InstallerSHA256(req.InstallerPath)
		if err != nil {
			return ManifestNewResult{}, err
		}
		for i := range manifest.Installers {
			if manifest.Installers[i].InstallerSHA256 == "" {
				manifest.Installers[i].InstallerSHA256 = digest
			}
		}
	}

	if err := core.ValidateManifest(ctx, manifest); err != nil {
		return ManifestNewResult{}, err
	}
	if err := s.Manifests.Write(req.OutputPath, manifest); err != nil {
		return ManifestNewResult{}, err
	}
	return ManifestNewResult{Path: req.OutputPath, Manifest: manifest}, nil
}

// ManifestValidate reads a manifest file and checks it against the
// singleton schema's required fields.
func (s Service) ManifestValidate(ctx context.Context, req ManifestValidateRequest) (ManifestValidateResult, error) {
	manifest, err := s.Manifests.Read(req.Path)
	if err != nil {
		return ManifestValidateResult{}, err
	}
	if err := core.ValidateManifest(ctx, manifest); err != nil {
		return ManifestValidateResult{}, err
	}
	return ManifestValidateResult{
		Identifier: manifest.PackageIdentifier,
		Version:    manifest.PackageVersion,
	}, nil
}
