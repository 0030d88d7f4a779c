package core

import (
	"context"
	"regexp"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"wingetctl/internal/types"
)

var sha256Pattern = regexp.MustCompile(`^[0-9A-Fa-f]{64}$`)

// MergeManifest overlays provided onto existing, field by field: a
// non-empty provided field wins, otherwise the existing value is kept.
// This is the explicit form of the old-value/new-value prompt merge.
func MergeManifest(existing, provided types.Manifest) types.Manifest {
	merged := existing
	if provided.PackageIdentifier != "" {
		merged.PackageIdentifier = provided.PackageIdentifier
	}
	if provided.PackageVersion != "" {
		merged.PackageVersion = provided.PackageVersion
	}
	if provided.PackageName != "" {
		merged.PackageName = provided.PackageName
	}
	if provided.Publisher != "" {
		merged.Publisher = provided.Publisher
	}
	if provided.License != "" {
		merged.License = provided.License
	}
	if provided.ShortDescription != "" {
		merged.ShortDescription = provided.ShortDescription
	}
	if provided.Moniker != "" {
		merged.Moniker = provided.Moniker
	}
	if len(provided.Tags) > 0 {
		merged.Tags = provided.Tags
	}
	if provided.InstallerType != "" {
		merged.InstallerType = provided.InstallerType
	}
	if len(provided.Installers) > 0 {
		merged.Installers = provided.Installers
	}
	if provided.ManifestType != "" {
		merged.ManifestType = provided.ManifestType
	}
	if provided.ManifestVersion != "" {
		merged.ManifestVersion = provided.ManifestVersion
	}
	return merged
}

// ApplyManifestDefaults fills the fields the authoring flow always sets.
func ApplyManifestDefaults(manifest types.Manifest) types.Manifest {
	if manifest.ManifestType == "" {
		manifest.ManifestType = types.ManifestTypeSingleton
	}
	if manifest.ManifestVersion == "" {
		manifest.ManifestVersion = types.DefaultManifestVersion
	}
	return manifest
}

// ValidateManifest checks a manifest against the singleton schema's
// required fields. Defaults are assumed to have been applied already.
func ValidateManifest(ctx context.Context, manifest types.Manifest) error {
	assert.NotEmpty(ctx, manifest.ManifestType, "manifest type must be set")
	assert.NotEmpty(ctx, manifest.ManifestVersion, "manifest version must be set")
	if manifest.PackageIdentifier == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest is missing PackageIdentifier")
	}
	if manifest.PackageVersion == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest is missing PackageVersion")
	}
	for _, field := range []struct {
		name  string
		value string
	}{
		{"PackageName", manifest.PackageName},
		{"Publisher", manifest.Publisher},
		{"License", manifest.License},
		{"ShortDescription", manifest.ShortDescription},
	} {
		if field.value == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("manifest is missing " + field.name)
		}
	}
	if manifest.ManifestType != types.ManifestTypeSingleton {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest type must be " + types.ManifestTypeSingleton)
	}
	if len(manifest.Installers) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest needs at least one installer")
	}
	for _, installer := range manifest.Installers {
		if installer.Architecture == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("installer is missing Architecture")
		}
		if installer.InstallerURL == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("installer is missing InstallerUrl")
		}
		if !sha256Pattern.MatchString(installer.InstallerSHA256) {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("installer sha256 must be 64 hex characters")
		}
	}
	return nil
}
