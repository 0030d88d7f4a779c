package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wingetctl/internal/adapters"
	"wingetctl/internal/core"
	"wingetctl/internal/ports"
	"wingetctl/internal/types"
)

// fakeWinget serves canned output keyed by subcommand and records every
// invocation, so tests can assert that mutating commands never ran.
type fakeWinget struct {
	responses map[string][]string
	errors    map[string]error
	sources   []types.SourceRecord
	calls     [][]string
}

func (f *fakeWinget) Run(_ context.Context, args []string) ([]string, error) {
	f.calls = append(f.calls, args)
	sub := args[0]
	if err, ok := f.errors[sub]; ok {
		return nil, err
	}
	lines, ok := f.responses[sub]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("winget " + sub + " failed")
	}
	return lines, nil
}

func (f *fakeWinget) ExportSources(_ context.Context) ([]types.SourceRecord, error) {
	f.calls = append(f.calls, []string{"source", "export"})
	return f.sources, nil
}

var _ ports.WingetPort = (*fakeWinget)(nil)

func (f *fakeWinget) subcommands() []string {
	subs := make([]string, 0, len(f.calls))
	for _, call := range f.calls {
		subs = append(subs, call[0])
	}
	return subs
}

func newFakeService(fake *fakeWinget) Service {
	return Service{Winget: fake, Manifests: adapters.NewManifestFileAdapter()}
}

var (
	tableHeader = "Name       Id             Version  Available  Source"
	alphaRow    = "Alpha Pkg  Vendor.Alpha   1.0.0    2.0.0      winget"
	betaRow     = "Beta Pkg   Vendor.Beta    3.1.4               winget"
)

func packageTable(rows ...string) []string {
	return append([]string{tableHeader, strings.Repeat("-", len(tableHeader))}, rows...)
}

func TestSearch(t *testing.T) {
	fake := &fakeWinget{responses: map[string][]string{
		"search": packageTable(alphaRow, betaRow),
	}}
	result, err := newFakeService(fake).Search(t.Context(), SearchRequest{
		Filter: types.PackageFilter{Query: "pkg"},
	})
	require.NoError(t, err)
	want := []types.PackageRecord{
		{Name: "Alpha Pkg", ID: "Vendor.Alpha", Version: "1.0.0", Available: "2.0.0", Source: "winget"},
		{Name: "Beta Pkg", ID: "Vendor.Beta", Version: "3.1.4", Source: "winget"},
	}
	if diff := cmp.Diff(want, result.Packages); diff != "" {
		t.Fatalf("unexpected packages (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"search", "pkg"}, fake.calls[0])
}

func TestSearchNoResults(t *testing.T) {
	fake := &fakeWinget{responses: map[string][]string{
		"search": {core.NoResultsMarker},
	}}
	result, err := newFakeService(fake).Search(t.Context(), SearchRequest{
		Filter: types.PackageFilter{Query: "nothing"},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Packages)
}

func TestSearchUnrecognizedOutput(t *testing.T) {
	fake := &fakeWinget{responses: map[string][]string{
		"search": {"Windows Package Manager v1.7"},
	}}
	_, err := newFakeService(fake).Search(t.Context(), SearchRequest{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
}

func TestListUpdatesOnly(t *testing.T) {
	fake := &fakeWinget{responses: map[string][]string{
		"list": packageTable(alphaRow, betaRow),
	}}
	result, err := newFakeService(fake).List(t.Context(), ListRequest{UpdatesOnly: true})
	require.NoError(t, err)
	require.Len(t, result.Packages, 1)
	assert.Equal(t, "Vendor.Alpha", result.Packages[0].ID)
}

func TestInstallAmbiguousNeverMutates(t *testing.T) {
	fake := &fakeWinget{responses: map[string][]string{
		"search":  packageTable(alphaRow, betaRow),
		"install": {"should never be reached"},
	}}
	result, err := newFakeService(fake).Install(t.Context(), InstallRequest{
		Filter: types.PackageFilter{Query: "pkg"},
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeAmbiguous, result.Outcome)
	assert.Len(t, result.Candidates, 2)
	assert.Equal(t, []string{"search"}, fake.subcommands())
}

func TestInstallNotFound(t *testing.T) {
	fake := &fakeWinget{responses: map[string][]string{
		"search": {core.NoResultsMarker},
	}}
	result, err := newFakeService(fake).Install(t.Context(), InstallRequest{
		Filter: types.PackageFilter{ID: "Vendor.Absent"},
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeNotFound, result.Outcome)
	assert.Equal(t, []string{"search"}, fake.subcommands())
}

func TestInstallCompleted(t *testing.T) {
	fake := &fakeWinget{responses: map[string][]string{
		"search":  packageTable(alphaRow),
		"install": {"Successfully installed"},
	}}
	result, err := newFakeService(fake).Install(t.Context(), InstallRequest{
		Filter:  types.PackageFilter{ID: "Vendor.Alpha", Exact: true},
		Options: types.InstallOptions{Silent: true},
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, result.Outcome)
	assert.Equal(t, "Vendor.Alpha", result.Package.ID)
	assert.Equal(t, []string{"Successfully installed"}, result.Output)
	assert.Equal(t, []string{
		"install", "--id", "Vendor.Alpha", "--exact", "--silent",
	}, fake.calls[1])
}

func TestInstallInvokerFailure(t *testing.T) {
	fake := &fakeWinget{
		responses: map[string][]string{"search": packageTable(alphaRow)},
		errors: map[string]error{"install": errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("winget install failed")},
	}
	result, err := newFakeService(fake).Install(t.Context(), InstallRequest{
		Filter: types.PackageFilter{ID: "Vendor.Alpha"},
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, result.Outcome)
	assert.Equal(t, "winget install failed", result.Message)
}

func TestInstallResolutionFailure(t *testing.T) {
	fake := &fakeWinget{errors: map[string]error{"search": errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("winget executable not found")}}
	result, err := newFakeService(fake).Install(t.Context(), InstallRequest{
		Filter: types.PackageFilter{ID: "Vendor.Alpha"},
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, result.Outcome)
	assert.Equal(t, "winget executable not found", result.Message)
	assert.Equal(t, []string{"search"}, fake.subcommands())
}

func TestInstallFromManifestSkipsResolution(t *testing.T) {
	fake := &fakeWinget{responses: map[string][]string{
		"install": {"Successfully installed"},
	}}
	result, err := newFakeService(fake).Install(t.Context(), InstallRequest{
		Options: types.InstallOptions{ManifestPath: "pkg.yaml"},
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, result.Outcome)
	assert.Equal(t, [][]string{{"install", "--manifest", "pkg.yaml"}}, fake.calls)
}

func TestUninstallCompleted(t *testing.T) {
	fake := &fakeWinget{responses: map[string][]string{
		"list":      packageTable(alphaRow),
		"uninstall": {"Successfully uninstalled"},
	}}
	result, err := newFakeService(fake).Uninstall(t.Context(), UninstallRequest{
		Filter: types.PackageFilter{ID: "Vendor.Alpha"},
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, result.Outcome)
	assert.Equal(t, []string{"list", "uninstall"}, fake.subcommands())
}

func TestUninstallAmbiguousNeverMutates(t *testing.T) {
	fake := &fakeWinget{responses: map[string][]string{
		"list": packageTable(alphaRow, betaRow),
	}}
	result, err := newFakeService(fake).Uninstall(t.Context(), UninstallRequest{
		Filter: types.PackageFilter{Query: "pkg"},
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeAmbiguous, result.Outcome)
	assert.Equal(t, []string{"list"}, fake.subcommands())
}

func TestUpgradeUpToDate(t *testing.T) {
	// Beta has no Available column, so there is nothing to upgrade to.
	fake := &fakeWinget{responses: map[string][]string{
		"list": packageTable(betaRow),
	}}
	result, err := newFakeService(fake).Upgrade(t.Context(), UpgradeRequest{
		Filter: types.PackageFilter{ID: "Vendor.Beta"},
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpToDate, result.Outcome)
	assert.Equal(t, "Vendor.Beta", result.Package.ID)
	assert.Equal(t, []string{"list"}, fake.subcommands())
}

func TestUpgradePinnedVersionSkipsUpToDateCheck(t *testing.T) {
	fake := &fakeWinget{responses: map[string][]string{
		"list":    packageTable(betaRow),
		"upgrade": {"Successfully upgraded"},
	}}
	result, err := newFakeService(fake).Upgrade(t.Context(), UpgradeRequest{
		Filter:  types.PackageFilter{ID: "Vendor.Beta"},
		Options: types.UpgradeOptions{Version: "4.0.0"},
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, result.Outcome)
}

func TestUpgradeCompleted(t *testing.T) {
	fake := &fakeWinget{responses: map[string][]string{
		"list":    packageTable(alphaRow),
		"upgrade": {"Successfully upgraded"},
	}}
	result, err := newFakeService(fake).Upgrade(t.Context(), UpgradeRequest{
		Filter: types.PackageFilter{ID: "Vendor.Alpha"},
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, result.Outcome)
	assert.Equal(t, "Vendor.Alpha", result.Package.ID)
}

func TestUpgradeAllSkipsResolution(t *testing.T) {
	fake := &fakeWinget{responses: map[string][]string{
		"upgrade": {"Upgraded 3 packages"},
	}}
	result, err := newFakeService(fake).Upgrade(t.Context(), UpgradeRequest{
		Options: types.UpgradeOptions{All: true},
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, result.Outcome)
	assert.Equal(t, [][]string{{"upgrade", "--all"}}, fake.calls)
}

func TestSources(t *testing.T) {
	fake := &fakeWinget{sources: []types.SourceRecord{
		{Name: "winget", Argument: "https://cdn.winget.microsoft.com/cache"},
	}}
	result, err := newFakeService(fake).Sources(t.Context())
	require.NoError(t, err)
	require.Len(t, result.Sources, 1)
	assert.Equal(t, "winget", result.Sources[0].Name)
}

func TestManifestNew(t *testing.T) {
	dir := t.TempDir()
	installer := filepath.Join(dir, "app.msi")
	require.NoError(t, os.WriteFile(installer, []byte("installer bytes"), 0o644))

	service := newFakeService(&fakeWinget{})
	output := filepath.Join(dir, "Vendor.App.yaml")
	result, err := service.ManifestNew(t.Context(), ManifestNewRequest{
		InstallerPath: installer,
		OutputPath:    output,
		Manifest: types.Manifest{
			PackageIdentifier: "Vendor.App",
			PackageVersion:    "1.0.0",
			PackageName:       "App",
			Publisher:         "Vendor",
			License:           "MIT",
			ShortDescription:  "Does things",
			Installers: []types.Installer{{
				Architecture: "x64",
				InstallerURL: "https://example.com/app.msi",
			}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, output, result.Path)
	assert.Equal(t, types.ManifestTypeSingleton, result.Manifest.ManifestType)
	assert.Len(t, result.Manifest.Installers[0].InstallerSHA256, 64)

	written, err := service.Manifests.Read(output)
	require.NoError(t, err)
	if diff := cmp.Diff(result.Manifest, written); diff != "" {
		t.Fatalf("written manifest differs (-want +got):\n%s", diff)
	}
}

func TestManifestNewMergesBase(t *testing.T) {
	dir := t.TempDir()
	service := newFakeService(&fakeWinget{})
	base := types.Manifest{
		PackageIdentifier: "Vendor.App",
		PackageVersion:    "1.0.0",
		PackageName:       "App",
		Publisher:         "Vendor",
		License:           "MIT",
		ShortDescription:  "Does things",
		Installers: []types.Installer{{
			Architecture:    "x64",
			InstallerURL:    "https://example.com/app-1.0.0.msi",
			InstallerSHA256: strings.Repeat("AB", 32),
		}},
		ManifestType:    types.ManifestTypeSingleton,
		ManifestVersion: types.DefaultManifestVersion,
	}
	basePath := filepath.Join(dir, "base.yaml")
	require.NoError(t, service.Manifests.Write(basePath, base))

	output := filepath.Join(dir, "out.yaml")
	result, err := service.ManifestNew(t.Context(), ManifestNewRequest{
		BasePath:   basePath,
		OutputPath: output,
		Manifest:   types.Manifest{PackageVersion: "2.0.0"},
	})
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", result.Manifest.PackageVersion)
	assert.Equal(t, "Vendor.App", result.Manifest.PackageIdentifier)
}

func TestManifestNewRejectsIncomplete(t *testing.T) {
	service := newFakeService(&fakeWinget{})
	_, err := service.ManifestNew(t.Context(), ManifestNewRequest{
		OutputPath: filepath.Join(t.TempDir(), "out.yaml"),
		Manifest:   types.Manifest{PackageIdentifier: "Vendor.App"},
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestManifestValidate(t *testing.T) {
	dir := t.TempDir()
	service := newFakeService(&fakeWinget{})
	manifest := types.Manifest{
		PackageIdentifier: "Vendor.App",
		PackageVersion:    "1.0.0",
		PackageName:       "App",
		Publisher:         "Vendor",
		License:           "MIT",
		ShortDescription:  "Does things",
		Installers: []types.Installer{{
			Architecture:    "x64",
			InstallerURL:    "https://example.com/app.msi",
			InstallerSHA256: strings.Repeat("AB", 32),
		}},
		ManifestType:    types.ManifestTypeSingleton,
		ManifestVersion: types.DefaultManifestVersion,
	}
	path := filepath.Join(dir, "Vendor.App.yaml")
	require.NoError(t, service.Manifests.Write(path, manifest))

	result, err := service.ManifestValidate(t.Context(), ManifestValidateRequest{Path: path})
	require.NoError(t, err)
	assert.Equal(t, "Vendor.App", result.Identifier)
	assert.Equal(t, "1.0.0", result.Version)
}

func TestManifestValidateMissingFile(t *testing.T) {
	service := newFakeService(&fakeWinget{})
	_, err := service.ManifestValidate(t.Context(), ManifestValidateRequest{
		Path: filepath.Join(t.TempDir(), "absent.yaml"),
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
