package types

// Manifest is a winget singleton package manifest. Every field is named
// statically so the authoring flow works on one explicit struct instead of
// dynamically constructed fields. YAML tags follow the upstream manifest
// schema's casing.
type Manifest struct {
	PackageIdentifier string      `yaml:"PackageIdentifier"`
	PackageVersion    string      `yaml:"PackageVersion"`
	PackageName       string      `yaml:"PackageName"`
	Publisher         string      `yaml:"Publisher"`
	License           string      `yaml:"License"`
	ShortDescription  string      `yaml:"ShortDescription"`
	Moniker           string      `yaml:"Moniker,omitempty"`
	Tags              []string    `yaml:"Tags,omitempty"`
	InstallerType     string      `yaml:"InstallerType,omitempty"`
	Installers        []Installer `yaml:"Installers"`
	ManifestType      string      `yaml:"ManifestType"`
	ManifestVersion   string      `yaml:"ManifestVersion"`
}

// Installer is one installer entry inside a manifest.
type Installer struct {
	Architecture    string `yaml:"Architecture"`
	InstallerURL    string `yaml:"InstallerUrl"`
	InstallerSHA256 string `yaml:"InstallerSha256"`
}

const (
	// ManifestTypeSingleton is the only manifest type the authoring flow
	// produces.
	ManifestTypeSingleton = "singleton"

	// DefaultManifestVersion is the manifest schema version written when
	// the caller does not provide one.
	DefaultManifestVersion = "1.6.0"
)
