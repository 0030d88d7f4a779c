package ports

import "wingetctl/internal/types"

// ManifestPort reads and writes winget manifest files.
type ManifestPort interface {
	Read(path string) (types.Manifest, error)
	Write(path string, manifest types.Manifest) error

	// InstallerSHA256 hashes a local installer file and returns the digest
	// in the uppercase hex form manifests use.
	InstallerSHA256(path string) (string, error)
}
