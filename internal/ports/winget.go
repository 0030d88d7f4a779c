package ports

import (
	"context"

	"wingetctl/internal/types"
)

// WingetPort runs the external winget executable. Calls block until the
// process exits; callers bound latency through the context.
type WingetPort interface {
	// Run executes winget with the given arguments and returns its stdout
	// as ordered lines, truncation markers already normalized. Output
	// captured before a failure is discarded.
	Run(ctx context.Context, args []string) ([]string, error)

	// ExportSources asks winget for its configured sources in structured
	// form (`winget source export`), bypassing the table parser.
	ExportSources(ctx context.Context) ([]types.SourceRecord, error)
}
