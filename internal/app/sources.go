package app

import "context"

// Sources lists the configured winget sources via the structured export
// path, which bypasses table parsing entirely.
func (s Service) Sources(ctx context.Context) (SourcesResult, error) {
	records, err := s.Winget.ExportSources(ctx)
	if err != nil {
		return SourcesResult{}, err
	}
	return SourcesResult{Sources: records}, nil
}
