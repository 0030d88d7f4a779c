package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"wingetctl/internal/core"
)

// Search runs `winget search` with the request's filter and parses the
// table output into package records. Zero matches is a successful empty
// result; a missing winget binary or unrecognized output propagates as an
// error.
func (s Service) Search(ctx context.Context, req SearchRequest) (SearchResult, error) {
	args, err := core.SearchArgs(req.Filter)
	if err != nil {
		return SearchResult{}, err
	}
	lines, err := s.Winget.Run(ctx, args)
	if err != nil {
		return SearchResult{}, err
	}
	rows, err := core.ParseTable(lines, core.PackageColumns)
	if err != nil {
		return SearchResult{}, err
	}
	records := core.PackageRecords(rows)
	log.Debug().Int("matches", len(records)).Msg("search finished")
	return SearchResult{Packages: records}, nil
}
