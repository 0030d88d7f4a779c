package app

import (
	"context"

	"github.com/samber/lo"

	"wingetctl/internal/core"
	"wingetctl/internal/types"
)

// List reports installed packages matching the filter, optionally narrowed
// to the ones with a known newer version.
func (s Service) List(ctx context.Context, req ListRequest) (ListResult, error) {
	args, err := core.ListArgs(req.Filter)
	if err != nil {
		return ListResult{}, err
	}
	lines, err := s.Winget.Run(ctx, args)
	if err != nil {
		return ListResult{}, err
	}
	rows, err := core.ParseTable(lines, core.PackageColumns)
	if err != nil {
		return ListResult{}, err
	}
	records := core.PackageRecords(rows)
	if req.UpdatesOnly {
		records = lo.Filter(records, func(record types.PackageRecord, _ int) bool {
			return core.UpdateAvailable(record)
		})
	}
	return ListResult{Packages: records}, nil
}
