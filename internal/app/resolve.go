package app

import (
	"context"
	"fmt"

	"wingetctl/internal/core"
	"wingetctl/internal/types"
)

// resolveOne runs a query command and classifies the matches for a
// mutating operation's pre-check. winget itself matches by substring, so
// anything other than exactly one match halts the operation: zero and
// many come back as a ready-made halt result (nil error), while a parse
// failure is raised to the caller. Invoker failures also halt, since the
// mutating command would fail the same way.
func (s Service) resolveOne(ctx context.Context, args []string) (types.PackageRecord, *OperationResult, error) {
	lines, err := s.Winget.Run(ctx, args)
	if err != nil {
		return types.PackageRecord{}, &OperationResult{
			Outcome: OutcomeFailed,
			Message: userMessage(err),
		}, nil
	}
	rows, err := core.ParseTable(lines, core.PackageColumns)
	if err != nil {
		return types.PackageRecord{}, nil, err
	}
	records := core.PackageRecords(rows)
	switch len(records) {
	case 0:
		return types.PackageRecord{}, &OperationResult{
			Outcome: OutcomeNotFound,
			Message: "no package matched the filter",
		}, nil
	case 1:
		return records[0], nil, nil
	default:
		return types.PackageRecord{}, &OperationResult{
			Outcome:    OutcomeAmbiguous,
			Message:    fmt.Sprintf("%d packages matched; refine the filter", len(records)),
			Candidates: records,
		}, nil
	}
}
