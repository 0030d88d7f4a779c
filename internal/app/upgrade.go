package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"wingetctl/internal/core"
	"wingetctl/internal/types"
)

// Upgrade resolves the filter against the installed-package listing and
// runs `winget upgrade` when exactly one package matches. Unless a version
// is pinned, a target whose Available column reports nothing newer is left
// alone. With All set, resolution is skipped and winget upgrades everything
// it can.
func (s Service) Upgrade(ctx context.Context, req UpgradeRequest) (OperationResult, error) {
	var target types.PackageRecord
	if req.Options.ManifestPath == "" && !req.Options.All {
		listArgs, err := core.ListArgs(req.Filter)
		if err != nil {
			return OperationResult{}, err
		}
		resolved, halt, err := s.resolveOne(ctx, listArgs)
		if err != nil {
			return OperationResult{}, err
		}
		if halt != nil {
			return *halt, nil
		}
		target = resolved
		if req.Options.Version == "" && !core.UpdateAvailable(target) {
			return OperationResult{
				Outcome: OutcomeUpToDate,
				Message: "no newer version available",
				Package: target,
			}, nil
		}
		log.Debug().
			Str("id", target.ID).
			Str("installed", target.Version).
			Str("available", target.Available).
			Msg("upgrade target resolved")
	}

	args, err := core.UpgradeArgs(req.Filter, req.Options)
	if err != nil {
		return OperationResult{}, err
	}
	output, err := s.Winget.Run(ctx, args)
	if err != nil {
		return OperationResult{
			Outcome: OutcomeFailed,
			Message: userMessage(err),
			Package: target,
		}, nil
	}
	return OperationResult{
		Outcome: OutcomeCompleted,
		Message: "upgrade completed",
		Package: target,
		Output:  output,
	}, nil
}
