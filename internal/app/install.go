package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"wingetctl/internal/core"
	"wingetctl/internal/types"
)

// Install resolves the filter to exactly one package through the search
// path, then runs `winget install`. Installing from a local manifest skips
// resolution. Zero or multiple matches halt before anything is mutated.
func (s Service) Install(ctx context.Context, req InstallRequest) (OperationResult, error) {
	var target types.PackageRecord
	if req.Options.ManifestPath == "" {
		searchArgs, err := core.SearchArgs(req.Filter)
		if err != nil {
			return OperationResult{}, err
		}
		resolved, halt, err := s.resolveOne(ctx, searchArgs)
		if err != nil {
			return OperationResult{}, err
		}
		if halt != nil {
			return *halt, nil
		}
		target = resolved
		log.Debug().
			Str("id", target.ID).
			Str("version", target.Version).
			Msg("install target resolved")
	}

	args, err := core.InstallArgs(req.Filter, req.Options)
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
		Message: "install completed",
		Package: target,
		Output:  output,
	}, nil
}
