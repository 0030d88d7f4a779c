package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"wingetctl/internal/core"
	"wingetctl/internal/types"
)

// Uninstall resolves the filter against the installed-package listing and
// runs `winget uninstall` only when exactly one package matches.
func (s Service) Uninstall(ctx context.Context, req UninstallRequest) (OperationResult, error) {
	var target types.PackageRecord
	if req.Options.ManifestPath == "" {
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
		log.Debug().
			Str("id", target.ID).
			Str("version", target.Version).
			Msg("uninstall target resolved")
	}

	args, err := core.UninstallArgs(req.Filter, req.Options)
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
		Message: "uninstall completed",
		Package: target,
		Output:  output,
	}, nil
}
