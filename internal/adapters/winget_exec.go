package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"wingetctl/internal/core"
	"wingetctl/internal/ports"
	"wingetctl/internal/shared"
	"wingetctl/internal/types"
)

const defaultBinary = "winget"

// WingetExecAdapter shells out to the winget executable. Each call is an
// independent blocking subprocess; no state is carried between calls beyond
// the configured binary location.
type WingetExecAdapter struct {
	binary string
}

// NewWingetExecAdapter creates an adapter. An empty binary means "winget"
// resolved through PATH.
func NewWingetExecAdapter(binary string) WingetExecAdapter {
	if strings.TrimSpace(binary) == "" {
		binary = defaultBinary
	}
	return WingetExecAdapter{binary: binary}
}

func (a WingetExecAdapter) Run(ctx context.Context, args []string) ([]string, error) {
	binary, err := exec.LookPath(a.binary)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("winget executable not found").
			WithCause(err)
	}
	log.Debug().
		Str("binary", binary).
		Strs("args", args).
		Msg("running winget")
	cmd := exec.CommandContext(ctx, binary, args...)
	output, err := cmd.Output()
	if err != nil {
		detail := output
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			detail = exitErr.Stderr
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("winget " + firstArg(args) + " failed").
			WithCause(shared.CommandError(detail, err))
	}
	return splitLines(string(output)), nil
}

func (a WingetExecAdapter) ExportSources(ctx context.Context) ([]types.SourceRecord, error) {
	lines, err := a.Run(ctx, core.SourceExportArgs())
	if err != nil {
		return nil, err
	}
	return decodeSourceExport(lines)
}

// decodeSourceExport parses `winget source export` output: one JSON object
// per non-empty line, one line per configured source.
func decodeSourceExport(lines []string) ([]types.SourceRecord, error) {
	var records []types.SourceRecord
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		var record types.SourceRecord
		if err := json.Unmarshal([]byte(trimmed), &record); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("unrecognized source export output").
				WithCause(err)
		}
		records = append(records, record)
	}
	return records, nil
}

// splitLines breaks raw process output into lines, normalizing Windows line
// endings and the truncation marker on every line as it is read.
func splitLines(output string) []string {
	output = strings.ReplaceAll(output, "\r\n", "\n")
	output = strings.TrimSuffix(output, "\n")
	if output == "" {
		return nil
	}
	return lo.Map(strings.Split(output, "\n"), func(line string, _ int) string {
		return shared.NormalizeTruncation(line)
	})
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

var _ ports.WingetPort = WingetExecAdapter{}
