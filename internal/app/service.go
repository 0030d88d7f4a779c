package app

import (
	"errors"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"wingetctl/internal/adapters"
	"wingetctl/internal/ports"
)

type Service struct {
	Winget    ports.WingetPort
	Manifests ports.ManifestPort
}

// NewService wires the default adapters. binary overrides the winget
// executable location; empty means PATH lookup.
func NewService(binary string) Service {
	return Service{
		Winget:    adapters.NewWingetExecAdapter(binary),
		Manifests: adapters.NewManifestFileAdapter(),
	}
}

// userMessage extracts the short message from an errbuilder error for
// outcome reporting.
func userMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
