package app

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Validate parses the sources list without touching the network or the
// cache.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	req.SourcesListDir = normalizeDir(req.SourcesListDir)
	if err := validateRequest(ctx, req); err != nil {
		return ValidateResult{}, err
	}
	sources, err := s.SourcesList.ParseDir(req.SourcesListDir)
	if err != nil {
		return ValidateResult{}, err
	}
	log.Ctx(ctx).Debug().Int("sources", len(sources)).Str("dir", req.SourcesListDir).Msg("sources list validated")
	return ValidateResult{Sources: sources}, nil
}
