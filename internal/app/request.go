package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/go-playground/validator/v10"

	"rosdep-sources/internal/shared"
)

var requestValidator = validator.New()

func validateRequest(ctx context.Context, req any) error {
	if err := requestValidator.StructCtx(ctx, req); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid request").
			WithCause(err)
	}
	return nil
}

func normalizeDir(dir string) string {
	return shared.ExpandHome(dir)
}
