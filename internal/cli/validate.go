package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rosdep-sources/internal/app"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Parse the sources list without downloading anything",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd)
		},
	}
}

func runValidate(ctx context.Context, cmd *cobra.Command) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		SourcesListDir: sourcesListDir(cmd),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, source := range result.Sources {
		fmt.Fprintln(out, source.String())
	}
	fmt.Fprintf(out, "validated: %d sources\n", len(result.Sources))
	return nil
}
