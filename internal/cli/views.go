package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rosdep-sources/internal/app"
)

func newViewsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "Show the loadable resources and views backed by the sources cache",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runViews(cmd.Context(), cmd)
		},
	}
}

func runViews(ctx context.Context, cmd *cobra.Command) error {
	service := newAppService()
	result, err := service.Views(ctx, app.ViewsRequest{
		SourcesCacheDir: sourcesCacheDir(cmd),
		Platform:        platformRequest(cmd),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, view := range result.Views {
		fmt.Fprintf(out, "%s -> %s (%d sources)\n", view.Resource, view.View, view.Sources)
	}
	return nil
}
