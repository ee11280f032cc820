package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rosdep-sources/internal/app"
)

type listOptions struct {
	Match bool
}

func newListCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the sources recorded in the sources cache",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Match, "match", false, "Only list sources matching this platform")
	_ = viper.BindPFlag("match", cmd.Flags().Lookup("match"))
	return cmd
}

func runList(ctx context.Context, cmd *cobra.Command, opts listOptions) error {
	service := newAppService()
	result, err := service.List(ctx, app.ListRequest{
		SourcesCacheDir: sourcesCacheDir(cmd),
		Match:           resolveBool(cmd, opts.Match, "match", "match"),
		Platform:        platformRequest(cmd),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(result.MatchTags) > 0 {
		fmt.Fprintf(out, "# matching: %s\n", strings.Join(result.MatchTags, " "))
	}
	for _, source := range result.Sources {
		line := source.String()
		if !source.HasRosdepData() {
			line += " (no data)"
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
