package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rosdep-sources/internal/app"
	"rosdep-sources/internal/types"
)

type updateOptions struct {
	HTTPTimeoutSec int
}

func newUpdateCommand() *cobra.Command {
	opts := updateOptions{}
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Download every configured source into the sources cache",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUpdate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().IntVar(&opts.HTTPTimeoutSec, "http-timeout", 15, "HTTP timeout per source in seconds (0 = default)")
	_ = viper.BindPFlag("http_timeout_sec", cmd.Flags().Lookup("http-timeout"))
	return cmd
}

func runUpdate(ctx context.Context, cmd *cobra.Command, opts updateOptions) error {
	service := newAppService()
	errOut := cmd.ErrOrStderr()
	result, err := service.Update(ctx, app.UpdateRequest{
		SourcesListDir:  sourcesListDir(cmd),
		SourcesCacheDir: sourcesCacheDir(cmd),
		HTTPTimeoutSec:  resolveInt(cmd, opts.HTTPTimeoutSec, "http_timeout_sec", "http-timeout"),
		ErrorHandler: func(source types.DataSource, err error) {
			fmt.Fprintf(errOut, "ERROR: unable to process source [%s]:\n\t%v\n", source.URL, err)
		},
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, synced := range result.Sources {
		fmt.Fprintf(out, "Hit %s\n", synced.Source.URL)
	}
	fmt.Fprintf(out, "updated cache in %s\n", result.IndexPath)
	if len(result.Failures) == 0 {
		return nil
	}
	failures := make([]error, 0, len(result.Failures))
	for _, failure := range result.Failures {
		failures = append(failures, failure.Err)
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeUnavailable).
		WithMsg(fmt.Sprintf("%d of %d sources failed to update",
			len(result.Failures),
			len(result.Failures)+len(result.Sources))).
		WithCause(errors.Join(failures...))
}
