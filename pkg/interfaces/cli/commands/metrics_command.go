package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vsinha/catalog/pkg/interfaces/cli/output"
)

var errMetricsDisabled = errors.New("metrics are not enabled")

func newMetricsCommand(app *App, renderer rendererFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Show operation counters and collection sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.Metrics == nil {
				return errMetricsDisabled
			}
			samples, err := app.Metrics.Snapshot()
			if err != nil {
				return err
			}

			r, err := renderer(cmd)
			if err != nil {
				return err
			}
			if r.Format() != output.FormatText {
				return r.Value(samples)
			}
			if len(samples) == 0 {
				return r.Message("No metrics recorded.")
			}
			out := cmd.OutOrStdout()
			for _, s := range samples {
				fmt.Fprintln(out, s.String())
			}
			return nil
		},
	}
}
