package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vsinha/catalog/pkg/infrastructure/events"
	"github.com/vsinha/catalog/pkg/interfaces/cli/output"
)

const defaultEventLimit = 10

func newEventsCommand(app *App, renderer rendererFunc) *cobra.Command {
	var partID, productID string

	cmd := &cobra.Command{
		Use:   "events [limit]",
		Short: "Show recent catalog changes",
		Long: "Show the most recent catalog changes. With --part or --product, show " +
			"the full history of one part or product, including changes made before it was deleted.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit := defaultEventLimit
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("invalid limit: %s", args[0])
				}
				limit = n
			}

			var (
				changes []events.Change
				err     error
			)
			switch {
			case partID != "":
				id, perr := parsePartID(partID)
				if perr != nil {
					return perr
				}
				changes, err = app.Service.PartHistory(id)
			case productID != "":
				id, perr := parseProductID(productID)
				if perr != nil {
					return perr
				}
				changes, err = app.Service.ProductHistory(id)
			default:
				changes, err = app.Service.Events(0)
			}
			if err != nil {
				return fmt.Errorf("failed to read events: %w", err)
			}
			if len(changes) > limit {
				changes = changes[len(changes)-limit:]
			}

			r, err := renderer(cmd)
			if err != nil {
				return err
			}
			if r.Format() != output.FormatText {
				return r.Value(changes)
			}
			if len(changes) == 0 {
				return r.Message("No events.")
			}

			out := cmd.OutOrStdout()
			for _, c := range changes {
				fmt.Fprintf(out, "%4d  %s  %-26s %-12s v%-3d %s\n",
					c.Sequence, c.At.Format("15:04:05"), c.Type, c.Stream, c.Version, c.Summary)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&partID, "part", "", "Show the history of one part id")
	cmd.Flags().StringVar(&productID, "product", "", "Show the history of one product id")
	cmd.MarkFlagsMutuallyExclusive("part", "product")
	return cmd
}

func newStatusCommand(app *App, renderer rendererFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show catalog counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := renderer(cmd)
			if err != nil {
				return err
			}
			return r.Message("Parts: %d  Products: %d  Events: %d",
				len(app.Service.Parts()), len(app.Service.Products()), app.Service.EventCount())
		},
	}
}
