package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vsinha/catalog/pkg/application/services/catalog"
	"github.com/vsinha/catalog/pkg/domain/entities"
	"github.com/vsinha/catalog/pkg/infrastructure/metrics"
	"github.com/vsinha/catalog/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/catalog/pkg/interfaces/cli/output"
)

// conflictMessage is shown when a product with associations is deleted
const conflictMessage = "Product has an associated part and cannot be deleted."

// App carries the collaborators every command works against
type App struct {
	Service  *catalog.Service
	Exporter *csv.Exporter
	Metrics  *metrics.Recorder
	Format   string
}

// NewRootCommand builds the catalog command tree. A fresh tree is built per
// invocation so flag values never leak between shell lines.
func NewRootCommand(app *App) *cobra.Command {
	var format string

	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Inventory catalog of parts and products",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&format, "output", "o", app.Format, "Output format: text, json, yaml")

	renderer := func(cmd *cobra.Command) (*output.Renderer, error) {
		return output.NewRenderer(cmd.OutOrStdout(), format)
	}

	root.AddCommand(
		newPartCommand(app, renderer),
		newProductCommand(app, renderer),
		newExportCommand(app),
		newEventsCommand(app, renderer),
		newStatusCommand(app, renderer),
		newMetricsCommand(app, renderer),
		newShellCommand(app),
	)
	return root
}

type rendererFunc func(cmd *cobra.Command) (*output.Renderer, error)

// Execute runs the command tree and reports failures on the error stream
// in the form users see
func Execute(ctx context.Context, root *cobra.Command, errOut io.Writer) error {
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %s\n", UserMessage(err))
	}
	return err
}

// UserMessage turns a command error into the message shown to the user
func UserMessage(err error) string {
	var verr *entities.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	var lerr *entities.LookupError
	if errors.As(err, &lerr) {
		return lerr.Error()
	}
	if errors.Is(err, entities.ErrConflict) {
		return conflictMessage
	}
	return err.Error()
}

func parsePartID(s string) (entities.PartID, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid part id: %s", s)
	}
	return entities.PartID(n), nil
}

func parseProductID(s string) (entities.ProductID, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid product id: %s", s)
	}
	return entities.ProductID(n), nil
}
