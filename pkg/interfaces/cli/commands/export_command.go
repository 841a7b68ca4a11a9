package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newExportCommand(app *App) *cobra.Command {
	var partsFile, productsFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as seed CSV files",
		Long: "Write parts and products in the CSV layout the seed loader reads. " +
			"Products list their parts by the ref column of the parts table. " +
			"Without file flags both tables go to standard output.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			snapshot := app.Exporter.Snapshot(app.Service.Parts(), app.Service.Products())

			if err := exportTo(partsFile, out, snapshot.WriteParts); err != nil {
				return err
			}
			if partsFile == "" && productsFile == "" {
				fmt.Fprintln(out)
			}
			if err := exportTo(productsFile, out, snapshot.WriteProducts); err != nil {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&partsFile, "parts", "", "Parts CSV output file")
	cmd.Flags().StringVar(&productsFile, "products", "", "Products CSV output file")
	return cmd
}

func exportTo(filename string, fallback io.Writer, write func(io.Writer) error) error {
	if filename == "" {
		return write(fallback)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", filename, err)
	}
	return nil
}
