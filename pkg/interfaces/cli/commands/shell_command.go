package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"

	"github.com/vsinha/catalog/pkg/infrastructure/logger"
)

func newShellCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session over the in-memory catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, app)
		},
	}
}

func runShell(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprintln(out, "=== Inventory Catalog ===")
	fmt.Fprintln(out, "Type 'help' for available commands")
	fmt.Fprintln(out)

	for lineNo := 1; ; lineNo++ {
		fmt.Fprint(out, "catalog> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "quit", "q", "exit":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		words, err := shellwords.Parse(line)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		if len(words) > 0 && words[0] == "shell" {
			fmt.Fprintln(out, "Error: already in a shell session")
			continue
		}

		lineCtx := logger.WithFields(ctx, logger.Int("shell_line", lineNo))
		root := NewRootCommand(app)
		root.SetArgs(words)
		root.SetIn(cmd.InOrStdin())
		root.SetOut(out)
		root.SetErr(out)
		if err := root.ExecuteContext(lineCtx); err != nil {
			logger.Debug(lineCtx, "shell command failed", logger.String("line", line), logger.ErrorF(err))
			fmt.Fprintf(out, "Error: %s\n", UserMessage(err))
		}
		fmt.Fprintln(out)
	}

	return scanner.Err()
}
