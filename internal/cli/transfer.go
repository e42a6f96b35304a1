package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/runoshun/todo-iq/internal/app"
	"github.com/runoshun/todo-iq/internal/usecase"
	"github.com/spf13/cobra"
)

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Create tasks from a YAML file",
		Long: `Create tasks from a YAML file ("-" reads standard input).

Either every task is created or none is. Use --dry-run to check a file first.

File format:
  tasks:
    - name: water plants
      frequency: weekly
      description: the ones on the balcony too
    - name: dentist
      frequency: once
      status: asleep
      until: 2026-11-02`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				content []byte
				err     error
			)
			if args[0] == "-" {
				content, err = io.ReadAll(cmd.InOrStdin())
			} else {
				content, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			out, err := c.ImportTasksUseCase().Execute(cmd.Context(), usecase.ImportTasksInput{
				Content: content,
				DryRun:  dryRun,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.DryRun {
				_, _ = fmt.Fprintf(w, "Would create %d task(s):\n", len(out.Tasks))
				for _, t := range out.Tasks {
					_, _ = fmt.Fprintf(w, "  %s (%s, %s)\n", t.Name, t.Frequency, t.Status)
				}
				return nil
			}
			_, _ = fmt.Fprintf(w, "Created %d task(s)\n", len(out.Tasks))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate without creating tasks")

	return cmd
}

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every task as YAML",
		Long: `Write every task in the format accepted by import.

Finished tasks are exported as due.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ExportTasksUseCase().Execute(cmd.Context(), usecase.ExportTasksInput{})
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(out.Content)
				return err
			}
			if err := os.WriteFile(output, out.Content, 0o600); err != nil {
				return fmt.Errorf("write file: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d task(s) to %s\n", out.Count, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of standard output")

	return cmd
}
