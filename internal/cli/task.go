package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/runoshun/todo-iq/internal/app"
	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/usecase"
	"github.com/spf13/cobra"
)

const targetHelp = `TARGET is a task name or its position in the agenda listing.
Names may contain spaces, so every remaining argument is part of the target.`

// joinTarget joins the positional words of a target.
func joinTarget(args []string) string {
	return strings.Join(args, " ")
}

// makeName turns underscores into spaces so names can be typed as one word.
func makeName(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "_", " "))
}

// parseDate parses a YYYY-MM-DD date.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// newCreateCommand creates the create command.
func newCreateCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Description string
		Until       string
	}

	cmd := &cobra.Command{
		Use:     "create NAME FREQUENCY [STATUS]",
		Aliases: []string{"ct"},
		Short:   "Create a task",
		Long: `Create a task with the given name and frequency.

Underscores in NAME are turned into spaces. STATUS defaults to 'due'.
Asleep tasks need a wake date given with --until.

Examples:
  todoiq create water_plants weekly
  todoiq create "pay rent" monthly -d "transfer before the 3rd"
  todoiq create dentist once asleep --until 2026-11-02`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.CreateTaskInput{
				Name:        makeName(args[0]),
				Frequency:   args[1],
				Description: opts.Description,
			}
			if len(args) == 3 {
				input.Status = strings.ToLower(args[2])
			}
			if opts.Until != "" {
				until, err := parseDate(opts.Until)
				if err != nil {
					return err
				}
				input.Until = &until
			}

			out, err := c.CreateTaskUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s task %q (%s)\n", out.Task.Frequency, out.Task.Name, out.Task.Status)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Task description")
	cmd.Flags().StringVar(&opts.Until, "until", "", "Wake date for asleep tasks (YYYY-MM-DD)")

	return cmd
}

// newDeleteCommand creates the delete command.
func newDeleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "delete TARGET...",
		Aliases: []string{"dt", "rm"},
		Short:   "Delete a task",
		Long:    "Delete a task.\n\n" + targetHelp,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{
				Target: joinTarget(args),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %q\n", out.Task.Name)
			return nil
		},
	}
}

// newRenameCommand creates the rename command.
func newRenameCommand(c *app.Container) *cobra.Command {
	var newName string

	cmd := &cobra.Command{
		Use:     "rename TARGET... --new NAME",
		Aliases: []string{"rt", "cn"},
		Short:   "Rename a task",
		Long:    "Rename a task. Underscores in the new name are turned into spaces.\n\n" + targetHelp,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.RenameTaskUseCase().Execute(cmd.Context(), usecase.RenameTaskInput{
				Target:  joinTarget(args),
				NewName: makeName(newName),
			})
			if err != nil {
				return err
			}

			if out.OldName == out.Task.Name {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %q already has that name\n", out.Task.Name)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Renamed %q to %q\n", out.OldName, out.Task.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&newName, "new", "n", "", "New task name")
	_ = cmd.MarkFlagRequired("new")

	return cmd
}

// newFrequencyCommand creates the freq command.
func newFrequencyCommand(c *app.Container) *cobra.Command {
	var frequency string

	cmd := &cobra.Command{
		Use:     "freq TARGET... --new FREQUENCY",
		Aliases: []string{"cf"},
		Short:   "Change the frequency of a task",
		Long:    "Change the frequency of a task. The task moves to the end of the new frequency list.\n\n" + targetHelp,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ChangeFrequencyUseCase().Execute(cmd.Context(), usecase.ChangeFrequencyInput{
				Target:    joinTarget(args),
				Frequency: frequency,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %q is now %s (was %s)\n", out.Task.Name, out.Task.Frequency, out.From)
			return nil
		},
	}

	cmd.Flags().StringVarP(&frequency, "new", "n", "", "New frequency")
	_ = cmd.MarkFlagRequired("new")

	return cmd
}

// newDescribeCommand creates the describe command.
func newDescribeCommand(c *app.Container) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:     "describe TARGET... [--new TEXT]",
		Aliases: []string{"cd"},
		Short:   "Change the description of a task",
		Long:    "Change the description of a task. Omitting --new clears it.\n\n" + targetHelp,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ChangeDescriptionUseCase().Execute(cmd.Context(), usecase.ChangeDescriptionInput{
				Target:      joinTarget(args),
				Description: description,
			})
			if err != nil {
				return err
			}

			if out.Task.Description == "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cleared the description of %q\n", out.Task.Name)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated the description of %q\n", out.Task.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "new", "n", "", "New description")

	return cmd
}

// newClearCommand creates the clear command.
func newClearCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear FREQUENCY",
		Short: "Delete every task of a frequency",
		Long: `Delete every task of a frequency, including sleeping ones.

Asks for confirmation unless --yes is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := confirm(cmd, c, fmt.Sprintf("Delete every %s task?", args[0]), "This cannot be undone.")
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing deleted")
					return nil
				}
			}

			out, err := c.ClearFrequencyUseCase().Execute(cmd.Context(), usecase.ClearFrequencyInput{
				Frequency: args[0],
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d %s task(s)\n", len(out.Removed), args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation")

	return cmd
}

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the task store",
		Long: `Initialize the todo-iq task store.

This command creates the data directory with:
- the task store (tasks.json, or tasks.db when [tasks] store = "sqlite")
- logs/: directory for log files

Running it again leaves an existing store untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.InitStoreUseCase().Execute(cmd.Context(), usecase.InitStoreInput{
				DataDir: c.Config.DataDir,
			})
			if err != nil {
				return err
			}

			if out.AlreadyInitialized {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "todo-iq already initialized in %s\n", out.DataDir)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized todo-iq in %s\n", out.DataDir)
			return nil
		},
	}
}

// statusVerb describes a status change for messages.
func statusVerb(status domain.Status) string {
	switch status {
	case domain.StatusDue:
		return "is due again"
	case domain.StatusOverdue:
		return "is now overdue"
	case domain.StatusFinished:
		return "is finished"
	case domain.StatusAsleep:
		return "is asleep"
	default:
		return "is " + string(status)
	}
}
