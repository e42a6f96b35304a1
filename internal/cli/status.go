package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/runoshun/todo-iq/internal/app"
	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/usecase"
	"github.com/spf13/cobra"
)

// newSleepCommand creates the sleep command.
func newSleepCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Until string
		Days  int
	}

	cmd := &cobra.Command{
		Use:     "sleep TARGET... (--until DATE | --days N)",
		Aliases: []string{"sa", "asleep"},
		Short:   "Put a task to sleep until a date",
		Long: `Take a task off the agenda until its wake date. A refresh on or after
that date puts it back on the agenda. Sleeping tasks get a new wake date.

` + targetHelp,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var until time.Time
			switch {
			case opts.Until != "" && opts.Days != 0:
				return errors.New("use either --until or --days, not both")
			case opts.Until != "":
				t, err := parseDate(opts.Until)
				if err != nil {
					return err
				}
				until = t
			case opts.Days != 0:
				until = domain.Day(c.Clock.Now()).AddDate(0, 0, opts.Days)
			default:
				return domain.ErrMissingWakeDate
			}

			out, err := c.SetAsleepUseCase().Execute(cmd.Context(), usecase.SetAsleepInput{
				Target: joinTarget(args),
				Until:  until,
			})
			if err != nil {
				return err
			}

			verb := "sleeps"
			if out.Rescheduled {
				verb = "now sleeps"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %q %s until %s\n", out.Task.Name, verb, formatDate(out.Task.Until))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Until, "until", "", "Wake date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&opts.Days, "days", 0, "Wake after this many days")

	return cmd
}

// newRenewCommand creates the renew command.
func newRenewCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "renew TARGET...",
		Aliases: []string{"md", "due-now", "sd", "set-due"},
		Short:   "Make a finished or sleeping task due now",
		Long:    "Put a finished or sleeping task back on the agenda as due.\n\n" + targetHelp,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.RenewTaskUseCase().Execute(cmd.Context(), usecase.RenewTaskInput{
				Target: joinTarget(args),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %q %s (was %s)\n", out.Task.Name, statusVerb(out.Task.Status), out.From)
			return nil
		},
	}
}

// newOverdueCommand creates the overdue command.
func newOverdueCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "overdue TARGET...",
		Aliases: []string{"mo", "so", "set-overdue"},
		Short:   "Mark a due task as overdue",
		Long:    "Mark a due task as overdue.\n\n" + targetHelp,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.MarkOverdueUseCase().Execute(cmd.Context(), usecase.MarkOverdueInput{
				Target: joinTarget(args),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %q %s\n", out.Task.Name, statusVerb(out.Task.Status))
			return nil
		},
	}
}

// newFinishCommand creates the finish command.
func newFinishCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "finish TARGET...",
		Aliases: []string{"fin", "mf"},
		Short:   "Finish a task",
		Long: `Mark a due or overdue task as finished. It comes back after its period
on the next refresh. Finishing a 'once' task deletes it.

` + targetHelp,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.FinishTaskUseCase().Execute(cmd.Context(), usecase.FinishTaskInput{
				Target: joinTarget(args),
			})
			if err != nil {
				return err
			}

			if out.Removed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Finished and removed one-off task %q\n", out.Task.Name)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %q %s\n", out.Task.Name, statusVerb(out.Task.Status))
			return nil
		},
	}
}

// newMoveCommand creates the move command.
func newMoveCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Before string
		Yes    bool
		No     bool
	}

	cmd := &cobra.Command{
		Use:     "move TARGET... --before TASK",
		Aliases: []string{"mv"},
		Short:   "Move a task in front of another",
		Long: `Move an agenda task so that it comes right before another task.

When the other task has a different frequency, the moved task takes that
frequency. This asks for confirmation unless --yes or --no is given.

` + targetHelp + `
--before takes a task name or position as well.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Yes && opts.No {
				return errors.New("cannot use --yes and --no together")
			}
			input := usecase.MoveTaskInput{
				Target: joinTarget(args),
				Before: opts.Before,
			}
			if opts.Yes || opts.No {
				answer := opts.Yes
				input.Confirmed = &answer
			}

			uc := c.MoveTaskUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			if out.Pending {
				answer, err := confirm(cmd, c,
					fmt.Sprintf("Move %q from %s to %s?", out.Task.Name, out.From, out.To),
					fmt.Sprintf("%q will become a %s task.", out.Task.Name, out.To))
				if err != nil {
					return err
				}
				input.Confirmed = &answer
				if out, err = uc.Execute(cmd.Context(), input); err != nil {
					return err
				}
			}

			if !out.Moved {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %q was not moved\n", out.Task.Name)
				return nil
			}
			if out.From != out.To {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Moved %q before %q (now %s)\n", out.Task.Name, opts.Before, out.To)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Moved %q before %q\n", out.Task.Name, opts.Before)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Before, "before", "b", "", "Task to place the target in front of")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Accept a frequency change without asking")
	cmd.Flags().BoolVar(&opts.No, "no", false, "Refuse a frequency change without asking")
	_ = cmd.MarkFlagRequired("before")

	return cmd
}
