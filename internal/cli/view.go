package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/runoshun/todo-iq/internal/app"
	"github.com/runoshun/todo-iq/internal/usecase"
	"github.com/spf13/cobra"
)

const allFrequencies = "all"

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "show TARGET...",
		Aliases: []string{"detail"},
		Short:   "Show every detail of a task",
		Long:    "Show every detail of a task.\n\n" + targetHelp,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ShowTaskUseCase().Execute(cmd.Context(), usecase.ShowTaskInput{
				Target: joinTarget(args),
			})
			if err != nil {
				return err
			}

			printTaskDetail(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// newDescrCommand creates the descr command.
func newDescrCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "descr TARGET...",
		Aliases: []string{"description"},
		Short:   "Show the description of a task",
		Long:    "Show the description of a task.\n\n" + targetHelp,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ShowTaskUseCase().Execute(cmd.Context(), usecase.ShowTaskInput{
				Target: joinTarget(args),
			})
			if err != nil {
				return err
			}

			if out.Task.Description == "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%q has no description\n", out.Task.Name)
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Task.Description)
			return nil
		},
	}
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	filters := make([]string, 0, len(usecase.ListFilters()))
	for _, f := range usecase.ListFilters() {
		filters = append(filters, string(f))
	}

	return &cobra.Command{
		Use:     "list [FREQUENCY|all] [STATUS]",
		Aliases: []string{"dl", "display", "disp"},
		Short:   "List tasks by frequency and status",
		Long: fmt.Sprintf(`List tasks of one frequency (or all) with the given status.

STATUS is one of: %s (default: open, meaning due or overdue).
The numbers shown are agenda positions that other commands accept as targets.

Examples:
  todoiq list
  todoiq list weekly
  todoiq list all asleep`, strings.Join(filters, ", ")),
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.ListTasksInput{}
			if len(args) > 0 && args[0] != allFrequencies {
				input.Frequency = args[0]
			}
			if len(args) > 1 {
				filter, err := usecase.ParseListFilter(strings.ToLower(args[1]))
				if err != nil {
					return err
				}
				input.Filter = filter
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			printTaskList(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// newAllCommand creates the all command.
func newAllCommand(c *app.Container) *cobra.Command {
	var finished bool

	cmd := &cobra.Command{
		Use:     "all",
		Aliases: []string{"da"},
		Short:   "List every task",
		Long:    "List every task on the board, sleeping ones included.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := usecase.ListAll
			if finished {
				filter = usecase.ListFinished
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{Filter: filter})
			if err != nil {
				return err
			}

			printTaskList(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&finished, "finished", "f", false, "Only show finished tasks")

	return cmd
}

// newStatusViewCommand creates a shortcut for "list [FREQUENCY] <filter>"
// across every frequency.
func newStatusViewCommand(c *app.Container, use string, aliases []string, short string, filter usecase.ListFilter) *cobra.Command {
	return &cobra.Command{
		Use:     use + " [FREQUENCY]",
		Aliases: aliases,
		Short:   short,
		Long:    short + ".\n\nSame as: todoiq list [FREQUENCY|all] " + string(filter),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.ListTasksInput{Filter: filter}
			if len(args) > 0 && args[0] != allFrequencies {
				input.Frequency = args[0]
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			printTaskList(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newFinishedTodayCommand(c *app.Container) *cobra.Command {
	return newStatusViewCommand(c, "finished-today", []string{"ft", "finished_today"},
		"List the tasks finished today", usecase.ListFinishedToday)
}

func newDueCommand(c *app.Container) *cobra.Command {
	return newStatusViewCommand(c, "due", nil,
		"List the due tasks, overdue ones excluded", usecase.ListDue)
}

func newSleepingCommand(c *app.Container) *cobra.Command {
	return newStatusViewCommand(c, "sleeping", []string{"sleepers"},
		"List the sleeping tasks with their wake dates", usecase.ListAsleep)
}

// newToDoCommand creates the todo command.
func newToDoCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "todo",
		Aliases: []string{"td", "today", "to-do"},
		Short:   "Show today's agenda",
		Long:    "Show the due and overdue tasks, with counters for the day.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runToDo(cmd, c)
		},
	}
}

func runToDo(cmd *cobra.Command, c *app.Container) error {
	out, err := c.ToDoUseCase().Execute(cmd.Context(), usecase.ToDoInput{})
	if err != nil {
		return err
	}

	printToDo(cmd.OutOrStdout(), out)
	return nil
}

// newRefreshCommand creates the refresh command.
func newRefreshCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "refresh",
		Aliases: []string{"rtd"},
		Short:   "Bring the agenda up to date",
		Long: `Bring the agenda up to date with today's date:
- sleeping tasks whose wake date has come are put back on the agenda
- finished tasks whose period has passed become due again
- due tasks whose period has passed become overdue

Tasks changed today are left alone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.RefreshUseCase().Execute(cmd.Context(), usecase.RefreshInput{})
			if err != nil {
				return err
			}

			if !out.Changed() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Already up to date")
				return nil
			}
			printRefreshSummary(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// newFrequenciesCommand creates the frequencies command.
func newFrequenciesCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "frequencies",
		Aliases: []string{"lf"},
		Short:   "List the valid frequencies",
		Long:    "List the valid frequencies in display order with their periods.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListFrequenciesUseCase().Execute(cmd.Context(), usecase.ListFrequenciesInput{})
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			defer func() { _ = tw.Flush() }()

			_, _ = fmt.Fprintln(tw, "NAME\tPRIORITY\tPERIOD\tTASKS")
			for _, info := range out.Frequencies {
				_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%d\n",
					info.Frequency.Name,
					info.Frequency.Priority,
					info.Frequency.Period(),
					info.Tasks,
				)
			}
			return nil
		},
	}
}
