// Package cli provides the command-line interface for todo-iq.
package cli

import (
	"errors"

	"github.com/runoshun/todo-iq/internal/app"
	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/usecase"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
	groupView  = "view"
)

// skipAutoRefresh lists the commands that never trigger an automatic refresh.
var skipAutoRefresh = map[string]bool{
	"init":       true,
	"config":     true,
	"refresh":    true,
	"help":       true,
	"completion": true,
	"export":     true,
}

// NewRootCommand creates the root command for todo-iq.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "todoiq",
		Short: "Personal recurring task manager",
		Long: `todo-iq keeps track of personal tasks that come back on a schedule.

Tasks are grouped by frequency (daily, weekly, monthly, ...) and move through
the statuses due, overdue, finished and asleep. A refresh wakes sleeping tasks
whose date has come, renews finished tasks once their period has passed and
marks long-due tasks as overdue.

Tasks are addressed by name or by the position shown in the last listing.
Running todoiq without a command shows today's agenda.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			for _, w := range c.AppConfig.Warnings {
				printWarning(cmd.ErrOrStderr(), w)
			}

			if !c.AppConfig.Refresh.Auto || skipAutoRefresh[cmd.Name()] {
				return nil
			}
			out, err := c.RefreshUseCase().Execute(cmd.Context(), usecase.RefreshInput{})
			if err != nil {
				// Commands report a missing store themselves
				if errors.Is(err, domain.ErrNotInitialized) {
					return nil
				}
				return err
			}
			if out.Changed() {
				printRefreshSummary(cmd.ErrOrStderr(), out)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runToDo(cmd, c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupView, Title: "Views:"},
	)

	setup := []*cobra.Command{
		newInitCommand(c),
		newConfigCommand(c),
		newImportCommand(c),
		newExportCommand(c),
	}
	tasks := []*cobra.Command{
		newCreateCommand(c),
		newDeleteCommand(c),
		newRenameCommand(c),
		newFrequencyCommand(c),
		newDescribeCommand(c),
		newSleepCommand(c),
		newRenewCommand(c),
		newOverdueCommand(c),
		newFinishCommand(c),
		newMoveCommand(c),
		newClearCommand(c),
		newRefreshCommand(c),
	}
	views := []*cobra.Command{
		newShowCommand(c),
		newDescrCommand(c),
		newListCommand(c),
		newAllCommand(c),
		newToDoCommand(c),
		newDueCommand(c),
		newSleepingCommand(c),
		newFinishedTodayCommand(c),
		newFrequenciesCommand(c),
	}

	for group, cmds := range map[string][]*cobra.Command{groupSetup: setup, groupTask: tasks, groupView: views} {
		for _, cmd := range cmds {
			cmd.GroupID = group
			root.AddCommand(cmd)
		}
	}

	return root
}
