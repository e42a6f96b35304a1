package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/tui"
	"github.com/runoshun/todo-iq/internal/usecase"
)

var (
	styles       = tui.DefaultStyles()
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// printWarning prints a warning line on w.
func printWarning(w io.Writer, msg string) {
	_, _ = warningColor.Fprintf(w, "Warning: %s\n", msg)
}

// PrintError prints a command error on w.
func PrintError(w io.Writer, err error) {
	_, _ = errorColor.Fprintf(w, "Error: %v\n", err)
}

// printSections prints agenda tasks grouped by frequency.
func printSections(w io.Writer, sections []usecase.TaskSection) {
	for i, section := range sections {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintln(w, styles.Frequency.Render(section.Frequency))

		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		for _, t := range section.Tasks {
			// Status goes last so its color codes don't skew the columns
			_, _ = fmt.Fprintf(tw, "  %d\t%s\t%s\n",
				t.Position,
				t.Task.Name,
				styles.StatusBadge(t.Task.Status),
			)
		}
		_ = tw.Flush()
	}
}

// printSleepers prints sleeping tasks in wake order.
func printSleepers(w io.Writer, sleepers []usecase.ListedTask) {
	_, _ = fmt.Fprintln(w, styles.Frequency.Render("asleep"))

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	for _, t := range sleepers {
		_, _ = fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n",
			t.Task.Name,
			t.Task.Frequency,
			formatDate(t.Task.Until),
			styles.Muted.Render(formatDaysLeft(t.DaysLeft)),
		)
	}
}

// printTaskList prints a listing result.
func printTaskList(w io.Writer, out *usecase.ListTasksOutput) {
	if out.Total() == 0 {
		_, _ = fmt.Fprintln(w, "No tasks found.")
		return
	}
	printSections(w, out.Sections)
	if len(out.Sleepers) > 0 {
		if len(out.Sections) > 0 {
			_, _ = fmt.Fprintln(w)
		}
		printSleepers(w, out.Sleepers)
	}
}

// printTaskDetail prints every field of a task.
func printTaskDetail(w io.Writer, out *usecase.ShowTaskOutput) {
	task := out.Task
	_, _ = fmt.Fprintf(w, "%s %s\n\n", tui.StatusIcon(task.Status), styles.Header.Render(task.Name))

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Frequency:\t%s (%s)\n", task.Frequency, out.Frequency.Period())
	_, _ = fmt.Fprintf(tw, "Since:\t%s\n", task.Since.Format(time.DateOnly))
	if out.Position > 0 {
		_, _ = fmt.Fprintf(tw, "Position:\t%d\n", out.Position)
	}
	if task.Until != nil {
		_, _ = fmt.Fprintf(tw, "Wakes:\t%s (%s)\n", formatDate(task.Until), formatDaysLeft(out.DaysLeft))
	}
	if out.NextDue != nil {
		label := "Escalates"
		if task.Status == domain.StatusFinished {
			label = "Renews"
		}
		_, _ = fmt.Fprintf(tw, "%s:\t%s\n", label, out.NextDue.Format(time.DateOnly))
	}
	_ = tw.Flush()
	// Status goes outside the tabwriter for the same reason as in listings
	_, _ = fmt.Fprintf(w, "Status:    %s\n", styles.StatusBadge(task.Status))

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Description:")
	if task.Description == "" {
		_, _ = fmt.Fprintln(w, "  (no description)")
	} else {
		for _, line := range strings.Split(task.Description, "\n") {
			_, _ = fmt.Fprintf(w, "  %s\n", line)
		}
	}
}

// printToDo prints today's agenda with its counters.
func printToDo(w io.Writer, out *usecase.ToDoOutput) {
	if len(out.Sections) == 0 {
		_, _ = fmt.Fprintln(w, "Nothing to do today.")
	} else {
		printSections(w, out.Sections)
	}

	summary := fmt.Sprintf("%d due, %d overdue, %d finished today", out.Due, out.Overdue, out.FinishedToday)
	if out.NextWake >= 0 {
		summary += fmt.Sprintf("; next task wakes %s", formatDaysLeft(out.NextWake))
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, styles.Muted.Render(summary))
}

// printRefreshSummary prints what a refresh changed.
func printRefreshSummary(w io.Writer, out *usecase.RefreshOutput) {
	for _, line := range []struct {
		label string
		names []string
	}{
		{"Woke up", out.Woken},
		{"Renewed", out.Renewed},
		{"Now overdue", out.Escalated},
	} {
		if len(line.names) > 0 {
			_, _ = fmt.Fprintf(w, "%s: %s\n", line.label, strings.Join(line.names, ", "))
		}
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.DateOnly)
}

func formatDaysLeft(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}
