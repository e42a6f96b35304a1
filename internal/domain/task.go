// Package domain contains core business entities and interfaces.
package domain

import "time"

// Task represents a personal task tracked by todo-iq.
// Fields are ordered to minimize memory padding.
type Task struct {
	Since       time.Time  `json:"since" yaml:"since"`                                 // Date of the last status change
	Until       *time.Time `json:"until,omitempty" yaml:"until,omitempty"`             // Wake date (asleep only)
	Name        string     `json:"name" yaml:"name"`                                   // Unique name (identity key)
	Frequency   string     `json:"frequency" yaml:"frequency"`                         // Recurrence tag
	Description string     `json:"description,omitempty" yaml:"description,omitempty"` // Free text
	Status      Status     `json:"status" yaml:"status"`                               // Current status
}

// IsAsleep returns true if the task is waiting for its wake date.
func (t *Task) IsAsleep() bool {
	return t.Status == StatusAsleep
}

// IsOpen returns true if the task is on the agenda (due or overdue).
func (t *Task) IsOpen() bool {
	return t.Status == StatusDue || t.Status == StatusOverdue
}

// FinishedOn returns true if the task was finished on the given day.
func (t *Task) FinishedOn(day time.Time) bool {
	return t.Status == StatusFinished && Day(t.Since).Equal(Day(day))
}

// SetStatus changes the status and stamps the change date.
func (t *Task) SetStatus(status Status, today time.Time) {
	t.Status = status
	t.Since = Day(today)
}

// Day truncates t to a civil date (midnight UTC).
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}
