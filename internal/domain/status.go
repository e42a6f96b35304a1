package domain

import "fmt"

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusDue      Status = "due"      // On the agenda
	StatusOverdue  Status = "overdue"  // On the agenda, past its period
	StatusAsleep   Status = "asleep"   // Deferred until a wake date
	StatusFinished Status = "finished" // Done for the current period
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{
		StatusDue,
		StatusOverdue,
		StatusAsleep,
		StatusFinished,
	}
}

// transitions defines the allowed status transitions.
// Flow: due → overdue → finished → due (renewal)
//
//	due|overdue → asleep → due (wake)
var transitions = map[Status][]Status{
	StatusDue:      {StatusOverdue, StatusFinished, StatusAsleep},
	StatusOverdue:  {StatusFinished, StatusAsleep},
	StatusFinished: {StatusDue},
	StatusAsleep:   {StatusDue},
}

// CanTransitionTo returns true if the status can transition to the target status.
func (s Status) CanTransitionTo(target Status) bool {
	allowed, ok := transitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusDue:
		return "Due"
	case StatusOverdue:
		return "Overdue"
	case StatusAsleep:
		return "Asleep"
	case StatusFinished:
		return "Finished"
	default:
		return string(s)
	}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusDue, StatusOverdue, StatusAsleep, StatusFinished:
		return true
	default:
		return false
	}
}

// ParseStatus converts a user-supplied string into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}
