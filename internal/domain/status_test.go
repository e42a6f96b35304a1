package domain

import (
	"errors"
	"testing"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   Status
		to     Status
		expect bool
	}{
		// From due
		{"due -> overdue", StatusDue, StatusOverdue, true},
		{"due -> finished", StatusDue, StatusFinished, true},
		{"due -> asleep", StatusDue, StatusAsleep, true},
		{"due -> due", StatusDue, StatusDue, false},

		// From overdue
		{"overdue -> finished", StatusOverdue, StatusFinished, true},
		{"overdue -> asleep", StatusOverdue, StatusAsleep, true},
		{"overdue -> due", StatusOverdue, StatusDue, false},

		// From finished
		{"finished -> due", StatusFinished, StatusDue, true},
		{"finished -> overdue", StatusFinished, StatusOverdue, false},
		{"finished -> asleep", StatusFinished, StatusAsleep, false},

		// From asleep
		{"asleep -> due", StatusAsleep, StatusDue, true},
		{"asleep -> finished", StatusAsleep, StatusFinished, false},
		{"asleep -> overdue", StatusAsleep, StatusOverdue, false},

		// Unknown
		{"bogus -> due", Status("bogus"), StatusDue, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.CanTransitionTo(tt.to)
			if got != tt.expect {
				t.Errorf("CanTransitionTo(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.expect)
			}
		})
	}
}

func TestStatus_Display(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusDue, "Due"},
		{StatusOverdue, "Overdue"},
		{StatusAsleep, "Asleep"},
		{StatusFinished, "Finished"},
		{Status("other"), "other"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Display(); got != tt.want {
				t.Errorf("Display() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []Status{"", "todo", "Due"} {
		if s.IsValid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestParseStatus(t *testing.T) {
	got, err := ParseStatus("asleep")
	if err != nil || got != StatusAsleep {
		t.Errorf("ParseStatus(asleep) = %q, %v", got, err)
	}

	_, err = ParseStatus("later")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("ParseStatus(later) error = %v, want ErrInvalidStatus", err)
	}
}
