package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTask_StatusPredicates(t *testing.T) {
	tests := []struct {
		status Status
		open   bool
		asleep bool
	}{
		{StatusDue, true, false},
		{StatusOverdue, true, false},
		{StatusAsleep, false, true},
		{StatusFinished, false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			task := &Task{Status: tt.status}
			assert.Equal(t, tt.open, task.IsOpen())
			assert.Equal(t, tt.asleep, task.IsAsleep())
		})
	}
}

func TestTask_SetStatusStampsDay(t *testing.T) {
	task := &Task{Status: StatusDue}
	now := time.Date(2026, 5, 10, 21, 45, 0, 0, time.UTC)

	task.SetStatus(StatusFinished, now)

	assert.Equal(t, StatusFinished, task.Status)
	assert.Equal(t, date(2026, 5, 10), task.Since)
	assert.True(t, task.FinishedOn(now.Add(-20*time.Hour)))
	assert.False(t, task.FinishedOn(now.Add(24*time.Hour)))
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 5, 10, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysBetween(a, date(2026, 5, 10)))
	assert.Equal(t, 1, DaysBetween(a, time.Date(2026, 5, 11, 0, 30, 0, 0, time.UTC)))
	assert.Equal(t, 31, DaysBetween(a, date(2026, 6, 10)))
	assert.Equal(t, -3, DaysBetween(a, date(2026, 5, 7)))
}
