package usecase_test

import (
	"time"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/testutil"
)

var today = time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return today.AddDate(0, 0, -n)
}

func inDays(n int) *time.Time {
	t := today.AddDate(0, 0, n)
	return &t
}

func task(name, frequency string, status domain.Status) domain.Task {
	return domain.Task{Name: name, Frequency: frequency, Status: status, Since: daysAgo(1)}
}

func sleeping(name, frequency string, wakeIn int) domain.Task {
	return domain.Task{Name: name, Frequency: frequency, Status: domain.StatusAsleep, Since: daysAgo(3), Until: inDays(wakeIn)}
}

// fixture returns a repository holding the given agenda and sleepers, a
// clock fixed at today and a recording logger.
func fixture(agenda []domain.Task, sleepers ...domain.Task) (*testutil.MockBoardRepository, *testutil.MockClock, *testutil.MockLogger) {
	repo := testutil.NewMockBoardRepository()
	repo.Stored = &domain.Snapshot{Agenda: agenda, Sleepers: sleepers}
	return repo, &testutil.MockClock{NowTime: today.Add(9 * time.Hour)}, &testutil.MockLogger{}
}

// standardAgenda is dishes, floss (daily), gym (weekly), rent (monthly).
func standardAgenda() []domain.Task {
	return []domain.Task{
		task("dishes", "daily", domain.StatusDue),
		task("floss", "daily", domain.StatusOverdue),
		task("gym", "weekly", domain.StatusDue),
		task("rent", "monthly", domain.StatusFinished),
	}
}

var freqs = domain.DefaultFrequencies()

func ptr[T any](v T) *T {
	return &v
}
