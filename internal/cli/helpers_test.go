package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/runoshun/todo-iq/internal/app"
	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/testutil"
)

var today = time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

func inDays(n int) *time.Time {
	t := today.AddDate(0, 0, n)
	return &t
}

func task(name, frequency string, status domain.Status) domain.Task {
	return domain.Task{Name: name, Frequency: frequency, Status: status, Since: today.AddDate(0, 0, -1)}
}

// standardAgenda is dishes (1), floss (2) daily, gym (3) weekly, rent (4) monthly.
func standardAgenda() []domain.Task {
	return []domain.Task{
		task("dishes", "daily", domain.StatusDue),
		task("floss", "daily", domain.StatusOverdue),
		task("gym", "weekly", domain.StatusDue),
		task("rent", "monthly", domain.StatusFinished),
	}
}

// newTestContainer returns a container backed by an in-memory board.
func newTestContainer(t *testing.T, agenda []domain.Task, sleepers ...domain.Task) (*app.Container, *testutil.MockBoardRepository) {
	t.Helper()
	repo := testutil.NewMockBoardRepository()
	repo.Stored = &domain.Snapshot{Agenda: agenda, Sleepers: sleepers}
	c := app.NewWithDeps(app.Config{}, nil, repo, &testutil.MockStoreInitializer{Initialized: true},
		&testutil.MockClock{NowTime: today.Add(9 * time.Hour)}, nil)
	return c, repo
}

// execute runs the root command with args, feeding stdin, and returns the
// combined stdout and stderr.
func execute(t *testing.T, c *app.Container, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(c, "test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}
