package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func since(t domain.Task, days int) domain.Task {
	t.Since = daysAgo(days)
	return t
}

func TestRefresh_Execute(t *testing.T) {
	repo, clock, logger := fixture(
		[]domain.Task{
			since(task("call mum", "once", domain.StatusDue), 100),
			since(task("dishes", "daily", domain.StatusDue), 1),
			since(task("floss", "daily", domain.StatusOverdue), 5),
			since(task("gym", "weekly", domain.StatusDue), 3),
			since(task("laundry", "weekly", domain.StatusFinished), 2),
			since(task("rent", "monthly", domain.StatusFinished), 31),
		},
		sleeping("stretch", "daily", -2),
		sleeping("plants", "weekly", 0),
		sleeping("taxes", "yearly", 3),
	)
	uc := usecase.NewRefresh(repo, freqs, clock, logger)

	out, err := uc.Execute(context.Background(), usecase.RefreshInput{})

	require.NoError(t, err)
	assert.Equal(t, []string{"stretch", "plants"}, out.Woken)
	assert.Equal(t, []string{"rent"}, out.Renewed)
	assert.Equal(t, []string{"dishes"}, out.Escalated)
	assert.True(t, out.Changed())

	assert.Equal(t, []string{"taxes"}, repo.SleeperNames())
	assert.Equal(t, []string{"call mum", "dishes", "floss", "stretch", "gym", "laundry", "plants", "rent"}, repo.AgendaNames())

	wantStatus := map[string]domain.Status{
		"call mum": domain.StatusDue,
		"dishes":   domain.StatusOverdue,
		"floss":    domain.StatusOverdue,
		"stretch":  domain.StatusDue,
		"gym":      domain.StatusDue,
		"laundry":  domain.StatusFinished,
		"plants":   domain.StatusDue,
		"rent":     domain.StatusDue,
	}
	for name, want := range wantStatus {
		got, ok := repo.Find(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got.Status, name)
	}
	for _, name := range []string{"dishes", "stretch", "plants", "rent"} {
		got, _ := repo.Find(name)
		assert.Equal(t, today, got.Since, name)
		assert.Nil(t, got.Until, name)
	}
}

func TestRefresh_Execute_Idempotent(t *testing.T) {
	repo, clock, logger := fixture(
		[]domain.Task{since(task("dishes", "daily", domain.StatusFinished), 1)},
		sleeping("stretch", "daily", 0),
	)
	uc := usecase.NewRefresh(repo, freqs, clock, logger)

	first, err := uc.Execute(context.Background(), usecase.RefreshInput{})
	require.NoError(t, err)
	require.True(t, first.Changed())

	second, err := uc.Execute(context.Background(), usecase.RefreshInput{})
	require.NoError(t, err)
	assert.False(t, second.Changed(), "tasks changed today are left alone")
	assert.Equal(t, 1, repo.SaveCalls)
}

func TestRefresh_Execute_UnknownFrequencyIsSkipped(t *testing.T) {
	repo, clock, logger := fixture([]domain.Task{since(task("old", "fortnightly", domain.StatusDue), 90)})
	uc := usecase.NewRefresh(repo, freqs, clock, logger)

	out, err := uc.Execute(context.Background(), usecase.RefreshInput{})

	require.NoError(t, err)
	assert.False(t, out.Changed())
	assert.Contains(t, logger.Lines, `WARN [refresh] "old" has unknown frequency "fortnightly"`)
	assert.Equal(t, 0, repo.SaveCalls)
}
