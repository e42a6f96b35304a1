package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteTask_Execute(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		wantAgenda   []string
		wantSleepers []string
	}{
		{"by name", "gym", []string{"dishes", "floss", "rent"}, []string{"taxes"}},
		{"by position", "2", []string{"dishes", "gym", "rent"}, []string{"taxes"}},
		{"sleeping task", "taxes", []string{"dishes", "floss", "gym", "rent"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, logger := fixture(standardAgenda(), sleeping("taxes", "yearly", 30))
			uc := usecase.NewDeleteTask(repo, freqs, logger)

			_, err := uc.Execute(context.Background(), usecase.DeleteTaskInput{Target: tt.target})

			require.NoError(t, err)
			assert.Equal(t, tt.wantAgenda, repo.AgendaNames())
			assert.Equal(t, tt.wantSleepers, repo.SleeperNames())
		})
	}
}

func TestDeleteTask_Execute_LastOfFrequencyDropsList(t *testing.T) {
	repo, _, logger := fixture(standardAgenda())
	uc := usecase.NewDeleteTask(repo, freqs, logger)

	out, err := uc.Execute(context.Background(), usecase.DeleteTaskInput{Target: "rent"})

	require.NoError(t, err)
	assert.Equal(t, "rent", out.Task.Name)
	assert.Equal(t, []string{"daily", "weekly"}, repo.Stored.Ordering)
}

func TestDeleteTask_Execute_NotFound(t *testing.T) {
	repo, _, logger := fixture(standardAgenda())
	uc := usecase.NewDeleteTask(repo, freqs, logger)

	_, err := uc.Execute(context.Background(), usecase.DeleteTaskInput{Target: "ghost"})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.Equal(t, 0, repo.SaveCalls)
}

func TestRenameTask_Execute(t *testing.T) {
	repo, _, logger := fixture(standardAgenda(), sleeping("taxes", "yearly", 30))
	uc := usecase.NewRenameTask(repo, freqs, logger)

	out, err := uc.Execute(context.Background(), usecase.RenameTaskInput{Target: "3", NewName: "climbing"})
	require.NoError(t, err)
	assert.Equal(t, "gym", out.OldName)
	assert.Equal(t, "climbing", out.Task.Name)
	assert.Equal(t, []string{"dishes", "floss", "climbing", "rent"}, repo.AgendaNames())

	_, err = uc.Execute(context.Background(), usecase.RenameTaskInput{Target: "taxes", NewName: "tax return"})
	require.NoError(t, err)
	assert.Equal(t, []string{"tax return"}, repo.SleeperNames())
}

func TestRenameTask_Execute_Errors(t *testing.T) {
	repo, _, logger := fixture(standardAgenda(), sleeping("taxes", "yearly", 30))
	uc := usecase.NewRenameTask(repo, freqs, logger)

	_, err := uc.Execute(context.Background(), usecase.RenameTaskInput{Target: "gym", NewName: "taxes"})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	_, err = uc.Execute(context.Background(), usecase.RenameTaskInput{Target: "gym", NewName: ""})
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	_, err = uc.Execute(context.Background(), usecase.RenameTaskInput{Target: "nope", NewName: "x"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	assert.Equal(t, 0, repo.SaveCalls)
}

func TestRenameTask_Execute_SameName(t *testing.T) {
	repo, _, logger := fixture(standardAgenda())
	uc := usecase.NewRenameTask(repo, freqs, logger)

	out, err := uc.Execute(context.Background(), usecase.RenameTaskInput{Target: "gym", NewName: "gym"})

	require.NoError(t, err)
	assert.Equal(t, "gym", out.Task.Name)
	assert.Equal(t, 0, repo.SaveCalls)
}

func TestChangeFrequency_Execute(t *testing.T) {
	repo, _, logger := fixture(standardAgenda())
	uc := usecase.NewChangeFrequency(repo, freqs, logger)

	out, err := uc.Execute(context.Background(), usecase.ChangeFrequencyInput{Target: "gym", Frequency: "daily"})

	require.NoError(t, err)
	assert.Equal(t, "weekly", out.From)
	assert.Equal(t, "daily", out.Task.Frequency)
	assert.Equal(t, []string{"dishes", "floss", "gym", "rent"}, repo.AgendaNames())
	assert.Equal(t, []string{"daily", "monthly"}, repo.Stored.Ordering)
}

func TestChangeFrequency_Execute_MovesToEndOfNewList(t *testing.T) {
	repo, _, logger := fixture(standardAgenda())
	uc := usecase.NewChangeFrequency(repo, freqs, logger)

	_, err := uc.Execute(context.Background(), usecase.ChangeFrequencyInput{Target: "dishes", Frequency: "weekly"})

	require.NoError(t, err)
	assert.Equal(t, []string{"floss", "gym", "dishes", "rent"}, repo.AgendaNames())
}

func TestChangeFrequency_Execute_Sleeper(t *testing.T) {
	repo, _, logger := fixture(nil, sleeping("taxes", "yearly", 30))
	uc := usecase.NewChangeFrequency(repo, freqs, logger)

	out, err := uc.Execute(context.Background(), usecase.ChangeFrequencyInput{Target: "taxes", Frequency: "monthly"})

	require.NoError(t, err)
	assert.Equal(t, "monthly", out.Task.Frequency)
	assert.Equal(t, []string{"taxes"}, repo.SleeperNames())
	assert.Empty(t, repo.Stored.Ordering)
}

func TestChangeFrequency_Execute_UnknownFrequency(t *testing.T) {
	repo, _, logger := fixture(standardAgenda())
	uc := usecase.NewChangeFrequency(repo, freqs, logger)

	_, err := uc.Execute(context.Background(), usecase.ChangeFrequencyInput{Target: "gym", Frequency: "hourly"})

	assert.ErrorIs(t, err, domain.ErrUnknownFrequency)
	assert.Equal(t, 0, repo.SaveCalls)
}

func TestChangeDescription_Execute(t *testing.T) {
	repo, _, logger := fixture(standardAgenda(), sleeping("taxes", "yearly", 30))
	uc := usecase.NewChangeDescription(repo, freqs, logger)

	_, err := uc.Execute(context.Background(), usecase.ChangeDescriptionInput{Target: "1", Description: "use the gloves"})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), usecase.ChangeDescriptionInput{Target: "taxes", Description: "find receipts"})
	require.NoError(t, err)

	dishes, _ := repo.Find("dishes")
	taxes, _ := repo.Find("taxes")
	assert.Equal(t, "use the gloves", dishes.Description)
	assert.Equal(t, "find receipts", taxes.Description)
}
