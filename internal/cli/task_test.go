package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommand(t *testing.T) {
	c, repo := newTestContainer(t, standardAgenda())

	out, err := execute(t, c, "", "create", "water_plants", "weekly", "-d", "balcony too")

	require.NoError(t, err)
	assert.Contains(t, out, `Created weekly task "water plants" (due)`)
	got, ok := repo.Find("water plants")
	require.True(t, ok)
	assert.Equal(t, "balcony too", got.Description)
	assert.Equal(t, []string{"dishes", "floss", "gym", "water plants", "rent"}, repo.AgendaNames())
}

func TestCreateCommand_Asleep(t *testing.T) {
	c, repo := newTestContainer(t, nil)

	_, err := execute(t, c, "", "ct", "dentist", "once", "ASLEEP", "--until", "2026-06-01")

	require.NoError(t, err)
	assert.Equal(t, []string{"dentist"}, repo.SleeperNames())
	got, _ := repo.Find("dentist")
	require.NotNil(t, got.Until)
	assert.Equal(t, "2026-06-01", got.Until.Format("2006-01-02"))
}

func TestCreateCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		err  error
	}{
		{"duplicate", []string{"create", "gym", "daily"}, domain.ErrDuplicateName},
		{"unknown frequency", []string{"create", "x", "hourly"}, domain.ErrUnknownFrequency},
		{"bad status", []string{"create", "x", "daily", "later"}, domain.ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, repo := newTestContainer(t, standardAgenda())

			_, err := execute(t, c, "", tt.args...)

			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, 0, repo.SaveCalls)
		})
	}
}

func TestCreateCommand_InvalidDate(t *testing.T) {
	c, _ := newTestContainer(t, nil)

	_, err := execute(t, c, "", "create", "x", "once", "asleep", "--until", "next week")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "want YYYY-MM-DD")
}

func TestDeleteCommand_ByPosition(t *testing.T) {
	c, repo := newTestContainer(t, standardAgenda())

	out, err := execute(t, c, "", "rm", "2")

	require.NoError(t, err)
	assert.Contains(t, out, `Deleted task "floss"`)
	assert.Equal(t, []string{"dishes", "gym", "rent"}, repo.AgendaNames())
}

func TestDeleteCommand_NotFound(t *testing.T) {
	c, _ := newTestContainer(t, standardAgenda())

	_, err := execute(t, c, "", "delete", "ghost")

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestRenameCommand_MultiWordTarget(t *testing.T) {
	c, repo := newTestContainer(t, []domain.Task{task("pay rent", "monthly", domain.StatusDue)})

	out, err := execute(t, c, "", "rename", "pay", "rent", "--new", "rent_transfer")

	require.NoError(t, err)
	assert.Contains(t, out, `Renamed "pay rent" to "rent transfer"`)
	assert.Equal(t, []string{"rent transfer"}, repo.AgendaNames())
}

func TestRenameCommand_RequiresNew(t *testing.T) {
	c, _ := newTestContainer(t, standardAgenda())

	_, err := execute(t, c, "", "rename", "gym")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"new" not set`)
}

func TestFrequencyCommand(t *testing.T) {
	c, repo := newTestContainer(t, standardAgenda())

	out, err := execute(t, c, "", "cf", "dishes", "-n", "weekly")

	require.NoError(t, err)
	assert.Contains(t, out, `Task "dishes" is now weekly (was daily)`)
	assert.Equal(t, []string{"floss", "gym", "dishes", "rent"}, repo.AgendaNames())
}

func TestDescribeCommand(t *testing.T) {
	c, repo := newTestContainer(t, standardAgenda())

	out, err := execute(t, c, "", "describe", "gym", "--new", "legs day")
	require.NoError(t, err)
	assert.Contains(t, out, `Updated the description of "gym"`)
	got, _ := repo.Find("gym")
	assert.Equal(t, "legs day", got.Description)

	out, err = execute(t, c, "", "cd", "gym")
	require.NoError(t, err)
	assert.Contains(t, out, `Cleared the description of "gym"`)
	got, _ = repo.Find("gym")
	assert.Empty(t, got.Description)
}

func TestClearCommand(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		want    string
		remains []string
	}{
		{"confirmed after re-prompt", "maybe\ny\n", []string{"clear", "daily"}, "Deleted 2 daily task(s)", []string{"gym", "rent"}},
		{"declined", "n\n", []string{"clear", "daily"}, "Nothing deleted", []string{"dishes", "floss", "gym", "rent"}},
		{"end of input", "", []string{"clear", "daily"}, "Nothing deleted", []string{"dishes", "floss", "gym", "rent"}},
		{"yes flag", "", []string{"clear", "weekly", "--yes"}, "Deleted 1 weekly task(s)", []string{"dishes", "floss", "rent"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, repo := newTestContainer(t, standardAgenda())

			out, err := execute(t, c, tt.stdin, tt.args...)

			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
			assert.Equal(t, tt.remains, repo.AgendaNames())
		})
	}
}

func TestClearCommand_RePrompts(t *testing.T) {
	c, _ := newTestContainer(t, standardAgenda())

	out, err := execute(t, c, "maybe\ny\n", "clear", "daily")

	require.NoError(t, err)
	assert.Contains(t, out, "Please answer y or n.")
	assert.Equal(t, 2, strings.Count(out, "[y/n]"))
}

func TestInitCommand(t *testing.T) {
	c, _ := newTestContainer(t, nil)
	storeInit := &testutil.MockStoreInitializer{}
	c.StoreInitializer = storeInit
	c.Config.DataDir = t.TempDir()

	out, err := execute(t, c, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized todo-iq in "+c.Config.DataDir)
	assert.True(t, storeInit.Initialized)
	assert.DirExists(t, filepath.Join(c.Config.DataDir, "logs"))

	out, err = execute(t, c, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "already initialized")
}
