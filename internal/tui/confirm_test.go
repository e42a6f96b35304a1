package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/stretchr/testify/assert"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmModel_Update(t *testing.T) {
	tests := []struct {
		name      string
		keys      []tea.KeyMsg
		confirmed bool
	}{
		{"y answers yes", []tea.KeyMsg{runes("y")}, true},
		{"Y answers yes", []tea.KeyMsg{runes("Y")}, true},
		{"n answers no", []tea.KeyMsg{runes("n")}, false},
		{"esc cancels", []tea.KeyMsg{{Type: tea.KeyEsc}}, false},
		{"enter takes default no", []tea.KeyMsg{{Type: tea.KeyEnter}}, false},
		{"toggle then enter", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyEnter}}, true},
		{"toggle twice then enter", []tea.KeyMsg{{Type: tea.KeyLeft}, runes("l"), {Type: tea.KeyEnter}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewConfirmModel("Move?", "")
			var cmd tea.Cmd
			for _, k := range tt.keys {
				_, cmd = m.Update(k)
			}

			assert.True(t, m.Answered())
			assert.Equal(t, tt.confirmed, m.Confirmed())
			if assert.NotNil(t, cmd) {
				assert.IsType(t, tea.QuitMsg{}, cmd())
			}
		})
	}
}

func TestConfirmModel_IgnoresOtherKeys(t *testing.T) {
	m := NewConfirmModel("Move?", "")

	_, cmd := m.Update(runes("x"))

	assert.Nil(t, cmd)
	assert.False(t, m.Answered())
	assert.False(t, m.Confirmed())
}

func TestConfirmModel_IgnoresKeysAfterAnswer(t *testing.T) {
	m := NewConfirmModel("Move?", "")
	m.Update(runes("y"))

	m.Update(runes("n"))

	assert.True(t, m.Confirmed())
}

func TestConfirmModel_View(t *testing.T) {
	m := NewConfirmModel("Move gym to daily?", "gym is weekly")

	view := m.View()
	assert.Contains(t, view, "Move gym to daily?")
	assert.Contains(t, view, "gym is weekly")
	assert.Contains(t, view, "Yes")
	assert.Contains(t, view, "No")
	assert.Contains(t, view, "cancel")

	m.Update(runes("n"))
	assert.Empty(t, m.View())
}

func TestStyles_StatusBadge(t *testing.T) {
	s := DefaultStyles()

	for _, status := range domain.AllStatuses() {
		assert.Contains(t, s.StatusBadge(status), status.Display())
		assert.NotEqual(t, "?", StatusIcon(status))
	}
	assert.Equal(t, "?", StatusIcon(domain.Status("bogus")))
}
