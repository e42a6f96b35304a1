// Package tui provides the terminal UI pieces of todo-iq.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModel is a yes/no dialog.
// Fields are ordered to minimize memory padding.
type ConfirmModel struct {
	keys      KeyMap
	styles    Styles
	title     string
	prompt    string
	selected  bool // Highlighted choice (true = yes)
	answered  bool
	confirmed bool
}

// NewConfirmModel creates a dialog asking title. The highlighted choice starts at "no".
func NewConfirmModel(title, prompt string) *ConfirmModel {
	return &ConfirmModel{
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		title:  title,
		prompt: prompt,
	}
}

// Init implements tea.Model.
func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.answered {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Yes):
		return m.answer(true)
	case key.Matches(keyMsg, m.keys.No), key.Matches(keyMsg, m.keys.Quit):
		return m.answer(false)
	case key.Matches(keyMsg, m.keys.Toggle):
		m.selected = !m.selected
	case key.Matches(keyMsg, m.keys.Confirm):
		return m.answer(m.selected)
	}
	return m, nil
}

func (m *ConfirmModel) answer(yes bool) (tea.Model, tea.Cmd) {
	m.answered = true
	m.confirmed = yes
	m.selected = yes
	return m, tea.Quit
}

// View implements tea.Model.
func (m *ConfirmModel) View() string {
	if m.answered {
		return ""
	}

	yes, no := m.styles.Choice, m.styles.ChoiceSelected
	if m.selected {
		yes, no = m.styles.ChoiceSelected, m.styles.Choice
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Left, yes.Render("Yes"), "  ", no.Render("No"))

	parts := []string{m.styles.DialogTitle.Render(m.title)}
	if m.prompt != "" {
		parts = append(parts, "", m.styles.DialogPrompt.Render(m.prompt))
	}
	parts = append(parts, "", buttons)

	return m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)) + "\n" + m.helpView() + "\n"
}

func (m *ConfirmModel) helpView() string {
	bindings := m.keys.ShortHelp()
	items := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		items = append(items, m.styles.HelpKey.Render(h.Key)+" "+m.styles.HelpDesc.Render(h.Desc))
	}
	return strings.Join(items, "  ")
}

// Answered reports whether the user made a choice.
func (m *ConfirmModel) Answered() bool {
	return m.answered
}

// Confirmed reports whether the user chose yes.
func (m *ConfirmModel) Confirmed() bool {
	return m.answered && m.confirmed
}

// RunConfirm shows the dialog on out, reads keys from in, and returns the answer.
// Cancelling the dialog counts as no.
func RunConfirm(title, prompt string, in io.Reader, out io.Writer) (bool, error) {
	p := tea.NewProgram(NewConfirmModel(title, prompt), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("run confirm dialog: %w", err)
	}
	m, ok := final.(*ConfirmModel)
	if !ok {
		return false, nil
	}
	return m.Confirmed(), nil
}
