package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
)

const dialogWidth = 48

// handleDialogKey answers the open dialog. A confirm takes yes or no; any
// key acknowledges an alert.
func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	req := *m.dialog
	switch req.kind {
	case dialogConfirm:
		switch {
		case key.Matches(msg, m.keys.Yes):
			req.answer(true)
		case key.Matches(msg, m.keys.No):
			req.answer(false)
		default:
			return m, nil
		}
	default:
		req.answer(true)
	}
	m.dialog = nil
	return m, nil
}

// renderDialog renders the open confirm or alert over the screen.
func (m Model) renderDialog() string {
	styles := m.theme.Styles()
	req := m.dialog

	var b strings.Builder
	title, border := "Notice", m.theme.Accent
	if req.kind == dialogConfirm {
		title, border = "Confirm", m.theme.Warning
	}
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", dialogWidth-6)))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(wordwrap.String(req.text, dialogWidth-6)))
	b.WriteString("\n\n")

	if req.kind == dialogConfirm {
		b.WriteString(styles.AccentText.Render("y/Enter"))
		b.WriteString(styles.MutedText.Render(": Yes  •  "))
		b.WriteString(styles.AccentText.Render("n/Esc"))
		b.WriteString(styles.MutedText.Render(": No"))
	} else {
		b.WriteString(styles.FaintText.Render("Press any key to continue"))
	}

	return m.renderModal(b.String(), dialogWidth, border)
}
