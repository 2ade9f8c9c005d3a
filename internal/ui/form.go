package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/codemarket/internal/market"
)

type formField int

const (
	fieldTitle formField = iota
	fieldPrice
	fieldLanguage
	fieldDescription
	fieldCode
	fieldCount
)

// editorForm holds the inputs of the create and edit form.
type editorForm struct {
	edit bool

	title       textinput.Model
	price       textinput.Model
	language    string
	description textarea.Model
	code        textarea.Model

	focus formField
}

func newEditorForm(fields market.FormFields, edit bool) editorForm {
	inner := formWidth - 6

	title := textinput.New()
	title.Placeholder = "e.g. React todo list component"
	title.CharLimit = 0
	title.Width = inner - 14
	title.SetValue(fields.Title)

	price := textinput.New()
	price.Placeholder = "e.g. 15000"
	price.CharLimit = 0
	price.Width = 16
	price.SetValue(fields.Price)

	description := textarea.New()
	description.Placeholder = "What does this code do?"
	description.ShowLineNumbers = false
	description.CharLimit = 0
	description.SetWidth(inner)
	description.SetHeight(formDescriptionHeight)
	description.SetValue(fields.Description)

	code := textarea.New()
	code.Placeholder = "Paste your code here"
	code.ShowLineNumbers = true
	code.CharLimit = 0
	code.SetWidth(inner)
	code.SetHeight(formCodeHeight)
	code.SetValue(fields.Code)

	language := fields.Language
	if language == "" {
		language = market.DefaultLanguage
	}

	f := editorForm{
		edit:        edit,
		title:       title,
		price:       price,
		language:    language,
		description: description,
		code:        code,
	}
	f.setFocus(fieldTitle)
	return f
}

// fields returns the current text of every input.
func (f editorForm) fields() market.FormFields {
	return market.FormFields{
		Title:       f.title.Value(),
		Price:       f.price.Value(),
		Code:        f.code.Value(),
		Description: f.description.Value(),
		Language:    f.language,
	}
}

func (f editorForm) heading() string {
	if f.edit {
		return "Edit code"
	}
	return "Upload code"
}

func (f editorForm) submitLabel() string {
	if f.edit {
		return "Save changes"
	}
	return "Register"
}

func (f *editorForm) setFocus(field formField) {
	f.title.Blur()
	f.price.Blur()
	f.description.Blur()
	f.code.Blur()

	f.focus = field
	switch field {
	case fieldTitle:
		f.title.Focus()
	case fieldPrice:
		f.price.Focus()
	case fieldDescription:
		f.description.Focus()
	case fieldCode:
		f.code.Focus()
	}
}

// update routes a key to the focused input. Submit and cancel are handled by
// the caller.
func (f editorForm) update(msg tea.KeyMsg, keys keyMap) (editorForm, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.NextField):
		f.setFocus((f.focus + 1) % fieldCount)
		return f, nil
	case key.Matches(msg, keys.PrevField):
		f.setFocus((f.focus - 1 + fieldCount) % fieldCount)
		return f, nil
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldPrice:
		f.price, cmd = f.price.Update(msg)
	case fieldLanguage:
		switch {
		case key.Matches(msg, keys.PrevOpt):
			f.language = market.PrevLanguage(f.language)
		case key.Matches(msg, keys.NextOpt), msg.String() == " ":
			f.language = market.NextLanguage(f.language)
		}
	case fieldDescription:
		f.description, cmd = f.description.Update(msg)
	case fieldCode:
		f.code, cmd = f.code.Update(msg)
	}
	return f, cmd
}

// renderForm renders the editor form as a centered modal.
func (m Model) renderForm() string {
	f := m.form
	styles := m.theme.Styles()

	label := func(field formField, text string) string {
		padded := lipgloss.NewStyle().Width(13).Render(text)
		if f.focus == field {
			return styles.AccentText.Render(padded)
		}
		return styles.MutedText.Render(padded)
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(f.heading()))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", formWidth-6)))
	b.WriteString("\n\n")

	b.WriteString(label(fieldTitle, "Title"))
	b.WriteString(f.title.View())
	b.WriteString("\n\n")

	b.WriteString(label(fieldPrice, "Price"))
	b.WriteString(f.price.View())
	b.WriteString(" ")
	b.WriteString(styles.FaintText.Render(m.present.Currency))
	b.WriteString("\n\n")

	b.WriteString(label(fieldLanguage, "Language"))
	lang := "‹ " + f.language + " ›"
	if f.focus == fieldLanguage {
		b.WriteString(styles.WarningText.Render(lang))
	} else {
		b.WriteString(styles.Text.Render(lang))
	}
	b.WriteString("\n\n")

	b.WriteString(label(fieldDescription, "Description"))
	b.WriteString("\n")
	b.WriteString(f.description.View())
	b.WriteString("\n\n")

	b.WriteString(label(fieldCode, "Code"))
	b.WriteString("\n")
	b.WriteString(f.code.View())
	b.WriteString("\n\n")

	b.WriteString(styles.FaintText.Render("Ctrl+S: " + f.submitLabel() + "  •  Tab: Next field  •  Esc: Cancel"))

	return m.renderModal(b.String(), formWidth, m.theme.Accent)
}
