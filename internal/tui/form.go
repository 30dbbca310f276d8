package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiocast/catalog/internal/client"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldURL
	fieldThumbnailURL
	fieldCount
)

// FormModel collects the new-video fields and hands them to the FormController.
type FormModel struct {
	parent *AppModel

	inputs  []textinput.Model
	focused int
	errMsg  string
}

// NewFormModel creates the submission form view.
func NewFormModel(parent *AppModel) *FormModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 512
	}
	inputs[fieldTitle].Placeholder = "Title"
	inputs[fieldDescription].Placeholder = "Description (optional)"
	inputs[fieldURL].Placeholder = "Video URL"
	inputs[fieldThumbnailURL].Placeholder = "Thumbnail URL"

	return &FormModel{parent: parent, inputs: inputs}
}

// Focus resets the form to the saved controller fields and focuses the first
// input.
func (m *FormModel) Focus() tea.Cmd {
	fields := m.parent.form.Fields()
	m.inputs[fieldTitle].SetValue(fields.Title)
	m.inputs[fieldDescription].SetValue(fields.Description)
	m.inputs[fieldURL].SetValue(fields.URL)
	m.inputs[fieldThumbnailURL].SetValue(fields.ThumbnailURL)
	m.errMsg = ""
	m.focused = fieldTitle
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m.inputs[fieldTitle].Focus()
}

func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitResultMsg:
		if msg.err != nil {
			// Entered fields stay intact in the controller; just surface the
			// message so the user can retry.
			m.errMsg = msg.err.Error()
		}
		return m.parent, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m.parent, m.parent.send(showCatalogMsg{})
		case "tab", "down":
			return m.parent, m.focusField((m.focused + 1) % fieldCount)
		case "shift+tab", "up":
			return m.parent, m.focusField((m.focused + fieldCount - 1) % fieldCount)
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m.parent, cmd
}

func (m *FormModel) submit() (tea.Model, tea.Cmd) {
	if m.parent.form.Busy() {
		return m.parent, nil
	}
	m.parent.form.SetFields(client.CreateFields{
		Title:        m.inputs[fieldTitle].Value(),
		Description:  m.inputs[fieldDescription].Value(),
		URL:          m.inputs[fieldURL].Value(),
		ThumbnailURL: m.inputs[fieldThumbnailURL].Value(),
	})
	if err := m.parent.form.Validate(); err != nil {
		m.errMsg = err.Error()
		return m.parent, nil
	}
	m.errMsg = ""
	parent := m.parent
	return parent, func() tea.Msg {
		return submitResultMsg{err: parent.form.Submit(parent.appContext)}
	}
}

func (m *FormModel) focusField(i int) tea.Cmd {
	m.inputs[m.focused].Blur()
	m.focused = i
	return m.inputs[i].Focus()
}

func (m *FormModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Upload New Video") + "\n")
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View() + "\n")
	}
	if m.parent.form.Busy() {
		b.WriteString("\n" + dimStyle.Render("Publishing...") + "\n")
	} else if m.errMsg != "" {
		b.WriteString("\n" + errorMessageStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("enter: publish · tab: next field · esc: back") + "\n")
	return b.String()
}
