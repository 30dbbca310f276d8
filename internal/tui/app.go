// Package tui is the terminal shell over the catalog client controllers. It
// never reaches into controller internals: the catalog view is rendered from
// the ViewController's snapshot, and the upload key uses its one exposed
// capability, RevealSubmissionForm.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/studiocast/catalog/internal/client"
)

type currentView int

const (
	viewCatalog currentView = iota
	viewForm
)

// AppModel is the root bubbletea model; it routes messages to the active
// sub-model and owns the shared controllers.
type AppModel struct {
	view   *client.ViewController
	form   *client.FormController
	logger *zap.Logger

	catalogModel *CatalogModel
	formModel    *FormModel

	currentView currentView

	appContext context.Context
	cancelApp  context.CancelFunc
}

// NewAppModel wires the TUI to the client controllers.
func NewAppModel(view *client.ViewController, form *client.FormController, logger *zap.Logger) *AppModel {
	appCtx, cancel := context.WithCancel(context.Background())

	m := &AppModel{
		view:       view,
		form:       form,
		logger:     logger,
		appContext: appCtx,
		cancelApp:  cancel,
	}
	m.catalogModel = NewCatalogModel(m)
	m.formModel = NewFormModel(m)
	m.currentView = viewCatalog
	return m
}

// Navigation and completion messages used by the sub-models.
type showCatalogMsg struct{}
type showFormMsg struct{}
type catalogRefreshedMsg struct{}
type deleteDoneMsg struct{}
type submitResultMsg struct{ err error }

func (m *AppModel) send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// refreshCmd runs the controller's fetch off the UI loop; the view stays
// interactive while the request is outstanding.
func (m *AppModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		m.view.Refresh(m.appContext)
		return catalogRefreshedMsg{}
	}
}

func (m *AppModel) Init() tea.Cmd {
	return func() tea.Msg {
		m.view.Activate(m.appContext)
		return catalogRefreshedMsg{}
	}
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelApp()
			return m, tea.Quit
		}
	case showCatalogMsg:
		m.currentView = viewCatalog
		return m, nil
	case showFormMsg:
		m.view.RevealSubmissionForm()
		m.currentView = viewForm
		return m, m.formModel.Focus()
	case submitResultMsg:
		// The controllers already hid the form and refetched on success; the
		// shell only follows the formVisible flag.
		if !m.view.FormVisible() {
			m.currentView = viewCatalog
		}
	}

	switch m.currentView {
	case viewForm:
		return m.formModel.Update(msg)
	default:
		return m.catalogModel.Update(msg)
	}
}

func (m *AppModel) View() string {
	switch m.currentView {
	case viewForm:
		return docStyle.Render(m.formModel.View())
	default:
		return docStyle.Render(m.catalogModel.View())
	}
}
