package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiocast/catalog/internal/client"
	"github.com/studiocast/catalog/internal/models"
)

// CatalogModel renders the catalog list with a delete confirmation prompt. The
// list itself always comes from the ViewController's snapshot.
type CatalogModel struct {
	parent *AppModel

	cursor        int
	confirmDelete *models.Video // pending delete awaiting y/n
	statusMessage string
}

// NewCatalogModel creates the catalog list view.
func NewCatalogModel(parent *AppModel) *CatalogModel {
	return &CatalogModel{parent: parent}
}

func (m *CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogRefreshedMsg:
		m.clampCursor()
		return m.parent, nil

	case deleteDoneMsg:
		m.clampCursor()
		m.statusMessage = "deleted"
		return m.parent, nil

	case tea.KeyMsg:
		if m.confirmDelete != nil {
			return m.updateConfirm(msg)
		}
		switch msg.String() {
		case "q", "esc":
			m.parent.cancelApp()
			return m.parent, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.videos())-1 {
				m.cursor++
			}
		case "r":
			m.statusMessage = ""
			return m.parent, m.parent.refreshCmd()
		case "a":
			m.statusMessage = ""
			return m.parent, m.parent.send(showFormMsg{})
		case "d":
			if list := m.videos(); len(list) > 0 {
				v := list[m.cursor]
				m.confirmDelete = &v
			}
		}
	}
	return m.parent, nil
}

func (m *CatalogModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v := *m.confirmDelete
		m.confirmDelete = nil
		parent := m.parent
		return parent, func() tea.Msg {
			parent.view.DeleteVideo(parent.appContext, v.ID)
			return deleteDoneMsg{}
		}
	case "n", "N", "esc":
		m.confirmDelete = nil
	}
	return m.parent, nil
}

func (m *CatalogModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your Content") + "\n")

	if m.parent.view.State() == client.StateLoading {
		b.WriteString(dimStyle.Render("Loading videos...") + "\n")
		return b.String()
	}

	list := m.videos()
	if len(list) == 0 {
		b.WriteString(dimStyle.Render("No videos found. Upload your first video!") + "\n")
	}
	for i, v := range list {
		line := fmt.Sprintf("%s  %s", v.Title, dimStyle.Render(v.CreatedAt.Format("Jan 2, 2006")))
		if i == m.cursor {
			b.WriteString(selectedListItemStyle.Render(line) + "\n")
		} else {
			b.WriteString(listItemStyle.Render(line) + "\n")
		}
	}

	if m.confirmDelete != nil {
		b.WriteString("\n" + errorMessageStyle.Render(
			fmt.Sprintf("Delete %q? (y/n)", m.confirmDelete.Title)) + "\n")
	} else {
		if m.statusMessage != "" {
			b.WriteString("\n" + statusMessageStyle.Render(m.statusMessage) + "\n")
		}
		b.WriteString("\n" + dimStyle.Render("a: add · d: delete · r: refresh · q: quit") + "\n")
	}
	return b.String()
}

func (m *CatalogModel) videos() []models.Video {
	return m.parent.view.Videos()
}

func (m *CatalogModel) clampCursor() {
	if n := len(m.videos()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
