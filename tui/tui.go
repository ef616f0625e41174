// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Full-screen CRM with dashboard, contacts, pipeline, and activities
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dirmacs/dcrm/store"
)

// View represents the current page, matching the sidebar navigation.
type View int

const (
	ViewDashboard View = iota
	ViewContacts
	ViewDeals
	ViewActivities
)

// Mode represents what the current page is doing.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeDetail
	ModeEdit
	ModeSearch
	ModeConfirmDelete
)

// Model is the main bubbletea model. It owns the single store handle for
// the life of the program.
type Model struct {
	store *store.Store
	view  View
	mode  Mode

	// List cursors
	contactRow  int
	activityRow int
	pendingOnly bool

	// Pipeline board cursors
	stageCol int
	dealRow  int

	// Detail view state
	selectedID string

	// Edit view state
	formInputs []textinput.Model
	formLabels []string
	focusIndex int
	editingID  string

	// Search overlay state
	searchInput   textinput.Model
	searchResults []store.SearchResult
	searchCursor  int

	// Delete confirmation state
	deleteID    string
	deleteLabel string

	// UI state
	width  int
	height int
	status string
}

// NewModel creates the TUI model around an opened store.
func NewModel(s *store.Store) Model {
	search := textinput.New()
	search.Placeholder = "Search contacts, deals, activities..."
	search.CharLimit = 100

	return Model{
		store:       s,
		view:        ViewDashboard,
		mode:        ModeBrowse,
		searchInput: search,
		width:       80,
		height:      24,
	}
}

// Run starts the full-screen program.
func Run(s *store.Store) error {
	p := tea.NewProgram(NewModel(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	switch m.mode {
	case ModeEdit:
		return m.renderEditView()
	case ModeSearch:
		return m.renderSearchView()
	case ModeConfirmDelete:
		return m.renderConfirmDeleteView()
	case ModeDetail:
		return m.renderDetailView()
	}

	switch m.view {
	case ViewDashboard:
		return m.renderDashboard()
	case ViewContacts:
		return m.renderContactsView()
	case ViewDeals:
		return m.renderPipelineView()
	case ViewActivities:
		return m.renderActivitiesView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlay modes own the keyboard
	switch m.mode {
	case ModeEdit:
		return m.handleEditKeys(msg)
	case ModeSearch:
		return m.handleSearchKeys(msg)
	case ModeConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	case ModeDetail:
		return m.handleDetailKeys(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "1":
		m.view = ViewDashboard
		return m, nil
	case "2":
		m.view = ViewContacts
		return m, nil
	case "3":
		m.view = ViewDeals
		return m, nil
	case "4":
		m.view = ViewActivities
		return m, nil
	case "/":
		m.mode = ModeSearch
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		m.searchResults = nil
		m.searchCursor = 0
		return m, textinput.Blink
	}

	switch m.view {
	case ViewContacts:
		return m.handleContactsKeys(msg)
	case ViewDeals:
		return m.handlePipelineKeys(msg)
	case ViewActivities:
		return m.handleActivitiesKeys(msg)
	}

	return m, nil
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	statCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 2).
			MarginRight(1)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	statValueStyle = lipgloss.NewStyle().
			Bold(true)

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1).
			MarginRight(1)

	selectedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(lipgloss.Color("170")).
				PaddingLeft(1)

	cardStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

func (m Model) renderTabs() string {
	tabs := []string{"Dashboard", "Contacts", "Deals", "Activities"}
	var rendered []string

	for i, tab := range tabs {
		if View(i) == m.view {
			rendered = append(rendered, tabActiveStyle.Render(tab))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
