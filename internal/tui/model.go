package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Screen int

const (
	BrowserScreen Screen = iota
	SettingsScreen
)

// viewerTickInterval is how often the viewer count is refreshed so the
// display follows viewers the user closed manually.
const viewerTickInterval = 2 * time.Second

type Model struct {
	session       *Session
	currentScreen Screen
	browserModel  *BrowserModel
	settingsModel *SettingsModel
	err           error
	quitting      bool
	width         int
	height        int
}

func NewModel(session *Session) Model {
	return Model{
		session:       session,
		currentScreen: BrowserScreen,
		browserModel:  NewBrowserModel(session),
		settingsModel: NewSettingsModel(session),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.browserModel.Init(), viewerTick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.browserModel.SetSize(msg.Width, msg.Height)
		m.settingsModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.session.Close()
			m.quitting = true
			return m, tea.Quit
		case "q":
			// Only quit from the browser list; settings and text inputs
			// need the letter.
			if m.currentScreen == BrowserScreen && !m.browserModel.typing() {
				m.session.Close()
				m.quitting = true
				return m, tea.Quit
			}
		}

	case ViewerTickMsg:
		m.browserModel.refreshViewerCount()
		return m, viewerTick()

	case ScreenChangeMsg:
		m.currentScreen = msg.Screen
		if msg.Screen == BrowserScreen {
			m.browserModel.refresh()
		} else {
			m.settingsModel.reload()
		}
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	switch m.currentScreen {
	case BrowserScreen:
		newBrowser, cmd := m.browserModel.Update(msg)
		m.browserModel = newBrowser.(*BrowserModel)
		return m, cmd
	case SettingsScreen:
		newSettings, cmd := m.settingsModel.Update(msg)
		m.settingsModel = newSettings.(*SettingsModel)
		return m, cmd
	}

	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return "Closed all viewers. Happy modding! 👋\n"
	}

	var content string
	switch m.currentScreen {
	case BrowserScreen:
		content = m.browserModel.View()
	case SettingsScreen:
		content = m.settingsModel.View()
	}

	if m.err != nil {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true).
			Margin(1, 0)
		content += errStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	return content
}

type ScreenChangeMsg struct {
	Screen Screen
}

type ErrorMsg struct {
	Err error
}

// ViewerTickMsg drives the periodic poll-and-prune of viewer processes.
type ViewerTickMsg struct{}

func ChangeScreen(screen Screen) tea.Cmd {
	return func() tea.Msg {
		return ScreenChangeMsg{Screen: screen}
	}
}

func ShowError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

func viewerTick() tea.Cmd {
	return tea.Tick(viewerTickInterval, func(time.Time) tea.Msg {
		return ViewerTickMsg{}
	})
}
