package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"srbrowser/internal/config"
)

// SettingsModel edits the path configuration of one game profile. Saving
// activates the edited profile and reloads the unit list, mirroring the
// browser's quick-switch behaviour.
type SettingsModel struct {
	session *Session

	editMode       string
	unitFileInput  textinput.Model
	meshesDirInput textinput.Model
	viewerExeInput textinput.Model
	focusedInput   int
	width          int
	height         int
}

func NewSettingsModel(session *Session) *SettingsModel {
	unitFile := textinput.New()
	unitFile.Placeholder = `...\Maps\DATA\default.unit`
	unitFile.CharLimit = 256
	unitFile.Width = 70
	unitFile.Focus()

	meshesDir := textinput.New()
	meshesDir.Placeholder = `...\Graphics\Meshes`
	meshesDir.CharLimit = 256
	meshesDir.Width = 70

	viewerExe := textinput.New()
	viewerExe.Placeholder = "DirectXTKModelViewer.exe"
	viewerExe.CharLimit = 256
	viewerExe.Width = 70

	m := &SettingsModel{
		session:        session,
		editMode:       session.Config.Mode,
		unitFileInput:  unitFile,
		meshesDirInput: meshesDir,
		viewerExeInput: viewerExe,
	}
	m.reload()
	return m
}

func (m *SettingsModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// reload refills the inputs from the profile currently being edited.
func (m *SettingsModel) reload() {
	if _, ok := config.GameFor(m.editMode); !ok {
		m.editMode = m.session.Config.Mode
	}
	profile := m.session.Config.Profile(m.editMode)
	m.unitFileInput.SetValue(profile.UnitFile)
	m.meshesDirInput.SetValue(profile.MeshesPath)
	m.viewerExeInput.SetValue(profile.ViewerPath)
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			m.focusedInput = (m.focusedInput + 1) % 3
			m.updateInputFocus()
			return m, nil
		case "shift+tab", "up":
			m.focusedInput = (m.focusedInput - 1 + 3) % 3
			m.updateInputFocus()
			return m, nil
		case "ctrl+p":
			// Flip which profile is being edited without activating it.
			if m.editMode == config.ModeSRU {
				m.editMode = config.ModeSR2030
			} else {
				m.editMode = config.ModeSRU
			}
			m.reload()
			return m, nil
		case "enter":
			return m, m.save()
		case "esc":
			return m, ChangeScreen(BrowserScreen)
		}

		switch m.focusedInput {
		case 0:
			m.unitFileInput, cmd = m.unitFileInput.Update(msg)
		case 1:
			m.meshesDirInput, cmd = m.meshesDirInput.Update(msg)
		case 2:
			m.viewerExeInput, cmd = m.viewerExeInput.Update(msg)
		}
	}

	return m, cmd
}

func (m *SettingsModel) updateInputFocus() {
	inputs := []*textinput.Model{&m.unitFileInput, &m.meshesDirInput, &m.viewerExeInput}
	for i, input := range inputs {
		if i == m.focusedInput {
			input.Focus()
		} else {
			input.Blur()
		}
	}
}

// save persists the edited profile, makes it the active mode and drops
// back to the browser with a fresh unit list.
func (m *SettingsModel) save() tea.Cmd {
	m.session.Config.SetProfile(m.editMode, config.Profile{
		UnitFile:   strings.TrimSpace(m.unitFileInput.Value()),
		MeshesPath: strings.TrimSpace(m.meshesDirInput.Value()),
		ViewerPath: strings.TrimSpace(m.viewerExeInput.Value()),
	})

	if err := m.session.SwitchMode(m.editMode); err != nil {
		// Paths are saved either way; surface the load problem and stay
		// here so the user can fix the unit file path.
		return ShowError(err)
	}
	return ChangeScreen(BrowserScreen)
}

func (m *SettingsModel) View() string {
	game, _ := config.GameFor(m.editMode)
	title := titleStyle.Render("⚙️  Settings — editing " + game.Name)

	form := panelStyle.Render(
		labelStyle.Render("Unit File:") + "\n" + m.unitFileInput.View() + "\n\n" +
			labelStyle.Render("Meshes Dir:") + "\n" + m.meshesDirInput.View() + "\n\n" +
			labelStyle.Render("Viewer Exe:") + "\n" + m.viewerExeInput.View(),
	)

	help := helpStyle.Render("Tab/Shift+Tab: navigate • Ctrl+P: edit other profile • Enter: save & load • Esc: back to browser")

	return lipgloss.JoinVertical(lipgloss.Left, title, form, help)
}
