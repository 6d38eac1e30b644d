package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"srbrowser/internal/assets"
	"srbrowser/internal/models"
	"srbrowser/internal/units"
)

type browserState int

const (
	browserListState browserState = iota
	browserSearchState
	browserPicnumState
	browserRegionState
	browserCustomRegionState
)

// maxSharedShown caps the shared-mesh list in the details pane.
const maxSharedShown = 10

var categories = []struct {
	Label    string
	Category models.Category
}{
	{"All", ""},
	{"Land", models.CategoryLand},
	{"Air", models.CategoryAir},
	{"Naval", models.CategoryNaval},
}

type BrowserModel struct {
	session *Session
	state   browserState

	searchInput textinput.Model
	picnumInput textinput.Model
	customInput textinput.Model

	categoryIdx  int
	sortMode     units.SortMode
	regionIdx    int // 0 = all, 1..n = region table entry, n+1 = custom
	customRegion string
	regionCursor int
	picnum       *int

	visible []models.Unit
	cursor  int

	mesh        assets.MeshResult
	textures    []string
	texturesErr error
	shared      []models.Unit

	viewerCount int
	status      string
	width       int
	height      int
}

func NewBrowserModel(session *Session) *BrowserModel {
	search := textinput.New()
	search.Placeholder = "unit name or ID"
	search.CharLimit = 64

	picnum := textinput.New()
	picnum.Placeholder = "e.g. 450"
	picnum.CharLimit = 6

	custom := textinput.New()
	custom.Placeholder = "region code(s), case-sensitive"
	custom.CharLimit = 8

	m := &BrowserModel{
		session:     session,
		state:       browserListState,
		searchInput: search,
		picnumInput: picnum,
		customInput: custom,
	}
	m.refresh()
	return m
}

func (m *BrowserModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *BrowserModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *BrowserModel) typing() bool {
	return m.state != browserListState
}

// filter assembles the conjunctive filter from the current UI state.
func (m *BrowserModel) filter() units.Filter {
	f := units.Filter{
		Category: categories[m.categoryIdx].Category,
		Query:    strings.TrimSpace(m.searchInput.Value()),
		Picnum:   m.picnum,
	}
	regions := m.session.Game.Regions
	switch {
	case m.regionIdx == 0:
		// all regions
	case m.regionIdx <= len(regions):
		f.Region = regions[m.regionIdx-1].Code
	default:
		f.Region = m.customRegion
	}
	return f
}

// refresh recomputes the visible list from the full unit set and
// refreshes the details pane for the selected row.
func (m *BrowserModel) refresh() {
	m.visible = m.filter().Apply(m.session.Units)
	units.Sort(m.visible, m.sortMode)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.updateDetails()
}

func (m *BrowserModel) updateDetails() {
	m.mesh = assets.MeshResult{}
	m.textures = nil
	m.texturesErr = nil
	m.shared = nil
	if len(m.visible) == 0 {
		return
	}

	u := m.visible[m.cursor]
	profile := m.session.Config.Active()
	game := m.session.Game

	m.mesh = assets.ResolveMesh(profile.MeshesPath, u.Picnum, game.PrimaryExt, game.SecondaryExt)
	m.textures, m.texturesErr = assets.FindTextures(profile.MeshesPath, u.Picnum)
	m.shared = assets.SharedBy(m.session.Units, u.Picnum, u.ID)
}

func (m *BrowserModel) refreshViewerCount() {
	m.viewerCount = m.session.Viewers.Prune()
}

func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case browserListState:
			return m.updateListState(msg)
		case browserSearchState:
			return m.updateSearchState(msg)
		case browserPicnumState:
			return m.updatePicnumState(msg)
		case browserRegionState:
			return m.updateRegionState(msg)
		case browserCustomRegionState:
			return m.updateCustomRegionState(msg)
		}
	}
	return m, nil
}

func (m *BrowserModel) updateListState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.updateDetails()
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
			m.updateDetails()
		}
	case "pgup":
		m.cursor -= m.listHeight()
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.updateDetails()
	case "pgdown":
		m.cursor += m.listHeight()
		if m.cursor > len(m.visible)-1 {
			m.cursor = len(m.visible) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.updateDetails()
	case "/":
		m.state = browserSearchState
		m.searchInput.Focus()
		return m, textinput.Blink
	case "f":
		m.state = browserPicnumState
		m.picnumInput.Focus()
		return m, textinput.Blink
	case "x":
		m.picnum = nil
		m.picnumInput.SetValue("")
		m.status = ""
		m.refresh()
	case "c":
		m.categoryIdx = (m.categoryIdx + 1) % len(categories)
		m.refresh()
	case "s":
		m.sortMode = m.sortMode.Next()
		m.refresh()
	case "g":
		m.state = browserRegionState
		m.regionCursor = m.regionIdx
	case "enter", "v":
		m.launchViewer()
	case "K":
		m.session.Viewers.KillAll()
		m.refreshViewerCount()
		m.status = "closed all viewers"
	case "r":
		if err := m.session.Reload(); err != nil {
			m.status = err.Error()
		} else {
			m.status = fmt.Sprintf("reloaded %d units", len(m.session.Units))
		}
		m.refresh()
	case "p":
		if err := m.session.SwitchMode(m.session.NextMode()); err != nil {
			m.status = err.Error()
		} else {
			m.status = "switched to " + m.session.Game.Name
		}
		m.regionIdx = 0
		m.refresh()
	case "tab":
		return m, ChangeScreen(SettingsScreen)
	}
	return m, nil
}

func (m *BrowserModel) updateSearchState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.state = browserListState
		m.searchInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *BrowserModel) updatePicnumState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = browserListState
		m.picnumInput.Blur()
		return m, nil
	case "enter":
		m.state = browserListState
		m.picnumInput.Blur()
		raw := strings.TrimSpace(m.picnumInput.Value())
		if raw == "" {
			return m, nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			m.status = fmt.Sprintf("invalid picnum %q", raw)
			return m, nil
		}
		// Reverse lookup clears the other filters so every user of the
		// mesh shows up.
		m.picnum = &n
		m.searchInput.SetValue("")
		m.categoryIdx = 0
		m.status = ""
		m.refresh()
		if len(m.visible) == 0 {
			m.status = fmt.Sprintf("picnum %d is not used by any unit", n)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.picnumInput, cmd = m.picnumInput.Update(msg)
	return m, cmd
}

func (m *BrowserModel) updateRegionState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// entries: 0 all, 1..n regions, n+1 custom
	last := len(m.session.Game.Regions) + 1
	switch msg.String() {
	case "up", "k":
		if m.regionCursor > 0 {
			m.regionCursor--
		}
	case "down", "j":
		if m.regionCursor < last {
			m.regionCursor++
		}
	case "enter":
		if m.regionCursor == last {
			m.state = browserCustomRegionState
			m.customInput.SetValue(m.customRegion)
			m.customInput.Focus()
			return m, textinput.Blink
		}
		m.regionIdx = m.regionCursor
		m.state = browserListState
		m.refresh()
	case "esc":
		m.state = browserListState
	}
	return m, nil
}

func (m *BrowserModel) updateCustomRegionState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = browserRegionState
		m.customInput.Blur()
		return m, nil
	case "enter":
		m.customInput.Blur()
		code := strings.TrimSpace(m.customInput.Value())
		if code == "" {
			m.regionIdx = 0
		} else {
			m.customRegion = code
			m.regionIdx = len(m.session.Game.Regions) + 1
		}
		m.state = browserListState
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.customInput, cmd = m.customInput.Update(msg)
	return m, cmd
}

func (m *BrowserModel) launchViewer() {
	if len(m.visible) == 0 {
		return
	}
	if m.mesh.Status == assets.MeshMissing {
		m.status = "cannot launch: " + m.mesh.Filename + " is missing"
		return
	}
	profile := m.session.Config.Active()
	if err := m.session.Viewers.Launch(profile.ViewerPath, m.mesh.Path); err != nil {
		m.status = err.Error()
		return
	}
	m.refreshViewerCount()
	m.status = ""
}

func (m *BrowserModel) listHeight() int {
	h := m.height - 14
	if h < 5 {
		h = 5
	}
	return h
}

func (m *BrowserModel) View() string {
	if m.state == browserRegionState || m.state == browserCustomRegionState {
		return m.renderRegionSelector()
	}

	title := titleStyle.Render(fmt.Sprintf("🎖  Supreme Ruler Unit Browser — %s", m.session.Game.Name))
	left := m.renderList()
	right := m.renderDetails()
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	help := helpStyle.Render("↑/↓: navigate • enter/v: launch viewer • /: search • c: category • s: sort • g: region • f: picnum • x: clear • r: reload • p: profile • K: close viewers • tab: settings • q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
}

func (m *BrowserModel) renderList() string {
	var b strings.Builder

	search := m.searchInput.View()
	if m.state != browserSearchState && strings.TrimSpace(m.searchInput.Value()) == "" {
		search = dimStyle.Render("(press / to search)")
	}
	b.WriteString(labelStyle.Render("Search: ") + search + "\n")
	b.WriteString(labelStyle.Render("Category: ") + categories[m.categoryIdx].Label +
		dimStyle.Render("  •  ") + labelStyle.Render("Sort: ") + m.sortMode.String() +
		dimStyle.Render("  •  ") + labelStyle.Render("Region: ") + m.regionLabel() + "\n")

	if m.state == browserPicnumState {
		b.WriteString(labelStyle.Render("Find by picnum: ") + m.picnumInput.View() + "\n")
	} else if m.picnum != nil {
		b.WriteString(labelStyle.Render("Picnum filter: ") + picnumStyle.Render(strconv.Itoa(*m.picnum)) +
			dimStyle.Render(" (x to clear)") + "\n")
	}
	b.WriteString("\n")

	height := m.listHeight()
	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := start + height
	if end > len(m.visible) {
		end = len(m.visible)
	}

	for i := start; i < end; i++ {
		u := m.visible[i]
		line := fmt.Sprintf("[%d] %s", u.ID, u.Name)
		if i == m.cursor {
			b.WriteString(selectedListItemStyle.Render(line))
		} else {
			b.WriteString(listItemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	if len(m.visible) == 0 {
		b.WriteString(dimStyle.Render("  no units match the current filters") + "\n")
	}

	b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("%d units • format: %s", len(m.visible), strings.ToUpper(m.session.Game.PrimaryExt))))

	return panelStyle.Width(m.leftWidth()).Render(b.String())
}

func (m *BrowserModel) renderDetails() string {
	var b strings.Builder

	if len(m.visible) == 0 {
		b.WriteString(dimStyle.Render("Select a unit"))
	} else {
		u := m.visible[m.cursor]

		b.WriteString(labelStyle.Render("Name:    ") + u.Name + "\n")
		b.WriteString(labelStyle.Render("ID:      ") + strconv.Itoa(u.ID) + "\n")
		b.WriteString(labelStyle.Render("Class:   ") + fmt.Sprintf("%d (%s)", u.Class, u.Category) + "\n")
		b.WriteString(labelStyle.Render("Picnum:  ") + picnumStyle.Render(strconv.Itoa(u.Picnum)) + "\n")
		b.WriteString(labelStyle.Render("Regions: ") + regionStyle.Render(displayRegions(u)) + "\n")
		b.WriteString(labelStyle.Render("Mesh:    ") + m.mesh.Filename + "\n\n")

		b.WriteString(m.renderMeshStatus() + "\n\n")

		b.WriteString(labelStyle.Render("Textures:") + "\n")
		switch {
		case m.texturesErr != nil:
			b.WriteString(warningStyle.Render(m.texturesErr.Error()) + "\n")
		case len(m.textures) == 0:
			b.WriteString(dimStyle.Render(fmt.Sprintf("no textures found for %s.*", assets.MeshStem(u.Picnum))) + "\n")
		default:
			for _, tex := range m.textures {
				b.WriteString("  ✅ " + tex + "\n")
			}
		}

		if len(m.shared) > 0 {
			b.WriteString("\n" + labelStyle.Render(fmt.Sprintf("🔗 Shared mesh (%d other units):", len(m.shared))) + "\n")
			for i, s := range m.shared {
				if i == maxSharedShown {
					b.WriteString(dimStyle.Render(fmt.Sprintf("  ... and %d more", len(m.shared)-maxSharedShown)) + "\n")
					break
				}
				b.WriteString(fmt.Sprintf("  • [%d] %s\n", s.ID, s.Name))
			}
		}
	}

	b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("Viewers open: %d", m.viewerCount)))
	if m.status != "" {
		b.WriteString("\n" + warningStyle.Render(m.status))
	}

	return panelStyle.Width(m.rightWidth()).Render(b.String())
}

func (m *BrowserModel) renderMeshStatus() string {
	switch m.mesh.Status {
	case assets.MeshExact:
		return successStyle.Render("✅ " + m.mesh.Status.String())
	case assets.MeshAlternate:
		return warningStyle.Render("⚠️  " + m.mesh.Status.String())
	default:
		return errorStyle.Render("❌ " + m.mesh.Status.String())
	}
}

func (m *BrowserModel) renderRegionSelector() string {
	title := titleStyle.Render("🌍 Region Filter — " + m.session.Game.Name)

	entries := make([]string, 0, len(m.session.Game.Regions)+2)
	entries = append(entries, "All Regions")
	for _, r := range m.session.Game.Regions {
		if r.Code == "*" {
			entries = append(entries, "*/@ ("+r.Label+")")
			continue
		}
		entries = append(entries, r.Code+" ("+r.Label+")")
	}
	entries = append(entries, "Custom...")

	var b strings.Builder
	if m.state == browserCustomRegionState {
		b.WriteString(labelStyle.Render("Custom region: ") + m.customInput.View() + "\n\n")
	}

	height := m.listHeight() + 6
	start := 0
	if m.regionCursor >= height {
		start = m.regionCursor - height + 1
	}
	end := start + height
	if end > len(entries) {
		end = len(entries)
	}
	for i := start; i < end; i++ {
		if i == m.regionCursor {
			b.WriteString(selectedListItemStyle.Render(entries[i]))
		} else {
			b.WriteString(listItemStyle.Render(entries[i]))
		}
		b.WriteString("\n")
	}

	help := helpStyle.Render("↑/↓: navigate • enter: select • esc: cancel")
	return lipgloss.JoinVertical(lipgloss.Left, title, b.String(), help)
}

func (m *BrowserModel) regionLabel() string {
	regions := m.session.Game.Regions
	switch {
	case m.regionIdx == 0:
		return "All"
	case m.regionIdx <= len(regions):
		return regions[m.regionIdx-1].Code
	default:
		return m.customRegion
	}
}

func (m *BrowserModel) leftWidth() int {
	w := m.width*2/5 - 4
	if w < 36 {
		w = 36
	}
	return w
}

func (m *BrowserModel) rightWidth() int {
	w := m.width*3/5 - 4
	if w < 40 {
		w = 40
	}
	return w
}

// displayRegions renders a unit's region string, collapsing the pure
// wildcard spellings into one label.
func displayRegions(u models.Unit) string {
	switch u.Regions {
	case "", "*", "@", "*@", "@*":
		return "* (Global/Export)"
	}
	return u.Regions
}
