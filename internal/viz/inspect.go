package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"sphlab/internal/hydro"
	"sphlab/internal/snapshot"
	"sphlab/internal/units"
)

var recordInfo = map[string]string{
	"units":     "internal unit system",
	"viscosity": "artificial viscosity",
	"diffusion": "thermal diffusion",
	"mhd":       "magnetohydrodynamics",
}

type screen int

const (
	screenRecords screen = iota
	screenAttrs
)

type model struct {
	screen   screen
	cursor   int
	entries  []string
	selected string

	source   string
	resolved *hydro.Props
	mock     *hydro.Props
	us       *units.System
	showMock bool

	width  int
	height int
}

// New builds the inspector over an already-resolved Props. The mock
// counterpart is derived with the same capabilities, so the M key can
// flip between the two views.
func New(source string, resolved *hydro.Props, us *units.System) tea.Model {
	var opts []hydro.Option
	if resolved.MHD != nil {
		opts = append(opts, hydro.WithMHD())
	}

	entries := []string{"units"}
	for _, mod := range resolved.Modules() {
		entries = append(entries, mod.Name())
	}

	return model{
		screen:   screenRecords,
		entries:  entries,
		source:   source,
		resolved: resolved,
		mock:     hydro.Mock(opts...),
		us:       us,
		width:    80,
		height:   24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "m":
		m.showMock = !m.showMock
		return m, nil
	}

	switch m.screen {
	case screenRecords:
		return m.recordsKey(msg)
	case screenAttrs:
		return m.attrsKey(msg)
	}
	return m, nil
}

func (m model) recordsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.entries[m.cursor]
		m.screen = screenAttrs
	}
	return m, nil
}

func (m model) attrsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.screen = screenRecords
	}
	return m, nil
}

// attrs exports the selected record into a fresh in-memory group and
// returns its attributes. A fresh group cannot collide on names, so
// the write error is structurally unreachable.
func (m model) attrs() []snapshot.Attr {
	g := snapshot.NewMemGroup()

	if m.selected == "units" {
		us := m.us
		if m.showMock {
			us = units.CGS()
		}
		_ = us.Export(g)
		return g.Attrs()
	}

	props := m.resolved
	if m.showMock {
		props = m.mock
	}
	for _, mod := range props.Modules() {
		if mod.Name() == m.selected {
			_ = mod.Export(g)
			break
		}
	}
	return g.Attrs()
}

func (m model) View() string {
	switch m.screen {
	case screenRecords:
		return m.viewRecords()
	case screenAttrs:
		return m.viewAttrs()
	}
	return ""
}

func (m model) statusLine() string {
	mode := green.Render("resolved")
	if m.showMock {
		mode = yellow.Render("mock")
	}
	return "      " + dim.Render(m.source) + "  " + mode + "\n"
}

func (m model) viewRecords() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("s p h l a b") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	for i, name := range m.entries {
		desc := recordInfo[name]
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-14s", name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-14s", name)) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter open   m mock   q quit") + "\n")

	return b.String()
}

func (m model) viewAttrs() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.selected) + "  " + dim.Render(recordInfo[m.selected]) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 46)) + "\n\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	attrs := m.attrs()
	if len(attrs) == 0 {
		b.WriteString("        " + dimmer.Render("no attributes") + "\n")
	}
	for _, a := range attrs {
		b.WriteString("        " + white.Render(fmt.Sprintf("%-36s", a.Name)) + magenta.Render(a.Display()) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      m mock   esc back   ctrl+c quit") + "\n")

	return b.String()
}
