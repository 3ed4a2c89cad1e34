package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"sphlab/internal/hydro"
	"sphlab/internal/units"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func step(t *testing.T, m tea.Model, keys ...string) tea.Model {
	t.Helper()
	for _, k := range keys {
		m, _ = m.Update(key(k))
	}
	return m
}

func TestInspectorEntries(t *testing.T) {
	m := New("params.yml", hydro.Mock(hydro.WithMHD()), units.CGS()).(model)
	want := []string{"units", "viscosity", "diffusion", "mhd"}
	if len(m.entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(m.entries))
	}
	for i, w := range want {
		if m.entries[i] != w {
			t.Errorf("entry %d: %q, want %q", i, m.entries[i], w)
		}
	}

	plain := New("params.yml", hydro.Mock(), units.CGS()).(model)
	if len(plain.entries) != 3 {
		t.Errorf("expected 3 entries without the MHD module, got %d", len(plain.entries))
	}
}

func TestInspectorNavigation(t *testing.T) {
	m := New("params.yml", hydro.Mock(hydro.WithMHD()), units.CGS())

	m = step(t, m, "j", "j")
	if got := m.(model).cursor; got != 2 {
		t.Errorf("cursor = %d after two downs", got)
	}
	m = step(t, m, "k")
	if got := m.(model).cursor; got != 1 {
		t.Errorf("cursor = %d after up", got)
	}

	m = step(t, m, "enter")
	mm := m.(model)
	if mm.screen != screenAttrs || mm.selected != "viscosity" {
		t.Fatalf("expected the viscosity attribute screen, got screen=%d selected=%q", mm.screen, mm.selected)
	}

	if view := m.View(); !strings.Contains(view, "Alpha viscosity") {
		t.Error("attribute view does not show Alpha viscosity")
	}

	m = step(t, m, "esc")
	if got := m.(model).screen; got != screenRecords {
		t.Errorf("esc must return to the record list, screen=%d", got)
	}
}

func TestInspectorMockToggle(t *testing.T) {
	resolved := hydro.Mock(hydro.WithMHD())
	resolved.Viscosity.Alpha = 0.25

	m := New("params.yml", resolved, units.CGS())
	m = step(t, m, "j", "enter") // viscosity attrs

	if view := m.View(); !strings.Contains(view, "0.25") {
		t.Error("resolved view does not show the resolved alpha")
	}

	m = step(t, m, "m")
	if !m.(model).showMock {
		t.Fatal("m key must flip to the mock view")
	}
	if view := m.View(); !strings.Contains(view, "0.8") {
		t.Error("mock view does not show the default alpha")
	}
}

func TestInspectorQuit(t *testing.T) {
	m := New("params.yml", hydro.Mock(), units.CGS())
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q on the record list must quit")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("expected QuitMsg, got %T", msg)
	}
}
