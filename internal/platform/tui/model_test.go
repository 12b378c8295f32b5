package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/goat-climb/internal/climb"
	"github.com/vovakirdan/goat-climb/internal/core"
	"github.com/vovakirdan/goat-climb/internal/storage"
)

// edgeRand places every generated platform and spawn at the left margin,
// away from the goat's column.
type edgeRand struct{}

func (edgeRand) Float64() float64 { return 0 }

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	game := climb.New(climb.WithRand(climb.NewRand(1)))
	return NewModel(game, core.DefaultConfig(), opts)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelStartsOnConfirm(t *testing.T) {
	m := newTestModel(t, Options{})

	m = update(t, m, TickMsg{})
	if m.game.Mode() != core.ModeNotStarted {
		t.Fatalf("game started without input")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game.Mode() != core.ModeRunning {
		t.Fatalf("Mode() = %v after enter, want running", m.game.Mode())
	}
}

func TestModelHeldSteering(t *testing.T) {
	m := newTestModel(t, Options{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = update(t, m, runeKey('a'))
	m = update(t, m, TickMsg{})
	if vx := m.game.World().Character.VX; vx >= 0 {
		t.Fatalf("VX = %v after holding left, want negative", vx)
	}

	// Without auto-repeat the hold expires.
	for i := 0; i < m.game.Config().Input.HoldTicks(m.config.TickRate)+1; i++ {
		m = update(t, m, TickMsg{})
	}
	if m.held.Held(core.ActionLeft) {
		t.Error("left still held after the hold expired")
	}
}

func TestModelRecordsRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := climb.New(climb.WithRand(edgeRand{}), climb.WithStore(storage.NewBestScore(store, climb.ID)))
	m := NewModel(game, core.DefaultConfig(), Options{Store: store})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	w := game.World()
	w.Platforms = w.Platforms[:0]
	w.Score.Value = 8

	for i := 0; i < 1000 && game.Mode() != core.ModeEnded; i++ {
		m = update(t, m, TickMsg{})
	}
	if game.Mode() != core.ModeEnded {
		t.Fatal("run did not end")
	}

	runs, err := store.TopScores(climb.ID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 8 || runs[0].Reason != "fell" {
		t.Errorf("runs = %+v, want one fell run of 8", runs)
	}
	if best, _ := store.LoadBest(climb.ID); best != 8 {
		t.Errorf("LoadBest() = %d, want 8", best)
	}

	m = update(t, m, runeKey('r'))
	if game.Mode() != core.ModeRunning {
		t.Errorf("Mode() = %v after restart, want running", game.Mode())
	}
}

func TestModelReloadsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "climb.yaml")
	if err := os.WriteFile(path, []byte("world:\n  initial_platforms: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	m := newTestModel(t, Options{})
	m = update(t, m, ConfigChangedMsg{Path: path})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := len(m.game.World().Platforms); got != 7 {
		t.Errorf("len(Platforms) = %d, want 7 after reload", got)
	}
}

func TestModelIgnoresBrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "climb.yaml")
	if err := os.WriteFile(path, []byte("world: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	m := newTestModel(t, Options{})
	m = update(t, m, ConfigChangedMsg{Path: path})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := len(m.game.World().Platforms); got != 25 {
		t.Errorf("len(Platforms) = %d, want default 25", got)
	}
}

func TestModelKeepsConfigOnEmptyReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "climb.yaml")
	if err := os.WriteFile(path, []byte("world:\n  initial_platforms: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	m := newTestModel(t, Options{})
	m = update(t, m, ConfigChangedMsg{Path: path})
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	m = update(t, m, ConfigChangedMsg{Path: path})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := len(m.game.World().Platforms); got != 7 {
		t.Errorf("len(Platforms) = %d, want 7 from the last good config", got)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, Options{})
	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	view := m.View()
	if !strings.Contains(view, "Press Enter or Space to start") {
		t.Errorf("title screen missing from view")
	}
	if !strings.Contains(view, "quit") {
		t.Errorf("help line missing from view")
	}

	m = update(t, m, runeKey('q'))
	if m.View() != "" {
		t.Error("view not cleared after quit")
	}
}

func TestModelResizeToZeroHeight(t *testing.T) {
	m := newTestModel(t, Options{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	for _, h := range []int{0, 1} {
		m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: h})
		if m.screen.Height() != 0 {
			t.Errorf("screen height = %d for terminal height %d, want 0", m.screen.Height(), h)
		}
		m = update(t, m, TickMsg{})
		_ = m.View()
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.screen.Height() != 23 {
		t.Errorf("screen height = %d after growing back, want 23", m.screen.Height())
	}
}

func TestNewModelWithoutRows(t *testing.T) {
	game := climb.New(climb.WithRand(climb.NewRand(1)))
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 0, TickRate: 60}, Options{})
	if m.screen.Height() != 0 {
		t.Errorf("screen height = %d, want 0", m.screen.Height())
	}
	_ = m.View()
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "goat", core.ColorWheat)
	s.DrawText(0, 1, "climb")

	out := RenderScreen(s)
	if !strings.Contains(out, "goat") || !strings.Contains(out, "climb") {
		t.Errorf("RenderScreen() = %q", out)
	}
	if lines := strings.Count(out, "\n"); lines != 1 {
		t.Errorf("RenderScreen() has %d newlines, want 1", lines)
	}
}
