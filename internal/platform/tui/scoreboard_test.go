package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tower-rush/internal/storage"
)

func scoreboardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(storage.MemoryPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	for _, r := range []storage.Run{
		{Player: "alice", Score: 120, Floor: 6},
		{Player: "bob", Score: 300, Floor: 9},
		{Player: "alice", Score: 75, Floor: 4},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	return store
}

func switchView(m ScoreboardModel) ScoreboardModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	return next.(ScoreboardModel)
}

func TestScoreboardViews(t *testing.T) {
	tests := []struct {
		name   string
		player string
		views  []scoreboardView
		counts []int
	}{
		{"without player", "", []scoreboardView{viewTop, viewRecent, viewTop}, []int{3, 3, 3}},
		{"with player", "alice", []scoreboardView{viewTop, viewRecent, viewPlayer, viewTop}, []int{3, 3, 2, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewScoreboardModel(scoreboardStore(t), 100, 30, tc.player)
			for i, want := range tc.views {
				if i > 0 {
					m = switchView(m)
				}
				if m.view != want {
					t.Fatalf("step %d: view = %d, expected %d", i, m.view, want)
				}
				if len(m.runs) != tc.counts[i] {
					t.Errorf("step %d: %d runs, expected %d", i, len(m.runs), tc.counts[i])
				}
			}
		})
	}
}

func TestScoreboardPlayerView(t *testing.T) {
	m := NewScoreboardModel(scoreboardStore(t), 100, 30, "alice")
	m = switchView(switchView(m))

	for _, r := range m.runs {
		if r.Player != "alice" {
			t.Errorf("player view lists %q", r.Player)
		}
	}
	if m.runs[0].Score != 120 {
		t.Errorf("best alice run first, got %d", m.runs[0].Score)
	}
	if view := m.View(); !strings.Contains(view, "RUNS BY ALICE") {
		t.Errorf("title missing from view:\n%s", view)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24, "")
	if len(m.runs) != 0 || m.loadErr != nil {
		t.Errorf("runs=%d err=%v", len(m.runs), m.loadErr)
	}
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Error("empty scoreboard should say so")
	}
}
