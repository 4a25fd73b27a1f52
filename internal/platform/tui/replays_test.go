package tui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/firerun/internal/config"
	"github.com/vovakirdan/firerun/internal/core"
	"github.com/vovakirdan/firerun/internal/games/firefighter"
	"github.com/vovakirdan/firerun/internal/storage"
)

func seededStore(t *testing.T) (*storage.Store, string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	rec := firefighter.Recording{
		Seed:    3,
		Device:  config.DeviceMobile,
		ScreenW: 80,
		ScreenH: 24,
		Frames:  120,
		Inputs: []firefighter.InputEvent{
			{Frame: 10, Action: core.ActionJump},
			{Frame: 40, Action: core.ActionSpray},
		},
	}
	id, err := store.SaveRecording(context.Background(), "firefighter_mobile", rec)
	if err != nil {
		t.Fatalf("SaveRecording() failed: %v", err)
	}
	return store, id
}

func updateReplays(t *testing.T, m ReplaysModel, msg tea.Msg) (ReplaysModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	replays, ok := next.(ReplaysModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return replays, cmd
}

func TestReplaysLists(t *testing.T) {
	store, _ := seededStore(t)
	m := NewReplaysModel(store, 120, 30)

	if len(m.runs) != 1 {
		t.Fatalf("runs = %d, expected 1", len(m.runs))
	}
	if len(m.table.Columns()) != 7 {
		t.Errorf("columns = %d, expected 7 on a wide terminal", len(m.table.Columns()))
	}
	if got := m.summary(); got != "1 runs, 0:02 played" {
		t.Errorf("summary() = %q", got)
	}
}

func TestReplaysNarrowTableDropsGame(t *testing.T) {
	store, _ := seededStore(t)
	m := NewReplaysModel(store, 70, 30)

	if len(m.table.Columns()) != 6 {
		t.Errorf("columns = %d, expected 6 on a narrow terminal", len(m.table.Columns()))
	}
	if row := m.table.Rows()[0]; row[1] != "mobile" {
		t.Errorf("second cell = %q, expected the device", row[1])
	}
}

func TestReplaysFilterByGame(t *testing.T) {
	store, _ := seededStore(t)
	m := NewReplaysModel(store, 120, 30)

	// "All games", then firefighter, firefighter_desktop, firefighter_mobile
	m, _ = updateReplays(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if len(m.runs) != 0 {
		t.Errorf("runs for %s = %d, expected 0", m.filters[m.filter].ID, len(m.runs))
	}

	m, _ = updateReplays(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = updateReplays(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.filters[m.filter].ID != "firefighter_mobile" {
		t.Fatalf("filter = %q, expected firefighter_mobile", m.filters[m.filter].ID)
	}
	if len(m.runs) != 1 {
		t.Errorf("runs = %d, expected 1", len(m.runs))
	}
}

func TestReplaysReplayAndDelete(t *testing.T) {
	store, id := seededStore(t)
	m := NewReplaysModel(store, 120, 30)

	m, cmd := updateReplays(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter did not start a replay")
	}
	done, ok := cmd().(replayDoneMsg)
	if !ok || done.err != nil {
		t.Fatalf("replay result = %+v", done)
	}
	if done.id != id || done.outcome.Ticks == 0 {
		t.Errorf("replay result = %+v", done)
	}
	m, _ = updateReplays(t, m, done)
	if m.status == "" {
		t.Error("replay outcome not shown")
	}

	m, _ = updateReplays(t, m, runeKey('d'))
	if len(m.runs) != 0 {
		t.Errorf("runs = %d after delete, expected 0", len(m.runs))
	}
	run, err := store.RunByID(context.Background(), id)
	if err != nil || run != nil {
		t.Errorf("RunByID() = %v, %v after delete", run, err)
	}
}

func TestReplaysBackAndQuit(t *testing.T) {
	m := NewReplaysModel(nil, 80, 24)

	back, _ := updateReplays(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.IsGoingBack() {
		t.Error("esc did not go back")
	}

	quit, _ := updateReplays(t, m, runeKey('q'))
	if !quit.IsQuitting() {
		t.Error("q did not quit")
	}
}
