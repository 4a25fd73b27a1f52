package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/firerun/internal/games/firefighter"
	"github.com/vovakirdan/firerun/internal/registry"
	"github.com/vovakirdan/firerun/internal/storage"
)

// Replay browser layout constants
const (
	maxRuns       = 200 // Max runs to load
	allGamesLabel = "All games"
)

// ReplaysKeyMap defines the key bindings for the replay browser.
type ReplaysKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Replay   key.Binding
	Delete   key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplaysKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Replay, k.Delete, k.NextGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ReplaysKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Replay, k.Delete, k.Back, k.Quit},
	}
}

// DefaultReplaysKeyMap returns default key bindings.
func DefaultReplaysKeyMap() ReplaysKeyMap {
	return ReplaysKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// replayDoneMsg carries the outcome of a background re-simulation.
type replayDoneMsg struct {
	id      string
	outcome firefighter.Outcome
	err     error
}

// ReplaysModel is the Bubble Tea model for browsing the replay log.
type ReplaysModel struct {
	filters   []registry.GameInfo // "All games" first, then every registered game
	filter    int
	store     *storage.Store
	runs      []storage.Run
	activity  map[string]*storage.GameActivity
	table     table.Model
	help      help.Model
	keys      ReplaysKeyMap
	status    string
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewReplaysModel creates a new replay browser.
func NewReplaysModel(store *storage.Store, width, height int) ReplaysModel {
	filters := append([]registry.GameInfo{{Title: allGamesLabel}}, registry.List()...)

	h := help.New()
	h.ShowAll = false

	m := ReplaysModel{
		filters: filters,
		store:   store,
		keys:    DefaultReplaysKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}

	m.table = m.createTable()
	m.loadRuns()

	return m
}

// createTable creates a new table sized to the window.
func (m *ReplaysModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 8},
		{Title: "Game", Width: 20},
		{Title: "Device", Width: 8},
		{Title: "Preset", Width: 7},
		{Title: "Length", Width: 7},
		{Title: "Inputs", Width: 7},
		{Title: "Date", Width: 12},
	}

	// Drop the game column on narrow terminals
	if m.width < 90 {
		columns = append(columns[:1], columns[2:]...)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)), // Leave room for header, status, and help
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("130")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns reloads the runs for the current filter.
func (m *ReplaysModel) loadRuns() {
	if m.store == nil {
		m.runs = nil
		m.updateTableRows()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	runs, err := m.store.RecentRuns(ctx, m.filters[m.filter].ID, maxRuns)
	if err != nil {
		m.status = "could not load runs: " + err.Error()
		runs = nil
	}
	m.runs = runs

	if activity, err := m.store.Activity(ctx); err == nil {
		m.activity = activity
	}

	m.updateTableRows()
}

// updateTableRows fills the table from the loaded runs.
func (m *ReplaysModel) updateTableRows() {
	wide := len(m.table.Columns()) == 7

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		row := table.Row{shortID(r.ID)}
		if wide {
			row = append(row, r.GameID)
		}
		preset := r.Preset
		if preset == "" {
			preset = "-"
		}
		row = append(row,
			r.Device,
			preset,
			formatFrames(r.Frames),
			fmt.Sprintf("%d", r.InputCount),
			r.CreatedAt.Format("Jan 02 15:04"),
		)
		rows[i] = row
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the replay browser.
func (m ReplaysModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay browser.
func (m ReplaysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			m.filter = (m.filter + 1) % len(m.filters)
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			m.filter--
			if m.filter < 0 {
				m.filter = len(m.filters) - 1
			}
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Replay):
			run, ok := m.selectedRun()
			if !ok {
				return m, nil
			}
			m.status = "replaying " + shortID(run.ID) + "..."
			return m, m.replayCmd(run.ID)

		case key.Matches(msg, m.keys.Delete):
			run, ok := m.selectedRun()
			if !ok {
				return m, nil
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := m.store.DeleteRun(ctx, run.ID); err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.status = "deleted " + shortID(run.ID)
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case replayDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.status = describeOutcome(msg.id, msg.outcome)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// selectedRun returns the run under the table cursor.
func (m ReplaysModel) selectedRun() (storage.Run, bool) {
	i := m.table.Cursor()
	if m.store == nil || i < 0 || i >= len(m.runs) {
		return storage.Run{}, false
	}
	return m.runs[i], true
}

// replayCmd re-simulates a run off the UI goroutine.
func (m ReplaysModel) replayCmd(id string) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		outcome, _, err := ReplayRun(ctx, store, id)
		return replayDoneMsg{id: id, outcome: outcome, err: err}
	}
}

// View renders the replay browser.
func (m ReplaysModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	// Title
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("208"))

	current := m.filters[m.filter]
	b.WriteString(titleStyle.Render(centerText("REPLAYS - "+current.Title, m.width)))
	b.WriteString("\n")

	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(dimStyle.Render(centerText(m.summary(), m.width)))
	b.WriteString("\n\n")

	// Table
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(" " + m.status)
	}
	b.WriteString("\n")

	// Help bar
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// summary describes the recorded activity for the current filter.
func (m ReplaysModel) summary() string {
	var runs int
	var frames int64
	for id, a := range m.activity {
		if f := m.filters[m.filter].ID; f != "" && f != id {
			continue
		}
		runs += a.Runs
		frames += a.TotalFrames
	}
	return fmt.Sprintf("%d runs, %s played", runs, formatFrames(int(frames)))
}

// renderTableContent renders the table or empty message.
func (m ReplaysModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nFinish a run to see it here!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ReplaysModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ReplaysModel) IsQuitting() bool {
	return m.quitting
}

// ReplayRun loads a run by ID (or unique prefix) and re-simulates it with
// the current game config.
func ReplayRun(ctx context.Context, store *storage.Store, id string) (firefighter.Outcome, *storage.Run, error) {
	fullID, err := store.ResolveID(ctx, id)
	if err != nil {
		return firefighter.Outcome{}, nil, err
	}
	if fullID == "" {
		return firefighter.Outcome{}, nil, fmt.Errorf("tui: no run %q", id)
	}

	run, err := store.RunByID(ctx, fullID)
	if err != nil {
		return firefighter.Outcome{}, nil, err
	}
	if run == nil {
		return firefighter.Outcome{}, nil, fmt.Errorf("tui: no run %q", id)
	}

	rec, err := run.Recording()
	if err != nil {
		return firefighter.Outcome{}, run, err
	}

	cfg, err := firefighter.LoadConfig()
	if err != nil {
		return firefighter.Outcome{}, run, fmt.Errorf("tui: cannot load config: %w", err)
	}

	return firefighter.Replay(rec, cfg), run, nil
}

// describeOutcome renders a one-line replay result.
func describeOutcome(id string, o firefighter.Outcome) string {
	end := "quit"
	if o.GameOver {
		end = "game over"
	}
	return fmt.Sprintf("%s: score %d (%d pts), %s, %s",
		shortID(id), o.Score/100, o.Score, formatFrames(o.Ticks), end)
}

// shortID trims a run ID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatFrames renders a tick count at 60 steps per second as m:ss.
func formatFrames(frames int) string {
	secs := frames / 60
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// RunReplays runs the replay browser.
// Returns true if user wants to go back to menu, false if quitting.
func RunReplays(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewReplaysModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ReplaysModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
