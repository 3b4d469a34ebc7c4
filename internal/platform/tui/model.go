package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/render"
)

// Model is the Bubble Tea model driving one flappy session.
type Model struct {
	session  *flappy.Session
	screen   *core.Screen
	snapshot flappy.Snapshot
	frame    time.Duration
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	pending  core.Action // input collected since the last tick
	quitting bool
}

// NewModel creates a model for the session. frame is the tick cadence.
func NewModel(session *flappy.Session, logger *log.Logger, frame time.Duration) Model {
	snap := session.Snapshot()
	return Model{
		session:  session,
		screen:   core.NewScreen(snap.Geometry.Width, snap.Geometry.Height),
		snapshot: snap,
		frame:    frame,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.frame)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the decoded action for the next tick.
// Quit is applied at the tick boundary like any other input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.pending = core.Merge(m.pending, m.keys.Action(msg))
	return m, nil
}

// handleTick advances the session by one tick with the pending input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.session.Step(m.pending)
	m.pending = core.ActionNone
	m.snapshot = res.Snapshot
	LogEvents(m.logger, res.Snapshot.Tick, res.Events)

	if !res.Snapshot.Running {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.frame)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	render.Draw(m.screen, m.snapshot)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.warn("cannot create screenshot directory", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", flappy.ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.warn("cannot save screenshot", err)
		return
	}
	if m.logger != nil {
		m.logger.Info("screenshot saved", "path", path)
	}
}

func (m Model) warn(msg string, err error) {
	if m.logger != nil {
		m.logger.Warn(msg, "error", err)
	}
}

// View renders the last snapshot and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	render.Draw(m.screen, m.snapshot)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the session and blocks until the
// session ends.
func Run(session *flappy.Session, logger *log.Logger, frame time.Duration) error {
	p := tea.NewProgram(
		NewModel(session, logger, frame),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
