package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/search"
)

// DefaultInterval is the step cadence used when Config.Interval is not positive.
const DefaultInterval = 250 * time.Millisecond

// maxEvents bounds the transition log shown under the canvas.
const maxEvents = 8

// ErrGraphNil is returned by New for a nil graph.
var ErrGraphNil = errors.New("tui: graph is nil")

// Config selects what the viewer runs.
type Config struct {
	Algorithm search.Algorithm
	Params    search.Params
	Interval  time.Duration
	Title     string
	// Paused starts the viewer without auto-stepping.
	Paused bool
}

// tickMsg drives auto-stepping. seq ties a tick to the chain that
// scheduled it, so pausing or restarting retires stale ticks.
type tickMsg struct {
	seq int
}

// events is the bounded transition log, filled by the agent observer.
type events struct {
	lines []string
}

func (e *events) add(line string) {
	e.lines = append(e.lines, line)
	if len(e.lines) > maxEvents {
		e.lines = e.lines[len(e.lines)-maxEvents:]
	}
}

// Model is the bubbletea model of the search viewer.
type Model struct {
	cfg   Config
	graph *core.Graph
	agent *search.Agent

	handle *search.Handle
	last   search.StepResult
	err    error

	paused bool
	seq    int
	log    *events

	keys    keymap
	help    help.Model
	spinner spinner.Model
}

// New binds the viewer to g and starts the configured search. opts are
// passed to the agent after the viewer's own observer.
func New(g *core.Graph, cfg Config, opts ...search.Option) (Model, error) {
	if g == nil {
		return Model{}, ErrGraphNil
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Title == "" {
		cfg.Title = "stepsearch"
	}

	log := &events{}
	hooks := search.Hooks{
		Transition: func(_ uuid.UUID, _ search.Algorithm, node int, from, to core.State) {
			log.add(fmt.Sprintf("node %d: %s → %s", node, from, to))
		},
	}
	agent, err := search.NewAgent(g, append([]search.Option{search.WithObserver(hooks)}, opts...)...)
	if err != nil {
		return Model{}, err
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := Model{
		cfg:     cfg,
		graph:   g,
		agent:   agent,
		paused:  cfg.Paused,
		log:     log,
		keys:    newKeymap(),
		help:    help.New(),
		spinner: s,
	}
	if err = m.start(); err != nil {
		return Model{}, err
	}

	return m, nil
}

// start aborts any in-flight search and starts a fresh one.
func (m *Model) start() error {
	if m.handle != nil {
		m.handle.Abort()
	}
	h, err := m.agent.Start(m.cfg.Algorithm, m.cfg.Params)
	if err != nil {
		return err
	}
	m.handle = h
	m.last = search.StepResult{Visited: -1, Meeting: -1}
	m.log.lines = nil
	m.log.add(fmt.Sprintf("started %s", m.cfg.Algorithm))
	m.seq++

	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if !m.paused {
		cmds = append(cmds, m.tick())
	}

	return tea.Batch(cmds...)
}

func (m Model) tick() tea.Cmd {
	seq := m.seq
	return tea.Tick(m.cfg.Interval, func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			if m.handle != nil {
				m.handle.Abort()
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.pause):
			m.paused = !m.paused
			m.seq++
			if !m.paused && !m.handle.Done() {
				return m, m.tick()
			}
			return m, nil

		case key.Matches(msg, m.keys.step):
			m.advance()
			return m, nil

		case key.Matches(msg, m.keys.restart):
			if err := m.start(); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			if !m.paused {
				return m, m.tick()
			}
			return m, nil
		}

	case tickMsg:
		if msg.seq != m.seq || m.paused || m.handle.Done() {
			return m, nil
		}
		m.advance()
		if m.handle.Done() {
			return m, nil
		}
		return m, m.tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	return m, nil
}

// advance performs one search step.
func (m *Model) advance() {
	if m.handle == nil || m.handle.Done() {
		return
	}
	m.last = m.handle.Step()
}

// Summary returns the report of the current search, zero while it runs.
func (m Model) Summary() search.Summary {
	return m.handle.Summary()
}

// View implements tea.Model.
func (m Model) View() string {
	var header strings.Builder
	header.WriteString(titleStyle.Render(m.cfg.Title))
	fmt.Fprintf(&header, "  %s", m.cfg.Algorithm)
	if l := m.cfg.Params.Limit; l > 0 {
		fmt.Fprintf(&header, " (limit %d)", l)
	}
	switch {
	case m.handle.Done():
	case m.paused:
		header.WriteString("  " + pausedStyle.Render("paused"))
	default:
		header.WriteString("  " + m.spinner.View())
	}

	sections := []string{
		header.String(),
		canvasStyle.Render(renderCanvas(m.graph)),
		legend(),
		headerStyle.Render("Nodes"),
		renderAdjacency(m.graph),
		headerStyle.Render("Events"),
		subtleStyle.Render(strings.Join(m.log.lines, "\n")),
		m.status(),
		m.help.View(m.keys),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// status is the one-line progress or result report.
func (m Model) status() string {
	if m.err != nil {
		return failStyle.Render(fmt.Sprintf("error: %v", m.err))
	}
	if !m.handle.Done() {
		return subtleStyle.Render(fmt.Sprintf("%s • step %d • %d visited",
			m.agent.Status(), m.handle.Steps(), m.agent.NodesVisited()))
	}

	sum := m.handle.Summary()
	switch {
	case sum.Found():
		line := fmt.Sprintf("success • cost %d • %d edges • %d visited • %d steps • %s",
			sum.PathCost, sum.PathEdges, sum.NodesVisited, sum.Steps, sum.Elapsed.Round(time.Millisecond))
		if sum.Meeting >= 0 {
			line += fmt.Sprintf(" • met at %d", sum.Meeting)
		}
		return okStyle.Render(line)
	case sum.Err != nil:
		return failStyle.Render(fmt.Sprintf("failed • %v • %d visited", sum.Err, sum.NodesVisited))
	default:
		return failStyle.Render(fmt.Sprintf("failed • no path • %d visited • %d steps", sum.NodesVisited, sum.Steps))
	}
}

// legend renders the state colour key.
func legend() string {
	states := []core.State{core.StateSource, core.StateGoal, core.StateVisited, core.StatePath, core.StateEmpty}
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = stateStyle(s).Render("■ " + s.String())
	}

	return strings.Join(parts, "  ")
}
