// Package tui renders a live hydrograph while a simulation runs.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/mkuiper/streamsim/internal/hydro"
	"github.com/mkuiper/streamsim/internal/sim"
)

const (
	graphWidth      = 80
	graphHeight     = 12
	historyCapacity = 600
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps the simulation on every frame and keeps a rolling discharge
// history for the hydrograph panel.
type Model struct {
	river        *hydro.RiverModel
	integrator   sim.Integrator
	source       sim.ForcingSource
	state        sim.State
	t, dt        float64
	duration     float64
	stepsPerTick int
	fps          int
	running      bool
	done         bool
	history      []float64
}

func NewModel(river *hydro.RiverModel, integ sim.Integrator, source sim.ForcingSource, x0 sim.State, dt, duration float64, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	stepsPerTick := int(1.0 / (dt * float64(fps)) * 5)
	if stepsPerTick < 1 {
		stepsPerTick = 1
	}
	return Model{
		river:        river,
		integrator:   integ,
		source:       source,
		state:        x0.Clone(),
		dt:           dt,
		duration:     duration,
		stepsPerTick: stepsPerTick,
		fps:          fps,
		running:      true,
		history:      make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.state = make(sim.State, hydro.NumStates)
			m.t = 0
			m.done = false
			m.history = m.history[:0]
		}
		return m, nil

	case TickMsg:
		if m.running && !m.done {
			for i := 0; i < m.stepsPerTick; i++ {
				u := m.source.At(m.t)
				m.state = m.integrator.Step(m.river, m.state, u, m.t, m.dt)
				m.t += m.dt

				if m.t >= m.duration || !m.state.IsValid() {
					m.done = true
					break
				}
			}

			m.history = append(m.history, m.river.Discharge(m.state))
			if len(m.history) > historyCapacity {
				m.history = m.history[len(m.history)-historyCapacity:]
			}
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("streamsim live hydrograph"))
	b.WriteString("\n")

	rows := []struct {
		label string
		value string
	}{
		{"day", fmt.Sprintf("%.2f / %.0f", m.t, m.duration)},
		{"interception", fmt.Sprintf("%.3f", m.state[hydro.StateInterception])},
		{"unsaturated", fmt.Sprintf("%.3f", m.state[hydro.StateUnsaturated])},
		{"slow store", fmt.Sprintf("%.3f", m.state[hydro.StateSlow])},
		{"fast store", fmt.Sprintf("%.3f", m.state[hydro.StateFast])},
		{"discharge", fmt.Sprintf("%.4f", m.river.Discharge(m.state))},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}

	if len(m.history) > 1 {
		window := m.history
		if len(window) > graphWidth {
			window = window[len(window)-graphWidth:]
		}
		graph := asciigraph.Plot(window,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("discharge"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	status := "running"
	if !m.running {
		status = "paused"
	}
	if m.done {
		status = "finished"
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("[%s]  space pause  r reset  q quit", status)))
	b.WriteString("\n")

	return b.String()
}
