// Package tui plays a computed torque run back in the terminal: a braille
// rendering of the linkage on the left, torque traces and run stats on the
// right.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/treedyn/internal/experiment"
)

const (
	canvasWidth  = 48
	canvasHeight = 20
	chartWindow  = 240
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(48)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps through a finished run frame by frame. It never recomputes
// dynamics; everything it shows was produced by experiment.Run.
type Model struct {
	modelName string
	lengths   []float64
	result    *experiment.Result
	frame     int
	speed     int
	playing   bool
	selected  int
	canvas    *Canvas
}

// NewModel prepares playback for a run over a planar chain whose link
// lengths set the drawing scale.
func NewModel(modelName string, lengths []float64, result *experiment.Result) Model {
	return Model{
		modelName: modelName,
		lengths:   lengths,
		result:    result,
		speed:     1,
		playing:   true,
		canvas:    NewCanvas(canvasWidth, canvasHeight),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "r":
			m.frame = 0
		case "[":
			m.playing = false
			m.frame = clampFrame(m.frame-1, len(m.result.Times))
		case "]":
			m.playing = false
			m.frame = clampFrame(m.frame+1, len(m.result.Times))
		case "tab":
			if n := m.joints(); n > 0 {
				m.selected = (m.selected + 1) % n
			}
		case "up", "k", "+", "=":
			if m.speed < 16 {
				m.speed *= 2
			}
		case "down", "j", "-", "_":
			if m.speed > 1 {
				m.speed /= 2
			}
		}
	case TickMsg:
		if m.playing && len(m.result.Times) > 0 {
			m.frame += m.speed
			if m.frame >= len(m.result.Times) {
				m.frame = 0
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) joints() int {
	if len(m.result.Torques) == 0 {
		return 0
	}
	return len(m.result.Torques[0])
}

// draw renders the chain at the current frame. Joint angles are cumulative:
// each link rotates in the vertical plane relative to its parent, with the
// zero pose pointing right and positive angles swinging upward.
func (m *Model) draw() {
	m.canvas.Clear()
	if m.frame >= len(m.result.Positions) {
		return
	}
	q := m.result.Positions[m.frame]

	total := 0.0
	for _, l := range m.lengths {
		total += l
	}
	if total == 0 {
		return
	}

	dotsW, dotsH := canvasWidth*2, canvasHeight*4
	scale := 0.45 * float64(minInt(dotsW, dotsH)) / total
	x, y := float64(dotsW)/2, float64(dotsH)/2

	m.canvas.DrawDot(int(x), int(y))
	theta := 0.0
	for i, l := range m.lengths {
		if i < len(q) {
			theta += q[i]
		}
		nx := x + l*scale*math.Cos(theta)
		ny := y + l*scale*math.Sin(theta)
		m.canvas.DrawLine(int(x), int(y), int(nx), int(ny))
		m.canvas.DrawDot(int(nx), int(ny))
		x, y = nx, ny
	}
}

func (m Model) View() string {
	if len(m.result.Times) == 0 {
		return "empty run\n"
	}

	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	frame := clampFrame(m.frame, len(m.result.Times))
	t := m.result.Times[frame]
	tau := m.result.Torques[frame]

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.modelName)) + "\n")
	status := "PLAYING"
	if !m.playing {
		status = "PAUSED"
	}
	s.WriteString(fmt.Sprintf("%s  %dx\n\n", status, m.speed))

	if chart := m.torqueChart(frame); chart != "" {
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.3fs", t)) + "\n\n")
	s.WriteString("TORQUES\n")

	peak := 1.0
	for _, row := range m.result.Torques {
		for _, v := range row {
			if math.Abs(v) > peak {
				peak = math.Abs(v)
			}
		}
	}
	for i, v := range tau {
		line := fmt.Sprintf("tau%-3d %s %8.3f", i, torqueBar(v, peak), v)
		if i == m.selected {
			s.WriteString(activeStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + valueStyle.Render(line) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("\nSP:Pause R:Restart [ ]:Step\nTab:Joint +/-:Speed Q:Quit"))
	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// torqueChart plots the selected joint's torque over a trailing window
// ending at the current frame.
func (m Model) torqueChart(frame int) string {
	if m.selected >= m.joints() {
		return ""
	}
	start := frame - chartWindow
	if start < 0 {
		start = 0
	}
	series := make([]float64, 0, frame-start+1)
	for i := start; i <= frame; i++ {
		series = append(series, m.result.Torques[i][m.selected])
	}
	if len(series) < 2 {
		return ""
	}
	caption := fmt.Sprintf("tau%d [N·m]", m.selected)
	return asciigraph.Plot(series, asciigraph.Height(5), asciigraph.Width(34), asciigraph.Caption(caption))
}

func torqueBar(v, peak float64) string {
	const half = 8
	bar := []rune(strings.Repeat("-", 2*half+1))
	bar[half] = '|'
	n := int(math.Round(v / peak * half))
	if n > 0 {
		for i := 1; i <= n; i++ {
			bar[half+i] = '='
		}
	} else {
		for i := -1; i >= n; i-- {
			bar[half+i] = '='
		}
	}
	return string(bar)
}

func clampFrame(f, n int) int {
	if f < 0 {
		return 0
	}
	if f >= n {
		return n - 1
	}
	return f
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Run launches the playback UI and blocks until the user quits.
func Run(modelName string, lengths []float64, result *experiment.Result) error {
	p := tea.NewProgram(NewModel(modelName, lengths, result), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
