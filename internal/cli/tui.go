package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	dashLabelStyle = lipgloss.NewStyle().Foreground(colorGray).Width(18)
	dashValueStyle = lipgloss.NewStyle().Foreground(colorWhite)
	dashBarStyle   = lipgloss.NewStyle().Foreground(colorCyan)
	dashWarnStyle  = lipgloss.NewStyle().Foreground(colorYellow)
)

// frameTickMsg paces the dashboard; each tick advances one simulated frame.
type frameTickMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

// dashboardModel is the bubbletea model for simulate --watch. It owns the
// simulation and advances it one frame per tick, so quitting stops the run
// cleanly at a frame boundary.
type dashboardModel struct {
	sim    *simulation
	budget int
}

func newDashboardModel(sim *simulation, budget int) dashboardModel {
	return dashboardModel{sim: sim, budget: budget}
}

func (m dashboardModel) Init() tea.Cmd {
	return frameTick()
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case frameTickMsg:
		if m.sim.frame >= m.budget {
			return m, tea.Quit
		}
		m.sim.Step()
		return m, frameTick()
	}
	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("depscape simulate"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("q quit"))
	b.WriteString("\n\n")

	metrics := m.sim.mgr.Metrics()
	cfg := m.sim.mgr.Config()
	avg := m.sim.mgr.AverageFPS()

	row := func(label, value string) {
		b.WriteString(dashLabelStyle.Render(label) + " " + dashValueStyle.Render(value) + "\n")
	}

	row("frame", fmt.Sprintf("%d / %d", m.sim.frame, m.budget))
	row("fps", fmt.Sprintf("%.1f", metrics.FPS))

	avgStr := fmt.Sprintf("%.1f", avg)
	if avg > 0 && avg < cfg.PerformanceTarget*0.8 {
		avgStr = dashWarnStyle.Render(avgStr + " (below target)")
	}
	row("avg fps", avgStr)

	row("rendered", fmt.Sprintf("%d", metrics.RenderCount))
	row("culled", fmt.Sprintf("%d", metrics.CulledCount))
	row("render distance", fmt.Sprintf("%.1f", cfg.MaxRenderDistance))
	row("frame time", fmt.Sprintf("%.2f ms", metrics.FrameTime))

	b.WriteString("\n")
	b.WriteString(renderBar(metrics.RenderCount, metrics.RenderCount+metrics.CulledCount))
	b.WriteString("\n")

	return b.String()
}

// renderBar draws a proportional rendered-vs-culled bar.
func renderBar(rendered, total int) string {
	const width = 40
	if total == 0 {
		return StyleDim.Render(strings.Repeat("░", width))
	}
	filled := rendered * width / total
	return dashBarStyle.Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", width-filled))
}
