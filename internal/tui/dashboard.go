// Package tui renders the live activity dashboard.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hourtrack/internal/core"
	"hourtrack/internal/services"
)

// styles groups the lipgloss styles for one theme.
type styles struct {
	header   lipgloss.Style
	box      lipgloss.Style
	accent   lipgloss.Style
	goalMet  lipgloss.Style
	goalOpen lipgloss.Style
	footer   lipgloss.Style
}

func newStyles(dark bool) styles {
	border := lipgloss.Color("#874BFD")
	headerBg := lipgloss.Color("#4A90E2")
	headerFg := lipgloss.Color("#FFFFFF")
	accent := lipgloss.Color("#F7DC6F")
	if !dark {
		border = lipgloss.Color("#5A56E0")
		headerBg = lipgloss.Color("#E8E8FF")
		headerFg = lipgloss.Color("#1A1A2E")
		accent = lipgloss.Color("#B8860B")
	}
	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(headerFg).
			Background(headerBg).
			Padding(0, 1).
			MarginBottom(1),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2).
			MarginBottom(1),
		accent:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		goalMet:  lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		goalOpen: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		footer:   lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second*30, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model behind the dashboard command.
type Model struct {
	tracker *services.TrackerService
	user    string
	st      styles

	today    []core.Record
	summary  core.Summary
	progress core.Progress

	width  int
	height int
}

func NewModel(tracker *services.TrackerService, user string, dark bool) Model {
	m := Model{tracker: tracker, user: user, st: newStyles(dark)}
	m.refresh()
	return m
}

func (m *Model) refresh() {
	ctx := context.Background()
	if today, err := m.tracker.Today(ctx, m.user); err == nil {
		m.today = today
	}
	if sum, err := m.tracker.Stats(ctx, m.user); err == nil {
		m.summary = sum
	}
	if prog, err := m.tracker.Progress(ctx, m.user); err == nil {
		m.progress = prog
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.refresh()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		m.refresh()
		return m, tickCmd()
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.st.header.Width(m.width).Render(
		fmt.Sprintf("Activity Dashboard - %s - %s", m.user, time.Now().Format("Jan 2, 2006 15:04")),
	)

	colWidth := m.width/2 - 3
	if colWidth < 30 {
		colWidth = 30
	}

	progressBox := m.progressBox(colWidth)
	summaryBox := m.summaryBox(colWidth)
	todayBox := m.todayBox(colWidth)

	left := lipgloss.JoinVertical(lipgloss.Left, progressBox, summaryBox)
	content := lipgloss.JoinHorizontal(lipgloss.Top, left, todayBox)

	footer := m.st.footer.Width(m.width).
		Render("q quit • r refresh • updates every 30 seconds")

	full := lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
	if h := lipgloss.Height(full); h < m.height {
		full += strings.Repeat("\n", m.height-h-1)
	}
	return full
}

func (m Model) progressBox(width int) string {
	pct := 0
	if m.progress.GoalMinutes > 0 {
		pct = (m.progress.CompletedMinutes * 100) / m.progress.GoalMinutes
	}
	barWidth := width - 10
	if barWidth < 20 {
		barWidth = 20
	}

	status := m.st.goalOpen.Render(
		fmt.Sprintf("%s remaining", core.FormatMinutes(m.progress.RemainingMinutes)))
	if m.progress.GoalMet {
		status = m.st.goalMet.Render("Goal reached!")
	}

	return m.st.box.Width(width).Render(fmt.Sprintf(
		"DAILY GOAL\n\n%s %d%%\n%s / %s\n%s",
		progressBar(pct, barWidth),
		pct,
		m.st.accent.Render(core.FormatMinutes(m.progress.CompletedMinutes)),
		core.FormatMinutes(m.progress.GoalMinutes),
		status,
	))
}

func (m Model) summaryBox(width int) string {
	return m.st.box.Width(width).Render(fmt.Sprintf(
		"ALL TIME\n\n"+
			"Activities: %d\n"+
			"Unique: %d\n"+
			"Total time: %s\n"+
			"Days logged: %d\n"+
			"Days meeting goal: %d",
		m.summary.TotalRecords,
		m.summary.UniqueActivities,
		core.FormatMinutes(m.summary.TotalMinutes),
		m.summary.DaysLogged,
		m.summary.DaysMeetingGoal,
	))
}

func (m Model) todayBox(width int) string {
	var b strings.Builder
	b.WriteString("TODAY\n\n")
	if len(m.today) == 0 {
		b.WriteString("Nothing logged yet.")
	} else {
		for _, r := range m.today {
			fmt.Fprintf(&b, "%-10s %-20s %s\n",
				r.Category, truncate(r.Activity, 20), core.FormatMinutes(r.TimeSpent))
		}
	}
	return m.st.box.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func progressBar(pct, width int) string {
	if pct > 100 {
		pct = 100
	}
	filled := (pct * width) / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Render(bar)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// Run starts the dashboard in the alternate screen until the user quits.
func Run(tracker *services.TrackerService, user string, dark bool) error {
	p := tea.NewProgram(NewModel(tracker, user, dark), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
