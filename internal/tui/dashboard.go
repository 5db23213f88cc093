package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/saltlab/internal/engine"
	"github.com/sadopc/saltlab/internal/store"
)

type dashboardModel struct {
	eng    *engine.Engine
	store  *store.Store
	width  int
	height int

	snap   *engine.Snapshot
	week   []store.LogEntry
	chart  barchart.Model
	now    time.Time
}

func newDashboardModel(eng *engine.Engine, s *store.Store) dashboardModel {
	return dashboardModel{
		eng:   eng,
		store: s,
		chart: barchart.New(60, 10),
		now:   time.Now(),
	}
}

func (d dashboardModel) Init() tea.Cmd {
	return d.loadData()
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

type dashboardDataMsg struct {
	snap *engine.Snapshot
	week []store.LogEntry
}

func (d dashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		snap, err := d.eng.Snapshot()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load error: %v", err), isError: true}
		}

		// Window off the snapshot's clock so the chart's "today" is
		// always the engine's, even across a rollover.
		now := snap.Now.UTC()
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		week, _ := d.store.EntriesSince(dayStart.AddDate(0, 0, -6))

		return dashboardDataMsg{snap: snap, week: week}
	}
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		d.snap = msg.snap
		d.week = msg.week
		d.buildChart()
		return d, nil

	case tickMsg:
		d.now = time.Time(msg)
		return d, nil
	}
	return d, nil
}

func (d *dashboardModel) buildChart() {
	if d.snap == nil {
		return
	}
	chartWidth := d.width - 10
	if chartWidth < 20 {
		chartWidth = 20
	}

	d.chart = barchart.New(chartWidth, 8)

	now := d.snap.Now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// Per-day intake sums over the week window.
	sums := make(map[string]float64)
	for _, e := range d.week {
		if e.Kind != store.KindWater && e.Amount > 0 {
			sums[engine.DayKey(e.OccurredAt)] += e.Amount
		}
	}

	var bars []barchart.BarData
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		grams := sums[day.Format("2006-01-02")]

		style := lipgloss.NewStyle().Foreground(colorPrimary)
		if grams == 0 {
			style = lipgloss.NewStyle().Foreground(colorSubtle)
		}
		bars = append(bars, barchart.BarData{
			Label: day.Format("Mon"),
			Values: []barchart.BarValue{
				{Name: "intake", Value: grams, Style: style},
			},
		})
	}

	d.chart.PushAll(bars)
	d.chart.Draw()
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}
	if d.snap == nil {
		return "Loading..."
	}

	contentWidth := d.width - 4

	corePanel := d.renderCorePanel(contentWidth)
	statsPanel := d.renderStatsPanel(contentWidth)
	progressPanel := d.renderProgressPanel(contentWidth)
	chartPanel := d.renderChartPanel(contentWidth)

	return lipgloss.JoinVertical(lipgloss.Left, corePanel, statsPanel, progressPanel, chartPanel)
}

func (d dashboardModel) renderCorePanel(w int) string {
	report := d.snap.Status()
	stateColor := lipgloss.Color(report.Color)

	stateLine := coreScoreStyle.Width(w - 6).Foreground(stateColor).
		Render(strings.ToUpper(report.Status.String()))
	messageLine := coreMessageStyle.Width(w - 6).Foreground(stateColor).
		Render(report.Message)

	scoreLine := mutedStyle.Width(w - 6).Align(lipgloss.Center).
		Render(fmt.Sprintf("score %.0f", report.Score))
	if report.Status == engine.StatusOverheat {
		scoreLine = errorStyle.Width(w - 6).Align(lipgloss.Center).Render("dietary violation detected")
	}

	content := lipgloss.JoinVertical(lipgloss.Center, stateLine, messageLine, scoreLine)

	panel := panelStyle
	if report.Status == engine.StatusBurning || report.Status == engine.StatusOverheat {
		panel = activePanelStyle.BorderForeground(stateColor)
	}
	return panel.Width(w).Render(content)
}

func (d dashboardModel) renderStatsPanel(w int) string {
	intake := d.snap.IntakeToday()
	goal := d.snap.Goal()
	percent := intake / goal * 100

	goalStr := fmt.Sprintf("%s / %s (%.0f%%)", formatGrams(intake), formatGrams(goal), percent)
	if intake >= goal {
		goalStr = successStyle.Render(goalStr + "  ✓")
	} else {
		goalStr = highlightStyle.Render(goalStr)
	}

	fasting := mutedStyle.Render("no meal recorded")
	if d.snap.Daily.FastingStartedAt != nil {
		elapsed := d.now.Sub(*d.snap.Daily.FastingStartedAt)
		if elapsed < 0 {
			elapsed = 0
		}
		fasting = highlightStyle.Render(formatClock(elapsed))
		if elapsed >= 16*time.Hour {
			fasting = successStyle.Render(formatClock(elapsed) + "  ⏳")
		}
	}

	condition := mutedStyle.Render("unset")
	if d.snap.Daily.ConditionScore > 0 {
		condition = highlightStyle.Render(strings.Repeat("★", d.snap.Daily.ConditionScore))
	}

	rows := []string{
		titleStyle.Render("Today"),
		fmt.Sprintf("  %-12s %s", "Salt", goalStr),
		fmt.Sprintf("  %-12s %s", "Water", highlightStyle.Render(fmt.Sprintf("%dml", d.snap.WaterML))),
		fmt.Sprintf("  %-12s %s", "Purity", renderPurity(d.snap.Daily.Purity)),
		fmt.Sprintf("  %-12s %s", "Fasting", fasting),
		fmt.Sprintf("  %-12s %s", "Condition", condition),
		fmt.Sprintf("  %-12s %s", "Streak", accentStyle.Render(fmt.Sprintf("%d days 🔥", d.snap.Streak()))),
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func renderPurity(p string) string {
	switch p {
	case store.PurityClean:
		return successStyle.Render("clean")
	case store.PuritySafe:
		return warningStyle.Render("safe")
	case store.PurityDirty:
		return errorStyle.Render("dirty")
	default:
		return mutedStyle.Render("none")
	}
}

func (d dashboardModel) renderProgressPanel(w int) string {
	p := d.snap.Profile

	header := fmt.Sprintf("%s  %s",
		titleStyle.Render(p.DisplayName),
		mutedStyle.Render(fmt.Sprintf("Lv.%d %s", p.Level, p.Title)),
	)

	points := highlightStyle.Render(fmt.Sprintf("%d RP", p.RewardPoints))
	next := engine.PointsToNextLevel(p.RewardPoints)
	nextStr := mutedStyle.Render("max level")
	if next > 0 {
		nextStr = mutedStyle.Render(fmt.Sprintf("%d RP to next level", next))
	}

	rows := []string{
		header,
		fmt.Sprintf("  %s  %s", points, nextStr),
	}
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderChartPanel(w int) string {
	title := titleStyle.Render("Last 7 Days")
	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", d.chart.View()),
	)
}
