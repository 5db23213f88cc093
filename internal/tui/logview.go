package tui

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/saltlab/internal/analyze"
	"github.com/sadopc/saltlab/internal/engine"
	"github.com/sadopc/saltlab/internal/store"
)

// Quick actions mirror the one-tap log buttons: label, grams, kind.
var quickActions = []struct {
	label string
	grams float64
	kind  string
}{
	{engine.LabelSaltWater, 2.0, store.KindSalt},
	{"Capsule", 0.5, store.KindSalt},
	{"Meal", 1.5, store.KindMeal},
	{"Broth", 3.0, store.KindSalt},
}

type logPicker int

const (
	pickNone logPicker = iota
	pickExercise
	pickGrade
	pickCondition
)

type logModel struct {
	eng      *engine.Engine
	analyzer *analyze.Client
	width    int
	height   int

	entries []store.LogEntry
	cursor  int
	picker  logPicker
	pickCur int

	formActive bool
	form       *huh.Form
	scanPath   *string
}

func newLogModel(eng *engine.Engine, analyzer *analyze.Client) logModel {
	path := ""
	return logModel{
		eng:      eng,
		analyzer: analyzer,
		scanPath: &path,
	}
}

func (l *logModel) setSize(w, h int) {
	l.width = w
	l.height = h
}

type logDataMsg struct {
	entries []store.LogEntry
}

func (l logModel) refresh() tea.Cmd {
	return func() tea.Msg {
		snap, err := l.eng.Snapshot()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load error: %v", err), isError: true}
		}
		entries := snap.Entries
		if len(entries) > 50 {
			entries = entries[:50]
		}
		return logDataMsg{entries: entries}
	}
}

func (l logModel) update(msg tea.Msg) (logModel, tea.Cmd) {
	if l.formActive && l.form != nil {
		return l.updateScanForm(msg)
	}

	switch msg := msg.(type) {
	case logDataMsg:
		l.entries = msg.entries
		if l.cursor >= len(l.entries) {
			l.cursor = max(0, len(l.entries)-1)
		}
		return l, nil

	case tea.KeyMsg:
		if l.picker != pickNone {
			return l.updatePicker(msg)
		}

		switch {
		case key.Matches(msg, keys.SaltWater):
			return l, l.quickLog(0)
		case key.Matches(msg, keys.Capsule):
			return l, l.quickLog(1)
		case key.Matches(msg, keys.Meal):
			return l, l.quickLog(2)
		case key.Matches(msg, keys.Broth):
			return l, l.quickLog(3)

		case key.Matches(msg, keys.Exercise):
			l.picker = pickExercise
			l.pickCur = 0
			return l, nil
		case key.Matches(msg, keys.Grade):
			l.picker = pickGrade
			l.pickCur = 0
			return l, nil
		case key.Matches(msg, keys.Condition):
			l.picker = pickCondition
			l.pickCur = 0
			return l, nil

		case key.Matches(msg, keys.WaterUp):
			return l, l.adjustWater(500)
		case key.Matches(msg, keys.WaterDown):
			return l, l.adjustWater(-500)

		case key.Matches(msg, keys.Scan):
			return l.showScanForm()

		case key.Matches(msg, keys.Delete):
			return l, l.deleteSelected()

		case key.Matches(msg, keys.Up):
			if l.cursor > 0 {
				l.cursor--
			}
		case key.Matches(msg, keys.Down):
			if l.cursor < len(l.entries)-1 {
				l.cursor++
			}
		}
	}
	return l, nil
}

func (l logModel) quickLog(idx int) tea.Cmd {
	action := quickActions[idx]
	return func() tea.Msg {
		if _, err := l.eng.LogIntake(action.grams, action.label, action.kind); err != nil {
			return statusMsg{text: fmt.Sprintf("Log error: %v", err), isError: true}
		}
		return statusMsg{text: fmt.Sprintf("Logged %s %s", action.label, formatGrams(action.grams))}
	}
}

func (l logModel) adjustWater(deltaML int) tea.Cmd {
	return func() tea.Msg {
		total, err := l.eng.AdjustWater(deltaML)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Water error: %v", err), isError: true}
		}
		return statusMsg{text: fmt.Sprintf("Water: %dml today", total)}
	}
}

func (l logModel) deleteSelected() tea.Cmd {
	if len(l.entries) == 0 {
		return nil
	}
	entry := l.entries[l.cursor]
	return func() tea.Msg {
		if err := l.eng.RemoveEntry(entry.ID); err != nil {
			return statusMsg{text: fmt.Sprintf("Delete error: %v", err), isError: true}
		}
		return statusMsg{text: "Entry removed"}
	}
}

// --- Pickers (exercise intensity / meal grade / condition) ---

var exerciseOptions = []struct {
	intensity engine.Intensity
	label     string
}{
	{engine.IntensityLight, "🚶 Light (+0.5g burned)"},
	{engine.IntensityModerate, "🏃 Moderate (+1.0g burned)"},
	{engine.IntensityHard, "🔥 Hard (+2.0g burned)"},
}

var gradeOptions = []struct {
	grade engine.MealGrade
	label string
}{
	{engine.MealClean, "🥗 Clean — on plan"},
	{engine.MealSafe, "🙂 Safe — close enough"},
	{engine.MealDirty, "🍩 Dirty — off the rails"},
}

func (l logModel) pickerLen() int {
	switch l.picker {
	case pickExercise:
		return len(exerciseOptions)
	case pickGrade:
		return len(gradeOptions)
	case pickCondition:
		return 5
	}
	return 0
}

func (l logModel) updatePicker(msg tea.KeyMsg) (logModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if l.pickCur > 0 {
			l.pickCur--
		}
	case key.Matches(msg, keys.Down):
		if l.pickCur < l.pickerLen()-1 {
			l.pickCur++
		}
	case key.Matches(msg, keys.Enter):
		picker, choice := l.picker, l.pickCur
		l.picker = pickNone
		return l, l.applyPick(picker, choice)
	case key.Matches(msg, keys.Back):
		l.picker = pickNone
	}
	return l, nil
}

func (l logModel) applyPick(picker logPicker, choice int) tea.Cmd {
	return func() tea.Msg {
		switch picker {
		case pickExercise:
			opt := exerciseOptions[choice]
			if _, err := l.eng.LogExercise(opt.intensity); err != nil {
				return statusMsg{text: fmt.Sprintf("Exercise error: %v", err), isError: true}
			}
			return statusMsg{text: "Exercise logged — electrolytes burned"}

		case pickGrade:
			opt := gradeOptions[choice]
			if err := l.eng.RecordMeal(opt.grade); err != nil {
				return statusMsg{text: fmt.Sprintf("Meal error: %v", err), isError: true}
			}
			return statusMsg{text: "Meal graded — fasting clock restarted"}

		case pickCondition:
			score := choice + 1
			if err := l.eng.SetCondition(score); err != nil {
				return statusMsg{text: fmt.Sprintf("Condition error: %v", err), isError: true}
			}
			return statusMsg{text: fmt.Sprintf("Condition recorded: %d/5", score)}
		}
		return nil
	}
}

// --- Food scan form ---

func (l logModel) showScanForm() (logModel, tea.Cmd) {
	*l.scanPath = ""
	l.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Food photo path").
				Description("The image is sent to the analyzer service.").
				Value(l.scanPath),
		).Title("Analyze Meal"),
	).WithShowHelp(true).WithShowErrors(true)

	l.formActive = true
	return l, l.form.Init()
}

func (l logModel) updateScanForm(msg tea.Msg) (logModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			l.formActive = false
			l.form = nil
			return l, nil
		}
	}

	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	if l.form.State == huh.StateCompleted {
		l.formActive = false
		path := strings.TrimSpace(*l.scanPath)
		l.form = nil
		return l, l.runScan(path)
	}

	return l, cmd
}

func (l logModel) runScan(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return statusMsg{text: "No photo path given", isError: true}
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Read photo: %v", err), isError: true}
		}

		result, err := l.analyzer.Analyze(context.Background(),
			base64.StdEncoding.EncodeToString(raw), "")
		if err != nil {
			// Classification failed: surface it, touch nothing.
			return statusMsg{text: fmt.Sprintf("Analyze failed: %v", err), isError: true}
		}

		if _, err := l.eng.RecordScanResult(*result); err != nil {
			return statusMsg{text: fmt.Sprintf("Record scan: %v", err), isError: true}
		}
		return scanDoneMsg{entryLabel: fmt.Sprintf("%s (keto score %d)", result.Name, result.Score)}
	}
}

// --- View ---

func (l logModel) view() string {
	if l.width < 20 {
		return "Terminal too small"
	}

	w := l.width - 4

	if l.formActive && l.form != nil {
		return panelStyle.Width(w).Render(l.form.View())
	}

	actionsPanel := l.renderActionsPanel(w)

	var bottom string
	if l.picker != pickNone {
		bottom = l.renderPicker(w)
	} else {
		bottom = l.renderTimeline(w)
	}

	return lipgloss.JoinVertical(lipgloss.Left, actionsPanel, bottom)
}

func (l logModel) renderActionsPanel(w int) string {
	title := titleStyle.Render("Quick Log")

	var items []string
	hotkeys := []string{"s", "c", "m", "b"}
	for i, a := range quickActions {
		items = append(items, fmt.Sprintf("%s %s %s",
			highlightStyle.Render("["+hotkeys[i]+"]"),
			a.label,
			mutedStyle.Render(formatGrams(a.grams)),
		))
	}
	quickRow := "  " + strings.Join(items, "   ")

	extraRow := "  " + strings.Join([]string{
		highlightStyle.Render("[e]") + " exercise",
		highlightStyle.Render("[g]") + " grade meal",
		highlightStyle.Render("[n]") + " condition",
		highlightStyle.Render("[w/W]") + " water ±500ml",
		highlightStyle.Render("[a]") + " analyze photo",
	}, "   ")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", quickRow, extraRow),
	)
}

func (l logModel) renderPicker(w int) string {
	var title string
	var labels []string

	switch l.picker {
	case pickExercise:
		title = "Exercise Intensity"
		for _, o := range exerciseOptions {
			labels = append(labels, o.label)
		}
	case pickGrade:
		title = "How was the meal?"
		for _, o := range gradeOptions {
			labels = append(labels, o.label)
		}
	case pickCondition:
		title = "Condition today"
		for i := 1; i <= 5; i++ {
			labels = append(labels, strings.Repeat("★", i))
		}
	}

	var rows []string
	rows = append(rows, titleStyle.Render(title))
	for i, label := range labels {
		cursor := "  "
		style := normalItemStyle
		if i == l.pickCur {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+label))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: select  esc: cancel"))

	return activePanelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (l logModel) renderTimeline(w int) string {
	title := titleStyle.Render("Timeline")
	if len(l.entries) == 0 {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, mutedStyle.Render("Nothing logged yet")),
		)
	}

	var rows []string
	rows = append(rows, title)

	visible := min(len(l.entries), max(5, l.height-12))
	for i := 0; i < visible; i++ {
		e := l.entries[i]

		amount := successStyle.Render("+" + formatGrams(e.Amount))
		if e.Amount < 0 {
			amount = accentStyle.Render(formatGrams(e.Amount))
		} else if e.Amount == 0 {
			amount = mutedStyle.Render("—")
		}

		cursor := "  "
		style := normalItemStyle
		if i == l.cursor {
			cursor = "> "
			style = selectedItemStyle
		}

		when := e.OccurredAt.Local().Format("Jan 02 15:04")
		rows = append(rows, style.Render(fmt.Sprintf("%s%s  %-10s %-24s %s",
			cursor, mutedStyle.Render(when), e.Kind, e.Label, amount,
		)))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  ↑/↓: select  d: delete"))
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
