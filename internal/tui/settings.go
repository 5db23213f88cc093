package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/saltlab/internal/engine"
)

type settingsModel struct {
	eng    *engine.Engine
	width  int
	height int
	snap   *engine.Snapshot

	formActive bool
	form       *huh.Form
	fields     *settingsFields

	confirmReset bool
}

// settingsFields backs the form values. Heap-allocated so the pointers
// handed to huh survive model copies between updates.
type settingsFields struct {
	name          string
	goal          string
	theme         string
	notifications bool
}

func newSettingsModel(eng *engine.Engine) settingsModel {
	return settingsModel{eng: eng}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		snap, err := s.eng.Snapshot()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load error: %v", err), isError: true}
		}
		return snapshotMsg{snap: snap}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case snapshotMsg:
		s.snap = msg.snap
		return s, nil

	case tea.KeyMsg:
		if s.confirmReset {
			switch msg.String() {
			case "y", "Y":
				s.confirmReset = false
				return s, s.runReset()
			default:
				s.confirmReset = false
			}
			return s, nil
		}

		switch {
		case key.Matches(msg, keys.Enter):
			return s.showForm()
		case key.Matches(msg, keys.Reset):
			s.confirmReset = true
			return s, nil
		}
	}
	return s, nil
}

func (s settingsModel) runReset() tea.Cmd {
	return func() tea.Msg {
		if err := s.eng.Reset(); err != nil {
			return statusMsg{text: fmt.Sprintf("Reset error: %v", err), isError: true}
		}
		return resetDoneMsg{}
	}
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	if s.snap == nil {
		return s, nil
	}

	s.fields = &settingsFields{
		name:          s.snap.Profile.DisplayName,
		goal:          strconv.FormatFloat(s.snap.Goal(), 'f', 1, 64),
		theme:         s.snap.Settings.Theme,
		notifications: s.snap.Settings.Notifications,
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Display name").
				Value(&s.fields.name).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Daily salt goal (g)").
				Value(&s.fields.goal).
				Validate(func(v string) error {
					g, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
					if err != nil || g <= 0 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("Light", "light"),
					huh.NewOption("Dark", "dark"),
				).
				Value(&s.fields.theme),
			huh.NewConfirm().
				Title("Notifications").
				Affirmative("On").
				Negative("Off").
				Value(&s.fields.notifications),
		).Title("Settings"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		fields := s.fields
		s.formActive = false
		s.form = nil
		s.fields = nil
		return s, s.applyForm(fields)
	}
	return s, cmd
}

func (s settingsModel) applyForm(f *settingsFields) tea.Cmd {
	return func() tea.Msg {
		if err := s.eng.SetDisplayName(f.name); err != nil {
			return statusMsg{text: fmt.Sprintf("Name: %v", err), isError: true}
		}

		goal, err := strconv.ParseFloat(strings.TrimSpace(f.goal), 64)
		if err != nil {
			return statusMsg{text: "Goal must be a number", isError: true}
		}
		if err := s.eng.SetGoal(goal); err != nil {
			return statusMsg{text: fmt.Sprintf("Goal: %v", err), isError: true}
		}

		if err := s.eng.UpdateSettings(f.theme, f.notifications); err != nil {
			if errors.Is(err, engine.ErrPermissionDenied) {
				return statusMsg{text: "Notification permission denied — toggle reverted", isError: true}
			}
			return statusMsg{text: fmt.Sprintf("Settings: %v", err), isError: true}
		}

		return statusMsg{text: "Settings saved"}
	}
}

func (s settingsModel) view() string {
	if s.width < 20 {
		return "Terminal too small"
	}

	w := s.width - 4

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(s.form.View())
	}

	if s.confirmReset {
		content := lipgloss.JoinVertical(lipgloss.Left,
			errorStyle.Bold(true).Render("Reset all data?"),
			"",
			normalItemStyle.Render("Ledger, daily state, water, and progression all go back to zero."),
			normalItemStyle.Render("This cannot be undone."),
			"",
			mutedStyle.Render("  y: reset everything   any other key: cancel"),
		)
		return activePanelStyle.BorderForeground(colorError).Width(w).Render(content)
	}

	if s.snap == nil {
		return panelStyle.Width(w).Render("Loading...")
	}

	notif := errorStyle.Render("off")
	if s.snap.Settings.Notifications {
		notif = successStyle.Render("on")
	}

	rows := []string{
		titleStyle.Render("Settings"),
		"",
		fmt.Sprintf("  %-15s %s", "Display name", highlightStyle.Render(s.snap.Profile.DisplayName)),
		fmt.Sprintf("  %-15s %s", "Daily goal", highlightStyle.Render(formatGrams(s.snap.Goal()))),
		fmt.Sprintf("  %-15s %s", "Theme", highlightStyle.Render(s.snap.Settings.Theme)),
		fmt.Sprintf("  %-15s %s", "Notifications", notif),
		"",
		mutedStyle.Render("  enter: edit   r: reset all data"),
	}
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
