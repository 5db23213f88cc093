package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/saltlab/internal/engine"
)

// checkupModel drives the symptom self-checkup: toggle symptoms,
// run the diagnosis, show the verdict with an action plan.
type checkupModel struct {
	width    int
	height   int
	symptoms []engine.Symptom
	selected map[string]bool
	cursor   int
	verdict  *engine.Diagnosis
}

func newCheckupModel() checkupModel {
	return checkupModel{
		symptoms: engine.Symptoms(),
		selected: make(map[string]bool),
	}
}

func (c *checkupModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

func (c checkupModel) update(msg tea.Msg) (checkupModel, tea.Cmd) {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(msgKey, keys.Up):
		if c.cursor > 0 {
			c.cursor--
		}
	case key.Matches(msgKey, keys.Down):
		if c.cursor < len(c.symptoms)-1 {
			c.cursor++
		}
	case key.Matches(msgKey, keys.Space):
		id := c.symptoms[c.cursor].ID
		c.selected[id] = !c.selected[id]
		c.verdict = nil
	case key.Matches(msgKey, keys.Enter):
		if len(c.selectedIDs()) > 0 {
			v := engine.Diagnose(c.selectedIDs())
			c.verdict = &v
		}
	case key.Matches(msgKey, keys.Back):
		c.selected = make(map[string]bool)
		c.verdict = nil
	}
	return c, nil
}

func (c checkupModel) selectedIDs() []string {
	var ids []string
	for _, s := range c.symptoms {
		if c.selected[s.ID] {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

func (c checkupModel) view() string {
	if c.width < 20 {
		return "Terminal too small"
	}

	w := c.width - 4
	checklist := c.renderChecklist(w)

	if c.verdict == nil {
		return checklist
	}
	return lipgloss.JoinVertical(lipgloss.Left, checklist, c.renderVerdict(w))
}

func (c checkupModel) renderChecklist(w int) string {
	var rows []string
	rows = append(rows, titleStyle.Render("Symptom Checkup 🩺"))
	rows = append(rows, mutedStyle.Render("Check how you feel right now; a prescription follows."))
	rows = append(rows, "")

	for i, s := range c.symptoms {
		box := "[ ]"
		style := normalItemStyle
		if c.selected[s.ID] {
			box = "[x]"
			style = highlightStyle
		}
		cursor := "  "
		if i == c.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%s %s", cursor, box, s.Label)))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  space: toggle  enter: analyze  esc: clear"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (c checkupModel) renderVerdict(w int) string {
	v := c.verdict
	color := lipgloss.Color(v.Color)

	title := lipgloss.NewStyle().Bold(true).Foreground(color).Render(v.Title)
	detail := normalItemStyle.Render(v.Detail)
	action := lipgloss.JoinVertical(lipgloss.Left,
		mutedStyle.Render("ACTION PLAN"),
		titleStyle.Render(v.Action),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, title, detail, "", action)
	return activePanelStyle.BorderForeground(color).Width(w).Render(content)
}
