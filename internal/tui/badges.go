package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/saltlab/internal/engine"
)

type badgesModel struct {
	eng    *engine.Engine
	width  int
	height int
	badges []engine.BadgeStatus
}

func newBadgesModel(eng *engine.Engine) badgesModel {
	return badgesModel{eng: eng}
}

func (b *badgesModel) setSize(w, h int) {
	b.width = w
	b.height = h
}

func (b badgesModel) refresh() tea.Cmd {
	return func() tea.Msg {
		badges, err := b.eng.Badges()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Badges error: %v", err), isError: true}
		}
		return badgesMsg{badges: badges}
	}
}

func (b badgesModel) update(msg tea.Msg) (badgesModel, tea.Cmd) {
	if msg, ok := msg.(badgesMsg); ok {
		b.badges = msg.badges
	}
	return b, nil
}

func (b badgesModel) view() string {
	if b.width < 20 {
		return "Terminal too small"
	}
	if len(b.badges) == 0 {
		return panelStyle.Width(b.width - 4).Render("Loading...")
	}

	unlocked := 0
	for _, bs := range b.badges {
		if bs.Unlocked {
			unlocked++
		}
	}

	header := fmt.Sprintf("%s  %s",
		titleStyle.Render("Badges"),
		mutedStyle.Render(fmt.Sprintf("%d / %d unlocked", unlocked, len(b.badges))),
	)

	cardWidth := 34
	cols := max(1, (b.width-4)/(cardWidth+2))

	var cards []string
	for _, bs := range b.badges {
		cards = append(cards, b.renderCard(bs, cardWidth))
	}

	var rows []string
	for i := 0; i < len(cards); i += cols {
		end := min(i+cols, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.JoinVertical(lipgloss.Left, headerStyle.Render(header), body)
}

func (b badgesModel) renderCard(bs engine.BadgeStatus, w int) string {
	badge := bs.Badge

	if !bs.Unlocked {
		content := lipgloss.JoinVertical(lipgloss.Left,
			lockedBadgeStyle.Render("🔒 "+badge.Name),
			lockedBadgeStyle.Render(badge.Desc),
		)
		return panelStyle.Width(w).BorderForeground(colorSubtle).Render(content)
	}

	name := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(badge.Color)).
		Render(badge.Icon + " " + badge.Name)
	content := lipgloss.JoinVertical(lipgloss.Left,
		name,
		mutedStyle.Render(badge.Desc),
	)
	return panelStyle.Width(w).BorderForeground(lipgloss.Color(badge.Color)).Render(content)
}
