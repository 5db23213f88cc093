package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	SaltWater key.Binding
	Capsule   key.Binding
	Meal      key.Binding
	Broth     key.Binding
	Exercise  key.Binding
	Grade     key.Binding
	Condition key.Binding
	WaterUp   key.Binding
	WaterDown key.Binding
	Scan      key.Binding
	Delete    key.Binding
	Export    key.Binding
	Reset     key.Binding
	Tab1      key.Binding
	Tab2      key.Binding
	Tab3      key.Binding
	Tab4      key.Binding
	Tab5      key.Binding
	Tab       key.Binding
	Help      key.Binding
	Enter     key.Binding
	Back      key.Binding
	Up        key.Binding
	Down      key.Binding
	Space     key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	SaltWater: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "salt water"),
	),
	Capsule: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "capsule"),
	),
	Meal: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "meal"),
	),
	Broth: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "broth"),
	),
	Exercise: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "exercise"),
	),
	Grade: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "grade meal"),
	),
	Condition: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "condition"),
	),
	WaterUp: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "+water"),
	),
	WaterDown: key.NewBinding(
		key.WithKeys("W"),
		key.WithHelp("W", "-water"),
	),
	Scan: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "analyze photo"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Export: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset data"),
	),
	Tab1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "dashboard"),
	),
	Tab2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "log"),
	),
	Tab3: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "badges"),
	),
	Tab4: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "checkup"),
	),
	Tab5: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "settings"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Space: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SaltWater, k.Meal, k.WaterUp, k.Grade, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SaltWater, k.Capsule, k.Meal, k.Broth},
		{k.Exercise, k.Grade, k.Condition, k.WaterUp, k.WaterDown},
		{k.Scan, k.Delete, k.Export, k.Reset},
		{k.Tab1, k.Tab2, k.Tab3, k.Tab4, k.Tab5},
		{k.Up, k.Down, k.Enter, k.Back, k.Quit},
	}
}
