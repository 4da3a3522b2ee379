package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/gotw-cli/gotw/color"
	"github.com/gotw-cli/gotw/style"
)

type keymap struct {
	push, pop, reserve, clear,
	acceptSuggestion,
	quit, forceQuit key.Binding
}

func newKeymap() *keymap {
	return &keymap{
		push: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.Green)("enter"), style.Fg(color.Green)("push")),
		),
		pop: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "pop"),
		),
		reserve: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reserve"),
		),
		clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "destroy all"),
		),
		acceptSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept suggestion"),
		),
		quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (k *keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.push, k.pop, k.reserve, k.clear, k.quit}
}

func (k *keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.acceptSuggestion, k.forceQuit}}
}
