// Package tui provides the interactive stack console.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gotw-cli/gotw/session"
)

// Run loads the session stack, runs the console until the user quits and saves the result.
func Run() error {
	s, err := session.Load()
	if err != nil {
		return err
	}

	bubble := newBubble(s)
	if _, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run(); err != nil {
		return err
	}

	return session.Save(bubble.stack)
}
