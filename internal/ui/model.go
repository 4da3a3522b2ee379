// Package ui provides transient status notifications for bubbletea views.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gotw-cli/gotw/style"
)

// Lifetime is how long a notification stays visible.
const Lifetime = 3 * time.Second

type notificationMsg string

type clearMsg struct {
	id int
}

// Model holds the current notification. The zero value shows nothing.
type Model struct {
	notification string
	id           int
}

// Notify returns a command that shows text until Lifetime passes or another notification replaces it.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return notificationMsg(text)
	}
}

// Update handles notification messages and ignores everything else.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case notificationMsg:
		m.notification = string(msg)
		m.id++
		id := m.id
		return tea.Tick(Lifetime, func(time.Time) tea.Msg {
			return clearMsg{id: id}
		})
	case clearMsg:
		// a newer notification owns the line
		if msg.id == m.id {
			m.notification = ""
		}
	}
	return nil
}

// Current returns the visible notification, if any.
func (m *Model) Current() string {
	return m.notification
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}
