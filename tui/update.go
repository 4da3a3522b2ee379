package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gotw-cli/gotw/constant"
	"github.com/gotw-cli/gotw/icon"
	"github.com/gotw-cli/gotw/internal/ui"
	"github.com/gotw-cli/gotw/log"
	"github.com/gotw-cli/gotw/session"
	"github.com/gotw-cli/gotw/stack"
	"github.com/samber/mo"
)

func (b *bubble) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(constant.App), textinput.Blink)
}

func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd := b.notifier.Update(msg); cmd != nil {
		return b, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case error:
		b.fail(msg)
		return b, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keymap.forceQuit, b.keymap.quit):
			return b, tea.Quit
		case key.Matches(msg, b.keymap.push):
			return b, b.push()
		case key.Matches(msg, b.keymap.pop):
			return b, b.pop()
		case key.Matches(msg, b.keymap.reserve):
			return b, b.reserve()
		case key.Matches(msg, b.keymap.clear):
			return b, b.clear()
		case key.Matches(msg, b.keymap.acceptSuggestion) && b.suggestion.IsPresent():
			b.inputC.SetValue(b.suggestion.MustGet())
			b.inputC.SetCursor(len(b.inputC.Value()))
			b.suggestion = mo.None[string]()
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	b.suggest()
	return b, cmd
}

func (b *bubble) suggest() {
	value := b.inputC.Value()
	if value == "" {
		b.suggestion = mo.None[string]()
		return
	}

	if suggestion, ok := session.SuggestOne(value).Get(); ok && suggestion != value {
		b.suggestion = mo.Some(suggestion)
	} else {
		b.suggestion = mo.None[string]()
	}
}

func (b *bubble) fail(err error) {
	b.lastError = err
	log.Warn(err)
}

// done records a successful operation and announces it.
func (b *bubble) done(text string) tea.Cmd {
	b.lastError = nil
	b.refresh()
	return ui.Notify(text)
}

func (b *bubble) push() tea.Cmd {
	value := strings.TrimSpace(b.inputC.Value())
	if value == "" {
		return nil
	}

	if err := b.stack.Push(value); err != nil {
		b.fail(err)
		return nil
	}

	b.inputC.Reset()
	b.suggestion = mo.None[string]()

	remember := func() tea.Msg {
		if err := session.Remember(value); err != nil {
			return err
		}
		return nil
	}

	return tea.Batch(b.done(fmt.Sprintf("%s pushed %s", icon.Get(icon.Push), value)), remember)
}

func (b *bubble) pop() tea.Cmd {
	value, err := b.stack.Pop()
	if err != nil {
		b.fail(err)
		return nil
	}

	return b.done(fmt.Sprintf("%s popped %s", icon.Get(icon.Pop), value))
}

func (b *bubble) reserve() tea.Cmd {
	capacity := stack.NextCapacity(b.stack.Capacity())
	if err := b.stack.Reserve(capacity); err != nil {
		b.fail(err)
		return nil
	}

	return b.done(fmt.Sprintf("%s reserved %d slots", icon.Get(icon.Success), capacity))
}

func (b *bubble) clear() tea.Cmd {
	b.stack.Destroy()
	return b.done(fmt.Sprintf("%s destroyed", icon.Get(icon.Success)))
}
