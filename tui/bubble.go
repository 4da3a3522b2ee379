package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/gotw-cli/gotw/internal/ui"
	"github.com/gotw-cli/gotw/session"
	"github.com/gotw-cli/gotw/stack"
	"github.com/gotw-cli/gotw/util"
	"github.com/samber/mo"
)

// bubble is the console model. It owns the stack for the lifetime of the program.
type bubble struct {
	stack *stack.Stack[string]
	// items mirrors the stack bottom to top and is refreshed after every operation.
	items []string

	keymap   *keymap
	inputC   textinput.Model
	helpC    help.Model
	notifier *ui.Model

	suggestion mo.Option[string]
	lastError  error

	width, height int
}

func newBubble(s *stack.Stack[string]) *bubble {
	b := &bubble{
		stack:    s,
		keymap:   newKeymap(),
		helpC:    help.New(),
		notifier: &ui.Model{},
	}

	b.inputC = textinput.New()
	b.inputC.Placeholder = "value to push"
	b.inputC.CharLimit = 120
	b.inputC.Prompt = "> "
	b.inputC.Focus()

	if w, h, err := util.TerminalSize(); err == nil {
		b.resize(w, h)
	}

	b.refresh()
	return b
}

func (b *bubble) refresh() {
	b.items = session.Items(b.stack)
}

func (b *bubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	b.width = width - x
	b.height = height - y
	b.helpC.Width = b.width
	b.inputC.Width = util.Max(0, b.width-len(b.inputC.Prompt)-1)
}
