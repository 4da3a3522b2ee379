package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gotw-cli/gotw/color"
	"github.com/gotw-cli/gotw/key"
	"github.com/gotw-cli/gotw/style"
	"github.com/gotw-cli/gotw/util"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
)

const (
	liveSlot      = "■"
	allocatedSlot = "□"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *bubble) View() string {
	lines := []string{style.Title("Stack"), ""}
	lines = append(lines, b.viewItems()...)
	lines = append(lines, "")

	if viper.GetBool(key.TUIShowSlots) {
		lines = append(lines, b.viewSlots(), "")
	}

	lines = append(lines,
		style.Faint(fmt.Sprintf(
			"%s, %s",
			util.Quantify(b.stack.Size(), "element", "elements"),
			util.Quantify(b.stack.Capacity(), "slot", "slots"),
		)),
		"",
		b.viewInput(),
	)

	if b.lastError != nil {
		lines = append(lines, "", style.ErrorTitle("Error")+" "+b.wrap(b.lastError.Error()))
	}

	return b.notifier.View(b.renderLines(lines))
}

// viewItems lists elements from the top down, eliding the bottom when the terminal is short.
func (b *bubble) viewItems() []string {
	if len(b.items) == 0 {
		return []string{style.Faint("empty")}
	}

	limit := len(b.items)
	if b.height > 0 {
		limit = util.Min(limit, util.Max(3, b.height-14))
	}

	lines := make([]string, 0, limit+1)
	for i := len(b.items) - 1; i >= len(b.items)-limit; i-- {
		line := fmt.Sprintf("%3d  %s", i, b.items[i])
		if i == len(b.items)-1 {
			line = style.Bold(line)
		}
		lines = append(lines, line)
	}

	if hidden := len(b.items) - limit; hidden > 0 {
		lines = append(lines, style.Faint(fmt.Sprintf("     … %d more", hidden)))
	}

	return lines
}

func (b *bubble) viewSlots() string {
	size, capacity := b.stack.Size(), b.stack.Capacity()

	return b.wrap(
		style.Fg(color.Live)(strings.Repeat(liveSlot, size)) +
			style.Fg(color.Allocated)(strings.Repeat(allocatedSlot, capacity-size)),
	)
}

func (b *bubble) viewInput() string {
	input := b.inputC.View()
	if suggestion, ok := b.suggestion.Get(); ok {
		input += "  " + style.Faint("tab: "+suggestion)
	}
	return input
}

func (b *bubble) wrap(s string) string {
	if b.width <= 0 {
		return s
	}
	return wrap.String(s, b.width)
}

func (b *bubble) renderLines(lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if b.height > h {
		l += strings.Repeat("\n", b.height-h)
	}
	l += b.helpC.View(b.keymap)

	return paddingStyle.Render(l)
}
