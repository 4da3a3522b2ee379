// Package color provides the palette shared by the CLI and the interactive console.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
)

// High-intensity ANSI palette extension.
var (
	HiPurple = New("13")
	HiCyan   = New("14")
)

// Slot colors used when drawing a stack buffer.
var (
	// Live marks a slot holding an element.
	Live = New("#a6e3a1")
	// Allocated marks a slot that is reserved but empty.
	Allocated = New("#6c7086")
)
