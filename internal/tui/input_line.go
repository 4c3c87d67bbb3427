package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderLabeledInput renders a label line above a single-line input field bodyW
// columns wide. The field is padded with the input background and cut at bodyW.
func renderLabeledInput(bodyW int, label, inputView string, focused bool) string {
	labelStyle := styleMuted()
	if focused {
		labelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	}
	bodyW = max(bodyW, 10)

	field := " " + strings.NewReplacer("\n", " ", "\r", " ").Replace(inputView) + " "
	if xansi.StringWidth(field) > bodyW {
		field = xansi.Truncate(field, bodyW, "")
	}
	field = lipgloss.NewStyle().
		Background(colorInputBg).
		Width(bodyW).
		MaxWidth(bodyW).
		Render(field)
	return labelStyle.Render(label) + "\n" + field
}
