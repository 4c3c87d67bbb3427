package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	modalMaxW = 60
	modalMinW = 30
)

func modalWidth(screenW int) int {
	w := screenW - 4
	if w > modalMaxW {
		w = modalMaxW
	}
	if w < modalMinW {
		w = modalMinW
	}
	return w
}

// modalBodyWidth is the usable content width inside a modal of the given screen width.
func modalBodyWidth(screenW int) int {
	return modalWidth(screenW) - 4
}

func renderModalBox(screenW int, title, body string) string {
	w := modalWidth(screenW)
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent).
		Render(title)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorModalBorder).
		Padding(0, 1).
		Width(w - 2)
	return box.Render(strings.Join([]string{head, "", body}, "\n"))
}

// renderButtons draws the confirm and cancel buttons; the confirm button is
// highlighted when armed.
func renderButtons(confirmLabel, cancelLabel string, armed bool) string {
	base := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)

	confirm := base.Render(confirmLabel)
	if armed {
		confirm = base.
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true).
			Render(confirmLabel)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, confirm, " ", base.Render(cancelLabel))
}

// placeModal centers a modal over the full screen.
func placeModal(screenW, screenH int, modal string) string {
	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "))
}
