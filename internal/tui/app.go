package tui

import (
	"fmt"
	"strings"

	"shoplist-cli/internal/format"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	w := m.contentWidth()

	header := m.viewHeader(w)
	body := m.viewBody(w)
	footer := m.viewFooter(w)

	screen := strings.Join([]string{header, "", body, "", footer}, "\n")

	switch m.modal {
	case modalAddItem:
		return placeModal(m.width, m.height, m.viewAddModal())
	case modalPreview:
		return placeModal(m.width, m.height, m.viewPreviewModal())
	}
	return screen
}

func (m appModel) viewHeader(w int) string {
	title := styleHeader().Render("Shopping List")
	summary := "empty"
	if n := m.snap.Len(); n > 0 {
		unit := "items"
		if n == 1 {
			unit = "item"
		}
		summary = fmt.Sprintf("%d %s %s %d units", n, unit, glyphBullet(), m.snap.TotalQuantity())
	}
	return fitLine(title+"  "+styleMuted().Render(summary), w)
}

func (m appModel) viewBody(w int) string {
	if m.snap.Len() == 0 {
		msg := styleMuted().Render("No items yet. Press a to add one.")
		return normalizePane(msg, w, m.list.Height())
	}
	return normalizePane(m.list.View(), w, m.list.Height())
}

func (m appModel) viewFooter(w int) string {
	if m.minibufferText != "" {
		st := styleMuted()
		if m.minibufferErr {
			st = styleError()
		}
		return fitLine(st.Render(m.minibufferText), w)
	}
	if m.editor.active {
		return m.help.View(m.formKeys)
	}
	return m.help.View(m.keys)
}

func (m appModel) viewAddModal() string {
	bodyW := modalBodyWidth(m.width)
	nameView := m.add.name.View()
	qtyView := m.add.qty.View()

	body := strings.Join([]string{
		renderLabeledInput(bodyW, "Name", nameView, m.add.focus == fieldName),
		"",
		renderLabeledInput(bodyW, "Quantity", qtyView, m.add.focus == fieldQuantity),
		"",
		renderButtons("Add", "Cancel", m.add.ready()),
		"",
		styleMuted().Width(bodyW).Render("tab: next field   enter: add   esc: cancel"),
	}, "\n")
	return renderModalBox(m.width, "Add Shopping Item", body)
}

func (m appModel) viewPreviewModal() string {
	bodyW := modalBodyWidth(m.width)
	out := renderMarkdown(format.Markdown(m.snap), bodyW)

	maxH := m.height - 8
	if maxH < 5 {
		maxH = 5
	}
	lines := strings.Split(out, "\n")
	if len(lines) > maxH {
		lines = append(lines[:maxH-1], styleMuted().Render("…"))
	}
	rule := styleMuted().Render(strings.Repeat(glyphHRule(), bodyW))
	body := strings.Join([]string{
		lipgloss.NewStyle().Width(bodyW).Render(strings.Join(lines, "\n")),
		rule,
		styleMuted().Render("esc: close"),
	}, "\n")
	return renderModalBox(m.width, "Preview", body)
}
