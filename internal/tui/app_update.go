package tui

import (
	"strconv"
	"time"

	"shoplist-cli/internal/config"
	"shoplist-cli/internal/format"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Init() tea.Cmd { return nil }

// Update syncs with the controller before and after handling msg, so intents issued
// outside the key handlers (or by another view) still reach the screen.
func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	pre := m.syncSnapshot()
	mm, cmd := m.update(msg)
	next := mm.(appModel)
	post := next.syncSnapshot()
	return next, tea.Batch(pre, cmd, post)
}

func (m appModel) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case minibufferDoneMsg:
		if msg.seq == m.minibufferSeq && time.Since(m.minibufferSetAt) >= minibufferAutoClearAfter {
			m.minibufferText = ""
			m.minibufferErr = false
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.close()
			return m, tea.Quit
		}
		switch {
		case m.modal == modalAddItem:
			return m.updateAddModal(msg)
		case m.modal == modalPreview:
			return m.updatePreviewModal(msg)
		case m.editor.active:
			return m.updateEditing(msg)
		default:
			return m.updateBrowsing(msg)
		}
	}

	// Non-key messages (cursor blink etc.) go to whatever input has focus.
	switch {
	case m.modal == modalAddItem:
		return m, m.add.update(msg)
	case m.editor.active:
		return m, m.editor.update(msg)
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.modal = modalAddItem
		return m, m.add.setFocus(fieldName)

	case key.Matches(msg, m.keys.Edit):
		r, ok := selectedRow(m.list)
		if !ok {
			return m, nil
		}
		m.ctrl.BeginEdit(r.item.ID)
		return m, m.syncSnapshot()

	case key.Matches(msg, m.keys.Delete):
		r, ok := selectedRow(m.list)
		if !ok {
			return m, nil
		}
		m.ctrl.Delete(r.item.ID)
		return m, m.syncSnapshot()

	case key.Matches(msg, m.keys.Preview):
		m.modal = modalPreview
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if m.snap.Len() == 0 {
			m.showMinibuffer("Nothing to copy")
			return m, m.minibufferTimeout()
		}
		if err := copyToClipboard(format.Markdown(m.snap)); err != nil {
			m.log.Debug("clipboard copy failed", "error", err)
			m.showMinibufferError("Copy failed: " + err.Error())
			return m, m.minibufferTimeout()
		}
		m.showMinibuffer("Copied list to clipboard")
		return m, m.minibufferTimeout()

	case key.Matches(msg, m.keys.Glyphs):
		return m.toggleGlyphs()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Save):
		m.ctrl.CompleteEdit(m.editor.id, m.editor.name.Value(), m.editor.qty.Value())
		return m, m.syncSnapshot()

	case key.Matches(msg, m.formKeys.Cancel):
		// Edit mode only ends by saving; esc saves the values the item still has.
		name, qty := m.editor.name.Value(), m.editor.qty.Value()
		if it, ok := m.snap.Find(m.editor.id); ok {
			name, qty = it.Name, strconv.Itoa(it.Quantity)
		}
		m.ctrl.CompleteEdit(m.editor.id, name, qty)
		return m, m.syncSnapshot()

	case key.Matches(msg, m.formKeys.Next):
		return m, m.editor.setFocus(m.editor.focus.next())
	}
	return m, m.editor.update(msg)
}

func (m appModel) updateAddModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Save):
		if !m.ctrl.Add(m.add.name.Value(), m.add.qty.Value()) {
			// Blank name: nothing happens and the dialog stays open.
			return m, nil
		}
		m.add.reset()
		m.add.blur()
		m.modal = modalNone
		return m, m.syncSnapshot()

	case key.Matches(msg, m.formKeys.Cancel):
		// Drafts survive a cancel; they are only cleared by a successful add.
		m.add.blur()
		m.modal = modalNone
		return m, nil

	case key.Matches(msg, m.formKeys.Next):
		return m, m.add.setFocus(m.add.focus.next())
	}
	return m, m.add.update(msg)
}

func (m appModel) updatePreviewModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g", "q", "p", "enter":
		m.modal = modalNone
	}
	return m, nil
}

func (m appModel) toggleGlyphs() (tea.Model, tea.Cmd) {
	next := glyphSetASCII
	if glyphs() == glyphSetASCII {
		next = glyphSetUnicode
	}
	setGlyphs(next)

	if m.cfg == nil {
		m.cfg = &config.Config{}
	}
	m.cfg.SetGlyphs(glyphsName(next))
	if err := config.Save(m.cfg); err != nil {
		m.log.Debug("save config failed", "error", err)
		m.showMinibufferError("Glyphs: " + glyphsName(next) + " (not saved: " + err.Error() + ")")
		return m, m.minibufferTimeout()
	}
	m.showMinibuffer("Glyphs: " + glyphsName(next))
	return m, m.minibufferTimeout()
}

func (m appModel) minibufferTimeout() tea.Cmd {
	seq := m.minibufferSeq
	return tea.Tick(minibufferAutoClearAfter, func(time.Time) tea.Msg {
		return minibufferDoneMsg{seq: seq}
	})
}
