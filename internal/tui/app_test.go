package tui

import (
	"strings"
	"testing"

	"shoplist-cli/internal/config"
	"shoplist-cli/internal/model"
	"shoplist-cli/internal/shoplist"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m appModel, keys ...string) appModel {
	t.Helper()
	for _, k := range keys {
		mm, _ := m.Update(keyMsg(k))
		m = mm.(appModel)
	}
	return m
}

func typeText(t *testing.T, m appModel, s string) appModel {
	t.Helper()
	for _, r := range s {
		mm, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = mm.(appModel)
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if isQuit(c) {
				return true
			}
		}
	}
	return false
}

func newTestModel(t *testing.T) (appModel, *shoplist.Controller) {
	t.Helper()
	t.Setenv(config.EnvDefaultQuantity, "")
	ctrl := shoplist.NewController()
	m := newAppModel(ctrl, appOptions{cfg: &config.Config{}})
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return mm.(appModel), ctrl
}

func addItem(t *testing.T, m appModel, name, qty string) appModel {
	t.Helper()
	m = press(t, m, "a")
	m = typeText(t, m, name)
	m = press(t, m, "tab", "ctrl+u")
	m = typeText(t, m, qty)
	return press(t, m, "enter")
}

func itemsOf(m appModel) []model.ShoppingItem { return m.snap.Items }

func TestAddModal_AddsItemAndResets(t *testing.T) {
	m, ctrl := newTestModel(t)

	m = press(t, m, "a")
	if m.modal != modalAddItem {
		t.Fatalf("expected add modal open")
	}
	if got := m.add.qty.Value(); got != "1" {
		t.Fatalf("expected quantity to start at 1, got %q", got)
	}

	m = typeText(t, m, "Eggs")
	m = press(t, m, "tab", "ctrl+u")
	m = typeText(t, m, "12")
	m = press(t, m, "enter")

	if m.modal != modalNone {
		t.Fatalf("expected modal to close after add")
	}
	want := []model.ShoppingItem{{ID: 1, Name: "Eggs", Quantity: 12}}
	if got := ctrl.Snapshot().Items; len(got) != 1 || got[0] != want[0] {
		t.Fatalf("controller items=%v, want %v", got, want)
	}
	if got := itemsOf(m); len(got) != 1 || got[0] != want[0] {
		t.Fatalf("rendered items=%v, want %v", got, want)
	}
	if m.add.name.Value() != "" || m.add.qty.Value() != "1" {
		t.Fatalf("expected inputs to reset, got name=%q qty=%q", m.add.name.Value(), m.add.qty.Value())
	}
}

func TestAddModal_BlankNameKeepsDialogOpen(t *testing.T) {
	m, ctrl := newTestModel(t)

	m = press(t, m, "a")
	m = typeText(t, m, "   ")
	m = press(t, m, "enter")

	if m.modal != modalAddItem {
		t.Fatalf("expected modal to stay open for a blank name")
	}
	if ctrl.Snapshot().Len() != 0 {
		t.Fatalf("expected no items")
	}
}

func TestAddModal_CancelKeepsDraft(t *testing.T) {
	m, ctrl := newTestModel(t)

	m = press(t, m, "a")
	m = typeText(t, m, "Milk")
	m = press(t, m, "esc")
	if m.modal != modalNone {
		t.Fatalf("expected modal closed")
	}
	if ctrl.Snapshot().Len() != 0 {
		t.Fatalf("cancel must not add")
	}

	m = press(t, m, "a")
	if got := m.add.name.Value(); got != "Milk" {
		t.Fatalf("expected draft to survive cancel, got %q", got)
	}
}

func TestAddModal_UnparseableQuantity(t *testing.T) {
	m, _ := newTestModel(t)
	m = addItem(t, m, "Milk", "abc")

	if got := itemsOf(m); len(got) != 1 || got[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %v", got)
	}
}

func TestAddModal_TypingShortcutKeysGoesToInput(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "a")
	m = typeText(t, m, "dq")
	if m.add.name.Value() != "dq" {
		t.Fatalf("expected shortcut letters to be typed, got %q", m.add.name.Value())
	}
	if m.modal != modalAddItem {
		t.Fatalf("expected modal to stay open")
	}
}

func TestEdit_InlineSave(t *testing.T) {
	m, ctrl := newTestModel(t)
	m = addItem(t, m, "Eggs", "12")
	m = addItem(t, m, "Bread", "2")

	m = press(t, m, "up", "e")
	if !m.editor.active || m.editor.id != 1 {
		t.Fatalf("expected editor on item 1, got active=%v id=%d", m.editor.active, m.editor.id)
	}
	if it, ok := ctrl.Snapshot().Editing(); !ok || it.ID != 1 {
		t.Fatalf("expected item 1 editing in controller")
	}
	if m.editor.name.Value() != "Eggs" || m.editor.qty.Value() != "12" {
		t.Fatalf("expected editor seeded with item values")
	}

	m = press(t, m, "tab", "ctrl+u")
	m = typeText(t, m, "6")
	m = press(t, m, "enter")

	if m.editor.active {
		t.Fatalf("expected editor closed after save")
	}
	want := []model.ShoppingItem{
		{ID: 1, Name: "Eggs", Quantity: 6},
		{ID: 2, Name: "Bread", Quantity: 2},
	}
	got := ctrl.Snapshot().Items
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("items=%v, want %v", got, want)
	}
}

func TestEdit_EscSavesOriginalValues(t *testing.T) {
	m, ctrl := newTestModel(t)
	m = addItem(t, m, "Eggs", "12")

	m = press(t, m, "e", "ctrl+u")
	m = typeText(t, m, "Ham")
	m = press(t, m, "esc")

	if m.editor.active {
		t.Fatalf("expected editor closed")
	}
	got := ctrl.Snapshot().Items[0]
	if got.Name != "Eggs" || got.Quantity != 12 || got.IsEditing {
		t.Fatalf("expected unchanged item, got %+v", got)
	}
}

func TestEdit_BlankNameIsSaved(t *testing.T) {
	m, ctrl := newTestModel(t)
	m = addItem(t, m, "Eggs", "12")

	m = press(t, m, "e", "ctrl+u", "enter")

	got := ctrl.Snapshot().Items[0]
	if got.Name != "" || got.Quantity != 12 || got.IsEditing {
		t.Fatalf("expected blank name saved, got %+v", got)
	}
	if v := m.View(); !strings.Contains(v, "Qty: 12") {
		t.Fatalf("expected the row to still render:\n%s", v)
	}
}

func TestEdit_LettersAreTypedNotShortcuts(t *testing.T) {
	m, ctrl := newTestModel(t)
	m = addItem(t, m, "Eggs", "12")

	m = press(t, m, "e", "ctrl+u")
	m = typeText(t, m, "dqa")
	m = press(t, m, "enter")

	got := ctrl.Snapshot().Items
	if len(got) != 1 || got[0].Name != "dqa" {
		t.Fatalf("expected rename to dqa, got %v", got)
	}
}

func TestDelete_SelectedItem(t *testing.T) {
	m, ctrl := newTestModel(t)
	m = addItem(t, m, "Eggs", "12")
	m = addItem(t, m, "Bread", "2")
	m = addItem(t, m, "Milk", "1")

	m = press(t, m, "up", "d")

	got := ctrl.Snapshot().Items
	if len(got) != 2 || got[0].Name != "Eggs" || got[1].Name != "Milk" {
		t.Fatalf("unexpected items after delete: %v", got)
	}
	if r, ok := selectedRow(m.list); !ok || r.item.Name != "Milk" {
		t.Fatalf("expected selection to move to the next row, got %+v", r)
	}
}

func TestDelete_EmptyListIsNoOp(t *testing.T) {
	m, ctrl := newTestModel(t)
	m = press(t, m, "d", "e")
	if ctrl.Snapshot().Version != 0 {
		t.Fatalf("expected no mutation on empty list")
	}
	if m.editor.active {
		t.Fatalf("expected no editor")
	}
}

func TestScreen_FollowsExternalIntents(t *testing.T) {
	m, ctrl := newTestModel(t)

	ctrl.Add("Eggs", "12")
	ctrl.BeginEdit(1)
	m = press(t, m, "down")

	if m.snap.Len() != 1 {
		t.Fatalf("expected screen to pick up the external add")
	}
	if !m.editor.active || m.editor.id != 1 {
		t.Fatalf("expected editor to follow the external begin-edit")
	}
}

func TestView_RendersItemsAndEmptyState(t *testing.T) {
	m, _ := newTestModel(t)
	if v := m.View(); !strings.Contains(v, "No items yet") {
		t.Fatalf("expected empty state, got:\n%s", v)
	}

	m = addItem(t, m, "Eggs", "12")
	v := m.View()
	for _, want := range []string{"Shopping List", "Eggs", "Qty: 12", "1 item"} {
		if !strings.Contains(v, want) {
			t.Fatalf("expected %q in view:\n%s", want, v)
		}
	}
}

func TestAddModal_ConfirmArmedOnlyWithName(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "a")
	if m.add.ready() {
		t.Fatalf("expected add not ready with an empty name")
	}
	m = typeText(t, m, " ")
	if m.add.ready() {
		t.Fatalf("expected add not ready with a blank name")
	}
	m = typeText(t, m, "Milk")
	if !m.add.ready() {
		t.Fatalf("expected add ready once a name is typed")
	}
}

func TestView_AddModal(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "a")
	v := m.View()
	if !strings.Contains(v, "Add Shopping Item") || !strings.Contains(v, "Cancel") {
		t.Fatalf("expected add modal in view:\n%s", v)
	}
}

func TestPreviewModal_OpenClose(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	m, _ := newTestModel(t)
	m = addItem(t, m, "Eggs", "12")

	m = press(t, m, "p")
	if m.modal != modalPreview {
		t.Fatalf("expected preview modal")
	}
	if v := m.View(); !strings.Contains(v, "Eggs") {
		t.Fatalf("expected item in preview:\n%s", v)
	}
	m = press(t, m, "esc")
	if m.modal != modalNone {
		t.Fatalf("expected preview closed")
	}
}

func TestCopy_UsesClipboard(t *testing.T) {
	var copied string
	prev := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = prev })

	m, _ := newTestModel(t)
	m = addItem(t, m, "Eggs", "12")
	m = press(t, m, "y")

	if !strings.Contains(copied, "Eggs × 12") {
		t.Fatalf("expected markdown list on clipboard, got %q", copied)
	}
	if m.minibufferText == "" {
		t.Fatalf("expected minibuffer feedback")
	}
}

func TestToggleGlyphs_SavesPreference(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvConfigDir, dir)
	t.Setenv(config.EnvTUIGlyphs, "")
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })
	setGlyphs(glyphSetUnicode)

	m, _ := newTestModel(t)
	m = press(t, m, "g")

	if glyphs() != glyphSetASCII {
		t.Fatalf("expected ascii glyphs")
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Glyphs() != "ascii" {
		t.Fatalf("expected saved glyph preference, got %q", cfg.Glyphs())
	}
}

func TestMinibuffer_AutoClear(t *testing.T) {
	m, _ := newTestModel(t)
	(&m).showMinibuffer("Hello")
	m.minibufferSetAt = m.minibufferSetAt.Add(-minibufferAutoClearAfter)

	mm, _ := m.Update(minibufferDoneMsg{seq: m.minibufferSeq})
	m = mm.(appModel)
	if m.minibufferText != "" {
		t.Fatalf("expected minibuffer cleared")
	}
}

func TestMinibuffer_StaleTimerIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	(&m).showMinibuffer("first")
	stale := m.minibufferSeq
	(&m).showMinibuffer("second")

	mm, _ := m.Update(minibufferDoneMsg{seq: stale})
	m = mm.(appModel)
	if m.minibufferText != "second" {
		t.Fatalf("expected newer message to remain, got %q", m.minibufferText)
	}
}

func TestQuit_Unsubscribes(t *testing.T) {
	m, ctrl := newTestModel(t)
	mm, cmd := m.Update(keyMsg("q"))
	m = mm.(appModel)
	if !isQuit(cmd) {
		t.Fatalf("expected quit command")
	}

	ctrl.Add("Eggs", "1")
	if _, fresh := m.sink.take(); fresh {
		t.Fatalf("expected no snapshot after quit")
	}
}
