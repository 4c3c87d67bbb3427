package tui

import (
	"log/slog"
	"time"

	"shoplist-cli/internal/config"
	"shoplist-cli/internal/model"
	"shoplist-cli/internal/shoplist"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type appModel struct {
	ctrl        *shoplist.Controller
	sink        *snapshotSink
	unsubscribe func()
	// snap is the snapshot the screen currently renders.
	snap   model.Snapshot
	synced bool

	cfg *config.Config
	log *slog.Logger

	width  int
	height int

	list   list.Model
	editor *itemEditor

	modal modalKind
	add   addForm

	keys     keyMap
	formKeys formKeyMap
	help     help.Model

	minibufferText  string
	minibufferErr   bool
	minibufferSetAt time.Time
	minibufferSeq   int
}

const (
	defaultWidth  = 80
	defaultHeight = 24
	maxContentW   = 96
	// header + blank + blank + footer
	chromeLines = 4

	minibufferAutoClearAfter = 3 * time.Second
)

type appOptions struct {
	cfg *config.Config
	log *slog.Logger
}

func newAppModel(ctrl *shoplist.Controller, opts appOptions) appModel {
	if opts.cfg == nil {
		opts.cfg = &config.Config{}
	}
	if opts.log == nil {
		opts.log = slog.New(slog.DiscardHandler)
	}

	m := appModel{
		ctrl:     ctrl,
		sink:     &snapshotSink{},
		cfg:      opts.cfg,
		log:      opts.log,
		editor:   newItemEditor(),
		add:      newAddForm(opts.cfg.DefaultQuantity()),
		keys:     defaultKeyMap(),
		formKeys: defaultFormKeyMap(),
		help:     help.New(),
	}
	m.list = newList(nil, newShoppingItemDelegate(m.editor))
	m.unsubscribe = ctrl.Subscribe(m.sink.receive)
	m.resize(defaultWidth, defaultHeight)
	m.syncSnapshot()
	return m
}

func (m *appModel) contentWidth() int {
	w := m.width
	if w > maxContentW {
		w = maxContentW
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m *appModel) resize(w, h int) {
	m.width = w
	m.height = h
	listH := h - chromeLines
	if listH < 3 {
		listH = 3
	}
	m.list.SetSize(m.contentWidth(), listH)
	m.editor.resize(m.contentWidth())
	m.help.Width = m.contentWidth()
}

// syncSnapshot pulls the latest snapshot from the subscription (if any arrived) and
// rebuilds the rows. The selection follows the previously selected item when it still
// exists.
func (m *appModel) syncSnapshot() tea.Cmd {
	snap, fresh := m.sink.take()
	if !fresh {
		return nil
	}
	prevLen := m.snap.Len()
	curID := 0
	if r, ok := selectedRow(m.list); ok {
		curID = r.item.ID
	}
	m.snap = snap
	m.list.SetItems(rowsFromSnapshot(snap))

	switch {
	case m.synced && snap.Len() > prevLen:
		// New items are always appended; follow them.
		m.list.Select(snap.Len() - 1)
	case curID != 0:
		if !selectListItemByID(&m.list, curID) && m.list.Index() >= snap.Len() && snap.Len() > 0 {
			m.list.Select(snap.Len() - 1)
		}
	}

	m.synced = true
	m.log.Debug("snapshot rendered", "version", snap.Version, "items", snap.Len())

	if it, ok := snap.Editing(); ok {
		if !m.editor.active || m.editor.id != it.ID {
			selectListItemByID(&m.list, it.ID)
			return m.editor.start(it)
		}
	} else if m.editor.active {
		m.editor.stop()
	}
	return nil
}

func (m *appModel) showMinibuffer(text string) {
	m.minibufferText = text
	m.minibufferErr = false
	m.minibufferSetAt = time.Now()
	m.minibufferSeq++
}

func (m *appModel) showMinibufferError(text string) {
	m.showMinibuffer(text)
	m.minibufferErr = true
}

func (m *appModel) close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}
