package tui

import "shoplist-cli/internal/model"

type modalKind int

const (
	modalNone modalKind = iota
	modalAddItem
	modalPreview
)

type minibufferDoneMsg struct{ seq int }

// snapshotSink is the app's subscription to the controller. The controller calls
// receive synchronously inside a mutation; the app renders from latest.
type snapshotSink struct {
	latest  model.Snapshot
	pending bool
}

func (s *snapshotSink) receive(snap model.Snapshot) {
	s.latest = snap
	s.pending = true
}

// take returns the latest snapshot and whether it arrived since the last take.
func (s *snapshotSink) take() (model.Snapshot, bool) {
	fresh := s.pending
	s.pending = false
	return s.latest, fresh
}
