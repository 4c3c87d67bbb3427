package tui

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// newDebugLogger writes debug records to path when set; otherwise everything is
// discarded. Records carry a per-session id so runs can be told apart in a shared file.
func newDebugLogger(path string) (*slog.Logger, io.Closer) {
	path = strings.TrimSpace(path)
	if path == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return slog.New(slog.DiscardHandler), nopCloser{}
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h).With("session", uuid.NewString()), f
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
