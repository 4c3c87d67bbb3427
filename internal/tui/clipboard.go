package tui

import (
	"strings"

	"github.com/atotto/clipboard"
)

// writeClipboard is swapped out in tests.
var writeClipboard = func(s string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(s)
}

func copyToClipboard(s string) error {
	return writeClipboard(strings.ReplaceAll(s, "\r\n", "\n"))
}

type clipboardError string

func (e clipboardError) Error() string { return string(e) }

const errClipboardUnsupported = clipboardError("no clipboard utility found (install wl-copy, xclip or xsel)")
