package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"shoplist-cli/internal/model"
	"shoplist-cli/internal/script"
	"shoplist-cli/internal/shoplist"

	"github.com/spf13/cobra"
)

func newApplyCmd(app *App) *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "apply [file]",
		Short: "Apply a script of intents to a fresh list and print the result",
		Long: strings.TrimSpace(`
Reads one intent per line (stdin when file is omitted or "-"):

  add <name> [quantity]
  edit <id>
  save <id> <name> [quantity]
  delete <id>

Blank lines and lines starting with # are ignored. Intents that reference unknown ids
or add a blank name are skipped, exactly as on the interactive screen.`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, closeFn, err := openScript(cmd, args)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeFn()

			steps, err := script.Parse(r)
			if err != nil {
				return writeErr(cmd, err)
			}
			return runSteps(cmd, app, steps, trace)
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "Print the list after every applied intent")
	return cmd
}

func openScript(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open script: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

type applyMeta struct {
	Steps   int   `json:"steps" yaml:"steps"`
	Applied int   `json:"applied" yaml:"applied"`
	Skipped []int `json:"skippedLines" yaml:"skippedLines"`
}

type traceMeta struct {
	Line   int    `json:"line" yaml:"line"`
	Intent string `json:"intent" yaml:"intent"`
}

func runSteps(cmd *cobra.Command, app *App, steps []script.Step, trace bool) error {
	log := newLogger(cmd, app)
	ctrl := shoplist.NewController(shoplist.WithLogger(log))

	var cur script.Step
	var writeErrOnce error
	if trace {
		initial := true
		unsub := ctrl.Subscribe(func(s model.Snapshot) {
			if initial || writeErrOnce != nil {
				return
			}
			writeErrOnce = writeOut(cmd, app, envelope(app, s, traceMeta{Line: cur.Line, Intent: cur.Intent.String()}))
		})
		initial = false
		defer unsub()
	}

	meta := applyMeta{Steps: len(steps), Skipped: []int{}}
	for _, st := range steps {
		cur = st
		if ctrl.Apply(st.Intent) {
			meta.Applied++
			continue
		}
		meta.Skipped = append(meta.Skipped, st.Line)
		log.Info("intent had no effect", "line", st.Line, "intent", st.Intent.String())
	}
	if writeErrOnce != nil {
		return writeErr(cmd, writeErrOnce)
	}
	if trace && meta.Applied > 0 {
		return nil
	}
	// Without any applied intent the trace is empty; fall back to the final document.
	return writeOut(cmd, app, envelope(app, ctrl.Snapshot(), meta))
}

// envelope wraps a snapshot as {"data": ..., "meta": ...}. Markdown output has no room
// for metadata and gets the bare snapshot.
func envelope(app *App, s model.Snapshot, meta any) any {
	switch strings.ToLower(strings.TrimSpace(app.Format)) {
	case "md", "markdown":
		return s
	}
	return map[string]any{"data": s, "meta": meta}
}
