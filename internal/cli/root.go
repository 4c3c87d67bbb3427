package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"shoplist-cli/internal/config"
	"shoplist-cli/internal/format"
	"shoplist-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	PrettyJSON bool
	Format     string
	EnvFile    string
	Verbose    bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "shoplist",
		Short:        "Shopping list screen (in-memory TUI) + headless intent runner",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open the interactive list
  shoplist

  # Run a script of intents and print the resulting list
  printf 'add Eggs 12\nadd Bread 2\n' | shoplist apply --format edn
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive screen.
			if len(args) == 0 {
				return runTUI()
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := config.LoadEnvFile(app.EnvFile); err != nil {
			return writeErr(cmd, err)
		}
		// The env file may define SHOPLIST_FORMAT; explicit flags still win.
		if !cmd.Flags().Changed("format") {
			app.Format = config.EnvOr(config.EnvFormat, app.Format)
		}
		if !validFormat(app.Format) {
			return writeErr(cmd, fmt.Errorf("unknown format: %s (want %s)", app.Format, strings.Join(format.Names, "|")))
		}
		return nil
	}

	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", config.EnvOr(config.EnvFormat, "json"), "Output format (json|edn|yaml|md)")
	cmd.PersistentFlags().StringVar(&app.EnvFile, "env-file", ".env", "Load SHOPLIST_* variables from this file when it exists")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Log every intent to stderr")

	cmd.AddCommand(newApplyCmd(app))

	return cmd
}

func runTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return tui.Run(tui.Options{
		Config:       cfg,
		DebugLogPath: os.Getenv(config.EnvTUIDebugLog),
	})
}

func validFormat(f string) bool {
	f = strings.ToLower(strings.TrimSpace(f))
	switch f {
	case "yml", "markdown":
		return true
	}
	for _, n := range format.Names {
		if f == n {
			return true
		}
	}
	return false
}

func newLogger(cmd *cobra.Command, app *App) *slog.Logger {
	level := slog.LevelWarn
	if app.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
