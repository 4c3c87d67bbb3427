package main

import (
	"os"
	"strings"

	"shoplist-cli/internal/cli"
)

func isScriptFile(s string) bool {
	st, err := os.Stat(s)
	return err == nil && st.Mode().IsRegular()
}

func rewriteDirectScriptArgs(argv []string) []string {
	// Convenience: `shoplist <script-file>` works like `shoplist apply <script-file>`.
	//
	// Cobra treats the first non-flag token as a subcommand, so argv is rewritten before
	// parsing. Persistent flags may come first (`shoplist --format edn list.txt`), so look
	// for the first positional token rather than argv[1].
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--format":   true,
		"--env-file": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isScriptFile(argv[i+1]) {
				return insertAt(argv, i+1, "apply")
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++ // skip value if present
			}
			continue
		}

		// First positional token.
		if isScriptFile(a) {
			return insertAt(argv, i, "apply")
		}
		return argv
	}
	return argv
}

func insertAt(argv []string, i int, s string) []string {
	out := make([]string, 0, len(argv)+1)
	out = append(out, argv[:i]...)
	out = append(out, s)
	return append(out, argv[i:]...)
}

func main() {
	os.Args = rewriteDirectScriptArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
