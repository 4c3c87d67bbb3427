// Package script reads shopping list intents from a line-oriented text format:
//
//	add <name> [quantity]
//	edit <id>
//	save <id> <name> [quantity]
//	delete <id>
//
// Blank lines and lines starting with '#' are ignored. Words may be quoted.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"shoplist-cli/internal/shoplist"
)

type ParseError struct {
	Line int
	Msg  string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Step is one parsed intent with its source line number.
type Step struct {
	Line   int
	Intent shoplist.Intent
}

func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		in, err := ParseLine(line)
		if err != nil {
			return nil, ParseError{Line: n, Msg: err.Error()}
		}
		steps = append(steps, Step{Line: n, Intent: in})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return steps, nil
}

// ParseLine parses a single intent line.
func ParseLine(line string) (shoplist.Intent, error) {
	words := splitWords(line)
	if len(words) == 0 {
		return shoplist.Intent{}, fmt.Errorf("empty line")
	}
	verb, args := strings.ToLower(words[0]), words[1:]

	switch verb {
	case "add":
		if len(args) < 1 || len(args) > 2 {
			return shoplist.Intent{}, fmt.Errorf("usage: add <name> [quantity]")
		}
		return shoplist.AddIntent(args[0], optional(args, 1)), nil

	case "edit":
		if len(args) != 1 {
			return shoplist.Intent{}, fmt.Errorf("usage: edit <id>")
		}
		id, err := parseID(args[0])
		if err != nil {
			return shoplist.Intent{}, err
		}
		return shoplist.BeginEditIntent(id), nil

	case "save":
		if len(args) < 2 || len(args) > 3 {
			return shoplist.Intent{}, fmt.Errorf("usage: save <id> <name> [quantity]")
		}
		id, err := parseID(args[0])
		if err != nil {
			return shoplist.Intent{}, err
		}
		return shoplist.CompleteEditIntent(id, args[1], optional(args, 2)), nil

	case "delete", "rm":
		if len(args) != 1 {
			return shoplist.Intent{}, fmt.Errorf("usage: delete <id>")
		}
		id, err := parseID(args[0])
		if err != nil {
			return shoplist.Intent{}, err
		}
		return shoplist.DeleteIntent(id), nil

	default:
		return shoplist.Intent{}, fmt.Errorf("unknown command: %s", words[0])
	}
}

func optional(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid id: %q", s)
	}
	return id, nil
}
