package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"shoplist-cli/internal/model"
)

// Names lists the supported output formats, default first.
var Names = []string{"json", "edn", "yaml", "md"}

// Write writes v in the requested format.
//
// Supported formats:
// - json (default)
// - edn
// - yaml
// - md (snapshots only)
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "edn":
		return WriteEDN(w, v, pretty)
	case "yaml", "yml":
		return WriteYAML(w, v)
	case "md", "markdown":
		return writeMarkdownValue(w, v)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteYAML writes one YAML document. Multiple calls produce a multi-document stream.
func WriteYAML(w io.Writer, v any) error {
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeMarkdownValue(w io.Writer, v any) error {
	switch t := v.(type) {
	case model.Snapshot:
		_, err := io.WriteString(w, Markdown(t))
		return err
	case *model.Snapshot:
		if t == nil {
			return fmt.Errorf("md format: nil snapshot")
		}
		_, err := io.WriteString(w, Markdown(*t))
		return err
	default:
		return fmt.Errorf("md format only supports shopping list snapshots, got %T", v)
	}
}
