package format

import (
	"fmt"
	"strings"

	"shoplist-cli/internal/model"
)

// Markdown renders a snapshot as a markdown checklist.
func Markdown(s model.Snapshot) string {
	var b strings.Builder
	b.WriteString("# Shopping list\n\n")
	if len(s.Items) == 0 {
		b.WriteString("_Nothing to buy._\n")
		return b.String()
	}
	for _, it := range s.Items {
		name := escapeMarkdown(it.Name)
		if it.IsEditing {
			name += " _(editing)_"
		}
		fmt.Fprintf(&b, "- [ ] %s × %d\n", name, it.Quantity)
	}
	fmt.Fprintf(&b, "\n%d items, %d units\n", len(s.Items), s.TotalQuantity())
	return b.String()
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
)

func escapeMarkdown(s string) string {
	return mdEscaper.Replace(s)
}
