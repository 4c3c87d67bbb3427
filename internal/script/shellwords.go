package script

import "unicode"

// splitWords splits one script line into words, handling basic quoting.
// It supports single quotes, double quotes, and backslash escaping (outside single quotes).
// An explicitly quoted empty string ("" or '') is kept as an empty word.
func splitWords(s string) []string {
	var out []string
	var cur []rune
	inSingle := false
	inDouble := false
	escaped := false
	quoted := false

	flush := func() {
		if len(cur) == 0 && !quoted {
			return
		}
		out = append(out, string(cur))
		cur = cur[:0]
		quoted = false
	}

	for _, r := range s {
		if escaped {
			cur = append(cur, r)
			escaped = false
			continue
		}

		if r == '\\' && !inSingle {
			escaped = true
			continue
		}

		if r == '\'' && !inDouble {
			inSingle = !inSingle
			quoted = true
			continue
		}

		if r == '"' && !inSingle {
			inDouble = !inDouble
			quoted = true
			continue
		}

		if !inSingle && !inDouble && unicode.IsSpace(r) {
			flush()
			continue
		}

		cur = append(cur, r)
	}

	flush()
	return out
}
