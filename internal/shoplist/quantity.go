package shoplist

import (
	"strconv"
	"strings"
)

const DefaultQuantity = 1

// ParseQuantity parses a user-entered quantity. Anything that is not a positive
// base-10 integer becomes DefaultQuantity.
func ParseQuantity(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 {
		return DefaultQuantity
	}
	return n
}
