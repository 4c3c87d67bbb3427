package shoplist

import "fmt"

type InvalidInputError struct {
	Field string
	Value string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

type UnknownIDError struct {
	ID int
}

func (e UnknownIDError) Error() string {
	return fmt.Sprintf("item not found: %d", e.ID)
}
