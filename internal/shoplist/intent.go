package shoplist

import "fmt"

type IntentKind string

const (
	IntentAdd          IntentKind = "add"
	IntentBeginEdit    IntentKind = "begin-edit"
	IntentCompleteEdit IntentKind = "complete-edit"
	IntentDelete       IntentKind = "delete"
)

// Intent is one user request forwarded by a rendering layer.
// Name and QuantityText are only read by add and complete-edit.
type Intent struct {
	Kind         IntentKind `json:"kind"`
	ID           int        `json:"id,omitempty"`
	Name         string     `json:"name,omitempty"`
	QuantityText string     `json:"quantity,omitempty"`
}

func AddIntent(name, quantityText string) Intent {
	return Intent{Kind: IntentAdd, Name: name, QuantityText: quantityText}
}

func BeginEditIntent(id int) Intent {
	return Intent{Kind: IntentBeginEdit, ID: id}
}

func CompleteEditIntent(id int, name, quantityText string) Intent {
	return Intent{Kind: IntentCompleteEdit, ID: id, Name: name, QuantityText: quantityText}
}

func DeleteIntent(id int) Intent {
	return Intent{Kind: IntentDelete, ID: id}
}

func (in Intent) String() string {
	switch in.Kind {
	case IntentAdd:
		return fmt.Sprintf("add name=%q quantity=%q", in.Name, in.QuantityText)
	case IntentBeginEdit:
		return fmt.Sprintf("begin-edit id=%d", in.ID)
	case IntentCompleteEdit:
		return fmt.Sprintf("complete-edit id=%d name=%q quantity=%q", in.ID, in.Name, in.QuantityText)
	case IntentDelete:
		return fmt.Sprintf("delete id=%d", in.ID)
	default:
		return fmt.Sprintf("unknown(%s)", in.Kind)
	}
}

// Reduce applies in to s. Unknown intent kinds leave s unchanged.
func Reduce(s State, in Intent) (Result, error) {
	switch in.Kind {
	case IntentAdd:
		return Add(s, in.Name, in.QuantityText)
	case IntentBeginEdit:
		return BeginEdit(s, in.ID)
	case IntentCompleteEdit:
		return CompleteEdit(s, in.ID, in.Name, in.QuantityText)
	case IntentDelete:
		return Delete(s, in.ID)
	default:
		return unchanged(s), InvalidInputError{Field: "intent", Value: string(in.Kind)}
	}
}
