package task

import "encoding/json"

type slot uint8

const (
	slotAbsent slot = iota
	slotCleared
	slotSet
)

// Opt is one field of a partial update. The zero value means the field was
// not supplied; Clear asks for the field to be emptied; Set carries a value.
type Opt[T any] struct {
	state slot
	value T
}

func Set[T any](v T) Opt[T] {
	return Opt[T]{state: slotSet, value: v}
}

func Clear[T any]() Opt[T] {
	return Opt[T]{state: slotCleared}
}

func (o Opt[T]) IsAbsent() bool  { return o.state == slotAbsent }
func (o Opt[T]) IsCleared() bool { return o.state == slotCleared }
func (o Opt[T]) IsSet() bool     { return o.state == slotSet }

// Get returns the value and whether one was set.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.state == slotSet
}

// UnmarshalJSON maps a JSON null to Clear. Keys missing from the document
// never reach here and stay absent.
func (o *Opt[T]) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*o = Clear[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = Set(v)
	return nil
}
