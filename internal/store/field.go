package store

import "encoding/json"

// Field is an optional value for partial updates. Unlike a plain pointer it
// distinguishes a key that was absent from one explicitly set to null: Set is
// true whenever the key appeared in the request body, and a JSON null leaves
// Value at the type's zero value.
type Field[T any] struct {
	Value T
	Set   bool
}

// UnmarshalJSON is only invoked for keys present in the document, so Set
// records key presence.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		var zero T
		f.Value = zero
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}

// MarshalJSON round-trips the wrapped value.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Value)
}
