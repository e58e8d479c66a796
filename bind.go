package skemap

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Bind converts a deserialized value tree into T through its JSON encoding.
// Struct tags of T name local property names. time.Time and []byte fields
// accept both decoded values and their wire strings.
func Bind[T any](v any) (T, error) {
	var out T
	b, err := json.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("skemap: bind %T: %w", out, err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("skemap: bind %T: %w", out, err)
	}
	return out, nil
}

// DeserializeInto deserializes raw as typeName and binds the result to T.
func DeserializeInto[T any](e *Engine, typeName string, raw any) (T, error) {
	var zero T
	v, err := e.Deserialize(typeName, raw)
	if err != nil {
		return zero, err
	}
	return Bind[T](v)
}
