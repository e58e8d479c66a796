package servicebus

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// EncodeJSON writes the listed properties of resource as a JSON object
// keyed by wire names, in list order.
func (k Kind) EncodeJSON(resource any) ([]byte, error) {
	pairs, err := k.Select(resource)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Wire)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
