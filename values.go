package skemap

import (
	"bytes"
	"fmt"
	"reflect"
	"time"

	json "github.com/goccy/go-json"

	"github.com/reoring/skemap/codec"
)

// isNull reports whether v is JSON null: nil or a nil pointer.
func isNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// asObject returns v as a JSON object. Typed Go values (structs, typed maps)
// are normalized through their JSON encoding.
func asObject(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case nil, string, bool, json.Number, []any, []byte, time.Time:
		return nil, false
	}
	if !normalizable(v) {
		return nil, false
	}
	n, ok := normalize(v)
	if !ok {
		return nil, false
	}
	m, ok := n.(map[string]any)
	return m, ok
}

// asSlice returns v as an ordered collection. []byte is a primitive, not a
// sequence.
func asSlice(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case nil, []byte, string:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func normalizable(v any) bool {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		return true
	case reflect.Map:
		return rv.Type().Key().Kind() == reflect.String
	}
	return false
}

// normalize converts a typed Go value into the generic value tree by way of
// its JSON encoding.
func normalize(v any) (any, bool) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, false
	}
	return out, true
}

// IsNumber reports whether v is a JSON number or a Go numeric value.
func IsNumber(v any) bool {
	switch v.(type) {
	case json.Number, float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

// describe names the JSON kind of v for error messages.
func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	if IsNumber(v) {
		return "number"
	}
	return fmt.Sprintf("%T", v)
}

// wireGet reads a possibly nested wire path.
func wireGet(obj map[string]any, path []string) (any, bool) {
	cur := obj
	for i, seg := range path {
		v, ok := cur[seg]
		if !ok {
			return nil, false
		}
		if i == len(path)-1 {
			return v, true
		}
		next, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return nil, false
}

// wireSet writes a possibly nested wire path, creating intermediate objects.
func wireSet(obj map[string]any, path []string, v any) {
	cur := obj
	for _, seg := range path[:len(path)-1] {
		next, ok := cur[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			cur[seg] = next
		}
		cur = next
	}
	cur[path[len(path)-1]] = v
}

// wireDelete removes a nested wire path and prunes containers it empties.
func wireDelete(obj map[string]any, path []string) {
	if len(path) == 1 {
		delete(obj, path[0])
		return
	}
	next, ok := obj[path[0]].(map[string]any)
	if !ok {
		return
	}
	wireDelete(next, path[1:])
	if len(next) == 0 {
		delete(obj, path[0])
	}
}

// checkPrimitive reports whether the JSON kind of v fits kind k. Formatted
// kinds accept any string; decoded domain values are accepted as well.
func checkPrimitive(k TypeName, v any) bool {
	switch k {
	case TypeObject:
		return true
	case TypeString:
		_, ok := v.(string)
		return ok
	case TypeNumber:
		return IsNumber(v)
	case TypeBoolean:
		_, ok := v.(bool)
		return ok
	case TypeUnixTime:
		_, ok := v.(time.Time)
		return ok || IsNumber(v)
	}
	switch v.(type) {
	case string:
		return true
	case []byte:
		return k == TypeByteArray || k == TypeBase64Url
	case time.Time:
		return k == TypeDateTime || k == TypeDateTimeRfc1123 || k == TypeDate
	case time.Duration:
		return k == TypeTimeSpan
	}
	return false
}

// checkFormat parses a wire string of a formatted kind. Values that are not
// strings, and kinds without a wire format, always pass.
func checkFormat(k TypeName, v any) error {
	s, ok := v.(string)
	if !ok || k == TypeString || k == TypeObject {
		return nil
	}
	_, err := decodePrimitive(k, s)
	return err
}

// decodePrimitive converts a wire string of kind k into its domain value.
func decodePrimitive(k TypeName, s string) (any, error) {
	switch k {
	case TypeByteArray:
		return codec.Base64().Decode(s)
	case TypeBase64Url:
		return codec.Base64URL().Decode(s)
	case TypeDateTime:
		return codec.DateTime().Decode(s)
	case TypeDateTimeRfc1123:
		return codec.DateTimeRFC1123().Decode(s)
	case TypeDate:
		return codec.Date().Decode(s)
	case TypeTimeSpan:
		return codec.Duration().Decode(s)
	}
	return s, nil
}

// decodeFormatted converts v into the domain value of kind k when v is in
// wire form; anything else is returned unchanged.
func decodeFormatted(k TypeName, v any) any {
	if k == TypeUnixTime {
		if n, ok := toInt64(v); ok {
			t, _ := codec.UnixTime().Decode(n)
			return t
		}
		return v
	}
	s, ok := v.(string)
	if !ok {
		return v
	}
	out, err := decodePrimitive(k, s)
	if err != nil {
		return v
	}
	return out
}

// encodeFormatted converts a domain value of kind k into its wire form.
func encodeFormatted(k TypeName, v any) any {
	switch t := v.(type) {
	case time.Time:
		var s string
		switch k {
		case TypeDateTimeRfc1123:
			s, _ = codec.DateTimeRFC1123().Encode(t)
		case TypeDate:
			s, _ = codec.Date().Encode(t)
		case TypeUnixTime:
			n, _ := codec.UnixTime().Encode(t)
			return n
		default:
			s, _ = codec.DateTime().Encode(t)
		}
		return s
	case []byte:
		var s string
		if k == TypeBase64Url {
			s, _ = codec.Base64URL().Encode(t)
		} else {
			s, _ = codec.Base64().Encode(t)
		}
		return s
	case time.Duration:
		s, _ := codec.Duration().Encode(t)
		return s
	}
	return v
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			f, ferr := n.Float64()
			if ferr != nil {
				return 0, false
			}
			return int64(f), true
		}
		return i, true
	case float64:
		return int64(n), true
	case float32:
		return int64(n), true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint32:
		return int64(n), true
	}
	return 0, false
}
