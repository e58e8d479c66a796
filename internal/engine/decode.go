package engine

import (
	"errors"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
)

// ErrTrailingData reports input that continues after the first JSON value.
var ErrTrailingData = errors.New("engine: unexpected data after top-level value")

// NumberConv materializes a number token.
type NumberConv func(string) (any, error)

// AsJSONNumber keeps numbers as json.Number.
func AsJSONNumber(s string) (any, error) { return json.Number(s), nil }

// AsFloat64 decodes numbers as float64.
func AsFloat64(s string) (any, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// DecodeAny builds a value tree from exactly one JSON value in src.
func DecodeAny(src TokenSource, conv NumberConv) (any, error) {
	if conv == nil {
		conv = AsJSONNumber
	}
	tok, err := src.NextToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	v, err := decodeValue(src, tok, conv)
	if err != nil {
		return nil, err
	}
	if _, err := src.NextToken(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, ErrTrailingData
	}
	return v, nil
}

func decodeValue(src TokenSource, tok Token, conv NumberConv) (any, error) {
	switch tok.Kind {
	case KindBeginObject:
		m := make(map[string]any)
		for {
			kt, err := next(src)
			if err != nil {
				return nil, err
			}
			if kt.Kind == KindEndObject {
				return m, nil
			}
			if kt.Kind != KindKey {
				return nil, io.ErrUnexpectedEOF
			}
			vt, err := next(src)
			if err != nil {
				return nil, err
			}
			v, err := decodeValue(src, vt, conv)
			if err != nil {
				return nil, err
			}
			m[kt.String] = v
		}
	case KindBeginArray:
		arr := []any{}
		for {
			t, err := next(src)
			if err != nil {
				return nil, err
			}
			if t.Kind == KindEndArray {
				return arr, nil
			}
			v, err := decodeValue(src, t, conv)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
	case KindString:
		return tok.String, nil
	case KindNumber:
		return conv(tok.Number)
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

// next treats EOF inside a container as truncated input.
func next(src TokenSource) (Token, error) {
	t, err := src.NextToken()
	if errors.Is(err, io.EOF) {
		return Token{}, io.ErrUnexpectedEOF
	}
	return t, err
}
