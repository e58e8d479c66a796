package codec

import (
	"encoding/base64"
	"strings"
)

// Base64 returns a Codec between standard (padded) base64 strings and bytes.
func Base64() Codec[string, []byte] {
	return funcCodec[string, []byte]{
		dec: func(s string) ([]byte, error) {
			b, err := base64.StdEncoding.DecodeString(s)
			if err != nil {
				return nil, &FormatError{Format: "base64", Input: s, Cause: err}
			}
			return b, nil
		},
		enc: func(b []byte) (string, error) { return base64.StdEncoding.EncodeToString(b), nil },
	}
}

// Base64URL returns a Codec between unpadded URL-safe base64 strings and
// bytes. Padded input is accepted on decode.
func Base64URL() Codec[string, []byte] {
	return funcCodec[string, []byte]{
		dec: func(s string) ([]byte, error) {
			b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
			if err != nil {
				return nil, &FormatError{Format: "base64url", Input: s, Cause: err}
			}
			return b, nil
		},
		enc: func(b []byte) (string, error) { return base64.RawURLEncoding.EncodeToString(b), nil },
	}
}
