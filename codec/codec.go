// Package codec converts primitive wire representations (strings and numbers
// found in JSON payloads) into their domain types and back.
package codec

import "fmt"

// Codec performs a bidirectional transformation between the wire
// representation W and the domain representation D.
type Codec[W, D any] interface {
	Decode(w W) (D, error) // wire -> domain
	Encode(d D) (W, error) // domain -> wire (canonical form)
}

// FormatError reports a wire value that does not match the expected format.
type FormatError struct {
	Format string // e.g. "date-time", "base64"
	Input  string
	Cause  error
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("codec: invalid %s %q: %v", e.Format, e.Input, e.Cause)
	}
	return fmt.Sprintf("codec: invalid %s %q", e.Format, e.Input)
}

func (e *FormatError) Unwrap() error { return e.Cause }

// funcCodec adapts a pair of functions to Codec.
type funcCodec[W, D any] struct {
	dec func(W) (D, error)
	enc func(D) (W, error)
}

func (c funcCodec[W, D]) Decode(w W) (D, error) { return c.dec(w) }
func (c funcCodec[W, D]) Encode(d D) (W, error) { return c.enc(d) }
