// Package middleware validates JSON request bodies against registered types
// at HTTP boundaries. Framework adapters live in the echo and gin
// submodules.
package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"

	json "github.com/goccy/go-json"

	skemap "github.com/reoring/skemap"
)

// Decoded is a request body that passed validation, in local form.
type Decoded struct {
	Type  string
	Value any
}

// ctxKeyDecoded is the context key for Decoded.
type ctxKeyDecoded struct{}

// ContextWithDecoded attaches d to the context.
func ContextWithDecoded(ctx context.Context, d Decoded) context.Context {
	return context.WithValue(ctx, ctxKeyDecoded{}, d)
}

// DecodedFromContext retrieves the Decoded body from context.
func DecodedFromContext(ctx context.Context) (Decoded, bool) {
	v, ok := ctx.Value(ctxKeyDecoded{}).(Decoded)
	return v, ok
}

// Bind converts the decoded body stored in ctx into T.
func Bind[T any](ctx context.Context) (T, error) {
	d, ok := DecodedFromContext(ctx)
	if !ok {
		var zero T
		return zero, ErrNoBody
	}
	return skemap.Bind[T](d.Value)
}

// ErrNoBody is returned by Bind when no decoded body is in the context.
var ErrNoBody = errors.New("middleware: no decoded body in context")

// DefaultParseOpt returns a recommended default for HTTP JSON boundaries.
// - Duplicate keys are errors
// - Bodies are limited to 4 MiB
func DefaultParseOpt() skemap.ParseOpt {
	return skemap.ParseOpt{
		Strictness: skemap.Strictness{OnDuplicateKey: skemap.Error},
		MaxBytes:   4 << 20,
	}
}

// Decode reads a JSON body, validates it as typeName and deserializes it.
func Decode(e *skemap.Engine, typeName string, body io.Reader, opt skemap.ParseOpt) (Decoded, error) {
	raw, err := skemap.DecodeJSONReader(body, opt, nil)
	if err != nil {
		return Decoded{}, err
	}
	if err := e.Validate(typeName, raw); err != nil {
		return Decoded{}, err
	}
	v, err := e.Deserialize(typeName, raw)
	if err != nil {
		return Decoded{}, err
	}
	return Decoded{Type: typeName, Value: v}, nil
}

// ErrorPayload shapes Issues for JSON responses.
func ErrorPayload(err error) map[string]any {
	return map[string]any{"issues": skemap.ToIssues(err)}
}

// ValidateJSON is net/http middleware that decodes the request body as
// typeName, stores it in the request context on success, and answers 400
// with the issues otherwise. A zero opt means DefaultParseOpt.
func ValidateJSON(e *skemap.Engine, typeName string, opt skemap.ParseOpt) func(http.Handler) http.Handler {
	if opt == (skemap.ParseOpt{}) {
		opt = DefaultParseOpt()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d, err := Decode(e, typeName, r.Body, opt)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(ErrorPayload(err))
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithDecoded(r.Context(), d)))
		})
	}
}
