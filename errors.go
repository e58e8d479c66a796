package skemap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/skemap/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeMissingValue  = "missing_value"
	CodeRequired      = "required"
	CodeInvalidType   = "invalid_type"
	CodeInvalidEnum   = "invalid_enum"
	CodeUnknownType   = "unknown_type"
	CodeDuplicateKey  = "duplicate_key"
	CodeParseError    = "parse_error"
	CodeTruncated     = "truncated"
	CodeInvalidFormat = "invalid_format"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string `json:"path"` // JSON Pointer (for example: /value/2/location).
	Code    string `json:"code"` // One of the codes listed above.
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`  // Owning model type, when known.
	Field   string `json:"field,omitempty"` // Offending local field name, when applicable.
	Cause   error  `json:"-"`               // Optional: underlying error.
	// Params carries structured parameters (e.g., {"allowed": [...], "got": "x"})
	// for i18n and observability.
	Params map[string]any `json:"params,omitempty"`
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// issuer is implemented by every typed engine error.
type issuer interface {
	error
	Issue() Issue
}

// ToIssues projects any engine error onto the Issues model. Errors that are
// not engine errors become a single parse_error issue.
func ToIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var is issuer
	if errors.As(err, &is) {
		return AppendIssues(nil, is.Issue())
	}
	return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err})
}

// MissingValueError reports an absent required top-level value.
type MissingValueError struct {
	TypeName string
	Path     string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("skemap: %s: %s (at %s)", e.TypeName, i18n.T(CodeMissingValue, nil), e.Path)
}

func (e *MissingValueError) Issue() Issue {
	return Issue{Path: e.Path, Code: CodeMissingValue, Type: e.TypeName, Message: e.Error()}
}

// MissingFieldError reports an absent or null required field.
type MissingFieldError struct {
	TypeName string
	Field    string
	Path     string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("skemap: %s: %s %q (at %s)", e.TypeName, i18n.T(CodeRequired, nil), e.Field, e.Path)
}

func (e *MissingFieldError) Issue() Issue {
	return Issue{Path: e.Path, Code: CodeRequired, Type: e.TypeName, Field: e.Field, Message: e.Error()}
}

// TypeMismatchError reports a present value whose underlying type does not
// match the declared kind.
type TypeMismatchError struct {
	TypeName string
	Field    string
	Path     string
	Expected TypeName
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("skemap: %s: %s for %q: expected %s, got %s (at %s)",
		e.TypeName, i18n.T(CodeInvalidType, nil), e.Field, e.Expected, e.Got, e.Path)
}

func (e *TypeMismatchError) Issue() Issue {
	return Issue{
		Path: e.Path, Code: CodeInvalidType, Type: e.TypeName, Field: e.Field, Message: e.Error(),
		Params: map[string]any{"expected": string(e.Expected), "got": e.Got},
	}
}

// InvalidFormatError reports a string of a formatted kind (DateTime,
// ByteArray, TimeSpan, ...) that does not parse in the kind's wire format.
type InvalidFormatError struct {
	TypeName string
	Field    string
	Path     string
	Kind     TypeName
	Value    string
	Cause    error
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("skemap: %s: %s for %q: %q is not a %s (at %s)",
		e.TypeName, i18n.T(CodeInvalidFormat, nil), e.Field, e.Value, e.Kind, e.Path)
}

func (e *InvalidFormatError) Unwrap() error { return e.Cause }

func (e *InvalidFormatError) Issue() Issue {
	return Issue{
		Path: e.Path, Code: CodeInvalidFormat, Type: e.TypeName, Field: e.Field, Message: e.Error(), Cause: e.Cause,
		Params: map[string]any{"format": string(e.Kind), "got": e.Value},
	}
}

// InvalidEnumValueError reports a value outside the allowed set.
type InvalidEnumValueError struct {
	TypeName string
	Field    string
	Path     string
	Value    any
	Allowed  []string
}

func (e *InvalidEnumValueError) Error() string {
	quoted := make([]string, len(e.Allowed))
	for i, a := range e.Allowed {
		quoted[i] = fmt.Sprintf("%q", a)
	}
	return fmt.Sprintf("skemap: %s: %s %#v for %q, allowed [%s] (at %s)",
		e.TypeName, i18n.T(CodeInvalidEnum, nil), e.Value, e.Field, strings.Join(quoted, ", "), e.Path)
}

func (e *InvalidEnumValueError) Issue() Issue {
	return Issue{
		Path: e.Path, Code: CodeInvalidEnum, Type: e.TypeName, Field: e.Field, Message: e.Error(),
		Params: map[string]any{"allowed": append([]string(nil), e.Allowed...), "got": e.Value},
	}
}

// UnknownTypeError reports a type name absent from the Registry. It signals a
// broken model graph rather than bad input and should not be retried.
type UnknownTypeError struct {
	Name string
	// Referrer is "Type.field" of the referencing property, when known.
	Referrer string
}

func (e *UnknownTypeError) Error() string {
	if e.Referrer != "" {
		return fmt.Sprintf("skemap: %s %q (referenced by %s)", i18n.T(CodeUnknownType, nil), e.Name, e.Referrer)
	}
	return fmt.Sprintf("skemap: %s %q", i18n.T(CodeUnknownType, nil), e.Name)
}

func (e *UnknownTypeError) Issue() Issue {
	return Issue{
		Path: "/", Code: CodeUnknownType, Type: e.Name, Message: e.Error(),
		Params: map[string]any{"referrer": e.Referrer},
	}
}
