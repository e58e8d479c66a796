package skemap_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	skemap "github.com/reoring/skemap"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := skemap.Issues{
		{Path: "/a", Code: skemap.CodeInvalidType},
		{Path: "/b", Code: skemap.CodeRequired},
		{Path: "/c", Code: skemap.CodeInvalidEnum},
		{Path: "/d", Code: skemap.CodeDuplicateKey},
	}
	want := "invalid_type at /a; required at /b; invalid_enum at /c; ... (total 4)"
	if got := iss.Error(); got != want {
		t.Fatalf("summary:\n got %q\nwant %q", got, want)
	}
	if (skemap.Issues{}).Error() != "" {
		t.Fatal("empty issues should have an empty summary")
	}
}

func TestAsIssues_Wrapped(t *testing.T) {
	err := fmt.Errorf("decode body: %w", skemap.Issues{{Path: "/x", Code: skemap.CodeParseError}})
	iss, ok := skemap.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Path != "/x" {
		t.Fatalf("AsIssues: %v %v", iss, ok)
	}
	if _, ok := skemap.AsIssues(errors.New("plain")); ok {
		t.Fatal("plain errors carry no issues")
	}
}

func TestToIssues_Codes(t *testing.T) {
	cases := []struct {
		err  error
		code string
		path string
	}{
		{&skemap.MissingValueError{TypeName: "Usage", Path: "/"}, skemap.CodeMissingValue, "/"},
		{&skemap.MissingFieldError{TypeName: "Usage", Field: "unit", Path: "/unit"}, skemap.CodeRequired, "/unit"},
		{&skemap.TypeMismatchError{TypeName: "Usage", Field: "limit", Path: "/limit", Expected: skemap.TypeNumber, Got: "string"}, skemap.CodeInvalidType, "/limit"},
		{&skemap.InvalidEnumValueError{TypeName: "Usage", Field: "unit", Path: "/unit", Value: "Liters", Allowed: []string{"Count"}}, skemap.CodeInvalidEnum, "/unit"},
		{&skemap.UnknownTypeError{Name: "Ghost", Referrer: "Holder.child"}, skemap.CodeUnknownType, "/"},
		{&skemap.InvalidFormatError{TypeName: "Stamp", Field: "at", Path: "/at", Kind: skemap.TypeDateTime, Value: "yesterday"}, skemap.CodeInvalidFormat, "/at"},
		{errors.New("boom"), skemap.CodeParseError, "/"},
	}
	for _, tc := range cases {
		iss := skemap.ToIssues(fmt.Errorf("wrapped: %w", tc.err))
		if len(iss) != 1 {
			t.Fatalf("%T: %v", tc.err, iss)
		}
		if iss[0].Code != tc.code || iss[0].Path != tc.path {
			t.Fatalf("%T: got %s at %s", tc.err, iss[0].Code, iss[0].Path)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	err := &skemap.InvalidEnumValueError{TypeName: "RegenerateKey", Field: "keyName", Path: "/keyName", Value: "key3", Allowed: []string{"key1", "key2"}}
	msg := err.Error()
	for _, want := range []string{"RegenerateKey", `"key3"`, `"key1", "key2"`, "/keyName"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q lacks %q", msg, want)
		}
	}
	ut := &skemap.UnknownTypeError{Name: "Ghost"}
	if strings.Contains(ut.Error(), "referenced by") {
		t.Fatalf("no referrer expected: %s", ut.Error())
	}
}

func TestIssue_JSON(t *testing.T) {
	is := skemap.Issue{Path: "/a", Code: skemap.CodeParseError, Message: "bad", Cause: errors.New("hidden")}
	b, err := json.Marshal(is)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"path":"/a","code":"parse_error","message":"bad"}` {
		t.Fatalf("json: %s", b)
	}
}

func TestPathRef(t *testing.T) {
	p := skemap.RootPath()
	if p.Pointer() != "/" {
		t.Fatalf("root: %s", p)
	}
	p = p.Field("value").Index(2).Fields([]string{"properties", "a/b~c"})
	if got := p.Pointer(); got != "/value/2/properties/a~1b~0c" {
		t.Fatalf("pointer: %s", got)
	}
}
