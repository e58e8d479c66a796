package skemap_test

import (
	"errors"
	"strings"
	"testing"

	skemap "github.com/reoring/skemap"
)

func TestValidate_UsagePayload(t *testing.T) {
	e := newTestEngine(t)
	if err := e.Validate("Usage", usagePayload()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_NilPayload(t *testing.T) {
	e := newTestEngine(t)
	err := e.Validate("Usage", nil)
	var mv *skemap.MissingValueError
	if !errors.As(err, &mv) {
		t.Fatalf("expected MissingValueError, got %v", err)
	}
	if mv.TypeName != "Usage" || mv.Path != "/" {
		t.Fatalf("unexpected error fields: %+v", mv)
	}
}

func TestValidate_NilPointerPayload(t *testing.T) {
	type usageName struct {
		Value string `json:"value"`
	}
	type usage struct {
		Unit         string     `json:"unit"`
		CurrentValue int        `json:"currentValue"`
		Limit        int        `json:"limit"`
		Name         *usageName `json:"name"`
	}
	e := newTestEngine(t)
	var p *usage
	var mv *skemap.MissingValueError
	if err := e.Validate("Usage", p); !errors.As(err, &mv) || mv.Path != "/" {
		t.Fatalf("expected MissingValueError, got %v", err)
	}
	if _, err := e.Serialize("Usage", p); !errors.As(err, &mv) {
		t.Fatalf("expected MissingValueError from Serialize, got %v", err)
	}
	p = &usage{Unit: "Count", CurrentValue: 1, Limit: 2, Name: &usageName{Value: "v"}}
	if err := e.Validate("Usage", p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// a nil pointer field reads as null
	var mf *skemap.MissingFieldError
	if err := e.Validate("Usage", map[string]any{"unit": "Count", "currentValue": 1, "limit": 2, "name": (*usageName)(nil)}); !errors.As(err, &mf) || mf.Field != "name" {
		t.Fatalf("expected MissingFieldError on name, got %v", err)
	}
}

func TestValidate_MissingRequiredField(t *testing.T) {
	e := newTestEngine(t)
	p := usagePayload()
	delete(p, "currentValue")
	err := e.Validate("Usage", p)
	var mf *skemap.MissingFieldError
	if !errors.As(err, &mf) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if mf.TypeName != "Usage" || mf.Field != "currentValue" || mf.Path != "/currentValue" {
		t.Fatalf("unexpected error fields: %+v", mf)
	}
}

func TestValidate_NullRequiredFieldIsMissing(t *testing.T) {
	e := newTestEngine(t)
	p := usagePayload()
	p["limit"] = nil
	var mf *skemap.MissingFieldError
	if err := e.Validate("Usage", p); !errors.As(err, &mf) || mf.Field != "limit" {
		t.Fatalf("expected MissingFieldError on limit, got %v", err)
	}
}

func TestValidate_TypeMismatch(t *testing.T) {
	e := newTestEngine(t)
	p := usagePayload()
	p["currentValue"] = "ten"
	err := e.Validate("Usage", p)
	var tm *skemap.TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
	if tm.Field != "currentValue" || tm.Expected != skemap.TypeNumber || tm.Got != "string" {
		t.Fatalf("unexpected error fields: %+v", tm)
	}
}

func TestValidate_OptionalFieldStillTypeChecked(t *testing.T) {
	e := newTestEngine(t)
	rg := map[string]any{"location": "westus", "managedBy": 42}
	var tm *skemap.TypeMismatchError
	if err := e.Validate("ResourceGroup", rg); !errors.As(err, &tm) || tm.Field != "managedBy" {
		t.Fatalf("expected TypeMismatchError on managedBy, got %v", err)
	}
}

func TestValidate_InvalidEnumListsAllowedValues(t *testing.T) {
	e := newTestEngine(t)
	err := e.Validate("StorageAccountRegenerateKeyParameters", map[string]any{"keyName": "key3"})
	var ie *skemap.InvalidEnumValueError
	if !errors.As(err, &ie) {
		t.Fatalf("expected InvalidEnumValueError, got %v", err)
	}
	if ie.Value != "key3" || len(ie.Allowed) != 2 || ie.Allowed[0] != "key1" || ie.Allowed[1] != "key2" {
		t.Fatalf("unexpected error fields: %+v", ie)
	}
	msg := err.Error()
	if !strings.Contains(msg, `"key1"`) || !strings.Contains(msg, `"key2"`) {
		t.Fatalf("message should list allowed values: %s", msg)
	}
}

func TestValidate_EnumIsCaseSensitive(t *testing.T) {
	e := newTestEngine(t)
	var ie *skemap.InvalidEnumValueError
	if err := e.Validate("StorageAccountRegenerateKeyParameters", map[string]any{"keyName": "KEY1"}); !errors.As(err, &ie) {
		t.Fatalf("expected InvalidEnumValueError, got %v", err)
	}
	if err := e.Validate("StorageAccountRegenerateKeyParameters", map[string]any{"keyName": 1}); !errors.As(err, &ie) {
		t.Fatalf("expected InvalidEnumValueError for non-string, got %v", err)
	}
}

func TestValidate_ExtraFieldsIgnored(t *testing.T) {
	e := newTestEngine(t)
	p := usagePayload()
	p["somethingElse"] = []any{1, 2, 3}
	if err := e.Validate("Usage", p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_SequenceIndexInPath(t *testing.T) {
	e := newTestEngine(t)
	bad := usagePayload()
	delete(bad, "unit")
	list := map[string]any{"value": []any{usagePayload(), bad}}
	var mf *skemap.MissingFieldError
	if err := e.Validate("UsageListResult", list); !errors.As(err, &mf) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if mf.Path != "/value/1/unit" {
		t.Fatalf("path: got %q", mf.Path)
	}
}

func TestValidate_SequenceNotArray(t *testing.T) {
	e := newTestEngine(t)
	var tm *skemap.TypeMismatchError
	if err := e.Validate("UsageListResult", map[string]any{"value": "nope"}); !errors.As(err, &tm) || tm.Expected != skemap.TypeSequence {
		t.Fatalf("expected TypeMismatchError for Sequence, got %v", err)
	}
}

func TestValidate_NullSequenceElementsAccepted(t *testing.T) {
	e := newTestEngine(t)
	if err := e.Validate("UsageListResult", map[string]any{"value": []any{nil, usagePayload()}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_DictionaryValues(t *testing.T) {
	e := newTestEngine(t)
	rg := map[string]any{"location": "westus", "tags": map[string]any{"a": "x", "b": 3}}
	var tm *skemap.TypeMismatchError
	if err := e.Validate("ResourceGroup", rg); !errors.As(err, &tm) {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
	if tm.Path != "/tags/b" {
		t.Fatalf("path: got %q", tm.Path)
	}
}

func TestValidate_FlattenedPath(t *testing.T) {
	e := newTestEngine(t)
	rg := map[string]any{"location": "westus", "properties": map[string]any{"provisioningState": true}}
	var tm *skemap.TypeMismatchError
	if err := e.Validate("ResourceGroup", rg); !errors.As(err, &tm) {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
	if tm.Path != "/properties/provisioningState" {
		t.Fatalf("path: got %q", tm.Path)
	}
}

func TestValidate_StructPayload(t *testing.T) {
	type usageName struct {
		Value          string `json:"value"`
		LocalizedValue string `json:"localizedValue"`
	}
	type usage struct {
		Unit         string    `json:"unit"`
		CurrentValue int       `json:"currentValue"`
		Limit        int64     `json:"limit"`
		Name         usageName `json:"name"`
	}
	e := newTestEngine(t)
	if err := e.Validate("Usage", usage{Unit: "Count", CurrentValue: 1, Limit: 2, Name: usageName{Value: "v"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.Validate("Usage", &usage{Unit: "Liters"}); err == nil {
		t.Fatalf("expected enum error")
	}
}

func TestValidate_MutualRecursion(t *testing.T) {
	reg := skemap.NewRegistry()
	reg.MustRegister(
		&skemap.Mapper{ClassName: "A", ModelProperties: []skemap.Property{
			{Name: "b", SerializedName: "b", Type: skemap.Composite("B")},
		}},
		&skemap.Mapper{ClassName: "B", ModelProperties: []skemap.Property{
			{Name: "name", SerializedName: "name", Required: true, Type: skemap.String()},
			{Name: "a", SerializedName: "a", Type: skemap.Composite("A")},
		}},
	)
	if err := reg.Check(); err != nil {
		t.Fatalf("check: %v", err)
	}
	e := skemap.New(reg)

	ok := map[string]any{"b": map[string]any{"name": "x", "a": map[string]any{"b": map[string]any{"name": "y"}}}}
	if err := e.Validate("A", ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := map[string]any{"b": map[string]any{"name": "x", "a": map[string]any{"b": map[string]any{}}}}
	var mf *skemap.MissingFieldError
	if err := e.Validate("A", bad); !errors.As(err, &mf) || mf.Path != "/b/a/b/name" {
		t.Fatalf("expected MissingFieldError at /b/a/b/name, got %v", err)
	}
}

func TestValidate_UnknownType(t *testing.T) {
	reg := skemap.NewRegistry()
	reg.MustRegister(&skemap.Mapper{ClassName: "Holder", ModelProperties: []skemap.Property{
		{Name: "child", SerializedName: "child", Type: skemap.Composite("Ghost")},
	}})
	e := skemap.New(reg)

	var ut *skemap.UnknownTypeError
	if err := e.Validate("Nope", map[string]any{}); !errors.As(err, &ut) || ut.Name != "Nope" {
		t.Fatalf("expected UnknownTypeError for Nope, got %v", err)
	}
	if err := e.Validate("Holder", map[string]any{"child": map[string]any{}}); !errors.As(err, &ut) {
		t.Fatalf("expected UnknownTypeError, got %v", err)
	}
	if ut.Name != "Ghost" || ut.Referrer != "Holder.child" {
		t.Fatalf("unexpected error fields: %+v", ut)
	}
	// absent references are never resolved
	if err := e.Validate("Holder", map[string]any{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func stampEngine(opts ...skemap.Option) *skemap.Engine {
	reg := skemap.NewRegistry()
	reg.MustRegister(&skemap.Mapper{ClassName: "Stamp", ModelProperties: []skemap.Property{
		{Name: "at", SerializedName: "at", Type: skemap.DateTime()},
		{Name: "every", SerializedName: "every", Type: skemap.TimeSpan()},
		{Name: "blob", SerializedName: "blob", Type: skemap.ByteArray()},
	}})
	return skemap.New(reg, opts...)
}

func TestValidate_FormattedStringsCheckKindOnly(t *testing.T) {
	e := stampEngine()
	cases := []map[string]any{
		{"at": "2024-01-02T03:04:05Z", "every": "PT5M", "blob": "aGVsbG8="},
		{"at": "2017-06-08T08:09:45.0766654"},
		{"at": "Mon, 02 Jan 2006 15:04:05 GMT"},
		{"blob": "YWJjZA"},
		{"at": "yesterday", "every": "often"},
	}
	for _, payload := range cases {
		if err := e.Validate("Stamp", payload); err != nil {
			t.Fatalf("unexpected error for %v: %v", payload, err)
		}
	}
	var tm *skemap.TypeMismatchError
	if err := e.Validate("Stamp", map[string]any{"at": 20240102}); !errors.As(err, &tm) || tm.Expected != skemap.TypeDateTime {
		t.Fatalf("expected DateTime mismatch, got %v", err)
	}
}

func TestValidate_FormatValidation(t *testing.T) {
	e := stampEngine(skemap.WithFormatValidation(true))
	if err := e.Validate("Stamp", map[string]any{"at": "2017-06-08T08:09:45.0766654", "every": "PT5M"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := e.Validate("Stamp", map[string]any{"at": "yesterday"})
	var fe *skemap.InvalidFormatError
	if !errors.As(err, &fe) || fe.Path != "/at" || fe.Kind != skemap.TypeDateTime || fe.Value != "yesterday" {
		t.Fatalf("expected InvalidFormatError at /at, got %v", err)
	}
	iss := skemap.ToIssues(err)
	if len(iss) != 1 || iss[0].Code != skemap.CodeInvalidFormat || iss[0].Field != "at" {
		t.Fatalf("unexpected issues: %+v", iss)
	}
}

func TestToIssues_TypedErrors(t *testing.T) {
	e := newTestEngine(t)
	err := e.Validate("StorageAccountRegenerateKeyParameters", map[string]any{})
	iss := skemap.ToIssues(err)
	if len(iss) != 1 || iss[0].Code != skemap.CodeRequired || iss[0].Path != "/keyName" || iss[0].Field != "keyName" {
		t.Fatalf("unexpected issues: %+v", iss)
	}
	if got := skemap.ToIssues(nil); got != nil {
		t.Fatalf("expected nil issues, got %v", got)
	}
}
