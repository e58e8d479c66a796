package skemap_test

import (
	"reflect"
	"strings"
	"testing"

	skemap "github.com/reoring/skemap"
)

const usageYAML = `
UsageName:
  serializedName: UsageName
  modelProperties:
    value:
      serializedName: value
      type: {name: String}
    localizedValue:
      type: {name: String}
Usage:
  modelProperties:
    unit:
      serializedName: unit
      required: true
      type: {name: Enum, allowedValues: [Count, Bytes]}
    name:
      serializedName: name
      required: true
      type: {name: Composite, className: UsageName}
    currentValue:
      required: true
      type: {name: Number}
UsageListResult:
  pageable: {}
  modelProperties:
    value:
      type:
        name: Sequence
        element: {name: Composite, className: Usage}
    nextLink:
      type: {name: String}
`

func TestParseMappers_YAML(t *testing.T) {
	ms, err := skemap.ParseMappers([]byte(usageYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(ms) != 3 {
		t.Fatalf("mappers: %d", len(ms))
	}
	usage := ms[1]
	if usage.ClassName != "Usage" {
		t.Fatalf("class name should default to the key: %q", usage.ClassName)
	}
	var names []string
	for _, p := range usage.ModelProperties {
		names = append(names, p.Name)
	}
	if !reflect.DeepEqual(names, []string{"unit", "name", "currentValue"}) {
		t.Fatalf("declaration order lost: %v", names)
	}
	if p, _ := usage.Property("currentValue"); p.SerializedName != "currentValue" {
		t.Fatalf("serialized name should default to the local name: %+v", p)
	}
	if ms[2].Pageable == nil {
		t.Fatalf("pageable not decoded")
	}
}

func TestLoadMappers_ValidatesPayloads(t *testing.T) {
	reg := skemap.NewRegistry()
	if _, err := skemap.LoadMappers(reg, []byte(usageYAML)); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := reg.Check(); err != nil {
		t.Fatalf("check: %v", err)
	}
	e := skemap.New(reg)
	if err := e.Validate("Usage", map[string]any{"unit": "Count", "currentValue": 1, "name": map[string]any{}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseMappers_JSON(t *testing.T) {
	doc := `{"Sku": {"modelProperties": {"name": {"serializedName": "name", "type": {"name": "String"}}}}}`
	ms, err := skemap.ParseMappers([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(ms) != 1 || ms[0].ClassName != "Sku" || len(ms[0].ModelProperties) != 1 {
		t.Fatalf("unexpected mappers: %+v", ms)
	}
}

func TestParseMappers_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown kind":     "A:\n  modelProperties:\n    x:\n      type: {name: Widget}\n",
		"no element":       "A:\n  modelProperties:\n    x:\n      type: {name: Sequence}\n",
		"no class name":    "A:\n  modelProperties:\n    x:\n      type: {name: Composite}\n",
		"not a mapping":    "- A\n- B\n",
		"bad properties":   "A:\n  modelProperties: [x]\n",
		"dictionary value": "A:\n  modelProperties:\n    x:\n      type: {name: Dictionary}\n",
	}
	for name, doc := range cases {
		if _, err := skemap.ParseMappers([]byte(doc)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestMarshalMappers_RoundTrip(t *testing.T) {
	ms, err := skemap.ParseMappers([]byte(usageYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := skemap.MarshalMappers(ms)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(out), "allowedValues:") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	again, err := skemap.ParseMappers(out)
	if err != nil {
		t.Fatalf("reparse: %v\n%s", err, out)
	}
	if !reflect.DeepEqual(ms, again) {
		t.Fatalf("round trip mismatch:\n%s", out)
	}
}
