package skemap_test

import (
	"testing"

	skemap "github.com/reoring/skemap"
)

var usageUnits = []string{"Count", "Bytes", "Seconds", "Percent", "CountsPerSecond", "BytesPerSecond"}

func usageMappers() []*skemap.Mapper {
	return []*skemap.Mapper{
		{
			ClassName:      "UsageName",
			SerializedName: "UsageName",
			ModelProperties: []skemap.Property{
				{Name: "value", SerializedName: "value", Type: skemap.String()},
				{Name: "localizedValue", SerializedName: "localizedValue", Type: skemap.String()},
			},
		},
		{
			ClassName:      "Usage",
			SerializedName: "Usage",
			ModelProperties: []skemap.Property{
				{Name: "unit", SerializedName: "unit", Required: true, Type: skemap.Enum(usageUnits...)},
				{Name: "currentValue", SerializedName: "currentValue", Required: true, Type: skemap.Number()},
				{Name: "limit", SerializedName: "limit", Required: true, Type: skemap.Number()},
				{Name: "name", SerializedName: "name", Required: true, Type: skemap.Composite("UsageName")},
			},
		},
		{
			ClassName:      "UsageListResult",
			SerializedName: "UsageListResult",
			ModelProperties: []skemap.Property{
				{Name: "value", SerializedName: "value", Type: skemap.Sequence(skemap.Composite("Usage"))},
			},
		},
	}
}

func resourceGroupMappers() []*skemap.Mapper {
	return []*skemap.Mapper{
		{
			ClassName:      "ResourceGroup",
			SerializedName: "ResourceGroup",
			ModelProperties: []skemap.Property{
				{Name: "id", SerializedName: "id", ReadOnly: true, Type: skemap.String()},
				{Name: "name", SerializedName: "name", ReadOnly: true, Type: skemap.String()},
				{Name: "provisioningState", SerializedName: "properties.provisioningState", ReadOnly: true, Type: skemap.String()},
				{Name: "location", SerializedName: "location", Required: true, Type: skemap.String()},
				{Name: "managedBy", SerializedName: "managedBy", Type: skemap.String()},
				{Name: "tags", SerializedName: "tags", Type: skemap.Dictionary(skemap.String())},
			},
		},
		{
			ClassName:      "ResourceGroupListResult",
			SerializedName: "ResourceGroupListResult",
			ModelProperties: []skemap.Property{
				{Name: "value", SerializedName: "value", Type: skemap.Sequence(skemap.Composite("ResourceGroup"))},
				{Name: "nextLink", SerializedName: "nextLink", Type: skemap.String()},
			},
			Pageable: &skemap.Pageable{},
		},
	}
}

func storageMappers() []*skemap.Mapper {
	return []*skemap.Mapper{
		{
			ClassName:      "StorageAccountRegenerateKeyParameters",
			SerializedName: "StorageAccountRegenerateKeyParameters",
			ModelProperties: []skemap.Property{
				{Name: "keyName", SerializedName: "keyName", Required: true, Type: skemap.Enum("key1", "key2")},
			},
		},
	}
}

func newTestRegistry(t testing.TB) *skemap.Registry {
	t.Helper()
	reg := skemap.NewRegistry()
	for _, set := range [][]*skemap.Mapper{usageMappers(), resourceGroupMappers(), storageMappers()} {
		if err := reg.RegisterAll(set...); err != nil {
			t.Fatalf("register: %v", err)
		}
	}
	if err := reg.Check(); err != nil {
		t.Fatalf("check: %v", err)
	}
	return reg
}

func newTestEngine(t testing.TB, opts ...skemap.Option) *skemap.Engine {
	t.Helper()
	return skemap.New(newTestRegistry(t), opts...)
}

func usagePayload() map[string]any {
	return map[string]any{
		"unit":         "Bytes",
		"currentValue": 10,
		"limit":        100,
		"name":         map[string]any{"value": "v", "localizedValue": "lv"},
	}
}

func resourceGroupPage() map[string]any {
	return map[string]any{
		"value": []any{
			map[string]any{
				"id":         "/subscriptions/s/resourceGroups/rg1",
				"name":       "rg1",
				"location":   "westus",
				"properties": map[string]any{"provisioningState": "Succeeded"},
			},
			map[string]any{
				"id":       "/subscriptions/s/resourceGroups/rg2",
				"name":     "rg2",
				"location": "eastus",
				"tags":     map[string]any{"env": "prod"},
			},
		},
		"nextLink": "token123",
	}
}
