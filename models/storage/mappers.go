// Package storage holds the model descriptors of the Storage management API.
package storage

import (
	skemap "github.com/reoring/skemap"
)

var UsageName = &skemap.Mapper{
	ClassName:      "UsageName",
	SerializedName: "UsageName",
	ModelProperties: []skemap.Property{
		{Name: "value", SerializedName: "value", ReadOnly: true, Type: skemap.String()},
		{Name: "localizedValue", SerializedName: "localizedValue", ReadOnly: true, Type: skemap.String()},
	},
}

var Usage = &skemap.Mapper{
	ClassName:      "Usage",
	SerializedName: "Usage",
	ModelProperties: []skemap.Property{
		{Name: "unit", SerializedName: "unit", Required: true, Type: skemap.Enum(
			"Count", "Bytes", "Seconds", "Percent", "CountsPerSecond", "BytesPerSecond",
		)},
		{Name: "currentValue", SerializedName: "currentValue", Required: true, Type: skemap.Number()},
		{Name: "limit", SerializedName: "limit", Required: true, Type: skemap.Number()},
		{Name: "name", SerializedName: "name", Required: true, Type: skemap.Composite("UsageName")},
	},
}

var UsageListResult = &skemap.Mapper{
	ClassName:      "UsageListResult",
	SerializedName: "UsageListResult",
	ModelProperties: []skemap.Property{
		{Name: "value", SerializedName: "value", Type: skemap.Sequence(skemap.Composite("Usage"))},
	},
}

var Sku = &skemap.Mapper{
	ClassName:      "Sku",
	SerializedName: "Sku",
	ModelProperties: []skemap.Property{
		{Name: "name", SerializedName: "name", Required: true, Type: skemap.Enum(
			"Standard_LRS", "Standard_GRS", "Standard_RAGRS", "Standard_ZRS", "Premium_LRS",
		)},
		{Name: "tier", SerializedName: "tier", ReadOnly: true, Type: skemap.Enum("Standard", "Premium")},
	},
}

var Endpoints = &skemap.Mapper{
	ClassName:      "Endpoints",
	SerializedName: "Endpoints",
	ModelProperties: []skemap.Property{
		{Name: "blob", SerializedName: "blob", ReadOnly: true, Type: skemap.String()},
		{Name: "queue", SerializedName: "queue", ReadOnly: true, Type: skemap.String()},
		{Name: "table", SerializedName: "table", ReadOnly: true, Type: skemap.String()},
		{Name: "file", SerializedName: "file", ReadOnly: true, Type: skemap.String()},
	},
}

var StorageAccount = &skemap.Mapper{
	ClassName:      "StorageAccount",
	SerializedName: "StorageAccount",
	ModelProperties: []skemap.Property{
		{Name: "id", SerializedName: "id", ReadOnly: true, Type: skemap.String()},
		{Name: "name", SerializedName: "name", ReadOnly: true, Type: skemap.String()},
		{Name: "type", SerializedName: "type", ReadOnly: true, Type: skemap.String()},
		{Name: "location", SerializedName: "location", Required: true, Type: skemap.String()},
		{Name: "tags", SerializedName: "tags", Type: skemap.Dictionary(skemap.String())},
		{Name: "sku", SerializedName: "sku", ReadOnly: true, Type: skemap.Composite("Sku")},
		{Name: "kind", SerializedName: "kind", ReadOnly: true, Type: skemap.Enum("Storage", "StorageV2", "BlobStorage")},
		{Name: "provisioningState", SerializedName: "properties.provisioningState", ReadOnly: true, Type: skemap.Enum(
			"Creating", "ResolvingDNS", "Succeeded",
		)},
		{Name: "primaryEndpoints", SerializedName: "properties.primaryEndpoints", ReadOnly: true, Type: skemap.Composite("Endpoints")},
		{Name: "primaryLocation", SerializedName: "properties.primaryLocation", ReadOnly: true, Type: skemap.String()},
		{Name: "creationTime", SerializedName: "properties.creationTime", ReadOnly: true, Type: skemap.DateTime()},
		{Name: "accessTier", SerializedName: "properties.accessTier", ReadOnly: true, Type: skemap.Enum("Hot", "Cool")},
		{Name: "enableHttpsTrafficOnly", SerializedName: "properties.supportsHttpsTrafficOnly", Type: skemap.Boolean()},
	},
}

var StorageAccountCreateParameters = &skemap.Mapper{
	ClassName:      "StorageAccountCreateParameters",
	SerializedName: "StorageAccountCreateParameters",
	ModelProperties: []skemap.Property{
		{Name: "sku", SerializedName: "sku", Required: true, Type: skemap.Composite("Sku")},
		{Name: "kind", SerializedName: "kind", Required: true, Type: skemap.Enum("Storage", "StorageV2", "BlobStorage")},
		{Name: "location", SerializedName: "location", Required: true, Type: skemap.String()},
		{Name: "tags", SerializedName: "tags", Type: skemap.Dictionary(skemap.String())},
		{Name: "accessTier", SerializedName: "properties.accessTier", Type: skemap.Enum("Hot", "Cool")},
		{Name: "enableHttpsTrafficOnly", SerializedName: "properties.supportsHttpsTrafficOnly", Type: skemap.Boolean()},
	},
}

var StorageAccountListResult = &skemap.Mapper{
	ClassName:      "StorageAccountListResult",
	SerializedName: "StorageAccountListResult",
	ModelProperties: []skemap.Property{
		{Name: "value", SerializedName: "value", ReadOnly: true, Type: skemap.Sequence(skemap.Composite("StorageAccount"))},
		{Name: "nextLink", SerializedName: "nextLink", ReadOnly: true, Type: skemap.String()},
	},
	Pageable: &skemap.Pageable{},
}

var StorageAccountKey = &skemap.Mapper{
	ClassName:      "StorageAccountKey",
	SerializedName: "StorageAccountKey",
	ModelProperties: []skemap.Property{
		{Name: "keyName", SerializedName: "keyName", ReadOnly: true, Type: skemap.String()},
		{Name: "value", SerializedName: "value", ReadOnly: true, Type: skemap.String()},
		{Name: "permissions", SerializedName: "permissions", ReadOnly: true, Type: skemap.Enum("Read", "Full")},
	},
}

var StorageAccountListKeysResult = &skemap.Mapper{
	ClassName:      "StorageAccountListKeysResult",
	SerializedName: "StorageAccountListKeysResult",
	ModelProperties: []skemap.Property{
		{Name: "keys", SerializedName: "keys", ReadOnly: true, Type: skemap.Sequence(skemap.Composite("StorageAccountKey"))},
	},
}

var StorageAccountRegenerateKeyParameters = &skemap.Mapper{
	ClassName:      "StorageAccountRegenerateKeyParameters",
	SerializedName: "StorageAccountRegenerateKeyParameters",
	ModelProperties: []skemap.Property{
		{Name: "keyName", SerializedName: "keyName", Required: true, Type: skemap.Enum("key1", "key2")},
	},
}

var StorageAccountCheckNameAvailabilityParameters = &skemap.Mapper{
	ClassName:      "StorageAccountCheckNameAvailabilityParameters",
	SerializedName: "StorageAccountCheckNameAvailabilityParameters",
	ModelProperties: []skemap.Property{
		{Name: "name", SerializedName: "name", Required: true, Type: skemap.String()},
		{Name: "type", SerializedName: "type", Required: true, Type: skemap.String()},
	},
}

var CheckNameAvailabilityResult = &skemap.Mapper{
	ClassName:      "CheckNameAvailabilityResult",
	SerializedName: "CheckNameAvailabilityResult",
	ModelProperties: []skemap.Property{
		{Name: "nameAvailable", SerializedName: "nameAvailable", ReadOnly: true, Type: skemap.Boolean()},
		{Name: "reason", SerializedName: "reason", ReadOnly: true, Type: skemap.Enum("AccountNameInvalid", "AlreadyExists")},
		{Name: "message", SerializedName: "message", ReadOnly: true, Type: skemap.String()},
	},
}

// Mappers returns every descriptor of the package.
func Mappers() []*skemap.Mapper {
	return []*skemap.Mapper{
		UsageName, Usage, UsageListResult,
		Sku, Endpoints, StorageAccount, StorageAccountCreateParameters, StorageAccountListResult,
		StorageAccountKey, StorageAccountListKeysResult, StorageAccountRegenerateKeyParameters,
		StorageAccountCheckNameAvailabilityParameters, CheckNameAvailabilityResult,
	}
}

// Register adds the storage descriptors to reg.
func Register(reg *skemap.Registry) error {
	return reg.RegisterAll(Mappers()...)
}
