// Package resources holds the model descriptors of the Resource management
// API: resource groups and providers.
package resources

import (
	skemap "github.com/reoring/skemap"
)

var ResourceGroupProperties = &skemap.Mapper{
	ClassName:      "ResourceGroupProperties",
	SerializedName: "ResourceGroupProperties",
	ModelProperties: []skemap.Property{
		{Name: "provisioningState", SerializedName: "provisioningState", ReadOnly: true, Type: skemap.String()},
	},
}

var ResourceGroup = &skemap.Mapper{
	ClassName:      "ResourceGroup",
	SerializedName: "ResourceGroup",
	ModelProperties: []skemap.Property{
		{Name: "id", SerializedName: "id", ReadOnly: true, Type: skemap.String()},
		{Name: "name", SerializedName: "name", ReadOnly: true, Type: skemap.String()},
		{Name: "type", SerializedName: "type", ReadOnly: true, Type: skemap.String()},
		{Name: "properties", SerializedName: "properties", Type: skemap.Composite("ResourceGroupProperties")},
		{Name: "location", SerializedName: "location", Required: true, Type: skemap.String()},
		{Name: "managedBy", SerializedName: "managedBy", Type: skemap.String()},
		{Name: "tags", SerializedName: "tags", Type: skemap.Dictionary(skemap.String())},
	},
}

var ResourceGroupPatchable = &skemap.Mapper{
	ClassName:      "ResourceGroupPatchable",
	SerializedName: "ResourceGroupPatchable",
	ModelProperties: []skemap.Property{
		{Name: "name", SerializedName: "name", Type: skemap.String()},
		{Name: "properties", SerializedName: "properties", Type: skemap.Composite("ResourceGroupProperties")},
		{Name: "managedBy", SerializedName: "managedBy", Type: skemap.String()},
		{Name: "tags", SerializedName: "tags", Type: skemap.Dictionary(skemap.String())},
	},
}

var ResourceGroupListResult = &skemap.Mapper{
	ClassName:      "ResourceGroupListResult",
	SerializedName: "ResourceGroupListResult",
	ModelProperties: []skemap.Property{
		{Name: "value", SerializedName: "value", Type: skemap.Sequence(skemap.Composite("ResourceGroup"))},
		{Name: "nextLink", SerializedName: "nextLink", ReadOnly: true, Type: skemap.String()},
	},
	Pageable: &skemap.Pageable{},
}

var ProviderResourceType = &skemap.Mapper{
	ClassName:      "ProviderResourceType",
	SerializedName: "ProviderResourceType",
	ModelProperties: []skemap.Property{
		{Name: "resourceType", SerializedName: "resourceType", Type: skemap.String()},
		{Name: "locations", SerializedName: "locations", Type: skemap.Sequence(skemap.String())},
		{Name: "apiVersions", SerializedName: "apiVersions", Type: skemap.Sequence(skemap.String())},
		{Name: "properties", SerializedName: "properties", Type: skemap.Dictionary(skemap.String())},
	},
}

var Provider = &skemap.Mapper{
	ClassName:      "Provider",
	SerializedName: "Provider",
	ModelProperties: []skemap.Property{
		{Name: "id", SerializedName: "id", ReadOnly: true, Type: skemap.String()},
		{Name: "namespace", SerializedName: "namespace", Type: skemap.String()},
		{Name: "registrationState", SerializedName: "registrationState", ReadOnly: true, Type: skemap.String()},
		{Name: "resourceTypes", SerializedName: "resourceTypes", ReadOnly: true, Type: skemap.Sequence(skemap.Composite("ProviderResourceType"))},
	},
}

var ProviderListResult = &skemap.Mapper{
	ClassName:      "ProviderListResult",
	SerializedName: "ProviderListResult",
	ModelProperties: []skemap.Property{
		{Name: "value", SerializedName: "value", Type: skemap.Sequence(skemap.Composite("Provider"))},
		{Name: "nextLink", SerializedName: "nextLink", ReadOnly: true, Type: skemap.String()},
	},
	Pageable: &skemap.Pageable{},
}

var TagCount = &skemap.Mapper{
	ClassName:      "TagCount",
	SerializedName: "TagCount",
	ModelProperties: []skemap.Property{
		{Name: "type", SerializedName: "type", Type: skemap.String()},
		{Name: "value", SerializedName: "value", Type: skemap.Number()},
	},
}

var TagValue = &skemap.Mapper{
	ClassName:      "TagValue",
	SerializedName: "TagValue",
	ModelProperties: []skemap.Property{
		{Name: "id", SerializedName: "id", ReadOnly: true, Type: skemap.String()},
		{Name: "tagValue", SerializedName: "tagValue", Type: skemap.String()},
		{Name: "count", SerializedName: "count", Type: skemap.Composite("TagCount")},
	},
}

var TagDetails = &skemap.Mapper{
	ClassName:      "TagDetails",
	SerializedName: "TagDetails",
	ModelProperties: []skemap.Property{
		{Name: "id", SerializedName: "id", ReadOnly: true, Type: skemap.String()},
		{Name: "tagName", SerializedName: "tagName", Type: skemap.String()},
		{Name: "count", SerializedName: "count", Type: skemap.Composite("TagCount")},
		{Name: "values", SerializedName: "values", Type: skemap.Sequence(skemap.Composite("TagValue"))},
	},
}

var TagsListResult = &skemap.Mapper{
	ClassName:      "TagsListResult",
	SerializedName: "TagsListResult",
	ModelProperties: []skemap.Property{
		{Name: "value", SerializedName: "value", Type: skemap.Sequence(skemap.Composite("TagDetails"))},
		{Name: "nextLink", SerializedName: "nextLink", ReadOnly: true, Type: skemap.String()},
	},
	Pageable: &skemap.Pageable{},
}

// Mappers returns every descriptor of the package.
func Mappers() []*skemap.Mapper {
	return []*skemap.Mapper{
		ResourceGroupProperties, ResourceGroup, ResourceGroupPatchable, ResourceGroupListResult,
		ProviderResourceType, Provider, ProviderListResult,
		TagCount, TagValue, TagDetails, TagsListResult,
	}
}

// Register adds the resource management descriptors to reg.
func Register(reg *skemap.Registry) error {
	return reg.RegisterAll(Mappers()...)
}
