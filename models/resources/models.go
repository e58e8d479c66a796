package resources

import (
	skemap "github.com/reoring/skemap"
)

type GroupProperties struct {
	ProvisioningState string `json:"provisioningState,omitempty"`
}

type Group struct {
	ID         string            `json:"id,omitempty"`
	Name       string            `json:"name,omitempty"`
	Type       string            `json:"type,omitempty"`
	Properties *GroupProperties  `json:"properties,omitempty"`
	Location   string            `json:"location"`
	ManagedBy  string            `json:"managedBy,omitempty"`
	Tags       map[string]string `json:"tags,omitempty"`
}

type GroupPatch struct {
	Name      string            `json:"name,omitempty"`
	ManagedBy string            `json:"managedBy,omitempty"`
	Tags      map[string]string `json:"tags,omitempty"`
}

type ResourceType struct {
	ResourceType string   `json:"resourceType"`
	Locations    []string `json:"locations,omitempty"`
	APIVersions  []string `json:"apiVersions,omitempty"`
}

type ProviderValue struct {
	ID                string         `json:"id,omitempty"`
	Namespace         string         `json:"namespace"`
	RegistrationState string         `json:"registrationState,omitempty"`
	ResourceTypes     []ResourceType `json:"resourceTypes,omitempty"`
}

// GroupList is a page of resource groups.
type GroupList = skemap.List[Group]

// ListGroups deserializes a ResourceGroupListResult page. The payload is
// validated first.
func ListGroups(e *skemap.Engine, raw any) (GroupList, error) {
	if err := e.Validate(ResourceGroupListResult.ClassName, raw); err != nil {
		return GroupList{}, err
	}
	pg, err := e.DeserializePage(ResourceGroupListResult.ClassName, raw)
	if err != nil {
		return GroupList{}, err
	}
	return skemap.BindPage[Group](pg)
}

// ListProviders deserializes a ProviderListResult page.
func ListProviders(e *skemap.Engine, raw any) (skemap.List[ProviderValue], error) {
	pg, err := e.DeserializePage(ProviderListResult.ClassName, raw)
	if err != nil {
		return skemap.List[ProviderValue]{}, err
	}
	return skemap.BindPage[ProviderValue](pg)
}

// CreateOrUpdateRequest serializes a resource group for a PUT body.
func CreateOrUpdateRequest(e *skemap.Engine, g Group) (any, error) {
	return e.Serialize(ResourceGroup.ClassName, g)
}

// UpdateRequest serializes a PATCH body.
func UpdateRequest(e *skemap.Engine, p GroupPatch) (any, error) {
	return e.Serialize(ResourceGroupPatchable.ClassName, p)
}
