package storage

import (
	"time"

	skemap "github.com/reoring/skemap"
)

// UsageUnit is the unit of a usage measurement.
type UsageUnit string

const (
	UsageUnitCount           UsageUnit = "Count"
	UsageUnitBytes           UsageUnit = "Bytes"
	UsageUnitSeconds         UsageUnit = "Seconds"
	UsageUnitPercent         UsageUnit = "Percent"
	UsageUnitCountsPerSecond UsageUnit = "CountsPerSecond"
	UsageUnitBytesPerSecond  UsageUnit = "BytesPerSecond"
)

type UsageNameValue struct {
	Value          string `json:"value,omitempty"`
	LocalizedValue string `json:"localizedValue,omitempty"`
}

type UsageValue struct {
	Unit         UsageUnit      `json:"unit"`
	CurrentValue int32          `json:"currentValue"`
	Limit        int32          `json:"limit"`
	Name         UsageNameValue `json:"name"`
}

type SkuValue struct {
	Name string `json:"name"`
	Tier string `json:"tier,omitempty"`
}

type EndpointsValue struct {
	Blob  string `json:"blob,omitempty"`
	Queue string `json:"queue,omitempty"`
	Table string `json:"table,omitempty"`
	File  string `json:"file,omitempty"`
}

// Account is the in-memory form of a StorageAccount. Properties that the
// service nests under "properties" are flattened onto the account.
type Account struct {
	ID                     string            `json:"id,omitempty"`
	Name                   string            `json:"name,omitempty"`
	Type                   string            `json:"type,omitempty"`
	Location               string            `json:"location"`
	Tags                   map[string]string `json:"tags,omitempty"`
	Sku                    *SkuValue         `json:"sku,omitempty"`
	Kind                   string            `json:"kind,omitempty"`
	ProvisioningState      string            `json:"provisioningState,omitempty"`
	PrimaryEndpoints       *EndpointsValue   `json:"primaryEndpoints,omitempty"`
	PrimaryLocation        string            `json:"primaryLocation,omitempty"`
	CreationTime           *time.Time        `json:"creationTime,omitempty"`
	AccessTier             string            `json:"accessTier,omitempty"`
	EnableHTTPSTrafficOnly *bool             `json:"enableHttpsTrafficOnly,omitempty"`
}

type AccountCreateParameters struct {
	Sku                    SkuValue          `json:"sku"`
	Kind                   string            `json:"kind"`
	Location               string            `json:"location"`
	Tags                   map[string]string `json:"tags,omitempty"`
	AccessTier             string            `json:"accessTier,omitempty"`
	EnableHTTPSTrafficOnly *bool             `json:"enableHttpsTrafficOnly,omitempty"`
}

type AccountKey struct {
	KeyName     string `json:"keyName"`
	Value       string `json:"value"`
	Permissions string `json:"permissions"`
}

type RegenerateKeyParameters struct {
	KeyName string `json:"keyName"`
}

type NameAvailability struct {
	NameAvailable bool   `json:"nameAvailable"`
	Reason        string `json:"reason,omitempty"`
	Message       string `json:"message,omitempty"`
}

// AccountList is a page of storage accounts.
type AccountList = skemap.List[Account]

// ListAccounts validates and deserializes a StorageAccountListResult page.
func ListAccounts(e *skemap.Engine, raw any) (AccountList, error) {
	if err := e.Validate(StorageAccountListResult.ClassName, raw); err != nil {
		return AccountList{}, err
	}
	pg, err := e.DeserializePage(StorageAccountListResult.ClassName, raw)
	if err != nil {
		return AccountList{}, err
	}
	return skemap.BindPage[Account](pg)
}

// ListUsages validates and deserializes a UsageListResult.
func ListUsages(e *skemap.Engine, raw any) ([]UsageValue, error) {
	if err := e.Validate(UsageListResult.ClassName, raw); err != nil {
		return nil, err
	}
	pg, err := e.DeserializePage(UsageListResult.ClassName, raw)
	if err != nil {
		return nil, err
	}
	list, err := skemap.BindPage[UsageValue](pg)
	return list.Value, err
}

// CreateRequest serializes create parameters into the request body.
func CreateRequest(e *skemap.Engine, p AccountCreateParameters) (any, error) {
	return e.Serialize(StorageAccountCreateParameters.ClassName, p)
}

// RegenerateKeyRequest serializes the body of a key regeneration call.
func RegenerateKeyRequest(e *skemap.Engine, keyName string) (any, error) {
	return e.Serialize(StorageAccountRegenerateKeyParameters.ClassName, RegenerateKeyParameters{KeyName: keyName})
}
