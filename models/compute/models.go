package compute

import (
	"time"

	skemap "github.com/reoring/skemap"
)

// StatusLevel is the severity of an instance view status.
type StatusLevel string

const (
	StatusLevelInfo    StatusLevel = "Info"
	StatusLevelWarning StatusLevel = "Warning"
	StatusLevelError   StatusLevel = "Error"
)

type HardwareProfileValue struct {
	VMSize string `json:"vmSize,omitempty"`
}

type Status struct {
	Code          string      `json:"code,omitempty"`
	Level         StatusLevel `json:"level,omitempty"`
	DisplayStatus string      `json:"displayStatus,omitempty"`
	Message       string      `json:"message,omitempty"`
	Time          *time.Time  `json:"time,omitempty"`
}

type InstanceView struct {
	ComputerName string   `json:"computerName,omitempty"`
	OSName       string   `json:"osName,omitempty"`
	Statuses     []Status `json:"statuses,omitempty"`
}

// Machine is the in-memory form of a VirtualMachine with its "properties"
// envelope flattened.
type Machine struct {
	ID                string                `json:"id,omitempty"`
	Name              string                `json:"name,omitempty"`
	Type              string                `json:"type,omitempty"`
	Location          string                `json:"location"`
	Tags              map[string]string     `json:"tags,omitempty"`
	HardwareProfile   *HardwareProfileValue `json:"hardwareProfile,omitempty"`
	ProvisioningState string                `json:"provisioningState,omitempty"`
	InstanceView      *InstanceView         `json:"instanceView,omitempty"`
	LicenseType       string                `json:"licenseType,omitempty"`
	VMID              string                `json:"vmId,omitempty"`
	TimeCreated       *time.Time            `json:"timeCreated,omitempty"`
	Zones             []string              `json:"zones,omitempty"`
}

type Size struct {
	Name                 string `json:"name"`
	NumberOfCores        int    `json:"numberOfCores"`
	OSDiskSizeInMB       int    `json:"osDiskSizeInMB"`
	ResourceDiskSizeInMB int    `json:"resourceDiskSizeInMB"`
	MemoryInMB           int    `json:"memoryInMB"`
	MaxDataDiskCount     int    `json:"maxDataDiskCount"`
}

// MachineList is a page of virtual machines.
type MachineList = skemap.List[Machine]

// ListMachines validates and deserializes a VirtualMachineListResult page.
func ListMachines(e *skemap.Engine, raw any) (MachineList, error) {
	if err := e.Validate(VirtualMachineListResult.ClassName, raw); err != nil {
		return MachineList{}, err
	}
	pg, err := e.DeserializePage(VirtualMachineListResult.ClassName, raw)
	if err != nil {
		return MachineList{}, err
	}
	return skemap.BindPage[Machine](pg)
}

// ListSizes deserializes the sizes available in a location.
func ListSizes(e *skemap.Engine, raw any) ([]Size, error) {
	if err := e.Validate(VirtualMachineSizeListResult.ClassName, raw); err != nil {
		return nil, err
	}
	pg, err := e.DeserializePage(VirtualMachineSizeListResult.ClassName, raw)
	if err != nil {
		return nil, err
	}
	list, err := skemap.BindPage[Size](pg)
	return list.Value, err
}

// CreateOrUpdateRequest serializes m for a PUT body. Server-assigned fields
// are dropped.
func CreateOrUpdateRequest(e *skemap.Engine, m Machine) (any, error) {
	return e.Serialize(VirtualMachine.ClassName, m)
}
