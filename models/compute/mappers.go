// Package compute holds the model descriptors of the Compute management API
// used by virtual machine listing and sizing.
package compute

import (
	skemap "github.com/reoring/skemap"
)

// VMSizeTypes is the closed set of sizes accepted by HardwareProfile.
var VMSizeTypes = []string{
	"Basic_A0", "Basic_A1", "Standard_A1_v2", "Standard_B1s", "Standard_B2s",
	"Standard_D2s_v3", "Standard_D4s_v3", "Standard_E2s_v3", "Standard_F2s_v2",
}

var HardwareProfile = &skemap.Mapper{
	ClassName:      "HardwareProfile",
	SerializedName: "HardwareProfile",
	ModelProperties: []skemap.Property{
		{Name: "vmSize", SerializedName: "vmSize", Type: skemap.Enum(VMSizeTypes...)},
	},
}

var InstanceViewStatus = &skemap.Mapper{
	ClassName:      "InstanceViewStatus",
	SerializedName: "InstanceViewStatus",
	ModelProperties: []skemap.Property{
		{Name: "code", SerializedName: "code", Type: skemap.String()},
		{Name: "level", SerializedName: "level", Type: skemap.Enum("Info", "Warning", "Error")},
		{Name: "displayStatus", SerializedName: "displayStatus", Type: skemap.String()},
		{Name: "message", SerializedName: "message", Type: skemap.String()},
		{Name: "time", SerializedName: "time", Type: skemap.DateTime()},
	},
}

var VirtualMachineInstanceView = &skemap.Mapper{
	ClassName:      "VirtualMachineInstanceView",
	SerializedName: "VirtualMachineInstanceView",
	ModelProperties: []skemap.Property{
		{Name: "computerName", SerializedName: "computerName", Type: skemap.String()},
		{Name: "osName", SerializedName: "osName", Type: skemap.String()},
		{Name: "statuses", SerializedName: "statuses", Type: skemap.Sequence(skemap.Composite("InstanceViewStatus"))},
	},
}

var VirtualMachine = &skemap.Mapper{
	ClassName:      "VirtualMachine",
	SerializedName: "VirtualMachine",
	ModelProperties: []skemap.Property{
		{Name: "id", SerializedName: "id", ReadOnly: true, Type: skemap.String()},
		{Name: "name", SerializedName: "name", ReadOnly: true, Type: skemap.String()},
		{Name: "type", SerializedName: "type", ReadOnly: true, Type: skemap.String()},
		{Name: "location", SerializedName: "location", Required: true, Type: skemap.String()},
		{Name: "tags", SerializedName: "tags", Type: skemap.Dictionary(skemap.String())},
		{Name: "hardwareProfile", SerializedName: "properties.hardwareProfile", Type: skemap.Composite("HardwareProfile")},
		{Name: "provisioningState", SerializedName: "properties.provisioningState", ReadOnly: true, Type: skemap.String()},
		{Name: "instanceView", SerializedName: "properties.instanceView", ReadOnly: true, Type: skemap.Composite("VirtualMachineInstanceView")},
		{Name: "licenseType", SerializedName: "properties.licenseType", Type: skemap.String()},
		{Name: "vmId", SerializedName: "properties.vmId", ReadOnly: true, Type: skemap.String()},
		{Name: "timeCreated", SerializedName: "properties.timeCreated", ReadOnly: true, Type: skemap.DateTime()},
		{Name: "zones", SerializedName: "zones", Type: skemap.Sequence(skemap.String())},
	},
}

var VirtualMachineListResult = &skemap.Mapper{
	ClassName:      "VirtualMachineListResult",
	SerializedName: "VirtualMachineListResult",
	ModelProperties: []skemap.Property{
		{Name: "value", SerializedName: "value", Required: true, Type: skemap.Sequence(skemap.Composite("VirtualMachine"))},
		{Name: "nextLink", SerializedName: "nextLink", Type: skemap.String()},
	},
	Pageable: &skemap.Pageable{},
}

var VirtualMachineSize = &skemap.Mapper{
	ClassName:      "VirtualMachineSize",
	SerializedName: "VirtualMachineSize",
	ModelProperties: []skemap.Property{
		{Name: "name", SerializedName: "name", Type: skemap.String()},
		{Name: "numberOfCores", SerializedName: "numberOfCores", Type: skemap.Number()},
		{Name: "osDiskSizeInMB", SerializedName: "osDiskSizeInMB", Type: skemap.Number()},
		{Name: "resourceDiskSizeInMB", SerializedName: "resourceDiskSizeInMB", Type: skemap.Number()},
		{Name: "memoryInMB", SerializedName: "memoryInMB", Type: skemap.Number()},
		{Name: "maxDataDiskCount", SerializedName: "maxDataDiskCount", Type: skemap.Number()},
	},
}

var VirtualMachineSizeListResult = &skemap.Mapper{
	ClassName:      "VirtualMachineSizeListResult",
	SerializedName: "VirtualMachineSizeListResult",
	ModelProperties: []skemap.Property{
		{Name: "value", SerializedName: "value", Type: skemap.Sequence(skemap.Composite("VirtualMachineSize"))},
	},
}

// Mappers returns every descriptor of the package.
func Mappers() []*skemap.Mapper {
	return []*skemap.Mapper{
		HardwareProfile, InstanceViewStatus, VirtualMachineInstanceView,
		VirtualMachine, VirtualMachineListResult,
		VirtualMachineSize, VirtualMachineSizeListResult,
	}
}

// Register adds the compute descriptors to reg.
func Register(reg *skemap.Registry) error {
	return reg.RegisterAll(Mappers()...)
}
