package transform

import (
	"fmt"
	"strings"
)

// NotFoundError is returned when an availability set or virtual machine does not exist.
type NotFoundError struct {
	Kind string
	Name string
}

func (err NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' was not found", err.Kind, err.Name)
}

// SizeMismatchError is returned when the selected virtual machines fail the size check.
type SizeMismatchError struct {
	Check SizeCheck
	Sizes []string
}

func (err SizeMismatchError) Error() string {
	if err.Check == SizeCheckLegacy {
		return fmt.Sprintf("virtual machines have a single size (%s), legacy size check requires more than one", strings.Join(err.Sizes, ", "))
	}

	return fmt.Sprintf("virtual machines must all have the same size, found: %s", strings.Join(err.Sizes, ", "))
}

// AlignmentError is returned when a VM's disk type does not fit the availability set SKU.
type AlignmentError struct {
	VM      string
	Managed bool
	SKU     string
}

func (err AlignmentError) Error() string {
	disk := "unmanaged"
	if err.Managed {
		disk = "managed"
	}

	return fmt.Sprintf("virtual machine '%s' uses %s disks and cannot join an availability set with sku '%s'", err.VM, disk, err.SKU)
}

// UnsupportedTopologyError is returned for virtual machines with more than one network interface.
type UnsupportedTopologyError struct {
	VM                string
	NetworkInterfaces int
}

func (err UnsupportedTopologyError) Error() string {
	return fmt.Sprintf("virtual machine '%s' has %d network interfaces, only one is supported", err.VM, err.NetworkInterfaces)
}

// EmptyTemplateError is returned when no resources are left after filtering.
type EmptyTemplateError struct {
	VMs []string
}

func (err EmptyTemplateError) Error() string {
	return fmt.Sprintf("no virtual machine resources matched %s", strings.Join(err.VMs, ", "))
}
