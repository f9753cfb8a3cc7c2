//go:generate mockgen -destination ../../mocks/mock_provider.go -package=mocks github.com/optum/avsetctl/pkg/provider Provider

package provider

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is wrapped by provider errors for resources that do not exist.
var ErrNotFound = errors.New("resource not found")

// Availability set SKUs. Aligned sets take VMs with managed disks, Classic sets take VMs with
// unmanaged (VHD blob) disks.
const (
	SKUAligned = "Aligned"
	SKUClassic = "Classic"
)

// AvailabilitySet is the subset of an availability set the tool needs.
type AvailabilitySet struct {
	ID   string
	Name string
	SKU  string
}

// IsAligned reports whether the set accepts managed disks.
func (a AvailabilitySet) IsAligned() bool {
	return strings.EqualFold(a.SKU, SKUAligned)
}

// PowerState is the PowerState/* status code of a VM instance, without the prefix.
type PowerState string

const (
	PowerStateRunning      PowerState = "running"
	PowerStateStarting     PowerState = "starting"
	PowerStateStopping     PowerState = "stopping"
	PowerStateStopped      PowerState = "stopped"
	PowerStateDeallocating PowerState = "deallocating"
	PowerStateDeallocated  PowerState = "deallocated"
	PowerStateUnknown      PowerState = "unknown"
)

// ParsePowerState converts an instance view status code such as "PowerState/running".
func ParsePowerState(code string) PowerState {
	code = strings.TrimSpace(strings.ToLower(code))
	if !strings.HasPrefix(code, "powerstate/") {
		return PowerStateUnknown
	}

	return PowerState(strings.TrimPrefix(code, "powerstate/"))
}

// IsStopped reports whether the instance no longer needs to be stopped.
func (p PowerState) IsStopped() bool {
	return p == PowerStateStopped || p == PowerStateDeallocated || p == PowerStateDeallocating
}

// Provider performs the stateful cloud operations. Deployments are always submitted in
// Incremental mode so unrelated resources in the group are left alone.
type Provider interface {
	GetAvailabilitySet(ctx context.Context, resourceGroup string, name string) (AvailabilitySet, error)
	// ExportResourceGroupTemplate returns the exported template JSON including parameter default values.
	ExportResourceGroupTemplate(ctx context.Context, resourceGroup string) ([]byte, error)
	GetVMInstanceStatus(ctx context.Context, resourceGroup string, vmName string) (PowerState, error)
	StopVMInstance(ctx context.Context, resourceGroup string, vmName string) error
	DeleteVMInstance(ctx context.Context, resourceGroup string, vmName string) error
	DeleteNetworkInterface(ctx context.Context, resourceGroup string, nicName string) error
	ValidateDeployment(ctx context.Context, resourceGroup string, deploymentName string, template []byte) error
	DeployTemplate(ctx context.Context, resourceGroup string, deploymentName string, template []byte) error
}
