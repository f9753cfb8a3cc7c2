package transform

import (
	"fmt"
	"strings"

	"github.com/optum/avsetctl/pkg/template"
)

var loadBalancerAssociations = []string{"loadBalancerBackendAddressPools", "loadBalancerInboundNatRules"}

// LeaveRequest asks for a VM to be redeployed outside of its availability set.
type LeaveRequest struct {
	VMName string
	OSType string
}

// Leave reduces the template to the requested VM without its availability set. A network interface
// that belongs to a load balancer is detached from it and redeployed with the VM.
func (t Transformer) Leave(tmpl *template.Template, req LeaveRequest) (Result, error) {
	out, err := t.copyTemplate(tmpl)
	if err != nil {
		return Result{}, err
	}

	result := Result{Template: out}
	result.StrippedParameters = StripParameters(out)

	param, ok := ResolveVM(out, req.VMName)
	if !ok {
		return Result{}, NotFoundError{Kind: "virtual machine", Name: req.VMName}
	}

	vms := SelectVMs(out, param)
	if len(vms) == 0 {
		return Result{}, EmptyTemplateError{VMs: []string{req.VMName}}
	}

	vm := vms[0]
	name := vmName(out, vm)
	logger := t.Logger.WithField("vm", name)
	result.VMs = []VM{{Name: name, Parameter: param}}

	nics := vm.Properties.Objects("networkProfile", "networkInterfaces")
	if len(nics) > 1 {
		return Result{}, UnsupportedTopologyError{VM: name, NetworkInterfaces: len(nics)}
	}

	resources := []*template.Resource{vm}
	var nicReference string

	if len(nics) == 1 {
		id, _ := nics[0].String("id")
		nic, nicName, err := findNetworkInterface(out, id)
		if err != nil {
			logger.WithError(err).Warn("Unable to resolve the network interface reference, leaving it untouched")
		} else if nic != nil && detachLoadBalancer(nic) {
			warning := fmt.Sprintf("network interface '%s' was removed from its load balancer backend pools and inbound NAT rules, reestablish them after the deployment", nicName)
			logger.Warn(warning)

			result.Warnings = append(result.Warnings, warning)
			result.NetworkInterface = nicName

			nic.DependsOn = []string{}
			resources = append(resources, nic)
			nicReference = id
		}
	}

	prepareVM(vm, req.OSType)
	vm.Properties.Delete("availabilitySet")

	if nicReference != "" {
		vm.DependsOn = append(vm.DependsOn, nicReference)
	}

	out.Resources = resources

	return result, nil
}

// findNetworkInterface resolves a NIC reference from a VM's network profile to its resource
// declaration. A nil resource with no error means the NIC is not part of the template.
func findNetworkInterface(t *template.Template, id string) (*template.Resource, string, error) {
	resolver := t.Resolver()

	ref, err := resolver.ResourceID(id)
	if err != nil {
		return nil, "", err
	}

	if !strings.EqualFold(ref.Type, template.NetworkInterfaceType) {
		return nil, "", fmt.Errorf("'%s' does not reference a network interface", id)
	}

	for _, nic := range t.ResourcesOfType(template.NetworkInterfaceType) {
		name, err := resolver.Resolve(nic.Name)
		if err != nil {
			continue
		}

		if strings.EqualFold(name, ref.Name) {
			return nic, name, nil
		}
	}

	return nil, ref.Name, nil
}

// detachLoadBalancer removes load balancer associations from every IP configuration and reports
// whether any were present.
func detachLoadBalancer(nic *template.Resource) bool {
	detached := false
	for _, ipConfig := range nic.Properties.Objects("ipConfigurations") {
		for _, key := range loadBalancerAssociations {
			if ipConfig.Delete("properties", key) {
				detached = true
			}
		}
	}

	return detached
}
