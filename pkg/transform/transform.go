package transform

import (
	"fmt"
	"strings"

	"github.com/optum/avsetctl/pkg/template"
	"github.com/sirupsen/logrus"
)

// SizeCheck selects how VM sizes are compared on join.
type SizeCheck string

const (
	// SizeCheckStrict rejects VMs of more than one distinct size.
	SizeCheckStrict SizeCheck = "strict"
	// SizeCheckLegacy rejects VMs that share exactly one distinct size. This mirrors the shipped
	// scripts, whose comparison is inverted from their documentation.
	SizeCheckLegacy SizeCheck = "legacy"
	SizeCheckOff    SizeCheck = "off"
)

// UnresolvedPolicy selects what happens to join VM names that match no parameter.
type UnresolvedPolicy string

const (
	UnresolvedSkip UnresolvedPolicy = "skip"
	UnresolvedFail UnresolvedPolicy = "fail"
)

// Transformer rewrites exported templates so they redeploy VMs into or out of an availability set.
// Input templates are never modified.
type Transformer struct {
	Logger       *logrus.Entry
	SizeCheck    SizeCheck
	UnresolvedVM UnresolvedPolicy
}

// VM is a virtual machine selected for redeployment.
type VM struct {
	Name      string
	Parameter string
}

// Result is a transformed template together with what the caller needs to execute it.
type Result struct {
	Template           *template.Template
	VMs                []VM
	Skipped            []string
	StrippedParameters []string
	// NetworkInterface is the NIC that must be deleted before deployment, empty when none.
	NetworkInterface string
	Warnings         []string
}

// VMNames returns the literal names of the selected VMs.
func (r Result) VMNames() []string {
	names := make([]string, 0, len(r.VMs))
	for _, vm := range r.VMs {
		names = append(names, vm.Name)
	}

	return names
}

func (t Transformer) copyTemplate(tmpl *template.Template) (*template.Template, error) {
	out, err := tmpl.Clone()
	if err != nil {
		return nil, fmt.Errorf("copying template: %w", err)
	}

	return out, nil
}

// prepareVM turns a VM declaration into one that attaches its existing disks instead of creating
// them from an image.
func prepareVM(vm *template.Resource, osType string) {
	vm.DependsOn = []string{}

	if vm.Properties == nil {
		vm.Properties = template.Object{}
	}
	props := vm.Properties

	props.Set("Attach", "storageProfile", "osDisk", "createOption")
	props.Delete("osProfile")

	if current, _ := props.String("storageProfile", "osDisk", "osType"); current == "" {
		props.Set(strings.ToLower(osType), "storageProfile", "osDisk", "osType")
	}

	props.Delete("storageProfile", "imageReference")

	for _, disk := range props.Objects("storageProfile", "dataDisks") {
		disk.Set("Attach", "createOption")
	}

	for _, nic := range props.Objects("networkProfile", "networkInterfaces") {
		nic.Delete("properties", "primary")
	}
}

// hasManagedDisk reports whether the OS disk is a managed disk, i.e. not a VHD blob.
func hasManagedDisk(vm *template.Resource) bool {
	return !vm.Properties.Has("storageProfile", "osDisk", "vhd")
}
