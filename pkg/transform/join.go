package transform

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/optum/avsetctl/pkg/provider"
	"github.com/optum/avsetctl/pkg/template"
	"github.com/samber/lo"
)

// JoinRequest asks for VMs to be redeployed into an availability set.
type JoinRequest struct {
	VMNames         []string
	OSType          string
	AvailabilitySet provider.AvailabilitySet
}

// Join reduces the template to the requested VMs and attaches them to the availability set.
func (t Transformer) Join(tmpl *template.Template, req JoinRequest) (Result, error) {
	out, err := t.copyTemplate(tmpl)
	if err != nil {
		return Result{}, err
	}

	result := Result{Template: out}
	result.StrippedParameters = StripParameters(out)
	if len(result.StrippedParameters) > 0 {
		t.Logger.Debugf("Removed parameters: %s", strings.Join(result.StrippedParameters, ", "))
	}

	var selected []*template.Resource
	for _, name := range req.VMNames {
		param, ok := ResolveVM(out, name)
		if !ok {
			if t.UnresolvedVM == UnresolvedFail {
				return Result{}, NotFoundError{Kind: "virtual machine", Name: name}
			}

			t.Logger.WithField("vm", name).Warn("No template parameter holds this VM name, skipping")
			result.Skipped = append(result.Skipped, name)
			continue
		}

		for _, vm := range SelectVMs(out, param) {
			if lo.Contains(selected, vm) {
				continue
			}
			selected = append(selected, vm)
			result.VMs = append(result.VMs, VM{Name: vmName(out, vm), Parameter: param})
		}
	}

	out.Resources = selected

	if err := t.checkSizes(selected); err != nil {
		return Result{}, err
	}

	for _, vm := range selected {
		if managed := hasManagedDisk(vm); managed != req.AvailabilitySet.IsAligned() {
			return Result{}, AlignmentError{VM: vmName(out, vm), Managed: managed, SKU: req.AvailabilitySet.SKU}
		}
	}

	for _, vm := range selected {
		prepareVM(vm, req.OSType)
		vm.Properties.Set(template.Object{"id": req.AvailabilitySet.ID}, "availabilitySet")
	}

	if len(out.Resources) == 0 {
		return Result{Skipped: result.Skipped}, EmptyTemplateError{VMs: req.VMNames}
	}

	return result, nil
}

func (t Transformer) checkSizes(vms []*template.Resource) error {
	sizes := mapset.NewThreadUnsafeSet[string]()
	for _, vm := range vms {
		size, _ := vm.Properties.String("hardwareProfile", "vmSize")
		sizes.Add(size)
	}

	switch t.SizeCheck {
	case SizeCheckOff:
		return nil
	case SizeCheckLegacy:
		if sizes.Cardinality() == 1 {
			return SizeMismatchError{Check: SizeCheckLegacy, Sizes: mapset.Sorted(sizes)}
		}
	default:
		if sizes.Cardinality() > 1 {
			return SizeMismatchError{Check: SizeCheckStrict, Sizes: mapset.Sorted(sizes)}
		}
	}

	return nil
}
