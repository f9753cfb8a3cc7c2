package transform

import (
	"strings"

	"github.com/optum/avsetctl/pkg/template"
	"github.com/samber/lo"
)

// parameters containing these markers only apply to the original deployment and fail on re-import
var strippedParameterMarkers = []string{"adminPassword", "primary", "extensions_Microsoft."}

// StripParameters removes deployment-only parameters and returns their names in sorted order.
func StripParameters(t *template.Template) []string {
	var removed []string
	for _, name := range t.ParameterNames() {
		lower := strings.ToLower(name)
		if lo.ContainsBy(strippedParameterMarkers, func(marker string) bool {
			return strings.Contains(lower, strings.ToLower(marker))
		}) {
			delete(t.Parameters, name)
			removed = append(removed, name)
		}
	}

	return removed
}

// ResolveVM finds the parameter whose default value is vmName, compared case-insensitively.
// When several parameters carry the name, only those referenced by a virtual machine resource
// name are considered. Anything other than exactly one candidate is unresolved.
func ResolveVM(t *template.Template, vmName string) (string, bool) {
	candidates := lo.Filter(t.ParameterNames(), func(name string, _ int) bool {
		value, ok := t.Parameters[name].DefaultValue.(string)
		return ok && strings.EqualFold(value, vmName)
	})

	if len(candidates) > 1 {
		vms := t.ResourcesOfType(template.VirtualMachineType)
		candidates = lo.Filter(candidates, func(name string, _ int) bool {
			return lo.ContainsBy(vms, func(vm *template.Resource) bool {
				return template.ReferencesParameter(vm.Name, name)
			})
		})
	}

	if len(candidates) != 1 {
		return "", false
	}

	return candidates[0], true
}

// SelectVMs returns the virtual machine resources whose name refers to parameter.
func SelectVMs(t *template.Template, parameter string) []*template.Resource {
	return lo.Filter(t.ResourcesOfType(template.VirtualMachineType), func(vm *template.Resource, _ int) bool {
		return template.ReferencesParameter(vm.Name, parameter)
	})
}

// vmName is the literal name of a selected VM, falling back to its name expression.
func vmName(t *template.Template, vm *template.Resource) string {
	if name, err := t.Resolver().Resolve(vm.Name); err == nil {
		return name
	}

	return vm.Name
}
