package template_test

import (
	"encoding/json"
	"testing"

	"github.com/optum/avsetctl/pkg/template"
	"github.com/stretchr/testify/require"
)

var exported = []byte(`{
    "$schema": "https://schema.management.azure.com/schemas/2015-01-01/deploymentTemplate.json#",
    "contentVersion": "1.0.0.0",
    "parameters": {
        "virtualMachines_vm1_name": {
            "defaultValue": "vm1",
            "type": "String"
        },
        "virtualMachines_vm1_adminPassword": {
            "type": "SecureString"
        }
    },
    "variables": {},
    "resources": [
        {
            "type": "Microsoft.Compute/virtualMachines",
            "apiVersion": "2019-07-01",
            "name": "[parameters('virtualMachines_vm1_name')]",
            "location": "eastus",
            "zones": ["1"],
            "dependsOn": [
                "[resourceId('Microsoft.Network/networkInterfaces', 'vm1-nic')]"
            ],
            "properties": {
                "hardwareProfile": {
                    "vmSize": "Standard_DS1_v2"
                },
                "storageProfile": {
                    "osDisk": {
                        "createOption": "FromImage",
                        "diskSizeGB": 127
                    }
                }
            }
        }
    ],
    "outputs": {
        "note": {
            "type": "string",
            "value": "<a & b>"
        }
    }
}`)

func TestParse_ShouldReadKnownFields(t *testing.T) {
	t.Parallel()

	tmpl, err := template.Parse(exported)

	require.NoError(t, err)
	require.Equal(t, "1.0.0.0", tmpl.ContentVersion)
	require.Len(t, tmpl.Parameters, 2)
	require.Equal(t, "vm1", tmpl.Parameters["virtualMachines_vm1_name"].DefaultValue)
	require.Nil(t, tmpl.Parameters["virtualMachines_vm1_adminPassword"].DefaultValue)
	require.Len(t, tmpl.Resources, 1)

	vm := tmpl.Resources[0]
	require.True(t, vm.IsType("microsoft.compute/VIRTUALMACHINES"))
	require.Equal(t, "[parameters('virtualMachines_vm1_name')]", vm.Name)
	require.Equal(t, []string{"[resourceId('Microsoft.Network/networkInterfaces', 'vm1-nic')]"}, vm.DependsOn)

	size, ok := vm.Properties.String("hardwareProfile", "vmSize")
	require.True(t, ok)
	require.Equal(t, "Standard_DS1_v2", size)
}

func TestParse_ShouldRejectNonObject(t *testing.T) {
	t.Parallel()

	_, err := template.Parse([]byte(`[1, 2, 3]`))

	require.Error(t, err)
}

func TestEncode_ShouldPreserveUnknownKeysAndNumbers(t *testing.T) {
	t.Parallel()

	tmpl, err := template.Parse(exported)
	require.NoError(t, err)

	out, err := tmpl.Encode()
	require.NoError(t, err)

	require.Contains(t, string(out), `"diskSizeGB": 127`)
	require.Contains(t, string(out), `"<a & b>"`, "html characters should not be escaped")
	require.Contains(t, string(out), "\n    \"contentVersion\"", "output should use four space indentation")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Contains(t, decoded, "outputs")

	resources := decoded["resources"].([]interface{})
	vm := resources[0].(map[string]interface{})
	require.Equal(t, []interface{}{"1"}, vm["zones"])
	require.Equal(t, "eastus", vm["location"])
}

func TestEncode_ShouldWriteClearedDependsOnAsEmptyArray(t *testing.T) {
	t.Parallel()

	tmpl, err := template.Parse(exported)
	require.NoError(t, err)

	tmpl.Resources[0].DependsOn = []string{}

	out, err := tmpl.Encode()
	require.NoError(t, err)
	require.Contains(t, string(out), `"dependsOn": []`)
}

func TestResourcesOfType_ShouldKeepTemplateOrder(t *testing.T) {
	t.Parallel()

	tmpl := &template.Template{Resources: []*template.Resource{
		{Type: template.VirtualMachineType, Name: "a"},
		{Type: template.NetworkInterfaceType, Name: "nic"},
		{Type: template.VirtualMachineType, Name: "b"},
	}}

	vms := tmpl.ResourcesOfType(template.VirtualMachineType)

	require.Len(t, vms, 2)
	require.Equal(t, "a", vms[0].Name)
	require.Equal(t, "b", vms[1].Name)
}

func TestObject_PathOperations(t *testing.T) {
	t.Parallel()

	o := template.Object{
		"storageProfile": map[string]interface{}{
			"osDisk": map[string]interface{}{
				"vhd": map[string]interface{}{"uri": "https://x/y.vhd"},
			},
			"dataDisks": []interface{}{
				map[string]interface{}{"lun": json.Number("0")},
				"not an object",
			},
		},
	}

	require.True(t, o.Has("storageProfile", "osDisk", "vhd"))
	require.False(t, o.Has("storageProfile", "imageReference"))
	require.Len(t, o.Objects("storageProfile", "dataDisks"), 1)

	o.Set("Attach", "storageProfile", "osDisk", "createOption")
	v, ok := o.String("storageProfile", "osDisk", "createOption")
	require.True(t, ok)
	require.Equal(t, "Attach", v)

	o.Set(map[string]interface{}{"id": "x"}, "availabilitySet")
	id, ok := o.String("availabilitySet", "id")
	require.True(t, ok)
	require.Equal(t, "x", id)

	require.True(t, o.Delete("storageProfile", "osDisk", "vhd"))
	require.False(t, o.Delete("storageProfile", "osDisk", "vhd"))
	require.False(t, o.Has("storageProfile", "osDisk", "vhd"))

	// edits through Objects are visible in the parent
	o.Objects("storageProfile", "dataDisks")[0].Set("Attach", "createOption")
	disk := o.Array("storageProfile", "dataDisks")[0].(map[string]interface{})
	require.Equal(t, "Attach", disk["createOption"])
}

func TestObject_SetShouldCreateIntermediateObjects(t *testing.T) {
	t.Parallel()

	o := template.Object{"a": "scalar"}
	o.Set(true, "a", "b", "c")

	v, ok := o.Get("a", "b", "c")
	require.True(t, ok)
	require.Equal(t, true, v)
}

func TestClone_ShouldKeepDefaultValuesAndShareNothing(t *testing.T) {
	t.Parallel()

	tmpl, err := template.Parse(exported)
	require.NoError(t, err)

	copied, err := tmpl.Clone()
	require.NoError(t, err)

	require.Equal(t, "vm1", copied.Parameters["virtualMachines_vm1_name"].DefaultValue)
	require.Equal(t, tmpl.Resources[0].Properties, copied.Resources[0].Properties)

	copied.Parameters["virtualMachines_vm1_name"].DefaultValue = "changed"
	copied.Resources[0].Properties.Set("Standard_D2s_v3", "hardwareProfile", "vmSize")
	copied.Resources[0].DependsOn[0] = "changed"

	require.Equal(t, "vm1", tmpl.Parameters["virtualMachines_vm1_name"].DefaultValue)
	size, _ := tmpl.Resources[0].Properties.String("hardwareProfile", "vmSize")
	require.Equal(t, "Standard_DS1_v2", size)
	require.NotEqual(t, "changed", tmpl.Resources[0].DependsOn[0])
}
