package plugins_azuresdk

import (
	"context"
	"encoding/json"
	"fmt"

	sdkerrors "github.com/Azure/azure-sdk-for-go-extensions/pkg/errors"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	goerrors "github.com/go-errors/errors"
	"github.com/optum/avsetctl/pkg/provider"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// ExportOptions asks the exporter to keep parameter default values, which carry the VM names.
const ExportOptions = "IncludeParameterDefaultValue"

// Provider performs cloud calls through the Azure Resource Manager SDK.
type Provider struct {
	AvailabilitySets AvailabilitySetsAPI
	VirtualMachines  VirtualMachinesAPI
	Interfaces       InterfacesAPI
	ResourceGroups   ResourceGroupsAPI
	Deployments      DeploymentsAPI
	Logger           *logrus.Entry
}

func (p *Provider) GetAvailabilitySet(ctx context.Context, resourceGroup string, name string) (provider.AvailabilitySet, error) {
	resp, err := p.AvailabilitySets.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return provider.AvailabilitySet{}, wrap(err)
	}

	return availabilitySet(resp.AvailabilitySet), nil
}

func (p *Provider) ExportResourceGroupTemplate(ctx context.Context, resourceGroup string) ([]byte, error) {
	request := armresources.ExportTemplateRequest{
		Resources: []*string{to.Ptr("*")},
		Options:   to.Ptr(ExportOptions),
	}

	poller, err := p.ResourceGroups.BeginExportTemplate(ctx, resourceGroup, request, nil)
	if err != nil {
		return nil, wrap(err)
	}
	res, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, wrap(err)
	}

	if res.Error != nil && res.Template == nil {
		return nil, wrap(exportError(res.Error))
	}
	if res.Error != nil {
		p.Logger.WithField("code", lo.FromPtr(res.Error.Code)).Warnf("Template exported with errors: %s", lo.FromPtr(res.Error.Message))
	}

	data, err := json.Marshal(res.Template)
	if err != nil {
		return nil, wrap(err)
	}

	return data, nil
}

func (p *Provider) GetVMInstanceStatus(ctx context.Context, resourceGroup string, vmName string) (provider.PowerState, error) {
	resp, err := p.VirtualMachines.InstanceView(ctx, resourceGroup, vmName, nil)
	if err != nil {
		return provider.PowerStateUnknown, wrap(err)
	}

	return powerState(resp.Statuses), nil
}

func (p *Provider) StopVMInstance(ctx context.Context, resourceGroup string, vmName string) error {
	poller, err := p.VirtualMachines.BeginDeallocate(ctx, resourceGroup, vmName, nil)
	if err != nil {
		return wrap(err)
	}

	_, err = poller.PollUntilDone(ctx, nil)
	return wrap(err)
}

func (p *Provider) DeleteVMInstance(ctx context.Context, resourceGroup string, vmName string) error {
	poller, err := p.VirtualMachines.BeginDelete(ctx, resourceGroup, vmName, nil)
	if err != nil {
		return wrap(err)
	}

	_, err = poller.PollUntilDone(ctx, nil)
	return wrap(err)
}

func (p *Provider) DeleteNetworkInterface(ctx context.Context, resourceGroup string, nicName string) error {
	poller, err := p.Interfaces.BeginDelete(ctx, resourceGroup, nicName, nil)
	if err != nil {
		return wrap(err)
	}

	_, err = poller.PollUntilDone(ctx, nil)
	return wrap(err)
}

func (p *Provider) ValidateDeployment(ctx context.Context, resourceGroup string, deploymentName string, template []byte) error {
	deployment, err := incrementalDeployment(template)
	if err != nil {
		return wrap(err)
	}

	poller, err := p.Deployments.BeginValidate(ctx, resourceGroup, deploymentName, deployment, nil)
	if err != nil {
		return wrap(err)
	}
	res, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return wrap(err)
	}

	if res.Error != nil {
		return wrap(exportError(res.Error))
	}

	return nil
}

func (p *Provider) DeployTemplate(ctx context.Context, resourceGroup string, deploymentName string, template []byte) error {
	deployment, err := incrementalDeployment(template)
	if err != nil {
		return wrap(err)
	}

	poller, err := p.Deployments.BeginCreateOrUpdate(ctx, resourceGroup, deploymentName, deployment, nil)
	if err != nil {
		return wrap(err)
	}

	_, err = poller.PollUntilDone(ctx, nil)
	return wrap(err)
}

func incrementalDeployment(template []byte) (armresources.Deployment, error) {
	var body map[string]interface{}
	if err := json.Unmarshal(template, &body); err != nil {
		return armresources.Deployment{}, fmt.Errorf("reading template: %w", err)
	}

	return armresources.Deployment{
		Properties: &armresources.DeploymentProperties{
			Mode:     to.Ptr(armresources.DeploymentModeIncremental),
			Template: body,
		},
	}, nil
}

func availabilitySet(set armcompute.AvailabilitySet) provider.AvailabilitySet {
	out := provider.AvailabilitySet{
		ID:   lo.FromPtr(set.ID),
		Name: lo.FromPtr(set.Name),
	}
	if set.SKU != nil {
		out.SKU = lo.FromPtr(set.SKU.Name)
	}

	return out
}

func powerState(statuses []*armcompute.InstanceViewStatus) provider.PowerState {
	for _, status := range statuses {
		if status == nil {
			continue
		}
		if state := provider.ParsePowerState(lo.FromPtr(status.Code)); state != provider.PowerStateUnknown {
			return state
		}
	}

	return provider.PowerStateUnknown
}

func exportError(e *armresources.ErrorResponse) error {
	return fmt.Errorf("%s: %s", lo.FromPtr(e.Code), lo.FromPtr(e.Message))
}

// wrap attaches a stack trace and marks missing resources with provider.ErrNotFound.
func wrap(err error) error {
	if err == nil {
		return nil
	}

	if sdkerrors.IsNotFoundErr(err) || isGroupNotFound(err) {
		err = fmt.Errorf("%w: %v", provider.ErrNotFound, err)
	}

	return goerrors.Wrap(err, 1)
}

func isGroupNotFound(err error) bool {
	azErr := sdkerrors.IsResponseError(err)
	return azErr != nil && azErr.ErrorCode == "ResourceGroupNotFound"
}
