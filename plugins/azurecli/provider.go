package plugins_azurecli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	goerrors "github.com/go-errors/errors"
	"github.com/optum/avsetctl/pkg/provider"
	"github.com/optum/avsetctl/plugins/azurecli/pkg/az"
	"github.com/spf13/afero"
)

// az prints one of these when the target of a show/delete call does not exist
var notFoundMarkers = []string{"ResourceNotFound", "ResourceGroupNotFound", "was not found", "could not be found"}

// Provider performs cloud calls by shelling out to the Azure CLI.
type Provider struct {
	CLI     az.AzureRM
	Options *az.Options
	Fs      afero.Fs
}

func (p *Provider) GetAvailabilitySet(ctx context.Context, resourceGroup string, name string) (provider.AvailabilitySet, error) {
	resp, err := p.CLI.AvailabilitySetShow(ctx, p.Options, resourceGroup, name)
	if err != nil {
		return provider.AvailabilitySet{}, wrap(err)
	}

	var set availabilitySet
	if err := json.Unmarshal([]byte(resp), &set); err != nil {
		return provider.AvailabilitySet{}, wrap(fmt.Errorf("reading availability set %s: %w", name, err))
	}

	// az prints nothing for a missing set on some versions
	if set.ID == "" {
		return provider.AvailabilitySet{}, wrap(fmt.Errorf("availability set %s: %w", name, provider.ErrNotFound))
	}

	return provider.AvailabilitySet{ID: set.ID, Name: set.Name, SKU: set.SKU.Name}, nil
}

func (p *Provider) ExportResourceGroupTemplate(ctx context.Context, resourceGroup string) ([]byte, error) {
	resp, err := p.CLI.GroupExport(ctx, p.Options, resourceGroup)
	if err != nil {
		return nil, wrap(err)
	}

	data := []byte(strings.TrimSpace(resp))
	if len(data) == 0 {
		return nil, wrap(fmt.Errorf("az group export returned no template for %s", resourceGroup))
	}

	// older CLI versions wrap the template as {"template": ..., "error": ...}
	var envelope exportEnvelope
	if err := json.Unmarshal(data, &envelope); err == nil && len(envelope.Template) > 0 {
		return envelope.Template, nil
	}

	return data, nil
}

func (p *Provider) GetVMInstanceStatus(ctx context.Context, resourceGroup string, vmName string) (provider.PowerState, error) {
	resp, err := p.CLI.VMInstanceView(ctx, p.Options, resourceGroup, vmName)
	if err != nil {
		return provider.PowerStateUnknown, wrap(err)
	}

	var statuses []instanceStatus
	if err := json.Unmarshal([]byte(resp), &statuses); err != nil {
		return provider.PowerStateUnknown, wrap(fmt.Errorf("reading instance view of %s: %w", vmName, err))
	}

	for _, status := range statuses {
		if state := provider.ParsePowerState(status.Code); state != provider.PowerStateUnknown {
			return state, nil
		}
	}

	return provider.PowerStateUnknown, nil
}

func (p *Provider) StopVMInstance(ctx context.Context, resourceGroup string, vmName string) error {
	_, err := p.CLI.VMDeallocate(ctx, p.Options, resourceGroup, vmName)
	return wrap(err)
}

func (p *Provider) DeleteVMInstance(ctx context.Context, resourceGroup string, vmName string) error {
	_, err := p.CLI.VMDelete(ctx, p.Options, resourceGroup, vmName)
	return wrap(err)
}

func (p *Provider) DeleteNetworkInterface(ctx context.Context, resourceGroup string, nicName string) error {
	_, err := p.CLI.NICDelete(ctx, p.Options, resourceGroup, nicName)
	return wrap(err)
}

func (p *Provider) ValidateDeployment(ctx context.Context, resourceGroup string, deploymentName string, template []byte) error {
	return p.withTemplateFile(template, func(file string) error {
		_, err := p.CLI.GroupDeploymentValidate(ctx, p.Options, resourceGroup, deploymentName, file)
		return err
	})
}

func (p *Provider) DeployTemplate(ctx context.Context, resourceGroup string, deploymentName string, template []byte) error {
	return p.withTemplateFile(template, func(file string) error {
		_, err := p.CLI.GroupDeploymentCreate(ctx, p.Options, resourceGroup, deploymentName, file)
		return err
	})
}

// withTemplateFile writes template to a temporary file for the duration of fn since az only takes
// templates from disk.
func (p *Provider) withTemplateFile(template []byte, fn func(file string) error) error {
	f, err := afero.TempFile(p.Fs, "", "avsetctl-*.json")
	if err != nil {
		return wrap(err)
	}
	defer func() {
		_ = p.Fs.Remove(f.Name())
	}()

	if _, err := f.Write(template); err != nil {
		_ = f.Close()
		return wrap(err)
	}
	if err := f.Close(); err != nil {
		return wrap(err)
	}

	return wrap(fn(f.Name()))
}

// wrap attaches a stack trace and marks missing resources with provider.ErrNotFound.
func wrap(err error) error {
	if err == nil {
		return nil
	}

	if isNotFound(err) {
		err = fmt.Errorf("%w: %v", provider.ErrNotFound, err)
	}

	return goerrors.Wrap(err, 1)
}

func isNotFound(err error) bool {
	if goerrors.Is(err, provider.ErrNotFound) {
		return true
	}

	msg := []byte(err.Error())
	for _, marker := range notFoundMarkers {
		if bytes.Contains(msg, []byte(marker)) {
			return true
		}
	}

	return false
}
