package az

import "context"

//go:generate mockgen -destination ../../../../mocks/mock_azurerm.go -package=mocks github.com/optum/avsetctl/plugins/azurecli/pkg/az AzureRM

type AzureRM interface {
	AvailabilitySetShow(ctx context.Context, options *Options, resourceGroup string, name string) (out string, err error)
	GroupExport(ctx context.Context, options *Options, resourceGroup string) (out string, err error)
	VMInstanceView(ctx context.Context, options *Options, resourceGroup string, name string) (out string, err error)
	VMDeallocate(ctx context.Context, options *Options, resourceGroup string, name string) (out string, err error)
	VMDelete(ctx context.Context, options *Options, resourceGroup string, name string) (out string, err error)
	NICDelete(ctx context.Context, options *Options, resourceGroup string, name string) (out string, err error)
	GroupDeploymentValidate(ctx context.Context, options *Options, resourceGroup string, deploymentName string, file string) (out string, err error)
	GroupDeploymentCreate(ctx context.Context, options *Options, resourceGroup string, deploymentName string, file string) (out string, err error)
	Version(ctx context.Context, options *Options) (out string, err error)
}

type AzureCLI struct{}

func (a AzureCLI) AvailabilitySetShow(ctx context.Context, options *Options, resourceGroup string, name string) (out string, err error) {
	return AvailabilitySetShow(ctx, options, resourceGroup, name)
}

func (a AzureCLI) GroupExport(ctx context.Context, options *Options, resourceGroup string) (out string, err error) {
	return GroupExport(ctx, options, resourceGroup)
}

func (a AzureCLI) VMInstanceView(ctx context.Context, options *Options, resourceGroup string, name string) (out string, err error) {
	return VMInstanceView(ctx, options, resourceGroup, name)
}

func (a AzureCLI) VMDeallocate(ctx context.Context, options *Options, resourceGroup string, name string) (out string, err error) {
	return VMDeallocate(ctx, options, resourceGroup, name)
}

func (a AzureCLI) VMDelete(ctx context.Context, options *Options, resourceGroup string, name string) (out string, err error) {
	return VMDelete(ctx, options, resourceGroup, name)
}

func (a AzureCLI) NICDelete(ctx context.Context, options *Options, resourceGroup string, name string) (out string, err error) {
	return NICDelete(ctx, options, resourceGroup, name)
}

func (a AzureCLI) GroupDeploymentValidate(ctx context.Context, options *Options, resourceGroup string, deploymentName string, file string) (out string, err error) {
	return GroupDeploymentValidate(ctx, options, resourceGroup, deploymentName, file)
}

func (a AzureCLI) GroupDeploymentCreate(ctx context.Context, options *Options, resourceGroup string, deploymentName string, file string) (out string, err error) {
	return GroupDeploymentCreate(ctx, options, resourceGroup, deploymentName, file)
}

func (a AzureCLI) Version(ctx context.Context, options *Options) (out string, err error) {
	return Version(ctx, options)
}
