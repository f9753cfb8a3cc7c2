package plugins_azuresdk

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/optum/avsetctl/pkg/config"
	"github.com/optum/avsetctl/pkg/provider"
	"github.com/sirupsen/logrus"
)

// environmentToCloud maps environment names to their corresponding cloud configurations.
var environmentToCloud = map[string]cloud.Configuration{
	"public":       cloud.AzurePublic,
	"usgovernment": cloud.AzureGovernment,
	"china":        cloud.AzureChina,
}

type AzureSDKPlugin struct{}

func (info AzureSDKPlugin) Initialize(logger *logrus.Entry, cfg config.Config) (provider.Provider, error) {
	logger.Debug("Initializing Azure SDK provider")

	cld, err := cloudFor(cfg.Environment)
	if err != nil {
		return nil, err
	}

	clientOptions := policy.ClientOptions{Cloud: cld}
	credential, err := azidentity.NewDefaultAzureCredential(&azidentity.DefaultAzureCredentialOptions{
		ClientOptions: clientOptions,
	})
	if err != nil {
		return nil, fmt.Errorf("acquiring Azure credential: %w", err)
	}

	return newProvider(logger, cfg.SubscriptionID, credential, &arm.ClientOptions{ClientOptions: clientOptions})
}

func newProvider(logger *logrus.Entry, subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*Provider, error) {
	availabilitySets, err := armcompute.NewAvailabilitySetsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	virtualMachines, err := armcompute.NewVirtualMachinesClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	interfaces, err := armnetwork.NewInterfacesClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	resourceGroups, err := armresources.NewResourceGroupsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	deployments, err := armresources.NewDeploymentsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &Provider{
		AvailabilitySets: availabilitySets,
		VirtualMachines:  virtualMachines,
		Interfaces:       interfaces,
		ResourceGroups:   resourceGroups,
		Deployments:      deployments,
		Logger:           logger.WithField("provider", "sdk"),
	}, nil
}

func cloudFor(environment string) (cloud.Configuration, error) {
	cld, ok := environmentToCloud[environment]
	if !ok {
		return cloud.Configuration{}, fmt.Errorf("unknown Azure environment %q", environment)
	}

	return cld, nil
}
