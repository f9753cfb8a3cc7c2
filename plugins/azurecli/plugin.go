package plugins_azurecli

import (
	"context"

	"github.com/optum/avsetctl/pkg/config"
	"github.com/optum/avsetctl/pkg/provider"
	"github.com/optum/avsetctl/pkg/shell"
	"github.com/optum/avsetctl/plugins/azurecli/pkg/az"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

type AzureCLIPlugin struct{}

func (info AzureCLIPlugin) Initialize(logger *logrus.Entry, cfg config.Config) (provider.Provider, error) {
	logger.Debug("Initializing Azure CLI provider")

	if err := shell.CommandInstalledE(cfg.AzureCLIBinary); err != nil {
		return nil, err
	}

	options := &az.Options{
		AzureCLIBinary:    cfg.AzureCLIBinary,
		AzureCLIDir:       ".",
		EnvVars:           map[string]string{},
		OutputMaxLineSize: cfg.CLIOutputMaxLineSize,
		Subscription:      cfg.SubscriptionID,
		Logger:            logger.WithField("provider", "cli"),
	}

	// display azure cli binary information
	azureCLI := az.AzureCLI{}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.CallTimeout)
	defer cancel()

	if version, err := azureCLI.Version(ctx, options); err != nil {
		logger.WithError(err).Warn("Unable to read Azure CLI version")
	} else {
		logger.Debugf("Azure CLI version: %s", version)
	}

	return &Provider{CLI: azureCLI, Options: options, Fs: afero.NewOsFs()}, nil
}
