package config

import (
	"github.com/optum/avsetctl/pkg/provider"
	"github.com/sirupsen/logrus"
)

// Interface ProviderPlugin describes capabilities and initialization for cloud provider backends.
type ProviderPlugin interface {
	// Initialize allows a plugin to perform one-time initialization prior to use and returns the
	// provider that performs cloud calls. Any user-facing output should be sent to the provided `logger` instance.
	Initialize(logger *logrus.Entry, cfg Config) (provider.Provider, error)
}
