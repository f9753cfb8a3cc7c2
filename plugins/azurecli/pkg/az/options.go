package az

import (
	"github.com/sirupsen/logrus"
)

type Options struct {
	AzureCLIBinary    string
	AzureCLIDir       string
	EnvVars           map[string]string
	OutputMaxLineSize int
	Subscription      string // Passed as --subscription to resource commands when set
	Logger            *logrus.Entry
}
