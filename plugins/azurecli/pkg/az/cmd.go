package az

import (
	"context"

	"github.com/gruntwork-io/terratest/modules/collections"
	"github.com/optum/avsetctl/pkg/shell"
)

// RunAzureCLICommand runs az with the given arguments and returns its stdout. Warnings printed to stderr
// are kept out of the output so it can be parsed as JSON.
func RunAzureCLICommand(ctx context.Context, options *Options, additionalArgs ...string) (string, error) {
	args := append([]string{}, additionalArgs...)
	if !collections.ListContains(args, "--only-show-errors") {
		args = append(args, "--only-show-errors")
	}

	cmd := shell.Command{
		Command:           options.AzureCLIBinary,
		Args:              args,
		WorkingDir:        options.AzureCLIDir,
		Env:               options.EnvVars,
		OutputMaxLineSize: options.OutputMaxLineSize,
		SensitiveArgs:     false,
		Logger:            options.Logger,
	}

	return shell.RunCommandAndGetStdOut(ctx, cmd)
}

// withSubscription appends --subscription for resource commands.
func withSubscription(options *Options, args []string) []string {
	if options.Subscription == "" || collections.ListContains(args, "--subscription") {
		return args
	}

	return append(args, "--subscription", options.Subscription)
}
