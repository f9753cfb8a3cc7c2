package az

import "context"

// GroupExport exports the resource group as a template, including parameter default values so
// VM names can be resolved from them.
func GroupExport(ctx context.Context, options *Options, resourceGroup string) (out string, err error) {
	args := []string{
		"group",
		"export",
		"--name",
		resourceGroup,
		"--include-parameter-default-value",
		"--output",
		"json",
	}

	return RunAzureCLICommand(ctx, options, withSubscription(options, args)...)
}
