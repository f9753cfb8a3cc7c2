package az

import "context"

func AvailabilitySetShow(ctx context.Context, options *Options, resourceGroup string, name string) (out string, err error) {
	args := []string{
		"vm",
		"availability-set",
		"show",
		"--resource-group",
		resourceGroup,
		"--name",
		name,
		"--output",
		"json",
	}

	return RunAzureCLICommand(ctx, options, withSubscription(options, args)...)
}
