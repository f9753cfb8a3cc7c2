package az

import "context"

func NICDelete(ctx context.Context, options *Options, resourceGroup string, name string) (out string, err error) {
	args := []string{
		"network",
		"nic",
		"delete",
		"--resource-group",
		resourceGroup,
		"--name",
		name,
	}

	return RunAzureCLICommand(ctx, options, withSubscription(options, args)...)
}
