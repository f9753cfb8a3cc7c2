package az

import "context"

func VMInstanceView(ctx context.Context, options *Options, resourceGroup string, name string) (out string, err error) {
	args := []string{
		"vm",
		"get-instance-view",
		"--resource-group",
		resourceGroup,
		"--name",
		name,
		"--query",
		"instanceView.statuses",
		"--output",
		"json",
	}

	return RunAzureCLICommand(ctx, options, withSubscription(options, args)...)
}

func VMDeallocate(ctx context.Context, options *Options, resourceGroup string, name string) (out string, err error) {
	args := []string{
		"vm",
		"deallocate",
		"--resource-group",
		resourceGroup,
		"--name",
		name,
	}

	return RunAzureCLICommand(ctx, options, withSubscription(options, args)...)
}

func VMDelete(ctx context.Context, options *Options, resourceGroup string, name string) (out string, err error) {
	args := []string{
		"vm",
		"delete",
		"--resource-group",
		resourceGroup,
		"--name",
		name,
		"--yes",
	}

	return RunAzureCLICommand(ctx, options, withSubscription(options, args)...)
}
