package az

import "context"

func Version(ctx context.Context, options *Options) (out string, err error) {
	return RunAzureCLICommand(ctx, options, "version", "--output", "json")
}
