package az

import "context"

func GroupDeploymentValidate(ctx context.Context, options *Options, resourceGroup string, deploymentName string, file string) (out string, err error) {
	return RunAzureCLICommand(ctx, options, withSubscription(options, groupDeploymentArgs("validate", resourceGroup, deploymentName, file))...)
}

func GroupDeploymentCreate(ctx context.Context, options *Options, resourceGroup string, deploymentName string, file string) (out string, err error) {
	return RunAzureCLICommand(ctx, options, withSubscription(options, groupDeploymentArgs("create", resourceGroup, deploymentName, file))...)
}

// deployments are always incremental so resources missing from the template are left alone
func groupDeploymentArgs(action string, resourceGroup string, deploymentName string, file string) []string {
	return []string{
		"deployment",
		"group",
		action,
		"--resource-group",
		resourceGroup,
		"--name",
		deploymentName,
		"--template-file",
		file,
		"--mode",
		"Incremental",
		"--output",
		"json",
	}
}
