package operations

import (
	"context"
	"fmt"

	"github.com/optum/avsetctl/pkg/config"
	"github.com/optum/avsetctl/pkg/template"
)

// Redeploy submits a previously written template again, used to recover a resource group whose
// VMs were deleted but whose deployment failed.
func (e *Executor) Redeploy(ctx context.Context, exec config.RedeployExecution) (out config.Output) {
	out.Status = config.Fail

	if out.Err = exec.Validate(); out.Err != nil {
		return
	}

	r := e.newRun(config.RedeployOperation, exec.ResourceGroup)
	out.DeploymentName = r.deploymentName

	path, data, err := e.Artifacts.Stage(ctx, exec.TemplateSource, r.ts)
	if err != nil {
		r.logger.WithError(err).Errorf("Unable to stage template %s", exec.TemplateSource)
		out.Err = err
		return
	}
	out.NewTemplatePath = path

	tmpl, err := template.Parse(data)
	if err != nil {
		r.logger.WithError(err).Errorf("Template %s is not valid", exec.TemplateSource)
		out.Err = err
		return
	}
	for _, vm := range tmpl.ResourcesOfType(template.VirtualMachineType) {
		if name, err := tmpl.Resolver().Resolve(vm.Name); err == nil {
			out.VMs = append(out.VMs, name)
		}
	}

	if out.Err = e.validate(ctx, r, data, path); out.Err != nil {
		return
	}

	ok, err := e.confirmed(r, exec.Confirm, fmt.Sprintf("Deploy %s to resource group %s?", path, exec.ResourceGroup))
	if err != nil {
		out.Err = err
		return
	}
	if !ok {
		r.logger.Infof("Not confirmed, run again with --confirm to deploy %s", path)
		out.Status = config.Skipped
		return
	}

	e.deploy(ctx, r, data, &out)

	return
}
