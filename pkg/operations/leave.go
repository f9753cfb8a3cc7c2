package operations

import (
	"context"

	"github.com/optum/avsetctl/pkg/config"
	"github.com/optum/avsetctl/pkg/transform"
)

// Leave redeploys a VM without its availability set. A network interface that loses its load
// balancer associations is deleted and redeployed with the VM.
func (e *Executor) Leave(ctx context.Context, exec config.LeaveExecution) (out config.Output) {
	out.Status = config.Fail

	if out.Err = exec.Validate(); out.Err != nil {
		return
	}

	r := e.newRun(config.LeaveOperation, exec.ResourceGroup)
	out.DeploymentName = r.deploymentName

	tmpl, err := e.export(ctx, r, &out)
	if err != nil {
		r.logger.WithError(err).Error("Unable to export template")
		out.Err = err
		return
	}

	result, err := e.Transformer.Leave(tmpl, transform.LeaveRequest{
		VMName: exec.VMName,
		OSType: exec.OSType,
	})
	if err != nil {
		r.logger.WithField("vm", exec.VMName).WithError(err).Error("Unable to transform template")
		out.Err = err
		return
	}
	out.VMs = result.VMNames()
	out.Warnings = result.Warnings

	data, err := e.writeNew(r, result.Template, &out)
	if err != nil {
		out.Err = err
		return
	}

	e.execute(ctx, r, exec.Confirm, data, out.VMs, result.NetworkInterface, &out)

	return
}
