package operations

import (
	"context"
	"errors"
	"fmt"

	"github.com/optum/avsetctl/pkg/config"
	"github.com/optum/avsetctl/pkg/provider"
	"github.com/optum/avsetctl/pkg/transform"
)

// Join redeploys the requested VMs into an availability set.
func (e *Executor) Join(ctx context.Context, exec config.JoinExecution) (out config.Output) {
	out.Status = config.Fail

	if out.Err = exec.Validate(); out.Err != nil {
		return
	}

	r := e.newRun(config.JoinOperation, exec.ResourceGroup)
	out.DeploymentName = r.deploymentName

	var set provider.AvailabilitySet
	err := e.call(ctx, fmt.Sprintf("Reading availability set %s", exec.AvailabilitySet), func(ctx context.Context) (err error) {
		set, err = e.Provider.GetAvailabilitySet(ctx, exec.ResourceGroup, exec.AvailabilitySet)
		return
	})
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			err = transform.NotFoundError{Kind: "availability set", Name: exec.AvailabilitySet}
		}
		r.logger.WithError(err).Error("Unable to read availability set")
		out.Err = err
		return
	}
	r.logger.Infof("Availability set %s has sku %s", set.Name, set.SKU)

	tmpl, err := e.export(ctx, r, &out)
	if err != nil {
		r.logger.WithError(err).Error("Unable to export template")
		out.Err = err
		return
	}

	result, err := e.Transformer.Join(tmpl, transform.JoinRequest{
		VMNames:         exec.VMNames,
		OSType:          exec.OSType,
		AvailabilitySet: set,
	})
	out.Skipped = result.Skipped
	if err != nil {
		r.logger.WithError(err).Error("Unable to transform template")
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

	e.execute(ctx, r, exec.Confirm, data, out.VMs, "", &out)

	return
}
