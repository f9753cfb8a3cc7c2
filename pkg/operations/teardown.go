package operations

import (
	"context"
	"fmt"
	"strings"

	"github.com/optum/avsetctl/pkg/config"
	"github.com/optum/avsetctl/pkg/provider"
	"github.com/optum/avsetctl/pkg/retry"
	"go.uber.org/multierr"
)

// teardown stops every VM, then deletes every VM, then deletes nic when set. Failures are logged
// and collected, each call is attempted regardless of earlier failures.
func (e *Executor) teardown(ctx context.Context, r run, vms []string, nic string) error {
	var errs error

	for _, vm := range vms {
		errs = multierr.Append(errs, e.stop(ctx, r, vm))
	}

	for _, vm := range vms {
		logger := r.logger.WithField("vm", vm)
		logger.Info("Deleting VM")

		err := e.call(ctx, fmt.Sprintf("Deleting VM %s", vm), func(ctx context.Context) error {
			return e.Provider.DeleteVMInstance(ctx, r.resourceGroup, vm)
		})
		if err != nil {
			logger.WithError(err).Error("Deleting VM failed")
			errs = multierr.Append(errs, fmt.Errorf("deleting VM %s: %w", vm, err))
		}
	}

	if nic != "" {
		errs = multierr.Append(errs, e.deleteNetworkInterface(ctx, r, nic))
	}

	return errs
}

func (e *Executor) stop(ctx context.Context, r run, vm string) error {
	logger := r.logger.WithField("vm", vm)

	state := provider.PowerStateUnknown
	err := e.call(ctx, fmt.Sprintf("Reading power state of %s", vm), func(ctx context.Context) (err error) {
		state, err = e.Provider.GetVMInstanceStatus(ctx, r.resourceGroup, vm)
		return
	})
	if err != nil {
		logger.WithError(err).Warn("Reading power state failed, stopping anyway")
		state = provider.PowerStateUnknown
	} else if state.IsStopped() {
		logger.Infof("VM is already %s", state)
		return nil
	}

	logger.Infof("Stopping VM (power state %s)", state)

	err = e.call(ctx, fmt.Sprintf("Stopping VM %s", vm), func(ctx context.Context) error {
		return e.Provider.StopVMInstance(ctx, r.resourceGroup, vm)
	})
	if err != nil {
		logger.WithError(err).Error("Stopping VM failed")
		return fmt.Errorf("stopping VM %s: %w", vm, err)
	}

	return nil
}

func (e *Executor) deleteNetworkInterface(ctx context.Context, r run, nic string) error {
	logger := r.logger.WithField("nic", nic)
	logger.Info("Deleting network interface")

	action := func(int) error {
		return e.call(ctx, fmt.Sprintf("Deleting network interface %s", nic), func(ctx context.Context) error {
			return e.Provider.DeleteNetworkInterface(ctx, r.resourceGroup, nic)
		})
	}

	var err error
	if e.Policy.NICDeleteRetries > 0 {
		err = retry.DoWithRetry(ctx, fmt.Sprintf("Deleting network interface %s", nic), e.Policy.NICDeleteRetries, e.Policy.NICDeleteRetryInterval, logger, action)
	} else {
		err = action(0)
	}

	if err != nil {
		logger.WithError(err).Error("Deleting network interface failed")
		return fmt.Errorf("deleting network interface %s: %w", nic, err)
	}

	return nil
}

// execute runs the destructive phase: validation, teardown and deployment.
func (e *Executor) execute(ctx context.Context, r run, confirm bool, data []byte, vms []string, nic string, out *config.Output) {
	if err := e.validate(ctx, r, data, out.NewTemplatePath); err != nil {
		out.Err = err
		return
	}

	message := fmt.Sprintf("Stop and delete %s, then deploy %s?", strings.Join(vms, ", "), out.NewTemplatePath)
	if nic != "" {
		message = fmt.Sprintf("Stop and delete %s, delete network interface %s, then deploy %s?", strings.Join(vms, ", "), nic, out.NewTemplatePath)
	}

	ok, err := e.confirmed(r, confirm, message)
	if err != nil {
		out.Err = err
		return
	}
	if !ok {
		r.logger.Infof("Not confirmed, review %s and run again with --confirm", out.NewTemplatePath)
		out.Status = config.Skipped
		return
	}

	out.TeardownErr = e.teardown(ctx, r, vms, nic)
	if out.TeardownErr != nil && e.Policy.TeardownAbort {
		out.Err = TeardownAbortedError{TemplatePath: out.NewTemplatePath, Err: out.TeardownErr}
		return
	}

	e.deploy(ctx, r, data, out)
}
