package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/optum/avsetctl/pkg/config"
	"github.com/optum/avsetctl/pkg/operations"
	"go.uber.org/multierr"
)

var errUnstable = errors.New("deployment submitted, but stopping or deleting resources failed")

// printSummary writes the outcome of an operation and returns the error the command exits with.
func printSummary(w io.Writer, resourceGroup string, out config.Output) error {
	fmt.Fprintf(w, "\n%s %s\n", statusStyle(out.Status).Sprint(out.Status.String()), out.DeploymentName)

	if out.OriginalTemplatePath != "" {
		fmt.Fprintf(w, "  Original template: %s\n", out.OriginalTemplatePath)
	}
	if out.NewTemplatePath != "" {
		fmt.Fprintf(w, "  New template:      %s\n", out.NewTemplatePath)
	}
	if len(out.VMs) > 0 {
		fmt.Fprintf(w, "  Virtual machines:  %s\n", strings.Join(out.VMs, ", "))
	}
	if len(out.Skipped) > 0 {
		fmt.Fprintln(w, color.Yellow.Sprintf("  Not in template:   %s", strings.Join(out.Skipped, ", ")))
	}
	for _, warning := range out.Warnings {
		fmt.Fprintln(w, color.Yellow.Sprintf("  Warning: %s", warning))
	}
	for _, err := range multierr.Errors(out.TeardownErr) {
		fmt.Fprintln(w, color.Red.Sprintf("  Teardown: %v", err))
	}
	if out.Err != nil {
		fmt.Fprintln(w, color.Red.Sprintf("  Error: %v", out.Err))
	}

	if needsRedeploy(out) {
		fmt.Fprintln(w, color.Yellow.Sprint("  Virtual machines may have been deleted. Once the cause is fixed, deploy the template again with:"))
		fmt.Fprintf(w, "    avsetctl redeploy --resource-group %s --template %s --confirm\n", resourceGroup, out.NewTemplatePath)
	}

	switch {
	case out.Err != nil:
		return out.Err
	case out.Status == config.Unstable:
		return errUnstable
	default:
		return nil
	}
}

// needsRedeploy reports whether VMs may have been deleted without a successful deployment.
func needsRedeploy(out config.Output) bool {
	if out.NewTemplatePath == "" {
		return false
	}

	var deployErr operations.DeploymentError
	var aborted operations.TeardownAbortedError

	switch {
	case out.TeardownErr != nil, errors.As(out.Err, &aborted):
		return true
	case errors.As(out.Err, &deployErr):
		return !deployErr.Preflight
	default:
		return false
	}
}

func statusStyle(status config.DeployResult) color.Color {
	switch status {
	case config.Success:
		return color.Green
	case config.Skipped:
		return color.Cyan
	case config.Unstable:
		return color.Yellow
	default:
		return color.Red
	}
}
