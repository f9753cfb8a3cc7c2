package operations

import "fmt"

// ExportError is returned when the resource group template cannot be exported or read.
type ExportError struct {
	ResourceGroup string
	Err           error
}

func (err ExportError) Error() string {
	return fmt.Sprintf("exporting template of resource group '%s': %v", err.ResourceGroup, err.Err)
}

func (err ExportError) Unwrap() error {
	return err.Err
}

// DeploymentError is returned when validation or submission of the new template fails. The
// template is kept at TemplatePath so it can be redeployed.
type DeploymentError struct {
	DeploymentName string
	TemplatePath   string
	Preflight      bool // validation failed, nothing was stopped or deleted
	Err            error
}

func (err DeploymentError) Error() string {
	return fmt.Sprintf("deployment '%s' failed, template kept at %s: %v", err.DeploymentName, err.TemplatePath, err.Err)
}

func (err DeploymentError) Unwrap() error {
	return err.Err
}

// TeardownAbortedError is returned under the abort teardown policy when a stop or delete failed.
type TeardownAbortedError struct {
	TemplatePath string
	Err          error
}

func (err TeardownAbortedError) Error() string {
	return fmt.Sprintf("teardown failed, deployment not submitted, template kept at %s: %v", err.TemplatePath, err.Err)
}

func (err TeardownAbortedError) Unwrap() error {
	return err.Err
}
