package config

import (
	"fmt"
	"time"
)

// TimestampLayout names audit files and deployments, e.g. 2024-03-07_051522. The hour is on a
// twelve hour clock.
const TimestampLayout = "2006-01-02_030405"

// Operation names the action being executed, it prefixes deployment names.
type Operation string

const (
	JoinOperation     Operation = "join-availability-set"
	LeaveOperation    Operation = "leave-availability-set"
	RedeployOperation Operation = "redeploy"
)

// DeploymentName returns the deployment name for op started at ts.
func (op Operation) DeploymentName(ts time.Time) string {
	return fmt.Sprintf("%s-%s", op, ts.Format(TimestampLayout))
}

// JoinExecution is a request to move VMs into an availability set
type JoinExecution struct {
	ResourceGroup   string   `validate:"required"`
	VMNames         []string `validate:"required,min=1,dive,required"`
	OSType          string   `validate:"required,ostype"`
	AvailabilitySet string   `validate:"required"`
	Confirm         bool     // Confirm runs the destructive phase, otherwise only audit files are written
}

// LeaveExecution is a request to move a VM out of its availability set
type LeaveExecution struct {
	ResourceGroup string `validate:"required"`
	VMName        string `validate:"required"`
	OSType        string `validate:"required,ostype"`
	Confirm       bool
}

// RedeployExecution is a request to deploy a previously written template again
type RedeployExecution struct {
	ResourceGroup  string `validate:"required"`
	TemplateSource string `validate:"required"` // Local path or go-getter source of a NewTemplate audit file
	Confirm        bool
}

// Validate checks the execution's required fields
func (e JoinExecution) Validate() error {
	return validate.Struct(e)
}

// Validate checks the execution's required fields
func (e LeaveExecution) Validate() error {
	return validate.Struct(e)
}

// Validate checks the execution's required fields
func (e RedeployExecution) Validate() error {
	return validate.Struct(e)
}

// Output represents the output of an operation
type Output struct {
	Status               DeployResult
	DeploymentName       string
	OriginalTemplatePath string
	NewTemplatePath      string
	VMs                  []string // VMs that were selected for redeployment
	Skipped              []string // requested VMs that matched nothing in the template
	Warnings             []string
	TeardownErr          error // stop, delete and NIC delete failures, the deployment may still have been submitted
	Err                  error
}

type DeployResult int

const (
	Fail DeployResult = iota
	Success
	Unstable
	Skipped
)

func (d DeployResult) String() string {
	return [...]string{"FAIL", "SUCCESS", "UNSTABLE", "SKIPPED"}[d]
}
