package operations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/optum/avsetctl/pkg/artifacts"
	"github.com/optum/avsetctl/pkg/config"
	"github.com/optum/avsetctl/pkg/provider"
	"github.com/optum/avsetctl/pkg/template"
	"github.com/optum/avsetctl/pkg/transform"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Policy holds the knobs that decide how failures and slow calls are handled during execution.
type Policy struct {
	CallTimeout            time.Duration
	TeardownAbort          bool // stop before deploying when a stop or delete failed
	ValidateDeployment     bool
	NICDeleteRetries       int
	NICDeleteRetryInterval time.Duration
}

// NewPolicy builds the execution policy from configuration.
func NewPolicy(cfg config.Config) Policy {
	return Policy{
		CallTimeout:            cfg.CallTimeout,
		TeardownAbort:          cfg.TeardownPolicy == "abort",
		ValidateDeployment:     cfg.ValidateDeployment,
		NICDeleteRetries:       cfg.NICDeleteRetries,
		NICDeleteRetryInterval: cfg.NICDeleteRetryInterval,
	}
}

// Progress reports long running cloud calls to the user.
type Progress interface {
	Start(message string)
	Stop()
}

// Confirmer asks the user whether to go ahead with the destructive phase of an unconfirmed run.
type Confirmer interface {
	Confirm(message string) (bool, error)
}

// Executor runs join, leave and redeploy operations against a provider.
type Executor struct {
	Provider    provider.Provider
	Artifacts   artifacts.Writer
	Transformer transform.Transformer
	Logger      *logrus.Entry
	Policy      Policy
	Clock       func() time.Time
	Progress    Progress
	Confirmer   Confirmer // optional, unconfirmed runs stop after writing audit files without it
}

// NewExecutor wires an executor from configuration.
func NewExecutor(logger *logrus.Entry, cfg config.Config, p provider.Provider, fs afero.Fs) *Executor {
	return &Executor{
		Provider:  p,
		Artifacts: artifacts.Writer{Fs: fs, Dir: cfg.AuditDir},
		Transformer: transform.Transformer{
			Logger:       logger,
			SizeCheck:    transform.SizeCheck(cfg.SizeCheck),
			UnresolvedVM: transform.UnresolvedPolicy(cfg.UnresolvedVM),
		},
		Logger: logger,
		Policy: NewPolicy(cfg),
		Clock:  time.Now,
	}
}

// run is the state shared by the phases of one operation
type run struct {
	logger         *logrus.Entry
	resourceGroup  string
	deploymentName string
	ts             time.Time
}

func (e *Executor) newRun(op config.Operation, resourceGroup string) run {
	ts := time.Now()
	if e.Clock != nil {
		ts = e.Clock()
	}

	return run{
		logger: e.Logger.WithFields(logrus.Fields{
			"action":        string(op),
			"resourceGroup": resourceGroup,
			"run":           uuid.NewString(),
		}),
		resourceGroup:  resourceGroup,
		deploymentName: op.DeploymentName(ts),
		ts:             ts,
	}
}

// call runs fn under the per-call timeout.
func (e *Executor) call(ctx context.Context, message string, fn func(ctx context.Context) error) error {
	if e.Progress != nil {
		e.Progress.Start(message)
		defer e.Progress.Stop()
	}

	if e.Policy.CallTimeout <= 0 {
		return fn(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, e.Policy.CallTimeout)
	defer cancel()

	return fn(ctx)
}

// export fetches the resource group template and writes it to the audit directory.
func (e *Executor) export(ctx context.Context, r run, out *config.Output) (*template.Template, error) {
	var data []byte
	err := e.call(ctx, fmt.Sprintf("Exporting resource group %s", r.resourceGroup), func(ctx context.Context) (err error) {
		data, err = e.Provider.ExportResourceGroupTemplate(ctx, r.resourceGroup)
		return
	})
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			return nil, transform.NotFoundError{Kind: "resource group", Name: r.resourceGroup}
		}
		return nil, ExportError{ResourceGroup: r.resourceGroup, Err: err}
	}

	out.OriginalTemplatePath, err = e.Artifacts.WriteOriginal(r.ts, data)
	if err != nil {
		return nil, err
	}
	r.logger.Infof("Original template written to %s", out.OriginalTemplatePath)

	tmpl, err := template.Parse(data)
	if err != nil {
		return nil, ExportError{ResourceGroup: r.resourceGroup, Err: err}
	}

	return tmpl, nil
}

// writeNew serializes the transformed template to the audit directory.
func (e *Executor) writeNew(r run, tmpl *template.Template, out *config.Output) ([]byte, error) {
	data, err := tmpl.Encode()
	if err != nil {
		return nil, err
	}

	out.NewTemplatePath, err = e.Artifacts.WriteNew(r.ts, data)
	if err != nil {
		return nil, err
	}
	r.logger.Infof("New template written to %s", out.NewTemplatePath)

	return data, nil
}

// validate runs the optional pre-flight validation of the new template.
func (e *Executor) validate(ctx context.Context, r run, data []byte, path string) error {
	if !e.Policy.ValidateDeployment {
		return nil
	}

	err := e.call(ctx, "Validating deployment", func(ctx context.Context) error {
		return e.Provider.ValidateDeployment(ctx, r.resourceGroup, r.deploymentName, data)
	})
	if err != nil {
		return DeploymentError{DeploymentName: r.deploymentName, TemplatePath: path, Preflight: true, Err: err}
	}

	return nil
}

// confirmed reports whether the destructive phase may run.
func (e *Executor) confirmed(r run, confirm bool, message string) (bool, error) {
	if confirm {
		return true, nil
	}
	if e.Confirmer == nil {
		return false, nil
	}

	ok, err := e.Confirmer.Confirm(message)
	if err != nil {
		r.logger.WithError(err).Error("Unable to read confirmation")
		return false, err
	}

	return ok, nil
}

// deploy submits the template and sets the final status.
func (e *Executor) deploy(ctx context.Context, r run, data []byte, out *config.Output) {
	r.logger.Infof("Deploying %s", r.deploymentName)

	err := e.call(ctx, fmt.Sprintf("Deploying %s", r.deploymentName), func(ctx context.Context) error {
		return e.Provider.DeployTemplate(ctx, r.resourceGroup, r.deploymentName, data)
	})
	if err != nil {
		out.Err = DeploymentError{DeploymentName: r.deploymentName, TemplatePath: out.NewTemplatePath, Err: err}
		r.logger.WithError(err).Errorf("Deployment failed, the template is kept at %s", out.NewTemplatePath)
		return
	}

	if out.TeardownErr != nil {
		out.Status = config.Unstable
		return
	}

	out.Status = config.Success
}
