package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/optum/avsetctl/mocks"
	"github.com/optum/avsetctl/pkg/config"
	"github.com/optum/avsetctl/pkg/operations"
	"github.com/optum/avsetctl/pkg/provider"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestJoinCommand_WithoutConfirmShouldOnlyWriteAuditFiles(t *testing.T) {
	rg1, err := os.ReadFile("../../../pkg/operations/testdata/rg1.json")
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	p := mocks.NewMockProvider(ctrl)
	newProvider = func(*logrus.Entry, config.Config) (provider.Provider, error) {
		return p, nil
	}

	gomock.InOrder(
		p.EXPECT().GetAvailabilitySet(gomock.Any(), "rg1", "avset1").
			Return(provider.AvailabilitySet{ID: "/subscriptions/s/resourceGroups/rg1/providers/Microsoft.Compute/availabilitySets/avset1", Name: "avset1", SKU: provider.SKUAligned}, nil),
		p.EXPECT().ExportResourceGroupTemplate(gomock.Any(), "rg1").Return(rg1, nil),
	)

	dir := t.TempDir()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{
		"join-availability-set", "-g", "rg1", "--vm", "vm1", "--os-type", "Windows", "--availability-set", "avset1",
		"--audit-dir", dir, "--log-level", "panic", "--log-format", "json",
	})

	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), "SKIPPED")

	written, _ := filepath.Glob(filepath.Join(dir, "*Template-*.json"))
	require.Len(t, written, 2)
}

func TestVersionCommand_ShouldPrintVersion(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version", "--log-level", "panic"})

	require.NoError(t, rootCmd.Execute())
	require.Equal(t, "avsetctl v0.0.0-dev\n", out.String())
}

func TestGetProviderPlugin_ShouldRejectUnknownProvider(t *testing.T) {
	t.Parallel()

	_, err := getProviderPlugin(config.Config{Provider: "powershell"})
	require.Error(t, err)

	plugin, err := getProviderPlugin(config.Config{Provider: "sdk"})
	require.NoError(t, err)
	require.NotNil(t, plugin)
}

func TestPrintSummary_ShouldSuggestRedeployAfterTeardown(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := printSummary(&out, "rg1", config.Output{
		Status:          config.Unstable,
		DeploymentName:  "join-availability-set-2024-03-07_051522",
		NewTemplatePath: "/audit/NewTemplate-2024-03-07_051522.json",
		VMs:             []string{"vm1", "vm2"},
		TeardownErr:     multierr.Combine(errors.New("stopping VM vm1: boom"), errors.New("deleting VM vm2: boom")),
	})

	require.ErrorIs(t, err, errUnstable)
	require.Contains(t, out.String(), "stopping VM vm1: boom")
	require.Contains(t, out.String(), "deleting VM vm2: boom")
	require.Contains(t, out.String(), "avsetctl redeploy --resource-group rg1 --template /audit/NewTemplate-2024-03-07_051522.json --confirm")
}

func TestPrintSummary_PreflightFailureShouldNotSuggestRedeploy(t *testing.T) {
	t.Parallel()

	deployErr := operations.DeploymentError{
		DeploymentName: "leave-availability-set-2024-03-07_051522",
		TemplatePath:   "/audit/NewTemplate-2024-03-07_051522.json",
		Preflight:      true,
		Err:            errors.New("InvalidTemplate"),
	}

	var out bytes.Buffer
	err := printSummary(&out, "rg1", config.Output{Status: config.Fail, NewTemplatePath: deployErr.TemplatePath, Err: deployErr})

	require.ErrorIs(t, err, deployErr)
	require.NotContains(t, out.String(), "avsetctl redeploy")
}

func TestPrintSummary_DeploymentFailureShouldSuggestRedeploy(t *testing.T) {
	t.Parallel()

	deployErr := operations.DeploymentError{TemplatePath: "/audit/NewTemplate.json", Err: errors.New("DeploymentFailed")}

	var out bytes.Buffer
	err := printSummary(&out, "rg1", config.Output{Status: config.Fail, NewTemplatePath: deployErr.TemplatePath, Err: deployErr})

	require.Error(t, err)
	require.Contains(t, out.String(), "avsetctl redeploy --resource-group rg1 --template /audit/NewTemplate.json --confirm")
}
