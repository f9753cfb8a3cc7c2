package plugins_azurecli

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/optum/avsetctl/mocks"
	"github.com/optum/avsetctl/pkg/provider"
	"github.com/optum/avsetctl/plugins/azurecli/pkg/az"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

var options *az.Options

func TestMain(m *testing.M) {
	logs := logrus.New()
	logs.SetLevel(logrus.PanicLevel)
	options = &az.Options{AzureCLIBinary: "az", Logger: logs.WithField("environment", "unittest")}

	os.Exit(m.Run())
}

func newProvider(t *testing.T) (*Provider, *mocks.MockAzureRM, afero.Fs) {
	ctrl := gomock.NewController(t)
	cli := mocks.NewMockAzureRM(ctrl)
	fs := afero.NewMemMapFs()

	return &Provider{CLI: cli, Options: options, Fs: fs}, cli, fs
}

func TestGetAvailabilitySet_ShouldReadSKU(t *testing.T) {
	t.Parallel()

	p, cli, _ := newProvider(t)
	cli.EXPECT().AvailabilitySetShow(gomock.Any(), options, "rg1", "avset1").
		Return(`{"id": "/subscriptions/s/resourceGroups/rg1/providers/Microsoft.Compute/availabilitySets/avset1", "name": "avset1", "sku": {"name": "Aligned"}}`, nil)

	set, err := p.GetAvailabilitySet(context.Background(), "rg1", "avset1")

	require.NoError(t, err)
	require.Equal(t, "avset1", set.Name)
	require.True(t, set.IsAligned())
	require.Contains(t, set.ID, "availabilitySets/avset1")
}

func TestGetAvailabilitySet_ShouldMapMissingSetToErrNotFound(t *testing.T) {
	t.Parallel()

	p, cli, _ := newProvider(t)
	cli.EXPECT().AvailabilitySetShow(gomock.Any(), options, "rg1", "nope").
		Return("", errors.New("exit status 3: (ResourceNotFound) The Resource 'Microsoft.Compute/availabilitySets/nope' under resource group 'rg1' was not found."))

	_, err := p.GetAvailabilitySet(context.Background(), "rg1", "nope")

	require.ErrorIs(t, err, provider.ErrNotFound)
}

func TestGetAvailabilitySet_EmptyOutputShouldBeNotFound(t *testing.T) {
	t.Parallel()

	p, cli, _ := newProvider(t)
	cli.EXPECT().AvailabilitySetShow(gomock.Any(), options, "rg1", "nope").Return("{}", nil)

	_, err := p.GetAvailabilitySet(context.Background(), "rg1", "nope")

	require.ErrorIs(t, err, provider.ErrNotFound)
}

func TestExportResourceGroupTemplate_ShouldUnwrapEnvelope(t *testing.T) {
	t.Parallel()

	p, cli, _ := newProvider(t)
	cli.EXPECT().GroupExport(gomock.Any(), options, "rg1").Return(`{"template": {"resources": []}, "error": null}`, nil)

	out, err := p.ExportResourceGroupTemplate(context.Background(), "rg1")

	require.NoError(t, err)
	require.JSONEq(t, `{"resources": []}`, string(out))
}

func TestExportResourceGroupTemplate_ShouldReturnRawTemplate(t *testing.T) {
	t.Parallel()

	p, cli, _ := newProvider(t)
	cli.EXPECT().GroupExport(gomock.Any(), options, "rg1").Return("{\"$schema\": \"x\", \"resources\": []}\n", nil)

	out, err := p.ExportResourceGroupTemplate(context.Background(), "rg1")

	require.NoError(t, err)
	require.Equal(t, `{"$schema": "x", "resources": []}`, string(out))
}

func TestExportResourceGroupTemplate_EmptyOutputShouldFail(t *testing.T) {
	t.Parallel()

	p, cli, _ := newProvider(t)
	cli.EXPECT().GroupExport(gomock.Any(), options, "rg1").Return("", nil)

	_, err := p.ExportResourceGroupTemplate(context.Background(), "rg1")

	require.Error(t, err)
}

func TestGetVMInstanceStatus_ShouldParsePowerState(t *testing.T) {
	t.Parallel()

	p, cli, _ := newProvider(t)
	cli.EXPECT().VMInstanceView(gomock.Any(), options, "rg1", "vm1").
		Return(`[{"code": "ProvisioningState/succeeded"}, {"code": "PowerState/deallocated", "displayStatus": "VM deallocated"}]`, nil)

	state, err := p.GetVMInstanceStatus(context.Background(), "rg1", "vm1")

	require.NoError(t, err)
	require.Equal(t, provider.PowerStateDeallocated, state)
	require.True(t, state.IsStopped())
}

func TestGetVMInstanceStatus_WithoutPowerStateShouldBeUnknown(t *testing.T) {
	t.Parallel()

	p, cli, _ := newProvider(t)
	cli.EXPECT().VMInstanceView(gomock.Any(), options, "rg1", "vm1").Return(`[{"code": "ProvisioningState/creating"}]`, nil)

	state, err := p.GetVMInstanceStatus(context.Background(), "rg1", "vm1")

	require.NoError(t, err)
	require.Equal(t, provider.PowerStateUnknown, state)
}

func TestDeployTemplate_ShouldPassTemplateFileAndRemoveIt(t *testing.T) {
	t.Parallel()

	p, cli, fs := newProvider(t)
	template := []byte(`{"resources": []}`)

	var written string
	cli.EXPECT().GroupDeploymentCreate(gomock.Any(), options, "rg1", "redeploy-2024-03-07_051522", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *az.Options, _, _, file string) (string, error) {
			written = file
			data, err := afero.ReadFile(fs, file)
			require.NoError(t, err)
			require.Equal(t, template, data)
			return "{}", nil
		})

	err := p.DeployTemplate(context.Background(), "rg1", "redeploy-2024-03-07_051522", template)

	require.NoError(t, err)
	exists, _ := afero.Exists(fs, written)
	require.False(t, exists)
}

func TestValidateDeployment_ShouldReturnCLIError(t *testing.T) {
	t.Parallel()

	p, cli, _ := newProvider(t)
	cli.EXPECT().GroupDeploymentValidate(gomock.Any(), options, "rg1", "d1", gomock.Any()).
		Return("", errors.New("InvalidTemplate"))

	err := p.ValidateDeployment(context.Background(), "rg1", "d1", []byte("{}"))

	require.ErrorContains(t, err, "InvalidTemplate")
	require.NotErrorIs(t, err, provider.ErrNotFound)
}

func TestTeardownCalls_ShouldWrapErrors(t *testing.T) {
	t.Parallel()

	p, cli, _ := newProvider(t)
	gomock.InOrder(
		cli.EXPECT().VMDeallocate(gomock.Any(), options, "rg1", "vm1").Return("", nil),
		cli.EXPECT().VMDelete(gomock.Any(), options, "rg1", "vm1").Return("", nil),
		cli.EXPECT().NICDelete(gomock.Any(), options, "rg1", "vm1-nic").Return("", errors.New("NicInUse")),
	)

	require.NoError(t, p.StopVMInstance(context.Background(), "rg1", "vm1"))
	require.NoError(t, p.DeleteVMInstance(context.Background(), "rg1", "vm1"))
	require.ErrorContains(t, p.DeleteNetworkInterface(context.Background(), "rg1", "vm1-nic"), "NicInUse")
}
