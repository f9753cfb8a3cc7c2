package plugins_azuresdk

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/optum/avsetctl/pkg/provider"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var logger *logrus.Entry

func TestMain(m *testing.M) {
	logs := logrus.New()
	logs.SetLevel(logrus.PanicLevel)
	logger = logs.WithField("environment", "unittest")

	os.Exit(m.Run())
}

type fakeAvailabilitySets struct {
	set armcompute.AvailabilitySet
	err error
}

func (f fakeAvailabilitySets) Get(_ context.Context, _ string, _ string, _ *armcompute.AvailabilitySetsClientGetOptions) (armcompute.AvailabilitySetsClientGetResponse, error) {
	return armcompute.AvailabilitySetsClientGetResponse{AvailabilitySet: f.set}, f.err
}

type fakeVirtualMachines struct {
	VirtualMachinesAPI
	view armcompute.VirtualMachineInstanceView
}

func (f fakeVirtualMachines) InstanceView(_ context.Context, _ string, _ string, _ *armcompute.VirtualMachinesClientInstanceViewOptions) (armcompute.VirtualMachinesClientInstanceViewResponse, error) {
	return armcompute.VirtualMachinesClientInstanceViewResponse{VirtualMachineInstanceView: f.view}, nil
}

func notFound(code string) error {
	return &azcore.ResponseError{ErrorCode: code, StatusCode: http.StatusNotFound}
}

func TestGetAvailabilitySet_ShouldMapSDKModel(t *testing.T) {
	t.Parallel()

	p := &Provider{Logger: logger, AvailabilitySets: fakeAvailabilitySets{set: armcompute.AvailabilitySet{
		ID:   to.Ptr("/subscriptions/s/resourceGroups/rg1/providers/Microsoft.Compute/availabilitySets/avset1"),
		Name: to.Ptr("avset1"),
		SKU:  &armcompute.SKU{Name: to.Ptr("Classic")},
	}}}

	set, err := p.GetAvailabilitySet(context.Background(), "rg1", "avset1")

	require.NoError(t, err)
	require.Equal(t, "avset1", set.Name)
	require.Equal(t, provider.SKUClassic, set.SKU)
	require.False(t, set.IsAligned())
}

func TestGetAvailabilitySet_ShouldMapResourceNotFound(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"ResourceNotFound", "ResourceGroupNotFound"} {
		p := &Provider{Logger: logger, AvailabilitySets: fakeAvailabilitySets{err: notFound(code)}}

		_, err := p.GetAvailabilitySet(context.Background(), "rg1", "avset1")

		require.ErrorIs(t, err, provider.ErrNotFound, code)
	}
}

func TestGetAvailabilitySet_OtherErrorsShouldNotBeNotFound(t *testing.T) {
	t.Parallel()

	p := &Provider{Logger: logger, AvailabilitySets: fakeAvailabilitySets{err: &azcore.ResponseError{ErrorCode: "AuthorizationFailed", StatusCode: http.StatusForbidden}}}

	_, err := p.GetAvailabilitySet(context.Background(), "rg1", "avset1")

	require.Error(t, err)
	require.False(t, errors.Is(err, provider.ErrNotFound))
}

func TestGetVMInstanceStatus_ShouldSkipProvisioningState(t *testing.T) {
	t.Parallel()

	p := &Provider{Logger: logger, VirtualMachines: fakeVirtualMachines{view: armcompute.VirtualMachineInstanceView{
		Statuses: []*armcompute.InstanceViewStatus{
			{Code: to.Ptr("ProvisioningState/succeeded")},
			nil,
			{Code: to.Ptr("PowerState/running")},
		},
	}}}

	state, err := p.GetVMInstanceStatus(context.Background(), "rg1", "vm1")

	require.NoError(t, err)
	require.Equal(t, provider.PowerStateRunning, state)
}

func TestIncrementalDeployment_ShouldAlwaysBeIncremental(t *testing.T) {
	t.Parallel()

	deployment, err := incrementalDeployment([]byte(`{"contentVersion": "1.0.0.0", "resources": []}`))

	require.NoError(t, err)
	require.Equal(t, armresources.DeploymentModeIncremental, *deployment.Properties.Mode)
	require.Equal(t, "1.0.0.0", deployment.Properties.Template.(map[string]interface{})["contentVersion"])
}

func TestDeployTemplate_ShouldRejectInvalidJSON(t *testing.T) {
	t.Parallel()

	p := &Provider{Logger: logger}

	err := p.DeployTemplate(context.Background(), "rg1", "d1", []byte("{"))

	require.Error(t, err)
}

func TestCloudFor_ShouldMapEnvironments(t *testing.T) {
	t.Parallel()

	cld, err := cloudFor("usgovernment")
	require.NoError(t, err)
	require.Equal(t, cloud.AzureGovernment.ActiveDirectoryAuthorityHost, cld.ActiveDirectoryAuthorityHost)

	_, err = cloudFor("germany")
	require.Error(t, err)
}
