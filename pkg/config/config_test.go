package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

var yamlExample = []byte(`provider: sdk
subscription_id: 00000000-0000-0000-0000-000000000000
environment: USGovernment
audit_dir: /var/log/avsetctl
call_timeout: 5m
size_check: legacy
teardown_policy: abort
nic_delete_retries: 3
nic_delete_retry_interval: 15s
`)

func TestGetConfig_ShouldApplyDefaults(t *testing.T) {
	t.Parallel()

	conf, err := GetConfig(viper.New())

	require.NoError(t, err)
	require.Equal(t, "cli", conf.Provider)
	require.Equal(t, "public", conf.Environment)
	require.Equal(t, "az", conf.AzureCLIBinary)
	require.Equal(t, 16*1024*1024, conf.CLIOutputMaxLineSize)
	require.Equal(t, 30*time.Minute, conf.CallTimeout)
	require.Equal(t, "strict", conf.SizeCheck)
	require.Equal(t, "skip", conf.UnresolvedVM)
	require.Equal(t, "continue", conf.TeardownPolicy)
	require.Equal(t, 0, conf.NICDeleteRetries)
	require.NotEmpty(t, conf.AuditDir)
}

func TestGetConfig_ConfigFileShouldMatch(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "/etc/avsetctl/avsetctl.yml", yamlExample, 0644)

	v := viper.New()
	v.SetFs(fs)
	require.NoError(t, ReadConfigFile(v, "/etc/avsetctl/avsetctl.yml"))

	conf, err := GetConfig(v)

	require.NoError(t, err)
	require.Equal(t, "sdk", conf.Provider)
	require.Equal(t, "usgovernment", conf.Environment)
	require.Equal(t, "/var/log/avsetctl", conf.AuditDir)
	require.Equal(t, 5*time.Minute, conf.CallTimeout)
	require.Equal(t, "legacy", conf.SizeCheck)
	require.Equal(t, "abort", conf.TeardownPolicy)
	require.Equal(t, 3, conf.NICDeleteRetries)
	require.Equal(t, 15*time.Second, conf.NICDeleteRetryInterval)
}

func TestReadConfigFile_ShouldIgnoreMissingDefaultFile(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.SetFs(afero.NewMemMapFs())

	require.NoError(t, ReadConfigFile(v, ""))
}

func TestGetConfig_EnvironmentVariablesShouldMatch(t *testing.T) {
	t.Setenv("AVSET_SIZE_CHECK", "off")
	t.Setenv("AVSET_CALL_TIMEOUT", "90s")
	t.Setenv("AVSET_UNRESOLVED_VM", "FAIL")

	conf, err := GetConfig(viper.New())

	require.NoError(t, err)
	require.Equal(t, "off", conf.SizeCheck)
	require.Equal(t, 90*time.Second, conf.CallTimeout)
	require.Equal(t, "fail", conf.UnresolvedVM)
}

func TestGetConfig_ShouldRejectInvalidValues(t *testing.T) {
	t.Parallel()

	cases := map[string]interface{}{
		"provider":                 "powershell",
		"size_check":               "loose",
		"environment":              "germany",
		"call_timeout":             0,
		"log_format":               "xml",
		"unresolved_vm":            "ignore",
		"cli_output_max_line_size": -1,
	}

	for key, value := range cases {
		v := viper.New()
		v.Set(key, value)

		_, err := GetConfig(v)

		require.Error(t, err, key)
	}
}

func TestGetConfig_SDKProviderShouldRequireSubscription(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set("provider", "sdk")

	_, err := GetConfig(v)

	require.Error(t, err)
	require.Contains(t, err.Error(), "SubscriptionID")
}

func TestExecution_ShouldValidateRequiredFields(t *testing.T) {
	t.Parallel()

	valid := JoinExecution{ResourceGroup: "rg1", VMNames: []string{"vm1"}, OSType: "Windows", AvailabilitySet: "avset1"}
	require.NoError(t, valid.Validate())

	noVMs := valid
	noVMs.VMNames = nil
	require.Error(t, noVMs.Validate())

	blankVM := valid
	blankVM.VMNames = []string{"vm1", ""}
	require.Error(t, blankVM.Validate())

	badOS := valid
	badOS.OSType = "macos"
	require.Error(t, badOS.Validate())

	require.NoError(t, LeaveExecution{ResourceGroup: "rg1", VMName: "vm1", OSType: "linux"}.Validate())
	require.Error(t, LeaveExecution{ResourceGroup: "rg1", OSType: "linux"}.Validate())
	require.Error(t, RedeployExecution{ResourceGroup: "rg1"}.Validate())
}

func TestDeploymentName_ShouldUseTwelveHourTimestamp(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 7, 17, 15, 22, 0, time.UTC)

	require.Equal(t, "join-availability-set-2024-03-07_051522", JoinOperation.DeploymentName(ts))
	require.Equal(t, "SKIPPED", Skipped.String())
	require.Equal(t, "UNSTABLE", Unstable.String())
}

func TestConfigStructTags_ShouldBeValid(t *testing.T) {
	t.Parallel()

	rt := reflect.TypeOf(Config{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)

		// a malformed tag like `mapstructure:provider` cannot be read back by Lookup
		key, ok := field.Tag.Lookup("mapstructure")
		require.True(t, ok, "struct field %q has a malformed mapstructure tag: %s", field.Name, field.Tag)
		require.NotEmpty(t, key, field.Name)

		if rule, ok := field.Tag.Lookup("validate"); ok {
			require.NotEmpty(t, rule, field.Name)
		}
	}

	field, _ := rt.FieldByName("ValidateDeployment")
	require.Equal(t, "validate_deployment", field.Tag.Get("mapstructure"))
	_, hasRule := field.Tag.Lookup("validate")
	require.False(t, hasRule)
}
