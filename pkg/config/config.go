package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// use a single instance of Validate, it caches struct info
var validate = newValidator()

// EnvPrefix is prepended to every configuration key read from the environment, e.g. AVSET_PROVIDER.
const EnvPrefix = "AVSET"

// Config is the tool configuration, read from avsetctl.yml, AVSET_* environment variables and flags
type Config struct {
	// Backend used for cloud calls: the az binary or the Azure SDK
	Provider string `mapstructure:"provider" validate:"oneof=cli sdk"`
	// Subscription holding the resource group, the az default is used by the cli provider when empty
	SubscriptionID string `mapstructure:"subscription_id" validate:"required_if=Provider sdk"`
	Environment    string `mapstructure:"environment" validate:"oneof=public usgovernment china"`
	AzureCLIBinary string `mapstructure:"azure_cli_binary" validate:"required"`
	// Longest single line of az output accepted, in bytes
	CLIOutputMaxLineSize int `mapstructure:"cli_output_max_line_size" validate:"gte=0"`
	// Where template audit files are written, defaults to the directory of the executable
	AuditDir    string        `mapstructure:"audit_dir" validate:"required"`
	CallTimeout time.Duration `mapstructure:"call_timeout" validate:"gt=0"`
	SizeCheck   string        `mapstructure:"size_check" validate:"oneof=strict legacy off"`
	// What happens to join VM names that match no template parameter
	UnresolvedVM string `mapstructure:"unresolved_vm" validate:"oneof=skip fail"`
	// Whether a failed stop or delete still proceeds to deployment
	TeardownPolicy         string        `mapstructure:"teardown_policy" validate:"oneof=continue abort"`
	ValidateDeployment     bool          `mapstructure:"validate_deployment"`
	NICDeleteRetries       int           `mapstructure:"nic_delete_retries" validate:"gte=0"`
	NICDeleteRetryInterval time.Duration `mapstructure:"nic_delete_retry_interval" validate:"gte=0"`
	LogLevel               string        `mapstructure:"log_level"`
	LogFormat              string        `mapstructure:"log_format" validate:"oneof=text json"`
	DisableColors          bool          `mapstructure:"disable_colors"`
}

// SetDefaults registers every key with its default. Keys must be known to viper for environment
// variables to be picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("provider", "cli")
	v.SetDefault("subscription_id", "")
	v.SetDefault("environment", "public")
	v.SetDefault("azure_cli_binary", "az")
	v.SetDefault("cli_output_max_line_size", 16*1024*1024)
	v.SetDefault("audit_dir", "")
	v.SetDefault("call_timeout", 30*time.Minute)
	v.SetDefault("size_check", "strict")
	v.SetDefault("unresolved_vm", "skip")
	v.SetDefault("teardown_policy", "continue")
	v.SetDefault("validate_deployment", false)
	v.SetDefault("nic_delete_retries", 0)
	v.SetDefault("nic_delete_retry_interval", 10*time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("disable_colors", false)
}

// ReadConfigFile reads file when given, otherwise looks for avsetctl.yml in the working and home
// directories. A missing configuration file is not an error as the file is optional.
func ReadConfigFile(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("avsetctl")
		v.SetConfigType("yml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}

// GetConfig retrieves the configuration from v, applying defaults and environment overrides
func GetConfig(v *viper.Viper) (config Config, err error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err = v.Unmarshal(&config); err != nil {
		return
	}

	config.Provider = strings.ToLower(config.Provider)
	config.Environment = strings.ToLower(config.Environment)
	config.SizeCheck = strings.ToLower(config.SizeCheck)
	config.UnresolvedVM = strings.ToLower(config.UnresolvedVM)
	config.TeardownPolicy = strings.ToLower(config.TeardownPolicy)
	config.LogFormat = strings.ToLower(config.LogFormat)

	if config.AuditDir == "" {
		config.AuditDir = executableDir()
	}

	err = validate.Struct(config)

	return
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}

	return filepath.Dir(exe)
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("ostype", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "windows", "linux":
			return true
		default:
			return false
		}
	})

	return v
}
