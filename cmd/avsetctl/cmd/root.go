package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/briandowns/spinner"
	"github.com/gookit/color"
	"github.com/optum/avsetctl/pkg/config"
	"github.com/optum/avsetctl/pkg/logging"
	"github.com/optum/avsetctl/pkg/operations"
	"github.com/optum/avsetctl/pkg/provider"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	pluginsazurecli "github.com/optum/avsetctl/plugins/azurecli"
	pluginsazuresdk "github.com/optum/avsetctl/plugins/azuresdk"
)

var cfgFile string
var v = viper.New()
var fs afero.Fs = afero.NewOsFs()
var log *logrus.Entry
var conf config.Config

// newProvider builds the cloud provider, replaced in tests
var newProvider = func(logger *logrus.Entry, cfg config.Config) (provider.Provider, error) {
	plugin, err := getProviderPlugin(cfg)
	if err != nil {
		return nil, err
	}

	return plugin.Initialize(logger, cfg)
}

var rootCmd = &cobra.Command{
	Use:   "avsetctl",
	Short: "avsetctl moves Azure virtual machines into and out of availability sets",
	Long: `Azure only assigns an availability set when a virtual machine is created. avsetctl
exports the resource group template, rewrites the virtual machine to attach its existing disks,
deletes the virtual machine and deploys the rewritten template.

Every run writes OriginalTemplate-<timestamp>.json and NewTemplate-<timestamp>.json to the audit
directory. Nothing is stopped or deleted unless --confirm is given.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Configuration file, defaults to avsetctl.yml in the working or home directory")
	flags.String("log-level", "info", "Log level")
	flags.String("log-format", "text", "Log format, text or json")
	flags.String("provider", "cli", "Cloud backend, cli (the az binary) or sdk")
	flags.String("subscription", "", "Subscription of the resource group")
	flags.String("audit-dir", "", "Directory for template audit files, defaults to the directory of the executable")

	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log_format", flags.Lookup("log-format"))
	_ = v.BindPFlag("provider", flags.Lookup("provider"))
	_ = v.BindPFlag("subscription_id", flags.Lookup("subscription"))
	_ = v.BindPFlag("audit_dir", flags.Lookup("audit-dir"))
}

// Execute runs the root command, cancelling in-flight cloud calls on interrupt.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func initConfig() error {
	if err := config.ReadConfigFile(v, cfgFile); err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}

	var err error
	conf, err = config.GetConfig(v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(conf.LogLevel, conf.LogFormat, conf.DisableColors)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", conf.LogLevel, err)
	}
	logger.SetOutput(os.Stderr)

	if conf.DisableColors {
		color.Disable()
	}

	log = logrus.NewEntry(logger)

	return nil
}

func newExecutor(cmd *cobra.Command, prompt bool) (*operations.Executor, error) {
	p, err := newProvider(log, conf)
	if err != nil {
		log.WithError(err).Error("Could not initialize provider")
		return nil, err
	}

	e := operations.NewExecutor(log, conf, p, fs)

	if conf.LogFormat == "text" {
		e.Progress = newSpinner(cmd)
	}
	if prompt {
		e.Confirmer = surveyConfirmer{}
	}

	return e, nil
}

func getProviderPlugin(cfg config.Config) (config.ProviderPlugin, error) {
	switch cfg.Provider {
	case "cli":
		return pluginsazurecli.AzureCLIPlugin{}, nil
	case "sdk":
		return pluginsazuresdk.AzureSDKPlugin{}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

type spinnerProgress struct {
	s *spinner.Spinner
}

func newSpinner(cmd *cobra.Command) *spinnerProgress {
	return &spinnerProgress{s: spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))}
}

func (p *spinnerProgress) Start(message string) {
	p.s.Suffix = fmt.Sprintf(" %s...", message)
	p.s.Start()
}

func (p *spinnerProgress) Stop() {
	p.s.Stop()
}
