package cmd

import (
	"github.com/optum/avsetctl/pkg/config"
	"github.com/spf13/cobra"
)

var redeployExec config.RedeployExecution
var redeployPrompt bool

func init() {
	redeployCmd.Flags().StringVarP(&redeployExec.ResourceGroup, "resource-group", "g", "", "Resource group to deploy to")
	redeployCmd.Flags().StringVar(&redeployExec.TemplateSource, "template", "", "NewTemplate audit file, a local path or a go-getter URL")
	redeployCmd.Flags().BoolVar(&redeployExec.Confirm, "confirm", false, "Submit the deployment")
	redeployCmd.Flags().BoolVar(&redeployPrompt, "prompt", false, "Ask before deploying when --confirm is not given")

	rootCmd.AddCommand(redeployCmd)
}

var redeployCmd = &cobra.Command{
	Use:     "redeploy",
	Short:   "Deploy a previously written template again",
	Long:    `Recovers virtual machines that were deleted by a join or leave whose deployment failed.`,
	Example: "  avsetctl redeploy -g rg1 --template ./NewTemplate-2024-03-07_051522.json --confirm",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := redeployExec.Validate(); err != nil {
			return err
		}

		executor, err := newExecutor(cmd, redeployPrompt)
		if err != nil {
			return err
		}

		out := executor.Redeploy(cmd.Context(), redeployExec)

		return printSummary(cmd.OutOrStdout(), redeployExec.ResourceGroup, out)
	},
}
