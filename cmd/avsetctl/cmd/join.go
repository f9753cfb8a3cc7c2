package cmd

import (
	"github.com/optum/avsetctl/pkg/config"
	"github.com/spf13/cobra"
)

var joinExec config.JoinExecution
var joinPrompt bool

func init() {
	joinCmd.Flags().StringVarP(&joinExec.ResourceGroup, "resource-group", "g", "", "Resource group of the virtual machines and the availability set")
	joinCmd.Flags().StringArrayVar(&joinExec.VMNames, "vm", []string{}, "Virtual machine to add, repeat for several. All must have the same size")
	joinCmd.Flags().StringVar(&joinExec.OSType, "os-type", "", "Operating system of the virtual machines, windows or linux")
	joinCmd.Flags().StringVar(&joinExec.AvailabilitySet, "availability-set", "", "Availability set to add the virtual machines to")
	joinCmd.Flags().BoolVar(&joinExec.Confirm, "confirm", false, "Stop, delete and redeploy the virtual machines. Without it only the audit files are written")
	joinCmd.Flags().BoolVar(&joinPrompt, "prompt", false, "Ask before stopping and deleting when --confirm is not given")

	rootCmd.AddCommand(joinCmd)
}

var joinCmd = &cobra.Command{
	Use:   "join-availability-set",
	Short: "Add virtual machines to an availability set",
	Long: `Redeploys the virtual machines from their existing disks with the availability set assigned.
The virtual machines are stopped and deleted before the deployment.`,
	Example: "  avsetctl join-availability-set -g rg1 --vm vm1 --vm vm2 --os-type windows --availability-set avset1 --confirm",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := joinExec.Validate(); err != nil {
			return err
		}

		executor, err := newExecutor(cmd, joinPrompt)
		if err != nil {
			return err
		}

		out := executor.Join(cmd.Context(), joinExec)

		return printSummary(cmd.OutOrStdout(), joinExec.ResourceGroup, out)
	},
}
