package cmd

import (
	"github.com/optum/avsetctl/pkg/config"
	"github.com/spf13/cobra"
)

var leaveExec config.LeaveExecution
var leavePrompt bool

func init() {
	leaveCmd.Flags().StringVarP(&leaveExec.ResourceGroup, "resource-group", "g", "", "Resource group of the virtual machine")
	leaveCmd.Flags().StringVar(&leaveExec.VMName, "vm", "", "Virtual machine to remove from its availability set")
	leaveCmd.Flags().StringVar(&leaveExec.OSType, "os-type", "", "Operating system of the virtual machine, windows or linux")
	leaveCmd.Flags().BoolVar(&leaveExec.Confirm, "confirm", false, "Stop, delete and redeploy the virtual machine. Without it only the audit files are written")
	leaveCmd.Flags().BoolVar(&leavePrompt, "prompt", false, "Ask before stopping and deleting when --confirm is not given")

	rootCmd.AddCommand(leaveCmd)
}

var leaveCmd = &cobra.Command{
	Use:   "leave-availability-set",
	Short: "Remove a virtual machine from its availability set",
	Long: `Redeploys the virtual machine from its existing disks without an availability set. A network
interface in a load balancer backend pool or inbound NAT rule is redeployed without those
associations, they have to be reestablished afterwards.`,
	Example: "  avsetctl leave-availability-set -g rg1 --vm vm1 --os-type linux --confirm",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := leaveExec.Validate(); err != nil {
			return err
		}

		executor, err := newExecutor(cmd, leavePrompt)
		if err != nil {
			return err
		}

		out := executor.Leave(cmd.Context(), leaveExec)

		return printSummary(cmd.OutOrStdout(), leaveExec.ResourceGroup, out)
	},
}
