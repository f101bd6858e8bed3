package commands

import (
	"github.com/spf13/cobra"

	"github.com/kalivaraprasad-gonapa/GCP-Pulumi/cmd/gcp-vpc/handlers"
)

// Destroy returns the command for tearing down the VPC stack.
func Destroy() *cobra.Command {
	var (
		stackName string
		confirmed bool
	)

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Delete all resources of the VPC stack",
		Long: `Delete all resources of the VPC stack.

Requires --yes; deleting a network also deletes its subnetworks and
firewall rules.

Examples:
  gcp-vpc destroy -s dev --yes`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), stackName, confirmed)
		},
	}

	cmd.Flags().StringVarP(&stackName, "stack", "s", "dev", "Name of the deployment stack")
	cmd.Flags().BoolVar(&confirmed, "yes", false, "Confirm the teardown")

	return cmd
}
