package commands

import (
	"github.com/spf13/cobra"

	"github.com/kalivaraprasad-gonapa/GCP-Pulumi/cmd/gcp-vpc/handlers"
)

// Up returns the command for deploying the VPC stack.
func Up() *cobra.Command {
	var stackName string

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Create or update the VPC stack",
		Long: `Create or update the VPC stack.

Declares one network, its subnetworks, and the allow-internal and
allow-ssh firewall rules, then prints the stack outputs. Failures
propagate from the engine; re-run after fixing the cause and the engine
reconciles any partial state.

Examples:
  # Deploy the dev stack
  gcp-vpc up

  # Deploy a named stack
  gcp-vpc up -s production`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Up(cmd.Context(), stackName)
		},
	}

	cmd.Flags().StringVarP(&stackName, "stack", "s", "dev", "Name of the deployment stack")

	return cmd
}
