package commands

import (
	"github.com/spf13/cobra"

	"github.com/kalivaraprasad-gonapa/GCP-Pulumi/cmd/gcp-vpc/handlers"
)

// Preview returns the command for previewing stack changes.
//
// Environment variables:
//
//	GCP_PROJECT: project id, stored as a secret config value
//	GCP_REGION:  deployment region (default: us-central1)
//	VPC_SSH_SOURCE_RANGE: trusted SSH source ranges (required)
//	VPC_INTERNAL_TARGET_TAGS: tags the internal rule targets (required)
func Preview() *cobra.Command {
	var stackName string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the changes an update would apply",
		Long: `Show the changes an update would apply to the VPC stack.

Nothing is created or modified; the engine computes the diff against the
stack's current state.

Examples:
  # Preview the dev stack
  gcp-vpc preview

  # Preview a named stack
  gcp-vpc preview -s production`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Preview(cmd.Context(), stackName)
		},
	}

	cmd.Flags().StringVarP(&stackName, "stack", "s", "dev", "Name of the deployment stack")

	return cmd
}
