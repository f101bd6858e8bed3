package commands

import (
	"github.com/spf13/cobra"

	"github.com/kalivaraprasad-gonapa/GCP-Pulumi/cmd/gcp-vpc/handlers"
)

// Outputs returns the command for printing the stack outputs.
func Outputs() *cobra.Command {
	var stackName string

	cmd := &cobra.Command{
		Use:   "outputs",
		Short: "Print the stack outputs as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Outputs(cmd.Context(), stackName)
		},
	}

	cmd.Flags().StringVarP(&stackName, "stack", "s", "dev", "Name of the deployment stack")

	return cmd
}
